package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/minaamulhaq/updatedPortfolowithbackend/config"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller"
	routes "github.com/minaamulhaq/updatedPortfolowithbackend/http/route"
	infraPkg "github.com/minaamulhaq/updatedPortfolowithbackend/infra"
	"github.com/minaamulhaq/updatedPortfolowithbackend/repository"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	cfg := config.NewConfig()
	infra := infraPkg.InitInfra(cfg)
	repo := repository.InitRepository(infra)

	ctrl := controller.NewController(cfg, infra, repo)

	router := routes.SetupRouter(ctrl)

	log.Println("HTTP Server started on :" + cfg.EnvConfig.Port)
	if err := router.Run(":" + cfg.EnvConfig.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
