// Command seed creates the single admin credential. The running API
// never creates or deletes it; run this once against a fresh database.
package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/config"
	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	infraPkg "github.com/minaamulhaq/updatedPortfolowithbackend/infra"
	"github.com/minaamulhaq/updatedPortfolowithbackend/repository"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, continuing with environment variables")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	cfg := config.NewConfig()
	postgres := infraPkg.InitPostgresClient(cfg.EnvConfig)
	users := repository.NewUserRepository(postgres.DB)

	if _, err := users.FindByEmail(email); err == nil {
		log.Println("Admin credential already seeded:", email)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to check existing credential: %v", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	if err := users.Create(&entity.User{Email: email, PasswordHash: hash}); err != nil {
		log.Fatalf("Failed to seed admin credential: %v", err)
	}

	log.Println("Seeded admin credential:", email)
}
