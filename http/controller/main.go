package controller

import (
	"github.com/minaamulhaq/updatedPortfolowithbackend/config"
	"github.com/minaamulhaq/updatedPortfolowithbackend/infra"
	"github.com/minaamulhaq/updatedPortfolowithbackend/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
}

func NewController(cfg *config.Config, infra *infra.Infra, repo *repository.Repository) *Controller {
	return &Controller{
		Config:     cfg,
		Infra:      infra,
		Repository: repo,
	}
}
