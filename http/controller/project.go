package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller/dto"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

func (ctrl *Controller) CreateProject(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Please provide project data")
		return
	}
	if req.Title == "" || req.Description == "" {
		utils.JSON400(c, "Title and description are required")
		return
	}

	project := &entity.Project{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Tech:        req.Tech,
		Github:      req.Github,
		Live:        req.Live,
	}
	if err := ctrl.Repository.ProjectRepo.Create(project); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to create project")
		utils.JSON500(c, err.Error())
		return
	}

	utils.JSON201(c, project)
}

func (ctrl *Controller) GetProjects(c *gin.Context) {
	ctx := c.Request.Context()

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "3"))
	if err != nil || limit <= 0 {
		limit = 3
	}

	projects, err := ctrl.Repository.ProjectRepo.FindAll(limit)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to list projects")
		utils.JSON500(c, err.Error())
		return
	}

	utils.JSON200(c, projects)
}

func (ctrl *Controller) GetProjectByID(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid project ID")
		return
	}

	project, err := ctrl.Repository.ProjectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Project not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to look up project %s", id)
		utils.JSON500(c, err.Error())
		return
	}

	utils.JSON200(c, project)
}

func (ctrl *Controller) DeleteProject(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid project ID")
		return
	}

	if _, err := ctrl.Repository.ProjectRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Project not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to look up project %s", id)
		utils.JSON500(c, err.Error())
		return
	}

	if err := ctrl.Repository.ProjectRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to delete project %s", id)
		utils.JSON500(c, err.Error())
		return
	}

	utils.JSON200(c, gin.H{"message": "Project deleted successfully"})
}

// UpdateProject replaces the mutable fields of a project; the tech tag
// list is replaced wholesale.
func (ctrl *Controller) UpdateProject(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid project ID")
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Please provide project data")
		return
	}
	if req.Title == "" || req.Description == "" || req.Category == "" {
		utils.JSON400(c, "Title, description and category are required")
		return
	}

	project, err := ctrl.Repository.ProjectRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Project not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to look up project %s", id)
		utils.JSON500(c, err.Error())
		return
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Category = req.Category
	project.Tech = req.Tech
	project.Github = req.Github
	project.Live = req.Live

	if err := ctrl.Repository.ProjectRepo.Save(project); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Project] Failed to update project %s", id)
		utils.JSON500(c, err.Error())
		return
	}

	utils.JSON200(c, project)
}
