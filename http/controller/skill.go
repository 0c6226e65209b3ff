package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller/dto"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

func (ctrl *Controller) CreateSkill(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Please provide skill data")
		return
	}
	if req.Category == "" {
		utils.JSON400(c, "Category is required")
		return
	}

	skill := &entity.Skill{
		Category: req.Category,
		Items:    req.Items,
	}
	if err := ctrl.Repository.SkillRepo.Create(skill); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Skill] Failed to create skill")
		utils.JSON500(c, err.Error())
		return
	}

	utils.JSON201(c, skill)
}

func (ctrl *Controller) GetSkills(c *gin.Context) {
	ctx := c.Request.Context()

	skills, err := ctrl.Repository.SkillRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Skill] Failed to list skills")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": skills})
}

// UpdateSkill replaces the stored item list wholesale when the request
// carries an items field; old items are never merged in.
func (ctrl *Controller) UpdateSkill(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid skill ID")
		return
	}

	var req dto.SkillUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Please provide skill data")
		return
	}

	skill, err := ctrl.Repository.SkillRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Skill not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Skill] Failed to look up skill %s", id)
		utils.JSON500(c, err.Error())
		return
	}

	if req.Category != "" {
		skill.Category = req.Category
	}
	if req.Items != nil {
		skill.Items = *req.Items
	}

	if err := ctrl.Repository.SkillRepo.Save(skill); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Skill] Failed to update skill %s", id)
		utils.JSON500(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": skill})
}
