package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller/dto"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

// CreateContact persists a public contact-form submission and then
// publishes a notification event; a failed publish is logged but never
// fails the request, the submission is already saved.
func (ctrl *Controller) CreateContact(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Please provide contact data")
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		utils.JSON400(c, "All fields are required")
		return
	}

	contact := &entity.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := ctrl.Repository.ContactRepo.Create(contact); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contact] Failed to save contact message")
		utils.JSON500(c, err.Error())
		return
	}

	if ctrl.Infra.Produce != nil {
		if err := ctrl.Infra.Produce.NotifyService.SendContactNotification(ctx, req.Name, req.Email, req.Subject, req.Message); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Contact] Notification publish failed: %v", err)
		}
	}

	utils.JSON201(c, contact)
}

func (ctrl *Controller) GetContacts(c *gin.Context) {
	ctx := c.Request.Context()

	contacts, err := ctrl.Repository.ContactRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Contact] Failed to list contact messages")
		utils.JSON500(c, err.Error())
		return
	}

	utils.JSON200(c, contacts)
}
