package controller

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller/dto"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

// UploadCV receives the multipart "cv" field, pushes it to the external
// media storage and persists the returned handles. The temporary spool
// file is removed on every exit path.
func (ctrl *Controller) UploadCV(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("cv")
	if err != nil {
		utils.JSON400(c, "CV file is required")
		return
	}

	tempPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tempPath); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to spool uploaded file")
		utils.JSON500(c, "Failed to upload CV")
		return
	}
	defer os.Remove(tempPath)

	file, err := os.Open(tempPath)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to reopen spooled file")
		utils.JSON500(c, "Failed to upload CV")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")

	asset, err := ctrl.Infra.Media.Store(ctx, file, fileHeader.Size, fileHeader.Filename, contentType)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Media storage upload failed")
		utils.JSON500(c, "Failed to upload CV")
		return
	}

	cv := &entity.CV{
		FileURL:   asset.FileURL,
		StorageID: asset.StorageID,
		AssetID:   asset.AssetID,
	}
	if err := ctrl.Repository.CVRepo.Create(cv); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to persist CV record")
		utils.JSON500(c, "Failed to create CV")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[CV] Uploaded '%s' as %s", fileHeader.Filename, cv.ID)
	utils.JSON201(c, gin.H{
		"message": "CV created successfully",
		"cv":      dto.NewCVResponse(cv),
	})
}

// DeleteCV removes the remote object first; the local record is only
// deleted after the remote delete succeeds, so a failed remote delete
// leaves the record intact for a retry.
func (ctrl *Controller) DeleteCV(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid CV ID")
		return
	}

	cv, err := ctrl.Repository.CVRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "CV not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to look up CV %s", id)
		utils.JSON500(c, "Failed to delete CV")
		return
	}

	if err := ctrl.Infra.Media.Delete(ctx, cv.StorageID); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Remote delete failed for %s", cv.StorageID)
		utils.JSON500(c, "Failed to delete CV from storage")
		return
	}

	if err := ctrl.Repository.CVRepo.Delete(id); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to delete CV record %s", id)
		utils.JSON500(c, "Failed to delete CV")
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[CV] Deleted CV %s", id)
	utils.JSON200(c, gin.H{"message": "CV deleted successfully"})
}

// GetCV returns the most recently uploaded CV.
func (ctrl *Controller) GetCV(c *gin.Context) {
	ctx := c.Request.Context()

	cv, err := ctrl.Repository.CVRepo.FindLatest()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "CV not found"})
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to fetch latest CV")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cv": dto.NewCVResponse(cv)})
}

// GetAllCVs lists every CV, newest first.
func (ctrl *Controller) GetAllCVs(c *gin.Context) {
	ctx := c.Request.Context()

	cvs, err := ctrl.Repository.CVRepo.FindAll()
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to list CVs")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "cvs": dto.NewCVResponseList(cvs)})
}

// DownloadCV redirects the browser to a signed attachment URL; the
// server never streams the file bytes itself.
func (ctrl *Controller) DownloadCV(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON404(c, "CV not found")
		return
	}

	cv, err := ctrl.Repository.CVRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "CV not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to look up CV %s", id)
		utils.JSON500(c, "Server error during download")
		return
	}

	downloadURL, err := ctrl.Infra.Media.SignedDownloadURL(ctx, cv.StorageID, filepath.Base(cv.StorageID))
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[CV] Failed to sign download URL for %s", cv.StorageID)
		utils.JSON500(c, "Could not generate download link")
		return
	}

	c.Redirect(http.StatusFound, downloadURL)
}
