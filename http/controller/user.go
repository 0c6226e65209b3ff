package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minaamulhaq/updatedPortfolowithbackend/http/controller/dto"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

// Login verifies the submitted credentials against the stored admin
// record and sets the session cookie. The credential is looked up by
// the submitted email; it is the password that gates access, but a
// wrong email never matches either.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Content can not be empty!"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email and password are required!"})
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found!"})
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to look up admin credential")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	if !utils.VerifyPassword(user.PasswordHash, req.Password) {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Auth] Failed login attempt for %s", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials!"})
		return
	}

	token, err := utils.GenerateToken(user.ID, ctrl.Config.EnvConfig)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to sign session token")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}

	ctrl.setSessionCookie(c, token, ctrl.Config.EnvConfig.JWT.Expire)

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Auth] Admin %s logged in", user.Email)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User logged in successfully!"})
}

// Logout revokes the current session token for its remaining lifetime
// and clears the cookie.
func (ctrl *Controller) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	tokenStr := utils.ExtractToken(c)
	parsed, err := utils.ParseToken(tokenStr, ctrl.Config.EnvConfig)
	if err == nil && parsed.Valid {
		jti := utils.TokenID(parsed)
		if jti != "" {
			if err := ctrl.Infra.Blocklist.Revoke(ctx, jti, utils.TokenRemaining(parsed)); err != nil {
				ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Auth] Failed to blocklist session token")
				c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to log out"})
				return
			}
		}
	}

	ctrl.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User logged out successfully!"})
}

// Dashboard is the session probe the front end calls to decide whether
// the admin is still logged in.
func (ctrl *Controller) Dashboard(c *gin.Context) {
	user, exists := c.Get("user")
	if !exists {
		utils.JSON401(c, "Not authorized")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

func (ctrl *Controller) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if ctrl.Config.EnvConfig.IsProduction() {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie(utils.SessionCookieName, token, maxAge, "/", "", true, true)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(utils.SessionCookieName, token, maxAge, "/", "", false, true)
}
