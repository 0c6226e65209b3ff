package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/minaamulhaq/updatedPortfolowithbackend/config"
	"github.com/minaamulhaq/updatedPortfolowithbackend/infra"
	"github.com/minaamulhaq/updatedPortfolowithbackend/repository"
	"github.com/minaamulhaq/updatedPortfolowithbackend/utils"
)

// AuthMiddleware gates protected routes on the session cookie. Every
// failure mode returns the same generic 401; callers never learn
// whether the token was missing, malformed, expired or revoked.
func AuthMiddleware(users repository.UserRepository, blocklist infra.TokenBlocklist, cfg *config.EnvConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		tokenStr := utils.ExtractToken(c)
		if tokenStr == "" {
			utils.JSON401(c, "Not authorized")
			c.Abort()
			return
		}

		parsedToken, err := utils.ParseToken(tokenStr, cfg)
		if err != nil || !parsedToken.Valid {
			utils.JSON401(c, "Not authorized")
			c.Abort()
			return
		}

		// Fail closed when the blocklist cannot be consulted.
		revoked, err := blocklist.IsRevoked(ctx, utils.TokenID(parsedToken))
		if err != nil || revoked {
			utils.JSON401(c, "Not authorized")
			c.Abort()
			return
		}

		claims, ok := parsedToken.Claims.(jwt.MapClaims)
		if !ok {
			utils.JSON401(c, "Not authorized")
			c.Abort()
			return
		}
		if err := utils.InjectClaimsToContext(c, claims); err != nil {
			utils.JSON401(c, "Not authorized")
			c.Abort()
			return
		}

		userID, err := utils.GetUserIDFromContext(c)
		if err != nil {
			utils.JSON401(c, "Not authorized")
			c.Abort()
			return
		}

		user, err := users.FindByID(userID)
		if err != nil {
			utils.JSON401(c, "Not authorized")
			c.Abort()
			return
		}
		c.Set("user", user)

		c.Next()
	}
}
