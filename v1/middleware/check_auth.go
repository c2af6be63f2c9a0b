package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

// CheckAuth resolves the requesting user from the Authorization header, if
// one is present. It never rejects the request; RequireLogin does that for
// routes that need it.
func CheckAuth(
	authTokensService *services.AuthTokensService,
	usersService *services.UsersService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Pull the bearer token from the header
		header := c.GetHeader("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if token == "" {
			c.Next()
			return
		}

		// Verify the token signature and expiry
		userID, err := authTokensService.VerifyToken(token)
		if err != nil {
			c.Next()
			return
		}

		// Load the user and attach it to the request context
		user, err := usersService.GetByID(userID)
		if err != nil || user == nil {
			c.Next()
			return
		}
		utils.CtxSetUser(c, user)

		c.Next()

	}
}
