package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

// RequireLogin aborts the request when no authenticated user is attached
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.CtxGetUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "login required",
			})
			return
		}
		c.Next()
	}
}
