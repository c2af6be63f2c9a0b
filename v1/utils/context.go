package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/models"
)

const ctxKeyUser = "auth_user"

// CtxSetUser attaches the authenticated user to the request context
func CtxSetUser(c *gin.Context, user *models.User) {
	c.Set(ctxKeyUser, user)
}

// CtxGetUser gets the authenticated user from the request context, or nil
func CtxGetUser(c *gin.Context) *models.User {
	value, ok := c.Get(ctxKeyUser)
	if !ok {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}
