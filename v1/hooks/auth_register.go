package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
)

type AuthRegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AuthRegister(
	usersService *services.UsersService,
	authTokensService *services.AuthTokensService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AuthRegisterReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Create the account
		user, err := usersService.Register(req.Name, req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		// Log the new account straight in
		whoami, err := serializeWhoAmI(user, authTokensService)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, whoami)

	}
}
