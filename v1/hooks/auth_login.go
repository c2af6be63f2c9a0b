package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
)

type AuthLoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AuthLogin(
	usersService *services.UsersService,
	authTokensService *services.AuthTokensService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the request body
		var req AuthLoginReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Find the user with the provided credentials
		user, err := usersService.FindByLogin(
			req.Email,
			req.Password,
		)
		if err != nil {
			respondError(c, err)
			return
		}
		if user == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "incorrect email or password"})
			return
		}

		// Serialize the whoami info
		whoami, err := serializeWhoAmI(user, authTokensService)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, whoami)

	}
}
