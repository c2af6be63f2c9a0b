package hooks

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

func AuthWhoAmI(
	authTokensService *services.AuthTokensService,
) gin.HandlerFunc {
	return func(c *gin.Context) {

		// Get the user from the request
		user := utils.CtxGetUser(c)

		// Serialize the whoami info
		whoami, err := serializeWhoAmI(user, authTokensService)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, whoami)

	}
}

func serializeWhoAmI(
	user *models.User,
	authTokensService *services.AuthTokensService,
) (map[string]interface{}, error) {

	// Return nil if the user is nil
	if user == nil {
		return nil, errors.New("something went wrong")
	}

	// Create an authentication token for the user
	token, err := authTokensService.CreateToken(
		user,
		time.Now(),
		time.Now().Add(time.Hour*24*30),
	)
	if err != nil {
		return nil, err
	}

	// Return the map of whoami info
	return map[string]interface{}{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"token": token,
	}, nil
}
