package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

// ProfileGet returns the requesting user's own profile
func ProfileGet() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CtxGetUser(c)
		respondData(c, serializeUser(user))
	}
}

type ProfileUpdateReq struct {
	Name  string `json:"name"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

// ProfileUpdate edits the requesting user's display profile
func ProfileUpdate(usersService *services.UsersService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ProfileUpdateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		updated, err := usersService.UpdateProfile(user.ID, services.ProfileUpdate{
			Name:  req.Name,
			Image: req.Image,
			Bio:   req.Bio,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, serializeUser(updated))

	}
}
