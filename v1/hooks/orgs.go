package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/models"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

type OrgsCreateReq struct {
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Bio         string `json:"bio"`
}

// OrgsCreate creates a new organization owned by the requesting user
func OrgsCreate(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req OrgsCreateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		organization, err := organizationsService.Create(user.ID, services.OrganizationInput{
			Name:        req.Name,
			Thumbnail:   req.Thumbnail,
			Email:       req.Email,
			Address:     req.Address,
			PhoneNumber: req.PhoneNumber,
			Bio:         req.Bio,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, serializeOrganization(organization))

	}
}

// OrgsMine lists the organizations created by the requesting user
func OrgsMine(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CtxGetUser(c)
		organizations, err := organizationsService.ListByCreator(user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, serializeOrganizations(organizations))
	}
}

// OrgsOthers lists organizations the requesting user doesn't own
func OrgsOthers(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CtxGetUser(c)
		organizations, err := organizationsService.ListOthers(user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, serializeOrganizations(organizations))
	}
}

type OrgsDeleteReq struct {
	OrganizationID string `json:"organization_id"`
}

// OrgsDelete removes an organization and everything depending on it
func OrgsDelete(organizationsService *services.OrganizationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req OrgsDeleteReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		if err := organizationsService.Delete(user.ID, req.OrganizationID); err != nil {
			respondError(c, err)
			return
		}

		respondData(c, gin.H{})

	}
}

func serializeOrganizations(organizations []*models.Organization) []map[string]interface{} {
	out := []map[string]interface{}{}
	for _, organization := range organizations {
		out = append(out, serializeOrganization(organization))
	}
	return out
}
