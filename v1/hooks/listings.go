package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

type ListingsCreateReq struct {
	OrganizationID string   `json:"organization_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Thumbnail      string   `json:"thumbnail"`
	Address        string   `json:"address"`
	SkillIDs       []string `json:"skill_ids"`
}

// ListingsCreate posts a listing under an organization the user created
func ListingsCreate(listingsService *services.ListingsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ListingsCreateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		listing, err := listingsService.Create(user.ID, req.OrganizationID, services.ListingInput{
			Name:        req.Name,
			Description: req.Description,
			Thumbnail:   req.Thumbnail,
			Address:     req.Address,
			SkillIDs:    req.SkillIDs,
		})
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, serializeListing(listing))

	}
}

type ListingsListReq struct {
	OrganizationID string `json:"organization_id"`
}

// ListingsList lists open listings, optionally for one organization
func ListingsList(listingsService *services.ListingsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ListingsListReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		listings, err := listingsService.ListAll()
		if req.OrganizationID != "" {
			listings, err = listingsService.ListForOrganization(req.OrganizationID)
		}
		if err != nil {
			respondError(c, err)
			return
		}

		out := []map[string]interface{}{}
		for _, listing := range listings {
			out = append(out, serializeListing(listing))
		}
		respondData(c, out)

	}
}

type ListingsSignupReq struct {
	ListingID string `json:"listing_id"`
}

// ListingsSignup signs the requesting user up for a listing
func ListingsSignup(listingsService *services.ListingsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ListingsSignupReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		signup, err := listingsService.SignUp(user.ID, req.ListingID)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, gin.H{
			"listing_id":     signup.ListingID,
			"signed_up_date": signup.SignedUpDate,
		})

	}
}
