package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

// ConversationsMine returns every conversation the requesting user
// participates in directly, with full message history
func ConversationsMine(conversationsService *services.ConversationsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := utils.CtxGetUser(c)
		conversations, err := conversationsService.GetConversationsForUser(user.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, conversations)
	}
}

type ConversationsForOrgReq struct {
	OrganizationID string `json:"organization_id"`
}

// ConversationsForOrg returns the conversations an organization participates
// in. Only the organization's creator may ask.
func ConversationsForOrg(conversationsService *services.ConversationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ConversationsForOrgReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		conversations, err := conversationsService.GetConversationsForOrganization(
			user.ID,
			req.OrganizationID,
		)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, conversations)

	}
}
