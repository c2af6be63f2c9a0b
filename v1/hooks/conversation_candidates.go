package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

type ConversationCandidatesReq struct {
	ConversationID string `json:"conversation_id"`
}

// ConversationCandidates lists the volunteers and organizations that could
// still be added to the conversation
func ConversationCandidates(conversationsService *services.ConversationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ConversationCandidatesReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		volunteers, err := conversationsService.VolunteersNotInConversation(
			user.ID,
			req.ConversationID,
		)
		if err != nil {
			respondError(c, err)
			return
		}
		organizations, err := conversationsService.OrganizationsNotInConversation(
			user.ID,
			req.ConversationID,
		)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, gin.H{
			"volunteers":    volunteers,
			"organizations": organizations,
		})

	}
}
