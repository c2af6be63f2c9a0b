package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

type ConversationAddParticipantReq struct {
	ConversationID string                  `json:"conversation_id"`
	Participant    services.ParticipantRef `json:"participant"`
}

// ConversationAddParticipant adds a user or organization to a conversation
// the requesting user already belongs to
func ConversationAddParticipant(conversationsService *services.ConversationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ConversationAddParticipantReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		participant, err := conversationsService.AddParticipant(
			user.ID,
			req.ConversationID,
			req.Participant,
		)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, gin.H{
			"id":              participant.ID,
			"conversation_id": participant.ConversationID,
			"participant":     req.Participant,
		})

	}
}
