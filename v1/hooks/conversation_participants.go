package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
)

type ConversationParticipantsReq struct {
	ConversationID string `json:"conversation_id"`
}

// ConversationParticipants returns the resolved participant list of a
// conversation
func ConversationParticipants(conversationsService *services.ConversationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ConversationParticipantsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		participants, err := conversationsService.ListParticipants(req.ConversationID)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, participants)

	}
}
