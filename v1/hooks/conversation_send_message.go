package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

type ConversationSendMessageReq struct {
	ConversationID string                  `json:"conversation_id"`
	Sender         services.ParticipantRef `json:"sender"`
	Content        string                  `json:"content"`
	MessageType    int                     `json:"message_type"`
}

// ConversationSendMessage persists a message and fans it out to realtime
// subscribers of the conversation
func ConversationSendMessage(conversationsService *services.ConversationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ConversationSendMessageReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user := utils.CtxGetUser(c)
		message, err := conversationsService.SendMessage(
			user.ID,
			req.ConversationID,
			req.Sender,
			req.Content,
			req.MessageType,
		)
		if err != nil {
			respondError(c, err)
			return
		}

		respondData(c, message)

	}
}
