package hooks

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteerhub-api/services"
	"github.com/volunteerhub/volunteerhub-api/v1/utils"
)

type ConversationsCreateReq struct {
	Subject      string                    `json:"subject"`
	Participants []services.ParticipantRef `json:"participants"`
}

// ConversationsCreate starts a new conversation. The requesting user must
// control at least one of the initial participants: themselves, or an
// organization they created. Nobody is ever an implicit participant.
func ConversationsCreate(conversationsService *services.ConversationsService) gin.HandlerFunc {
	return func(c *gin.Context) {

		var req ConversationsCreateReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// The actor must appear in the participant set in some form they
		// control, otherwise they could open threads between strangers
		user := utils.CtxGetUser(c)
		controls := false
		for _, ref := range req.Participants {
			if ref.Kind == services.ParticipantKindUser && ref.ID == user.ID {
				controls = true
				break
			}
			if ref.Kind == services.ParticipantKindOrganization {
				ok, err := conversationsService.CanActAsOrganization(user.ID, ref.ID)
				if err == nil && ok {
					controls = true
					break
				}
			}
		}
		if !controls {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "you must participate in the conversation yourself or through an organization you created",
			})
			return
		}

		conversation, err := conversationsService.CreateConversation(req.Subject, req.Participants)
		if err != nil {
			respondError(c, err)
			return
		}

		var subject *string
		if conversation.Subject.Valid {
			subject = &conversation.Subject.String
		}
		respondData(c, gin.H{
			"id":      conversation.ID,
			"subject": subject,
		})

	}
}
