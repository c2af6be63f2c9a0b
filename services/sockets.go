package services

import (
	"errors"
	"fmt"

	socketio "github.com/googollee/go-socket.io"
	"github.com/rs/zerolog"
	"github.com/volunteerhub/volunteerhub-api/utils"
)

// SocketsService is the realtime side of the messaging subsystem. Clients
// join a room per conversation; the conversation service publishes
// "incoming-message" events into those rooms through the Notifier interface.
type SocketsService struct {
	Server        *socketio.Server
	Conversations *ConversationsService
	Log           zerolog.Logger
	buffers       RecentEventBuffers
}

func (s *SocketsService) Setup() {

	s.Server.OnConnect("/", func(conn socketio.Conn) error {
		s.Log.Info().
			Str("ip", utils.GetIpAddress(conn.RemoteHeader(), conn.RemoteAddr())).
			Msg("socket connected")
		conn.SetContext(nil)
		return nil
	})

	s.Server.OnDisconnect("/", func(conn socketio.Conn, reason string) {
		s.Log.Info().
			Str("reason", reason).
			Msg("socket disconnected")
		conn.LeaveAll()
	})

	s.Server.OnEvent("/", "conversation.join", s.OnConversationJoin)
	s.Server.OnEvent("/", "conversation.leave", s.OnConversationLeave)

}

// conversationRoom is the topic key for a conversation
func conversationRoom(conversationID string) string {
	return fmt.Sprintf("conversation_%s", conversationID)
}

// Publish implements the Notifier interface used by the conversation service
func (s *SocketsService) Publish(conversationID string, event string, payload interface{}) error {
	if s.Server == nil {
		return errors.New("socket server is not running")
	}
	s.Server.BroadcastToRoom("/", conversationRoom(conversationID), event, payload)

	// Keep a short replay buffer so a client joining mid-conversation doesn't
	// see an empty screen before their next full fetch
	s.buffers.Push(conversationID, event, payload)
	return nil
}

//====================================================================================================
// conversation.join event handler
//====================================================================================================

type ConversationJoinMsg struct {
	ConversationID string `json:"conversation_id"`
	UserID         string `json:"user_id"`
}

func (s *SocketsService) OnConversationJoin(conn socketio.Conn, data ConversationJoinMsg) error {

	// Only members (directly, or through an owned organization) may attach
	ok, err := s.Conversations.IsUserParticipant(data.ConversationID, data.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("not a participant in this conversation")
	}

	conn.Join(conversationRoom(data.ConversationID))

	// Replay recently published events to the new subscriber
	for _, buffered := range s.buffers.Copy(data.ConversationID) {
		conn.Emit(buffered.Event, buffered.Payload)
	}

	return nil
}

//====================================================================================================
// conversation.leave event handler
//====================================================================================================

type ConversationLeaveMsg struct {
	ConversationID string `json:"conversation_id"`
}

func (s *SocketsService) OnConversationLeave(conn socketio.Conn, data ConversationLeaveMsg) error {
	conn.Leave(conversationRoom(data.ConversationID))
	return nil
}
