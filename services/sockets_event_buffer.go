package services

import "sync"

// bufferedEvent is one published realtime event kept for replay
type bufferedEvent struct {
	Event   string
	Payload interface{}
}

// recentEventBuffer keeps the last N events of a single conversation
type recentEventBuffer struct {
	maxLength int
	items     []bufferedEvent
}

func (buf *recentEventBuffer) push(item bufferedEvent) {

	// If there is still room under the max, add it
	if len(buf.items) < buf.maxLength {
		buf.items = append(buf.items, item)
		return
	}

	// Move everything over one space
	for i := 1; i < len(buf.items); i++ {
		buf.items[i-1] = buf.items[i]
	}

	// Insert the new item in the last slot
	buf.items[len(buf.items)-1] = item

}

const recentEventBufferLength = 25

// RecentEventBuffers holds a replay buffer per conversation
type RecentEventBuffers struct {
	buffers map[string]*recentEventBuffer
	mut     sync.RWMutex
}

// Push records an event for the conversation, evicting the oldest entry when
// the buffer is full
func (s *RecentEventBuffers) Push(conversationID, event string, payload interface{}) {

	s.mut.Lock()
	defer s.mut.Unlock()

	if s.buffers == nil {
		s.buffers = map[string]*recentEventBuffer{}
	}

	buf, ok := s.buffers[conversationID]
	if !ok {
		buf = &recentEventBuffer{maxLength: recentEventBufferLength}
		s.buffers[conversationID] = buf
	}

	buf.push(bufferedEvent{Event: event, Payload: payload})

}

// Copy returns a snapshot of the conversation's buffered events
func (s *RecentEventBuffers) Copy(conversationID string) []bufferedEvent {

	s.mut.RLock()
	defer s.mut.RUnlock()

	buf, ok := s.buffers[conversationID]
	if !ok {
		return nil
	}

	items := make([]bufferedEvent, len(buf.items))
	copy(items, buf.items)
	return items

}
