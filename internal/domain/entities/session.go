package entities

import (
	"sync"
	"time"
)

// Session binds an authenticated identity to its conversation.
//
// A turn holds mu for its whole duration; TryAcquire failing means another
// utterance is still in flight.
type Session struct {
	ID         string
	Identity   Identity
	State      ConversationState
	Transcript Transcript
	CreatedAt  time.Time

	mu sync.Mutex
}

func NewSession(id string, identity Identity, now time.Time) *Session {
	return &Session{
		ID:        id,
		Identity:  identity,
		State:     NewConversationState(),
		CreatedAt: now,
	}
}

func (s *Session) TryAcquire() bool {
	return s.mu.TryLock()
}

// Acquire blocks until no turn is in flight.
func (s *Session) Acquire() {
	s.mu.Lock()
}

func (s *Session) Release() {
	s.mu.Unlock()
}
