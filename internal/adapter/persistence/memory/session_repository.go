package memory

import (
	"sync"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"
)

type SessionMemoryRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entities.Session
}

var _ interfaces.ISessionRepository = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: map[string]*entities.Session{}}
}

func (r *SessionMemoryRepository) Save(s *entities.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

func (r *SessionMemoryRepository) Get(id string) (*entities.Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

func (r *SessionMemoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
