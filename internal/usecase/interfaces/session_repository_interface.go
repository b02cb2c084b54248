package interfaces

import "laporan_zakat/internal/domain/entities"

// ISessionRepository keeps live chat sessions keyed by bearer token.

type ISessionRepository interface {
	Save(s *entities.Session)
	Get(id string) (*entities.Session, bool)
	Delete(id string)
}
