package memory

import (
	"context"
	"sync"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"
)

type OperatorMemoryRepository struct {
	mu        sync.RWMutex
	operators []entities.Operator
}

var _ interfaces.IOperatorRepository = (*OperatorMemoryRepository)(nil)

func NewOperatorMemoryRepository(seed ...entities.Operator) *OperatorMemoryRepository {
	return &OperatorMemoryRepository{operators: append([]entities.Operator(nil), seed...)}
}

// Create appends o. Uniqueness of the operator code is checked by the caller.
func (r *OperatorMemoryRepository) Create(_ context.Context, o entities.Operator) (entities.Operator, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operators = append(r.operators, o)
	return o, nil
}

func (r *OperatorMemoryRepository) GetByCode(_ context.Context, operatorCode string) (entities.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, o := range r.operators {
		if o.OperatorCode == operatorCode {
			return o, nil
		}
	}
	return entities.Operator{}, nil
}

func (r *OperatorMemoryRepository) List(_ context.Context) ([]entities.Operator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Operator, len(r.operators))
	copy(out, r.operators)
	return out, nil
}
