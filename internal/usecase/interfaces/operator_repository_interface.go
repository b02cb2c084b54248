package interfaces

import (
	"context"
	"laporan_zakat/internal/domain/entities"
)

// IOperatorRepository abstracts persistence for Operator.
//
// GetByCode returns a zero-value operator when the code is unknown. Returned
// operators still carry the secret hash; callers strip it.

type IOperatorRepository interface {
	Create(ctx context.Context, o entities.Operator) (entities.Operator, error)
	GetByCode(ctx context.Context, operatorCode string) (entities.Operator, error)
	List(ctx context.Context) ([]entities.Operator, error)
}
