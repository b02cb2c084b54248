package interfaces

import (
	"context"
	"laporan_zakat/internal/domain/entities"
)

// IIntentOracle turns free text into either an answer or a function call.
//
// A returned error means the call itself failed; a response without
// function calls is a valid "answer only" outcome.
type IIntentOracle interface {
	Query(ctx context.Context, text string) (entities.OracleResponse, error)
}
