package interfaces

import (
	"context"
	"laporan_zakat/internal/domain/entities"
)

// IReportRepository abstracts persistence for DonationReport.
//
// Lookups return a zero-value report (ID == 0) when nothing matches.

type IReportRepository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, r entities.DonationReport) (entities.DonationReport, error)
	GetByID(ctx context.Context, id int64) (entities.DonationReport, error)
	List(ctx context.Context) ([]entities.DonationReport, error)
	ListByOperatorCode(ctx context.Context, operatorCode string) ([]entities.DonationReport, error)
	Update(ctx context.Context, r entities.DonationReport) (entities.DonationReport, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
