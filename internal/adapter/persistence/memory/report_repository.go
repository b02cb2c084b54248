package memory

import (
	"context"
	"sync"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"
)

// ReportMemoryRepository keeps donation reports in a volatile, insertion
// ordered slice. Identifiers come from a counter that never goes backwards,
// so a deleted id is not reused.
type ReportMemoryRepository struct {
	mu      sync.RWMutex
	reports []entities.DonationReport
	lastID  int64
}

var _ interfaces.IReportRepository = (*ReportMemoryRepository)(nil)

func NewReportMemoryRepository(seed ...entities.DonationReport) *ReportMemoryRepository {
	r := &ReportMemoryRepository{}
	for _, rep := range seed {
		r.reports = append(r.reports, rep)
		if rep.ID > r.lastID {
			r.lastID = rep.ID
		}
	}
	return r
}

func (r *ReportMemoryRepository) NextID(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	return r.lastID, nil
}

func (r *ReportMemoryRepository) Create(_ context.Context, rep entities.DonationReport) (entities.DonationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reports = append(r.reports, rep)
	if rep.ID > r.lastID {
		r.lastID = rep.ID
	}
	return rep, nil
}

func (r *ReportMemoryRepository) GetByID(_ context.Context, id int64) (entities.DonationReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.reports[i], nil
	}
	return entities.DonationReport{}, nil
}

func (r *ReportMemoryRepository) List(_ context.Context) ([]entities.DonationReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.DonationReport, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

func (r *ReportMemoryRepository) ListByOperatorCode(_ context.Context, operatorCode string) ([]entities.DonationReport, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.DonationReport, 0, len(r.reports))
	for _, rep := range r.reports {
		if rep.OperatorCode == operatorCode {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *ReportMemoryRepository) Update(_ context.Context, rep entities.DonationReport) (entities.DonationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(rep.ID)
	if i < 0 {
		return entities.DonationReport{}, nil
	}
	r.reports[i] = rep
	return rep, nil
}

func (r *ReportMemoryRepository) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return false, nil
	}
	r.reports = append(r.reports[:i], r.reports[i+1:]...)
	return true, nil
}

func (r *ReportMemoryRepository) indexOf(id int64) int {
	for i, rep := range r.reports {
		if rep.ID == id {
			return i
		}
	}
	return -1
}
