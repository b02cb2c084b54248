package response

import (
	"time"

	"laporan_zakat/internal/domain/entities"
)

type ReportResponse struct {
	ID           int64     `json:"id"`
	OperatorCode string    `json:"operator_code"`
	DonorName    string    `json:"donor_name"`
	DonationType string    `json:"donation_type"`
	Amount       int64     `json:"amount"`
	Attachment   string    `json:"attachment"`
	CreatedAt    time.Time `json:"created_at"`
}

// OperatorResponse never carries the secret.
type OperatorResponse struct {
	OperatorCode     string `json:"operator_code"`
	Name             string `json:"name"`
	OrganizationName string `json:"organization_name"`
	Description      string `json:"description"`
	Role             string `json:"role"`
}

func FromReport(r entities.DonationReport) ReportResponse {
	return ReportResponse{
		ID:           r.ID,
		OperatorCode: r.OperatorCode,
		DonorName:    r.DonorName,
		DonationType: string(r.DonationType),
		Amount:       r.Amount,
		Attachment:   r.Attachment,
		CreatedAt:    r.CreatedAt,
	}
}

func FromReports(rs []entities.DonationReport) []ReportResponse {
	out := make([]ReportResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReport(r))
	}
	return out
}

func FromOperators(ops []entities.Operator) []OperatorResponse {
	out := make([]OperatorResponse, 0, len(ops))
	for _, o := range ops {
		out = append(out, OperatorResponse{
			OperatorCode:     o.OperatorCode,
			Name:             o.Name,
			OrganizationName: o.OrganizationName,
			Description:      o.Description,
			Role:             string(o.Role),
		})
	}
	return out
}
