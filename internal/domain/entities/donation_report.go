package entities

import (
	"strings"
	"time"
)

// DonationType is one of the six fixed zakat/donation categories.
type DonationType string

const (
	DonationTypeFitrah      DonationType = "Fitrah"
	DonationTypeFidyah      DonationType = "Fidyah"
	DonationTypeMal         DonationType = "Mal"
	DonationTypeInfak       DonationType = "Infak"
	DonationTypeWakaf       DonationType = "Wakaf"
	DonationTypeKemanusiaan DonationType = "Kemanusiaan"
)

// DonationTypes lists the categories in their canonical order and capitalization.
var DonationTypes = []DonationType{
	DonationTypeFitrah,
	DonationTypeFidyah,
	DonationTypeMal,
	DonationTypeInfak,
	DonationTypeWakaf,
	DonationTypeKemanusiaan,
}

// ParseDonationType matches s case-insensitively against DonationTypes and
// returns the canonical value.
func ParseDonationType(s string) (DonationType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range DonationTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// DonationTypeNames joins the categories for user-facing prompts.
func DonationTypeNames() string {
	names := make([]string, len(DonationTypes))
	for i, t := range DonationTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// DonationReport is a recorded donation (laporan zakat).
//
// OperatorCode references the operator who recorded it. The reference is not
// enforced: reports may point at operators that do not exist.
type DonationReport struct {
	ID           int64        `json:"id"`
	OperatorCode string       `json:"operatorCode"`
	DonorName    string       `json:"donorName"`
	DonationType DonationType `json:"donationType"`
	Amount       int64        `json:"amount"`
	Attachment   string       `json:"attachment"`
	CreatedAt    time.Time    `json:"createdAt"`
}
