package usecase

import (
	"context"
	"time"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"
)

type seedOperator struct {
	operator entities.Operator
	secret   string
}

var defaultOperators = []seedOperator{
	{
		operator: entities.Operator{OperatorCode: "ADM-111-AAA", Name: "Admin LAZ", OrganizationName: "LAZ Pusat", Description: "Administrator pelaporan zakat", Role: entities.RoleAdmin},
		secret:   "admin123",
	},
	{
		operator: entities.Operator{OperatorCode: "R001", Name: "Relawan Satu", OrganizationName: "LAZ Pusat", Description: "Relawan pengumpul zakat", Role: entities.RoleStandard},
		secret:   "relawan001",
	},
	{
		operator: entities.Operator{OperatorCode: "R002", Name: "Relawan Dua", OrganizationName: "LAZ Pusat", Description: "Relawan pengumpul zakat", Role: entities.RoleStandard},
		secret:   "relawan002",
	},
}

var defaultReports = []entities.DonationReport{
	{OperatorCode: "R001", DonorName: "Ahmad Subagja", DonationType: entities.DonationTypeFitrah, Amount: 45000, Attachment: "bukti-ahmad.png", CreatedAt: time.Date(2024, 4, 8, 10, 0, 0, 0, time.UTC)},
	{OperatorCode: "R002", DonorName: "Siti Aminah", DonationType: entities.DonationTypeMal, Amount: 2500000, Attachment: "tf-siti.jpg", CreatedAt: time.Date(2024, 4, 9, 14, 30, 0, 0, time.UTC)},
}

// Seed loads the startup operators and, into an empty report store, the
// sample reports. Existing records are left untouched.
func Seed(ctx context.Context, reports interfaces.IReportRepository, operators interfaces.IOperatorRepository) error {
	for _, so := range defaultOperators {
		existing, err := operators.GetByCode(ctx, so.operator.OperatorCode)
		if err != nil {
			return err
		}
		if existing.OperatorCode != "" {
			continue
		}
		op := so.operator
		if op.Secret, err = HashSecret(so.secret); err != nil {
			return err
		}
		if _, err := operators.Create(ctx, op); err != nil {
			return err
		}
	}

	current, err := reports.List(ctx)
	if err != nil {
		return err
	}
	if len(current) > 0 {
		return nil
	}
	for _, r := range defaultReports {
		id, err := reports.NextID(ctx)
		if err != nil {
			return err
		}
		r.ID = id
		if _, err := reports.Create(ctx, r); err != nil {
			return err
		}
	}
	return nil
}
