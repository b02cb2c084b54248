package usecase

import (
	"context"
	"strings"
	"time"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Operation names accepted by RecordStore.Execute. They match the function
// names declared to the intent oracle.
const (
	OpListReports    = "get_all_zakat"
	OpCreateReport   = "add_zakat"
	OpUpdateReport   = "update_zakat"
	OpDeleteReport   = "delete_zakat"
	OpCreateOperator = "add_user"
	OpListOperators  = "get_all_users"
)

// IRecordStore exposes authorization-aware CRUD over reports and operators.
//
// A nil identity means the caller is not authenticated.
type IRecordStore interface {
	Execute(ctx context.Context, name string, args map[string]any, identity *entities.Identity) (any, error)
	ListReports(ctx context.Context, identity *entities.Identity) ([]entities.DonationReport, error)
	CreateReport(ctx context.Context, args map[string]any, identity *entities.Identity) (entities.DonationReport, error)
	UpdateReport(ctx context.Context, args map[string]any, identity *entities.Identity) (entities.DonationReport, error)
	DeleteReport(ctx context.Context, args map[string]any, identity *entities.Identity) (string, error)
	CreateOperator(ctx context.Context, args map[string]any, identity *entities.Identity) (entities.Operator, error)
	ListOperators(ctx context.Context, identity *entities.Identity) ([]entities.Operator, error)
}

type RecordStore struct {
	reports   interfaces.IReportRepository
	operators interfaces.IOperatorRepository
	logger    *zap.Logger
}

var _ IRecordStore = (*RecordStore)(nil)

func NewRecordStore(reports interfaces.IReportRepository, operators interfaces.IOperatorRepository, logger *zap.Logger) *RecordStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordStore{reports: reports, operators: operators, logger: logger.Named("store")}
}

// Execute dispatches an operation by name. Unknown names yield a textual
// result rather than an error.
func (s *RecordStore) Execute(ctx context.Context, name string, args map[string]any, identity *entities.Identity) (any, error) {
	if args == nil {
		args = map[string]any{}
	}
	s.logger.Info("execute", zap.String("operation", name), zap.String("operator_code", codeOf(identity)))

	switch name {
	case OpListReports:
		return s.ListReports(ctx, identity)
	case OpCreateReport:
		return s.CreateReport(ctx, args, identity)
	case OpUpdateReport:
		return s.UpdateReport(ctx, args, identity)
	case OpDeleteReport:
		return s.DeleteReport(ctx, args, identity)
	case OpCreateOperator:
		return s.CreateOperator(ctx, args, identity)
	case OpListOperators:
		return s.ListOperators(ctx, identity)
	default:
		s.logger.Warn("unsupported operation", zap.String("operation", name))
		return "Maaf, saya tidak tahu cara melakukan tindakan: " + name + ".", nil
	}
}

func (s *RecordStore) ListReports(ctx context.Context, identity *entities.Identity) ([]entities.DonationReport, error) {
	if identity == nil {
		return nil, errLoginRequired()
	}
	if identity.IsAdmin() {
		return s.reports.List(ctx)
	}
	return s.reports.ListByOperatorCode(ctx, identity.OperatorCode)
}

func (s *RecordStore) CreateReport(ctx context.Context, args map[string]any, identity *entities.Identity) (entities.DonationReport, error) {
	if identity == nil {
		return entities.DonationReport{}, errLoginRequired()
	}

	operatorCode, hasCode := argString(args, string(entities.FieldOperatorCode))
	if !identity.IsAdmin() {
		operatorCode, hasCode = identity.OperatorCode, true
	}
	donorName, hasDonor := argString(args, string(entities.FieldDonorName))
	rawType, hasType := argString(args, string(entities.FieldDonationType))
	amount, hasAmount, amountErr := argInt(args, string(entities.FieldAmount))
	attachment, hasAttachment := argString(args, string(entities.FieldAttachment))

	if !hasCode || strings.TrimSpace(operatorCode) == "" || !hasDonor || !hasType || !hasAmount || !hasAttachment {
		return entities.DonationReport{}, opError(ErrValidation,
			"Semua field (kode relawan, nama muzakki, jenis zakat, jumlah, bukti transfer) harus diisi.")
	}
	donationType, ok := entities.ParseDonationType(rawType)
	if !ok {
		return entities.DonationReport{}, errInvalidDonationType()
	}
	if amountErr != nil || amount < 0 {
		return entities.DonationReport{}, errInvalidAmount()
	}

	id, err := s.reports.NextID(ctx)
	if err != nil {
		return entities.DonationReport{}, err
	}
	r := entities.DonationReport{
		ID:           id,
		OperatorCode: operatorCode,
		DonorName:    donorName,
		DonationType: donationType,
		Amount:       amount,
		Attachment:   attachment,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.reports.Create(ctx, r)
	if err != nil {
		return entities.DonationReport{}, err
	}
	s.logger.Info("report created", zap.Int64("id", created.ID), zap.String("operator_code", created.OperatorCode))
	return created, nil
}

// UpdateReport shallow-merges the supplied fields over the stored report.
// Standard operators cannot move a report to another operator code.
func (s *RecordStore) UpdateReport(ctx context.Context, args map[string]any, identity *entities.Identity) (entities.DonationReport, error) {
	if identity == nil {
		return entities.DonationReport{}, errLoginRequired()
	}
	existing, err := s.ownedReport(ctx, args, identity)
	if err != nil {
		return entities.DonationReport{}, err
	}

	updated := existing
	if v, ok := argString(args, string(entities.FieldOperatorCode)); ok && identity.IsAdmin() {
		updated.OperatorCode = v
	}
	if v, ok := argString(args, string(entities.FieldDonorName)); ok {
		updated.DonorName = v
	}
	if v, ok := argString(args, string(entities.FieldDonationType)); ok {
		t, valid := entities.ParseDonationType(v)
		if !valid {
			return entities.DonationReport{}, errInvalidDonationType()
		}
		updated.DonationType = t
	}
	if v, ok, err := argInt(args, string(entities.FieldAmount)); ok {
		if err != nil || v < 0 {
			return entities.DonationReport{}, errInvalidAmount()
		}
		updated.Amount = v
	}
	if v, ok := argString(args, string(entities.FieldAttachment)); ok {
		updated.Attachment = v
	}

	saved, err := s.reports.Update(ctx, updated)
	if err != nil {
		return entities.DonationReport{}, err
	}
	if saved.ID == 0 {
		return entities.DonationReport{}, errReportNotFound(existing.ID)
	}
	s.logger.Info("report updated", zap.Int64("id", saved.ID))
	return saved, nil
}

func (s *RecordStore) DeleteReport(ctx context.Context, args map[string]any, identity *entities.Identity) (string, error) {
	if identity == nil {
		return "", errLoginRequired()
	}
	existing, err := s.ownedReport(ctx, args, identity)
	if err != nil {
		return "", err
	}
	deleted, err := s.reports.Delete(ctx, existing.ID)
	if err != nil {
		return "", err
	}
	if !deleted {
		return "", errReportNotFound(existing.ID)
	}
	s.logger.Info("report deleted", zap.Int64("id", existing.ID))
	return "Berhasil menghapus laporan zakat dengan ID " + formatID(existing.ID) + ".", nil
}

func (s *RecordStore) CreateOperator(ctx context.Context, args map[string]any, identity *entities.Identity) (entities.Operator, error) {
	if identity == nil || !identity.IsAdmin() {
		return entities.Operator{}, opError(ErrForbidden, "Hanya admin yang dapat menambahkan relawan.")
	}
	code, _ := argString(args, string(entities.FieldOperatorCode))
	secret, _ := argString(args, string(entities.FieldSecret))
	code = strings.TrimSpace(code)
	if code == "" || secret == "" {
		return entities.Operator{}, opError(ErrValidation, "Kode relawan dan password harus diisi.")
	}

	existing, err := s.operators.GetByCode(ctx, code)
	if err != nil {
		return entities.Operator{}, err
	}
	if existing.OperatorCode != "" {
		return entities.Operator{}, opError(ErrConflict, "Relawan dengan kode %s sudah terdaftar.", code)
	}

	hash, err := HashSecret(secret)
	if err != nil {
		return entities.Operator{}, err
	}
	name, _ := argString(args, string(entities.FieldName))
	org, _ := argString(args, string(entities.FieldOrganizationName))
	desc, _ := argString(args, string(entities.FieldDescription))

	created, err := s.operators.Create(ctx, entities.Operator{
		OperatorCode:     code,
		Secret:           hash,
		Name:             name,
		OrganizationName: org,
		Description:      desc,
		Role:             entities.RoleStandard,
	})
	if err != nil {
		return entities.Operator{}, err
	}
	s.logger.Info("operator created", zap.String("operator_code", created.OperatorCode))
	return created.Public(), nil
}

func (s *RecordStore) ListOperators(ctx context.Context, identity *entities.Identity) ([]entities.Operator, error) {
	if identity == nil || !identity.IsAdmin() {
		return nil, opError(ErrForbidden, "Hanya admin yang dapat melihat daftar relawan.")
	}
	all, err := s.operators.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Operator, len(all))
	for i, o := range all {
		out[i] = o.Public()
	}
	return out, nil
}

// ownedReport loads the report named by args["id"] and checks that a
// standard operator owns it.
func (s *RecordStore) ownedReport(ctx context.Context, args map[string]any, identity *entities.Identity) (entities.DonationReport, error) {
	id, ok, err := argInt(args, "id")
	if !ok || err != nil {
		return entities.DonationReport{}, opError(ErrValidation, "ID laporan zakat harus berupa angka.")
	}
	existing, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return entities.DonationReport{}, err
	}
	if existing.ID == 0 {
		return entities.DonationReport{}, errReportNotFound(id)
	}
	if !identity.IsAdmin() && existing.OperatorCode != identity.OperatorCode {
		return entities.DonationReport{}, opError(ErrForbidden, "Anda tidak memiliki akses ke laporan zakat dengan ID %d.", id)
	}
	return existing, nil
}

func errLoginRequired() error {
	return opError(ErrUnauthorized, "Anda harus login terlebih dahulu.")
}

func errReportNotFound(id int64) error {
	return opError(ErrNotFound, "Laporan zakat dengan ID %d tidak ditemukan.", id)
}

func errInvalidDonationType() error {
	return opError(ErrValidation, "Jenis zakat tidak valid. Pilihan: %s.", entities.DonationTypeNames())
}

func errInvalidAmount() error {
	return opError(ErrValidation, "Jumlah harus berupa angka yang tidak negatif.")
}

func codeOf(identity *entities.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.OperatorCode
}
