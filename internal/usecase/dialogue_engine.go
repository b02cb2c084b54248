package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxAttachmentBytes bounds proof-of-transfer uploads (3 MiB).
const DefaultMaxAttachmentBytes int64 = 3 << 20

const (
	affirmativeToken   = "ya"
	storeFailurePrefix = "Operasi database gagal: "
	errorPrefix        = "Error: "
	cannotProcessText  = "Maaf, saya tidak dapat memproses permintaan tersebut."
	noReportsText      = "Tidak ada data zakat yang ditemukan."
	noOperatorsText    = "Tidak ada data relawan yang ditemukan."
	secretMask         = "********"
)

// Field orders. Standard operators never see the operator-code question; the
// store fills it from their identity.
var (
	adminReportFlow    = []entities.FieldKey{entities.FieldOperatorCode, entities.FieldDonorName, entities.FieldDonationType, entities.FieldAmount, entities.FieldAttachment}
	standardReportFlow = []entities.FieldKey{entities.FieldDonorName, entities.FieldDonationType, entities.FieldAmount, entities.FieldAttachment}
	operatorFlow       = []entities.FieldKey{entities.FieldOperatorCode, entities.FieldSecret, entities.FieldName, entities.FieldOrganizationName, entities.FieldDescription}
)

var reportQuestions = map[entities.FieldKey]string{
	entities.FieldOperatorCode: "Silakan masukkan kode relawan yang mencatat laporan ini.",
	entities.FieldDonorName:    "Baik, siapa nama muzakki (pemberi zakat)?",
	entities.FieldDonationType: "Apa jenis zakatnya? (Pilihan: " + entities.DonationTypeNames() + ")",
	entities.FieldAmount:       "Berapa jumlah totalnya (dalam Rupiah)? Cukup ketik angkanya.",
}

var operatorQuestions = map[entities.FieldKey]string{
	entities.FieldOperatorCode:     "Silakan masukkan kode relawan baru.",
	entities.FieldSecret:           "Masukkan password untuk relawan tersebut.",
	entities.FieldName:             "Siapa nama lengkap relawan?",
	entities.FieldOrganizationName: "Apa nama LAZ (lembaga amil zakat) tempat relawan bertugas?",
	entities.FieldDescription:      "Tambahkan deskripsi singkat tentang relawan.",
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// AttachmentUpload is a file submitted while the engine waits for a proof of transfer.
type AttachmentUpload struct {
	Name        string
	Size        int64
	ContentType string
	Body        io.Reader
}

// DialogueEngine advances a session's ConversationState by one step per
// inbound event. Each handler makes at most one Record Store call and appends
// at least one system message.
type DialogueEngine struct {
	store              IRecordStore
	attachments        interfaces.IAttachmentStorage
	maxAttachmentBytes int64
	logger             *zap.Logger
}

// NewDialogueEngine builds the engine. attachments may be nil, in which case
// only the attachment name is kept.
func NewDialogueEngine(store IRecordStore, attachments interfaces.IAttachmentStorage, maxAttachmentBytes int64, logger *zap.Logger) *DialogueEngine {
	if maxAttachmentBytes <= 0 {
		maxAttachmentBytes = DefaultMaxAttachmentBytes
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DialogueEngine{
		store:              store,
		attachments:        attachments,
		maxAttachmentBytes: maxAttachmentBytes,
		logger:             logger.Named("engine"),
	}
}

// StartReportFlow enters CollectingZakat, seeding any valid values already
// known (e.g. extracted by the oracle), and asks the first missing question.
func (e *DialogueEngine) StartReportFlow(_ context.Context, s *entities.Session, args map[string]any) {
	flow := standardReportFlow
	if s.Identity.IsAdmin() {
		flow = adminReportFlow
	}
	s.State.Begin(entities.IntentCollectingZakat, flow, reportSeed(s.Identity, args))
	e.logTransition(s, "start report flow")
	appendSystem(s, "Tentu, saya akan bantu mencatat laporan zakat baru.")
	e.askNext(s)
}

// StartOperatorFlow enters CollectingUser. Callers guarantee an admin identity.
func (e *DialogueEngine) StartOperatorFlow(_ context.Context, s *entities.Session) {
	s.State.Begin(entities.IntentCollectingUser, operatorFlow, nil)
	e.logTransition(s, "start operator flow")
	appendSystem(s, "Baik, saya akan bantu mendaftarkan relawan baru.")
	e.askNext(s)
}

// HandleOracleResponse acts on an oracle answer while Idle.
func (e *DialogueEngine) HandleOracleResponse(ctx context.Context, s *entities.Session, resp entities.OracleResponse) {
	call, ok := resp.FirstCall()
	if !ok {
		text := resp.AnswerText
		if strings.TrimSpace(text) == "" {
			text = cannotProcessText
		}
		appendSystem(s, text)
		return
	}

	e.logger.Info("oracle function call", zap.String("session_id", s.ID), zap.String("operation", call.Name))
	switch call.Name {
	case OpCreateReport:
		e.StartReportFlow(ctx, s, call.Args)
	case OpCreateOperator:
		if !s.Identity.IsAdmin() {
			appendSystem(s, storeFailurePrefix+"Hanya admin yang dapat menambahkan relawan.")
			return
		}
		e.StartOperatorFlow(ctx, s)
	case OpDeleteReport:
		if _, ok, err := argInt(call.Args, "id"); !ok || err != nil {
			e.execute(ctx, s, call.Name, call.Args)
			return
		}
		e.startDeleteConfirmation(s, call)
	default:
		e.execute(ctx, s, call.Name, call.Args)
	}
}

func (e *DialogueEngine) startDeleteConfirmation(s *entities.Session, call entities.FunctionCall) {
	id, _, _ := argInt(call.Args, "id")
	s.State.AwaitDelete(entities.PendingOperation{Name: call.Name, Args: call.Args})
	e.logTransition(s, "await delete confirmation")
	appendSystem(s, "Apakah Anda yakin ingin menghapus laporan zakat dengan ID "+formatID(id)+"? (ya/tidak)")
}

// HandleCollectingReport validates the answer for the current report field.
func (e *DialogueEngine) HandleCollectingReport(_ context.Context, s *entities.Session, text string) error {
	key, ok := s.State.NextQuestionKey()
	if !ok {
		e.askNext(s)
		return nil
	}
	if s.State.AwaitingAttachment {
		return ErrAttachmentExpected
	}

	value, reprompt, valid := validateReportField(key, text)
	if !valid {
		e.logger.Info("field rejected", zap.String("session_id", s.ID), zap.String("field", string(key)))
		appendSystem(s, reprompt)
		return nil
	}
	s.State.Fill(value)
	e.askNext(s)
	return nil
}

// HandleCollectingOperator stores the answer for the current operator field.
func (e *DialogueEngine) HandleCollectingOperator(_ context.Context, s *entities.Session, text string) error {
	if _, ok := s.State.NextQuestionKey(); ok {
		s.State.Fill(text)
	}
	e.askNext(s)
	return nil
}

// HandleAttachment accepts a proof-of-transfer file for the attachment field.
// Oversized files are rejected and the engine keeps waiting.
func (e *DialogueEngine) HandleAttachment(ctx context.Context, s *entities.Session, upload AttachmentUpload) error {
	if !s.State.AwaitingAttachment {
		return ErrNotAwaitingAttachment
	}
	name := strings.TrimSpace(upload.Name)
	if name == "" {
		appendSystem(s, "File tidak valid. "+e.attachmentQuestion())
		return nil
	}
	if upload.Size > e.maxAttachmentBytes {
		e.logger.Info("attachment rejected", zap.String("session_id", s.ID), zap.Int64("size", upload.Size), zap.Int64("max", e.maxAttachmentBytes))
		appendSystem(s, "Ukuran file terlalu besar (maksimal "+formatSize(e.maxAttachmentBytes)+"). Silakan unggah file bukti transfer yang lebih kecil.")
		return nil
	}

	if e.attachments != nil && upload.Body != nil {
		key := "attachments/" + uuid.NewString() + "/" + name
		location, err := e.attachments.Save(ctx, key, upload.Body, upload.ContentType)
		if err != nil {
			e.logger.Error("attachment upload failed", zap.String("session_id", s.ID), zap.Error(err))
			appendSystem(s, errorPrefix+"Gagal menyimpan file bukti transfer. Silakan coba unggah lagi.")
			return nil
		}
		e.logger.Info("attachment stored", zap.String("session_id", s.ID), zap.String("location", location))
	}

	s.State.Fill(name)
	e.askNext(s)
	return nil
}

// HandleConfirmingAdd commits the collected report on "ya" and cancels otherwise.
func (e *DialogueEngine) HandleConfirmingAdd(ctx context.Context, s *entities.Session, text string) error {
	if !isAffirmative(text) {
		e.reset(s, "add cancelled")
		appendSystem(s, "Baik, penambahan laporan dibatalkan.")
		return nil
	}

	args := s.State.Args()
	e.reset(s, "add confirmed")
	appendSystem(s, "Data sudah dikonfirmasi. Saya sedang memproses...")

	identity := s.Identity
	created, err := e.store.CreateReport(ctx, args, &identity)
	if err != nil {
		e.appendFailure(s, err)
		return nil
	}
	e.appendResult(s, created)
	appendSystem(s, "Terima kasih telah berpartisipasi dalam pengumpulan zakat. Jazakumullah Khairan Katsiran.")
	return nil
}

// HandleConfirmingAddOperator registers the collected operator on "ya".
func (e *DialogueEngine) HandleConfirmingAddOperator(ctx context.Context, s *entities.Session, text string) error {
	if !isAffirmative(text) {
		e.reset(s, "operator cancelled")
		appendSystem(s, "Baik, pendaftaran relawan dibatalkan.")
		return nil
	}

	args := s.State.Args()
	e.reset(s, "operator confirmed")

	identity := s.Identity
	created, err := e.store.CreateOperator(ctx, args, &identity)
	if err != nil {
		e.appendFailure(s, err)
		return nil
	}
	e.appendResult(s, created)
	return nil
}

// HandleConfirmingDelete runs the pending delete on "ya".
func (e *DialogueEngine) HandleConfirmingDelete(ctx context.Context, s *entities.Session, text string) error {
	pending := s.State.Pending
	affirmative := isAffirmative(text)
	e.reset(s, "delete answered")

	if pending == nil {
		appendSystem(s, errorPrefix+"tidak ada operasi hapus yang tertunda.")
		return nil
	}
	if !affirmative {
		appendSystem(s, "Baik, operasi penghapusan dibatalkan.")
		return nil
	}
	appendSystem(s, "Baik, sedang memproses penghapusan...")
	e.execute(ctx, s, pending.Name, pending.Args)
	return nil
}

// askNext solicits the next missing field or, when the flow is complete,
// moves to confirmation with a summary.
func (e *DialogueEngine) askNext(s *entities.Session) {
	if key, ok := s.State.Advance(); ok {
		switch {
		case s.State.Intent == entities.IntentCollectingUser:
			appendSystem(s, operatorQuestions[key])
		case key == entities.FieldAttachment:
			appendSystem(s, e.attachmentQuestion())
		default:
			appendSystem(s, reportQuestions[key])
		}
		return
	}

	switch s.State.Intent {
	case entities.IntentCollectingZakat:
		s.State.Confirm(entities.IntentConfirmingAdd)
		e.logTransition(s, "report collected")
		appendSystem(s, reportSummary(s))
	case entities.IntentCollectingUser:
		s.State.Confirm(entities.IntentConfirmingAddUser)
		e.logTransition(s, "operator collected")
		appendSystem(s, operatorSummary(s.State.Collected))
	}
}

func (e *DialogueEngine) attachmentQuestion() string {
	return "Terakhir, silakan unggah file bukti transfer (maksimal " + formatSize(e.maxAttachmentBytes) + ")."
}

// execute runs a non-collection operation immediately and renders its result.
func (e *DialogueEngine) execute(ctx context.Context, s *entities.Session, name string, args map[string]any) {
	identity := s.Identity
	result, err := e.store.Execute(ctx, name, args, &identity)
	if err != nil {
		e.appendFailure(s, err)
		return
	}
	e.appendResult(s, result)
}

func (e *DialogueEngine) appendResult(s *entities.Session, result any) {
	switch v := result.(type) {
	case string:
		appendSystem(s, v)
		return
	case []entities.DonationReport:
		if len(v) == 0 {
			appendSystem(s, noReportsText)
			return
		}
	case []entities.Operator:
		if len(v) == 0 {
			appendSystem(s, noOperatorsText)
			return
		}
	}
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		e.logger.Error("result marshal failed", zap.Error(err))
		appendSystem(s, errorPrefix+err.Error())
		return
	}
	s.Transcript.Append(systemMessage(string(b), true))
}

// appendFailure reports a store failure. The state has already been reset.
func (e *DialogueEngine) appendFailure(s *entities.Session, err error) {
	e.logger.Warn("store operation failed", zap.String("session_id", s.ID), zap.Error(err))
	var opErr *OperationError
	if errors.As(err, &opErr) {
		appendSystem(s, storeFailurePrefix+opErr.Message)
		return
	}
	appendSystem(s, storeFailurePrefix+err.Error())
}

func (e *DialogueEngine) reset(s *entities.Session, reason string) {
	s.State.Reset()
	e.logTransition(s, reason)
}

func (e *DialogueEngine) logTransition(s *entities.Session, event string) {
	next, _ := s.State.NextQuestionKey()
	e.logger.Info(event,
		zap.String("session_id", s.ID),
		zap.String("intent", string(s.State.Intent)),
		zap.String("next_question_key", string(next)),
	)
}

// validateReportField returns the normalized value, or a re-prompt when the
// answer is rejected.
func validateReportField(key entities.FieldKey, text string) (any, string, bool) {
	switch key {
	case entities.FieldAmount:
		digits := nonDigits.ReplaceAllString(text, "")
		if digits == "" {
			return nil, "Maaf, jumlah harus dalam bentuk angka. Silakan coba lagi.", false
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return nil, "Maaf, jumlah terlalu besar. Silakan coba lagi.", false
		}
		return n, "", true
	case entities.FieldDonationType:
		t, ok := entities.ParseDonationType(text)
		if !ok {
			return nil, "Maaf, jenis zakat tidak valid. Pilihan: " + entities.DonationTypeNames() + ". Silakan coba lagi.", false
		}
		return t, "", true
	default:
		return text, "", true
	}
}

// reportSeed keeps the oracle-extracted values that would pass validation.
// The attachment is never seeded: it must arrive as an upload.
func reportSeed(identity entities.Identity, args map[string]any) map[entities.FieldKey]any {
	seed := map[entities.FieldKey]any{}
	if len(args) == 0 {
		return seed
	}
	if identity.IsAdmin() {
		if code, ok := argString(args, string(entities.FieldOperatorCode)); ok && strings.TrimSpace(code) != "" {
			seed[entities.FieldOperatorCode] = code
		}
	}
	if name, ok := argString(args, string(entities.FieldDonorName)); ok && strings.TrimSpace(name) != "" {
		seed[entities.FieldDonorName] = name
	}
	if raw, ok := argString(args, string(entities.FieldDonationType)); ok {
		if t, valid := entities.ParseDonationType(raw); valid {
			seed[entities.FieldDonationType] = t
		}
	}
	if n, ok, err := argInt(args, string(entities.FieldAmount)); ok && err == nil && n >= 0 {
		seed[entities.FieldAmount] = n
	}
	return seed
}

func reportSummary(s *entities.Session) string {
	c := s.State.Collected
	var b strings.Builder
	b.WriteString("Berikut adalah ringkasan data yang akan disimpan:\n")
	if s.Identity.IsAdmin() {
		b.WriteString("- Kode Relawan: " + valueText(c[entities.FieldOperatorCode]) + "\n")
	} else {
		b.WriteString("- Kode Relawan: " + s.Identity.OperatorCode + " (otomatis)\n")
	}
	b.WriteString("- Nama Muzakki: " + valueText(c[entities.FieldDonorName]) + "\n")
	b.WriteString("- Jenis Zakat: " + valueText(c[entities.FieldDonationType]) + "\n")
	amount, _ := c[entities.FieldAmount].(int64)
	b.WriteString("- Jumlah: " + formatRupiah(amount) + "\n")
	b.WriteString("- Bukti Transfer: " + valueText(c[entities.FieldAttachment]) + "\n\n")
	b.WriteString("Apakah data sudah benar dan ingin dilanjutkan? (ya/tidak)")
	return b.String()
}

func operatorSummary(c map[entities.FieldKey]any) string {
	var b strings.Builder
	b.WriteString("Berikut adalah ringkasan relawan yang akan didaftarkan:\n")
	b.WriteString("- Kode Relawan: " + valueText(c[entities.FieldOperatorCode]) + "\n")
	b.WriteString("- Password: " + secretMask + "\n")
	b.WriteString("- Nama: " + valueText(c[entities.FieldName]) + "\n")
	b.WriteString("- Nama LAZ: " + valueText(c[entities.FieldOrganizationName]) + "\n")
	b.WriteString("- Deskripsi: " + valueText(c[entities.FieldDescription]) + "\n\n")
	b.WriteString("Apakah data sudah benar dan ingin dilanjutkan? (ya/tidak)")
	return b.String()
}

func valueText(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		return t
	case entities.DonationType:
		return string(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}

func isAffirmative(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), affirmativeToken)
}

func appendSystem(s *entities.Session, text string) {
	s.Transcript.Append(systemMessage(text, false))
}

func systemMessage(text string, structured bool) entities.Message {
	return entities.Message{
		ID:           uuid.NewString(),
		Author:       entities.AuthorSystem,
		Text:         text,
		IsStructured: structured,
		CreatedAt:    time.Now().UTC(),
	}
}

func userMessage(text string) entities.Message {
	return entities.Message{
		ID:        uuid.NewString(),
		Author:    entities.AuthorUser,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
}
