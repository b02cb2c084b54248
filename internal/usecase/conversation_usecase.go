package usecase

import (
	"context"
	"regexp"
	"strings"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	reportVerb   = regexp.MustCompile(`\b(tambah|buat|catat|add|create|record)\b`)
	reportNoun   = regexp.MustCompile(`\b(laporan|zakat|report)\b`)
	operatorVerb = regexp.MustCompile(`\b(tambah|tambahkan|buat|daftar|daftarkan|add|create|register)\b`)
	operatorNoun = regexp.MustCompile(`\b(relawan|pengguna|user|operator|amil)\b`)
)

// StateSnapshot is the externally visible part of a conversation state.
type StateSnapshot struct {
	Intent             entities.Intent            `json:"intent"`
	NextQuestionKey    entities.FieldKey          `json:"next_question_key,omitempty"`
	AwaitingAttachment bool                       `json:"awaiting_attachment"`
	CollectedFields    map[string]any             `json:"collected_fields"`
	PendingOperation   *entities.PendingOperation `json:"pending_operation,omitempty"`
}

// TurnResult carries the messages appended by one turn and the state after it.
type TurnResult struct {
	Messages []entities.Message
	State    StateSnapshot
}

// IConversationUseCase routes user turns to the dialogue engine.
type IConversationUseCase interface {
	SendMessage(ctx context.Context, sessionID, text string) (TurnResult, error)
	SubmitAttachment(ctx context.Context, sessionID string, upload AttachmentUpload) (TurnResult, error)
	Transcript(sessionID string) ([]entities.Message, error)
	State(sessionID string) (StateSnapshot, error)
}

type turnHandler func(ctx context.Context, s *entities.Session, text string) error

type ConversationUseCase struct {
	sessions interfaces.ISessionRepository
	oracle   interfaces.IIntentOracle
	engine   *DialogueEngine
	handlers map[entities.Intent]turnHandler
	logger   *zap.Logger
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(sessions interfaces.ISessionRepository, oracle interfaces.IIntentOracle, engine *DialogueEngine, logger *zap.Logger) *ConversationUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	u := &ConversationUseCase{
		sessions: sessions,
		oracle:   oracle,
		engine:   engine,
		logger:   logger.Named("router"),
	}
	u.handlers = map[entities.Intent]turnHandler{
		entities.IntentIdle:              u.handleIdle,
		entities.IntentCollectingZakat:   engine.HandleCollectingReport,
		entities.IntentConfirmingAdd:     engine.HandleConfirmingAdd,
		entities.IntentCollectingUser:    engine.HandleCollectingOperator,
		entities.IntentConfirmingAddUser: engine.HandleConfirmingAddOperator,
		entities.IntentConfirmingDelete:  engine.HandleConfirmingDelete,
	}
	return u
}

// SendMessage processes one text utterance. The transcript keeps the text as
// sent; routing sees it trimmed. Blank text, a turn already in flight and text
// sent while a file is expected are rejected without touching the transcript.
func (u *ConversationUseCase) SendMessage(ctx context.Context, sessionID, text string) (TurnResult, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return TurnResult{}, err
	}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return TurnResult{}, ErrEmptyUtterance
	}
	if !s.TryAcquire() {
		u.logger.Info("turn rejected, session busy", zap.String("session_id", s.ID))
		return TurnResult{}, ErrSessionBusy
	}
	defer s.Release()

	if s.State.AwaitingAttachment {
		return TurnResult{}, ErrAttachmentExpected
	}

	start := s.Transcript.Len()
	s.Transcript.Append(userMessage(text))

	handler, ok := u.handlers[s.State.Intent]
	if !ok {
		u.logger.Error("no handler for intent", zap.String("intent", string(s.State.Intent)))
		s.State.Reset()
		handler = u.handleIdle
	}
	if err := handler(ctx, s, trimmed); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Messages: s.Transcript.Since(start), State: snapshot(s.State)}, nil
}

// SubmitAttachment delivers a file for the field currently awaiting one.
func (u *ConversationUseCase) SubmitAttachment(ctx context.Context, sessionID string, upload AttachmentUpload) (TurnResult, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return TurnResult{}, err
	}
	if !s.TryAcquire() {
		return TurnResult{}, ErrSessionBusy
	}
	defer s.Release()

	if !s.State.AwaitingAttachment {
		return TurnResult{}, ErrNotAwaitingAttachment
	}

	start := s.Transcript.Len()
	s.Transcript.Append(userMessage("[Lampiran] " + strings.TrimSpace(upload.Name)))
	if err := u.engine.HandleAttachment(ctx, s, upload); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Messages: s.Transcript.Since(start), State: snapshot(s.State)}, nil
}

// Transcript waits for any in-flight turn so the copy is consistent.
func (u *ConversationUseCase) Transcript(sessionID string) ([]entities.Message, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	s.Acquire()
	defer s.Release()
	return s.Transcript.All(), nil
}

func (u *ConversationUseCase) State(sessionID string) (StateSnapshot, error) {
	s, err := u.session(sessionID)
	if err != nil {
		return StateSnapshot{}, err
	}
	s.Acquire()
	defer s.Release()
	return snapshot(s.State), nil
}

// handleIdle tries the keyword shortcuts before consulting the oracle.
func (u *ConversationUseCase) handleIdle(ctx context.Context, s *entities.Session, text string) error {
	lower := strings.ToLower(text)
	if reportVerb.MatchString(lower) && reportNoun.MatchString(lower) {
		u.engine.StartReportFlow(ctx, s, nil)
		return nil
	}
	if s.Identity.IsAdmin() && operatorVerb.MatchString(lower) && operatorNoun.MatchString(lower) {
		u.engine.StartOperatorFlow(ctx, s)
		return nil
	}

	resp, err := u.oracle.Query(ctx, text)
	if err != nil {
		u.logger.Error("oracle query failed", zap.String("session_id", s.ID), zap.Error(err))
		s.State.Reset()
		appendSystem(s, errorPrefix+"Gagal mendapatkan respon dari model AI. Silakan coba lagi.")
		return nil
	}
	u.engine.HandleOracleResponse(ctx, s, resp)
	return nil
}

func (u *ConversationUseCase) session(sessionID string) (*entities.Session, error) {
	s, ok := u.sessions.Get(strings.TrimSpace(sessionID))
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func snapshot(st entities.ConversationState) StateSnapshot {
	out := StateSnapshot{
		Intent:             st.Intent,
		AwaitingAttachment: st.AwaitingAttachment,
		CollectedFields:    st.Args(),
	}
	if k, ok := st.NextQuestionKey(); ok {
		out.NextQuestionKey = k
	}
	if st.Pending != nil {
		p := *st.Pending
		out.PendingOperation = &p
	}
	if secret, ok := out.CollectedFields[string(entities.FieldSecret)]; ok && secret != nil {
		out.CollectedFields[string(entities.FieldSecret)] = secretMask
	}
	return out
}
