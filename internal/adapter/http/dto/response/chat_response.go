package response

import (
	"time"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase"
)

type MessageResponse struct {
	ID           string    `json:"id"`
	Author       string    `json:"author"`
	Text         string    `json:"text"`
	IsStructured bool      `json:"is_structured"`
	CreatedAt    time.Time `json:"created_at"`
}

type PendingOperationResponse struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

type StateResponse struct {
	Intent             string                    `json:"intent"`
	NextQuestionKey    *string                   `json:"next_question_key"`
	AwaitingAttachment bool                      `json:"awaiting_attachment"`
	CollectedFields    map[string]any            `json:"collected_fields"`
	PendingOperation   *PendingOperationResponse `json:"pending_operation"`
}

// TurnResponse is returned for every accepted utterance or attachment.
type TurnResponse struct {
	Messages []MessageResponse `json:"messages"`
	State    StateResponse     `json:"state"`
}

func FromMessage(m entities.Message) MessageResponse {
	return MessageResponse{
		ID:           m.ID,
		Author:       string(m.Author),
		Text:         m.Text,
		IsStructured: m.IsStructured,
		CreatedAt:    m.CreatedAt,
	}
}

func FromMessages(msgs []entities.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, FromMessage(m))
	}
	return out
}

func FromState(s usecase.StateSnapshot) StateResponse {
	out := StateResponse{
		Intent:             string(s.Intent),
		AwaitingAttachment: s.AwaitingAttachment,
		CollectedFields:    s.CollectedFields,
	}
	if out.CollectedFields == nil {
		out.CollectedFields = map[string]any{}
	}
	if s.NextQuestionKey != "" {
		k := string(s.NextQuestionKey)
		out.NextQuestionKey = &k
	}
	if s.PendingOperation != nil {
		out.PendingOperation = &PendingOperationResponse{Name: s.PendingOperation.Name, Args: s.PendingOperation.Args}
	}
	return out
}

func FromTurn(r usecase.TurnResult) TurnResponse {
	return TurnResponse{Messages: FromMessages(r.Messages), State: FromState(r.State)}
}
