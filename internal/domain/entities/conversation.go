package entities

// Intent is the active dialogue flow of a session.
type Intent string

const (
	IntentIdle              Intent = "idle"
	IntentCollectingZakat   Intent = "collecting_zakat"
	IntentConfirmingAdd     Intent = "confirming_add"
	IntentCollectingUser    Intent = "collecting_user"
	IntentConfirmingAddUser Intent = "confirming_add_user"
	IntentConfirmingDelete  Intent = "confirming_delete"
)

// FieldKey names a slot collected by a flow. The names double as Record Store
// argument keys.
type FieldKey string

const (
	FieldOperatorCode     FieldKey = "operatorCode"
	FieldDonorName        FieldKey = "donorName"
	FieldDonationType     FieldKey = "donationType"
	FieldAmount           FieldKey = "amount"
	FieldAttachment       FieldKey = "attachment"
	FieldSecret           FieldKey = "secret"
	FieldName             FieldKey = "name"
	FieldOrganizationName FieldKey = "organizationName"
	FieldDescription      FieldKey = "description"
)

// NoCursor marks that no field is being solicited.
const NoCursor = -1

// PendingOperation is a destructive store operation awaiting yes/no.
type PendingOperation struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// ConversationState is the dialogue state of one session.
//
// Invariants:
//   - Cursor is NoCursor or indexes Flow, and Flow[Cursor] is absent from Collected.
//   - Pending is set iff Intent is IntentConfirmingDelete.
//   - AwaitingAttachment is true only while Flow[Cursor] is FieldAttachment.
type ConversationState struct {
	Intent             Intent
	Collected          map[FieldKey]any
	Flow               []FieldKey
	Cursor             int
	Pending            *PendingOperation
	AwaitingAttachment bool
}

func NewConversationState() ConversationState {
	return ConversationState{
		Intent:    IntentIdle,
		Collected: map[FieldKey]any{},
		Cursor:    NoCursor,
	}
}

// Reset returns the state to Idle, dropping every collected value.
func (s *ConversationState) Reset() {
	*s = NewConversationState()
}

// Begin starts a slot-filling flow over the given field order.
// Seed values for fields outside flow are ignored.
func (s *ConversationState) Begin(intent Intent, flow []FieldKey, seed map[FieldKey]any) {
	s.Reset()
	s.Intent = intent
	s.Flow = flow
	for _, k := range flow {
		if v, ok := seed[k]; ok {
			s.Collected[k] = v
		}
	}
}

// Confirm moves a completed flow to its confirmation intent.
func (s *ConversationState) Confirm(intent Intent) {
	s.Intent = intent
	s.Cursor = NoCursor
	s.AwaitingAttachment = false
}

// AwaitDelete parks a delete request for confirmation.
func (s *ConversationState) AwaitDelete(op PendingOperation) {
	s.Reset()
	s.Intent = IntentConfirmingDelete
	s.Pending = &op
}

// Advance points the cursor at the first field of Flow not yet collected.
// It reports false when every field is present.
func (s *ConversationState) Advance() (FieldKey, bool) {
	for i, k := range s.Flow {
		if _, ok := s.Collected[k]; !ok {
			s.Cursor = i
			s.AwaitingAttachment = k == FieldAttachment
			return k, true
		}
	}
	s.Cursor = NoCursor
	s.AwaitingAttachment = false
	return "", false
}

// NextQuestionKey returns the field currently being solicited.
func (s ConversationState) NextQuestionKey() (FieldKey, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Flow) {
		return "", false
	}
	return s.Flow[s.Cursor], true
}

// Fill stores the answer for the current field.
func (s *ConversationState) Fill(v any) {
	k, ok := s.NextQuestionKey()
	if !ok {
		return
	}
	s.Collected[k] = v
}

// Args copies Collected into a Record Store argument map.
func (s ConversationState) Args() map[string]any {
	out := make(map[string]any, len(s.Collected))
	for k, v := range s.Collected {
		out[string(k)] = v
	}
	return out
}
