package entities

import "time"

type Author string

const (
	AuthorUser   Author = "user"
	AuthorSystem Author = "system"
)

// Message is one transcript entry. IsStructured tells the renderer to try
// parsing Text as tabular JSON and fall back to plain text.
type Message struct {
	ID           string    `json:"id"`
	Author       Author    `json:"author"`
	Text         string    `json:"text"`
	IsStructured bool      `json:"is_structured"`
	CreatedAt    time.Time `json:"created_at"`
}

// Transcript is the ordered, append-only message log of a session.
type Transcript struct {
	messages []Message
}

func (t *Transcript) Append(m Message) {
	t.messages = append(t.messages, m)
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

// Since returns a copy of the messages appended at or after index i.
func (t *Transcript) Since(i int) []Message {
	if i < 0 {
		i = 0
	}
	if i >= len(t.messages) {
		return []Message{}
	}
	out := make([]Message, len(t.messages)-i)
	copy(out, t.messages[i:])
	return out
}

func (t *Transcript) All() []Message {
	return t.Since(0)
}
