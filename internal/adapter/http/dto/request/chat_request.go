package request

import "strings"

// SendMessageRequest carries one user utterance.
type SendMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r SendMessageRequest) ResolveText() string {
	return strings.TrimSpace(r.Text)
}
