package request

import "strings"

type LoginRequest struct {
	OperatorCode string `json:"operator_code" binding:"required"`
	Secret       string `json:"secret" binding:"required"`
}

func (r LoginRequest) ResolveOperatorCode() string {
	return strings.TrimSpace(r.OperatorCode)
}
