package response

import "laporan_zakat/internal/domain/entities"

type IdentityResponse struct {
	OperatorCode string `json:"operator_code"`
	Name         string `json:"name"`
	Role         string `json:"role"`
}

type LoginResponse struct {
	Token    string           `json:"token"`
	Operator IdentityResponse `json:"operator"`
}

func FromIdentity(i entities.Identity) IdentityResponse {
	return IdentityResponse{OperatorCode: i.OperatorCode, Name: i.Name, Role: string(i.Role)}
}

func FromSession(s *entities.Session) LoginResponse {
	return LoginResponse{Token: s.ID, Operator: FromIdentity(s.Identity)}
}
