package entities

// Role is the authorization level of an operator.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleStandard Role = "user"
)

// Operator is a registered volunteer (relawan) who records donation reports.
//
// Secret holds a bcrypt hash and must be cleared before the value leaves the
// store; see Public.
type Operator struct {
	OperatorCode     string `json:"operatorCode"`
	Secret           string `json:"secret,omitempty"`
	Name             string `json:"name"`
	OrganizationName string `json:"organizationName"`
	Description      string `json:"description"`
	Role             Role   `json:"role"`
}

func (o Operator) Public() Operator {
	o.Secret = ""
	return o
}

func (o Operator) Identity() Identity {
	return Identity{OperatorCode: o.OperatorCode, Name: o.Name, Role: o.Role}
}

// Identity is the authenticated operator attached to a session.
type Identity struct {
	OperatorCode string `json:"operator_code"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
