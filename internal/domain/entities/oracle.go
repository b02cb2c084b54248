package entities

// FunctionCall is a structured operation request extracted by the intent oracle.
type FunctionCall struct {
	Name string
	Args map[string]any
}

// OracleResponse is either a direct answer or a list of function calls.
// Only the first function call is honored.
type OracleResponse struct {
	AnswerText    string
	FunctionCalls []FunctionCall
}

func (r OracleResponse) FirstCall() (FunctionCall, bool) {
	if len(r.FunctionCalls) == 0 {
		return FunctionCall{}, false
	}
	return r.FunctionCalls[0], true
}
