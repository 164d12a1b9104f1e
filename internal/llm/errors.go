package llm

import "fmt"

// OracleError indicates the extraction/scoring collaborator failed or
// returned an unusable response. It maps to a 5xx-equivalent at the API
// boundary. Transport failures are never retried by the core; retry policy
// belongs to the collaborator boundary.
type OracleError struct {
	Op      string
	Message string
	Cause   error
}

func (e *OracleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oracle %s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("oracle %s: %s", e.Op, e.Message)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}
