package domain

import "strings"

// ValidationError reports a request body that cannot be turned into a pass.
// Fields lists missing required fields by their JSON name.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) > 0 {
		return "Missing required fields: " + strings.Join(e.Fields, ", ")
	}
	if e.Reason == "" {
		return "Invalid request"
	}
	return e.Reason
}

// ErrInvalidBody is returned for bodies that are not a JSON object.
var ErrInvalidBody = &ValidationError{Reason: "Invalid request body. Expected JSON object."}
