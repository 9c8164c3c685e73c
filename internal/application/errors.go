package application

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError reports missing or malformed collection-request fields.
// Received echoes the payload back to the caller for debuggability.
type ValidationError struct {
	Missing  []string
	Reasons  map[string]string
	Received map[string]any
}

func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return "missing required fields: " + strings.Join(e.Missing, ", ")
	}
	parts := make([]string, 0, len(e.Reasons))
	for field, reason := range e.Reasons {
		parts = append(parts, fmt.Sprintf("%s %s", field, reason))
	}
	return "invalid fields: " + strings.Join(parts, "; ")
}
