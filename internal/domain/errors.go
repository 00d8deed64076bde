package domain

import "fmt"

// RunError is the base error type with context.
type RunError struct {
	Phase   string // "config", "scan", "parse", "patch", "write", "report", "history", "features", "diff"
	File    string
	Message string
	Cause   error
}

func (e *RunError) Error() string {
	s := fmt.Sprintf("[%s]", e.Phase)
	if e.File != "" {
		s += fmt.Sprintf(" %s", e.File)
	}
	s += fmt.Sprintf(": %s", e.Message)
	if e.Cause != nil {
		s += fmt.Sprintf(": %v", e.Cause)
	}
	return s
}

func (e *RunError) Unwrap() error {
	return e.Cause
}

// NewError creates a new RunError.
func NewError(phase, file, message string, cause error) *RunError {
	return &RunError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}
