package booking

import (
	"fmt"
	"strings"
)

// ValidationError is a client error naming the first field that failed.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ConfigError means the process is missing settings the intake needs.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing configuration: " + strings.Join(e.Missing, ", ")
}

// ConnectionError wraps a failure to reach the document store.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return e.Err.Error()
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// PersistenceError wraps a failed or unacknowledged save.
type PersistenceError struct {
	Collection string
	Err        error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("saving booking inquiry to %s: %v", e.Collection, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
