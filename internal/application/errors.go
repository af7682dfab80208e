package application

import (
	"errors"
	"fmt"
)

var (
	// ErrSystemDoctype protects system doctypes from mutation and deletion.
	ErrSystemDoctype = errors.New("system doctypes cannot be modified or deleted")
	// ErrDoctypeInUse rejects deletion while documents still reference the doctype.
	ErrDoctypeInUse = errors.New("doctype has existing documents")
	// ErrInvalidIdentifier rejects names outside ^[a-z][a-z0-9_]*$.
	ErrInvalidIdentifier = errors.New("invalid identifier")
	// ErrDuplicateFieldName rejects a second field with the same name.
	ErrDuplicateFieldName = errors.New("duplicate field name")
)

// ValidationError carries per-field messages for a document that violates its
// doctype schema. Expected invalid input, never fatal.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}
