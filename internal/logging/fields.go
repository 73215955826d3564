// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldFormat = "format"

	// Conversion fields.
	FieldContext   = "context"
	FieldLine      = "line"
	FieldWindowMin = "window_min"
	FieldWindowMax = "window_max"
	FieldNodes     = "nodes"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
