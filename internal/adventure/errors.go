package adventure

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
)

// ErrorClass names the kind of grammar violation found by Parse.
type ErrorClass int

const (
	MissingMarker ErrorClass = iota + 1
	TooManyRows
	MalformedRoom
	MissingTerminator
	UnknownDirection
	MalformedConnection
)

func (c ErrorClass) String() string {
	switch c {
	case MissingMarker:
		return "missing marker"
	case TooManyRows:
		return "too many map rows"
	case MalformedRoom:
		return "malformed room"
	case MissingTerminator:
		return "missing terminator"
	case UnknownDirection:
		return "unknown direction"
	case MalformedConnection:
		return "malformed connection"
	default:
		return "unknown"
	}
}

// GrammarError reports the first structural problem in an adventure file.
type GrammarError struct {
	Class ErrorClass
	Diag  *hcl.Diagnostic
}

func (e *GrammarError) Error() string {
	return e.Diag.Error()
}

// Filename returns the name of the file the error was found in.
func (e *GrammarError) Filename() string {
	if e.Diag.Subject == nil {
		return ""
	}
	return e.Diag.Subject.Filename
}

// Line returns the 1-based source line of the failing construct.
func (e *GrammarError) Line() int {
	if e.Diag.Subject == nil {
		return 0
	}
	return e.Diag.Subject.Start.Line
}

func newGrammarError(class ErrorClass, subject hcl.Range, summary, detail string) *GrammarError {
	return &GrammarError{
		Class: class,
		Diag: &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  summary,
			Detail:   detail,
			Subject:  &subject,
		},
	}
}

// FileReadError is returned by Loader when an adventure file cannot be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("failed to read adventure %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }
