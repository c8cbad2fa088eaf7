package quotemark

import "fmt"

// Severity classifies a diagnostic.
type Severity uint8

const (
	// SeverityWarning marks recoverable conditions: the affected scope or
	// node was processed without substitution.
	SeverityWarning Severity = iota
	// SeverityError marks configuration that was rejected outright, such as
	// a malformed override entry or a wrong mark count.
	SeverityError
)

// String returns the name of the severity.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic is a non-fatal condition reported during table construction,
// config resolution, or tree rewriting. Diagnostics never stop processing;
// hosts decide whether and how to surface them.
type Diagnostic struct {
	Severity Severity

	// Message is the human-readable description.
	Message string

	// Tag is the language tag involved, when the condition concerns one.
	Tag string

	// Err is the underlying typed error, when one exists. It unwraps to
	// ErrConfig for classification.
	Err error
}

// String formats the diagnostic as "severity: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s", d.Severity, d.Message)
}

// warnf builds a warning-severity diagnostic.
func warnf(tag, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Tag:      tag,
	}
}

// errDiag builds an error-severity diagnostic from a typed error.
func errDiag(tag string, err error) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Message:  err.Error(),
		Tag:      tag,
		Err:      err,
	}
}
