// Package errors defines the diagnostics collected while loading a
// Proteus document and the internal error type used to signal engine
// defects.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Severity classifies a diagnostic.
type Severity int

const (
	// Info marks non-critical notices, e.g. a successful inference.
	Info Severity = iota
	// Warning marks unexpected but harmless input.
	Warning
	// Error marks local data loss, one element or edge skipped.
	Error
	// Critical marks input the loader cannot produce a valid model from.
	Critical
)

// String returns the severity name in upper case.
func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Critical:
		return "CRITICAL"
	default:
		return fmt.Sprintf("SEVERITY(%d)", int(s))
	}
}

// Diagnostic describes one condition observed during a load. ID is the
// nearest enclosing element id known at the time, and may be empty. Err
// carries the underlying cause, if any.
//
//nolint:errname // public API name uses the domain term.
type Diagnostic struct {
	Message  string
	Severity Severity
	ID       string
	Err      error
}

// Error formats the diagnostic for display.
func (d *Diagnostic) Error() string {
	if d == nil {
		return "diagnostic <nil>"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s] %s", d.Severity, d.Message))
	if d.ID != "" {
		b.WriteString(fmt.Sprintf(" (id %s)", d.ID))
	}
	if d.Err != nil {
		b.WriteString(fmt.Sprintf(": %v", d.Err))
	}
	return b.String()
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (d *Diagnostic) Unwrap() error {
	if d == nil {
		return nil
	}
	return d.Err
}

// DiagnosticList is an ordered, append-only collection of diagnostics.
// It implements error so a load can return it directly.
type DiagnosticList []Diagnostic //nolint:errname // public API name.

// Error returns a compact summary of the diagnostics.
func (l DiagnosticList) Error() string {
	switch len(l) {
	case 0:
		return "no diagnostics"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more)", l[0].Error(), len(l)-1)
	}
}

// Min returns the diagnostics at or above the given severity, in order.
func (l DiagnosticList) Min(s Severity) DiagnosticList {
	var out DiagnosticList
	for _, d := range l {
		if d.Severity >= s {
			out = append(out, d)
		}
	}
	return out
}

// At returns the diagnostics matching any of the given severities, in order.
func (l DiagnosticList) At(severities ...Severity) DiagnosticList {
	var out DiagnosticList
	for _, d := range l {
		for _, s := range severities {
			if d.Severity == s {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// HasMin reports whether any diagnostic is at or above the given severity.
func (l DiagnosticList) HasMin(s Severity) bool {
	for _, d := range l {
		if d.Severity >= s {
			return true
		}
	}
	return false
}

// AsDiagnostics extracts diagnostics from an error returned by Load.
func AsDiagnostics(err error) ([]Diagnostic, bool) {
	list, ok := asDiagnosticList(err)
	if !ok {
		return nil, false
	}
	return []Diagnostic(list), true
}

func asDiagnosticList(err error) (DiagnosticList, bool) {
	if err == nil {
		return nil, false
	}
	var list DiagnosticList
	if errors.As(err, &list) {
		return list, true
	}

	var listPtr *DiagnosticList
	if errors.As(err, &listPtr) && listPtr != nil {
		return *listPtr, true
	}

	return nil, false
}
