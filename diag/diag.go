// Package diag collects diagnostics emitted while resolving a document.
//
// A Builder is shared across every component and binding processed by a
// resolver pass; it never aborts early so that a single resolution run
// surfaces every error in the document at once (spec "Failure semantics").
package diag

import (
	"fmt"

	"github.com/viewlang/core/base/elide"
)

// Severity classifies a Diagnostic.
type Severity int

const (
	// Info is an informational diagnostic; it never blocks codegen.
	Info Severity = iota
	// Warning indicates a likely mistake that still produces usable output.
	Warning
	// Error indicates the surrounding expression could not be typed.
	// Presence of any Error diagnostic blocks downstream codegen.
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Location is a byte range within a named source file.
type Location struct {
	File string
	From int
	To   int
}

func (l Location) String() string {
	if l.File == "" {
		return fmt.Sprintf("%d:%d", l.From, l.To)
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.From, l.To)
}

// Category is a coarse taxonomy of resolver failures (spec §7).
type Category string

const (
	TypeMismatch        Category = "type-mismatch"
	UnknownIdentifier   Category = "unknown-identifier"
	VisibilityViolation Category = "visibility-violation"
	MalformedConstruct  Category = "malformed-construct"
	SemanticConstraint  Category = "semantic-constraint"
)

// Diagnostic is one reported problem.
type Diagnostic struct {
	Severity Severity
	Category Category
	Message  string
	Loc      Location
	// Suggestion is an optional recovery hint (e.g. "did you mean root.X?").
	Suggestion string
}

func (d Diagnostic) Error() string {
	if d.Suggestion != "" {
		return fmt.Sprintf("%s: %s: %s (%s)", d.Loc, d.Severity, d.Message, d.Suggestion)
	}
	return fmt.Sprintf("%s: %s: %s", d.Loc, d.Severity, d.Message)
}

// Builder accumulates diagnostics over the course of a resolution run.
// The zero value is ready to use.
type Builder struct {
	items []Diagnostic
}

// Add appends a diagnostic.
func (b *Builder) Add(d Diagnostic) {
	b.items = append(b.items, d)
}

// Errorf records an Error-severity diagnostic at loc.
func (b *Builder) Errorf(loc Location, cat Category, format string, args ...any) {
	b.Add(Diagnostic{Severity: Error, Category: cat, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// Warnf records a Warning-severity diagnostic at loc.
func (b *Builder) Warnf(loc Location, cat Category, format string, args ...any) {
	b.Add(Diagnostic{Severity: Warning, Category: cat, Message: fmt.Sprintf(format, args...), Loc: loc})
}

// ErrorOrWarnf records an Error unless legacy is true, in which case it
// records a Warning instead. This is the mechanism behind the legacy-mode
// toggle named in spec §9's Open Questions.
func (b *Builder) ErrorOrWarnf(legacy bool, loc Location, cat Category, format string, args ...any) {
	if legacy {
		b.Warnf(loc, cat, format, args...)
		return
	}
	b.Errorf(loc, cat, format, args...)
}

// Suggest attaches a recovery suggestion to the most recently added
// diagnostic. It is a no-op if nothing has been added yet.
func (b *Builder) Suggest(suggestion string) {
	if len(b.items) == 0 {
		return
	}
	b.items[len(b.items)-1].Suggestion = suggestion
}

// All returns every diagnostic recorded so far, in report order.
func (b *Builder) All() []Diagnostic {
	return b.items
}

// HasErrors reports whether any Error-severity diagnostic was recorded.
func (b *Builder) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Len returns the number of diagnostics recorded.
func (b *Builder) Len() int { return len(b.items) }

// summaryMessageLimit bounds how much of a single diagnostic's message
// appears in a one-line Summary entry.
const summaryMessageLimit = 80

// Summary renders one elided line per diagnostic, for contexts (terminal
// output, log lines) where the full Message would overflow a line.
func (b *Builder) Summary() []string {
	lines := make([]string, len(b.items))
	for i, d := range b.items {
		lines[i] = fmt.Sprintf("%s: %s: %s", d.Loc, d.Severity, elide.End(d.Message, summaryMessageLimit))
	}
	return lines
}
