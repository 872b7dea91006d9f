// Package diagtest provides test assertions over diag.Builder, used by the
// resolver test suite so it doesn't hand-roll its own "find a diagnostic
// matching X" loop.
package diagtest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/diag"
)

// RequireDiagnostic fails t unless diags contains at least one diagnostic
// with the given severity and category, returning the first match.
func RequireDiagnostic(t *testing.T, diags *diag.Builder, severity diag.Severity, cat diag.Category) diag.Diagnostic {
	t.Helper()
	for _, d := range diags.All() {
		if d.Severity == severity && d.Category == cat {
			return d
		}
	}
	assert.Fail(t, "no matching diagnostic", "wanted severity=%s category=%s, got %v", severity, cat, diags.All())
	return diag.Diagnostic{}
}

// RequireNoErrors fails t if diags holds any Error-severity diagnostic,
// reporting every diagnostic's message to aid debugging.
func RequireNoErrors(t *testing.T, diags *diag.Builder) {
	t.Helper()
	if diags.HasErrors() {
		assert.Fail(t, "unexpected errors", "%v", diags.Summary())
	}
}
