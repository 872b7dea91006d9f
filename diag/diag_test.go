package diag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viewlang/core/diag"
)

func TestBuilderHasErrors(t *testing.T) {
	var b diag.Builder
	assert.False(t, b.HasErrors())

	b.Warnf(diag.Location{File: "a.slint", From: 1, To: 2}, diag.SemanticConstraint, "just a warning")
	assert.False(t, b.HasErrors())

	b.Errorf(diag.Location{File: "a.slint", From: 3, To: 4}, diag.TypeMismatch, "cannot convert %s to %s", "string", "int")
	assert.True(t, b.HasErrors())
	assert.Len(t, b.All(), 2)
}

func TestErrorOrWarnf(t *testing.T) {
	var strict, legacy diag.Builder
	strict.ErrorOrWarnf(false, diag.Location{}, diag.VisibilityViolation, "bad link")
	legacy.ErrorOrWarnf(true, diag.Location{}, diag.VisibilityViolation, "bad link")

	assert.Equal(t, diag.Error, strict.All()[0].Severity)
	assert.Equal(t, diag.Warning, legacy.All()[0].Severity)
}

func TestSuggest(t *testing.T) {
	var b diag.Builder
	b.Errorf(diag.Location{}, diag.UnknownIdentifier, "unknown identifier %q", "slef")
	b.Suggest(`did you mean "self"?`)
	assert.Contains(t, b.All()[0].Suggestion, "self")
}

func TestSummaryElidesLongMessages(t *testing.T) {
	var b diag.Builder
	long := ""
	for i := 0; i < 200; i++ {
		long += "x"
	}
	b.Errorf(diag.Location{File: "a.slint", From: 1, To: 2}, diag.TypeMismatch, "%s", long)

	lines := b.Summary()
	assert.Len(t, lines, 1)
	assert.Less(t, len(lines[0]), len(long))
	assert.Contains(t, lines[0], "…")
}
