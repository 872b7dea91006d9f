package diagtest_test

import (
	"testing"

	"github.com/viewlang/core/diag"
	"github.com/viewlang/core/internal/diagtest"
)

func TestRequireDiagnosticFindsMatch(t *testing.T) {
	var b diag.Builder
	b.Warnf(diag.Location{}, diag.SemanticConstraint, "a warning")
	b.Errorf(diag.Location{}, diag.TypeMismatch, "a type error")

	d := diagtest.RequireDiagnostic(t, &b, diag.Error, diag.TypeMismatch)
	if d.Message != "a type error" {
		t.Fatalf("got %q", d.Message)
	}
}

func TestRequireNoErrorsPassesOnWarningsOnly(t *testing.T) {
	var b diag.Builder
	b.Warnf(diag.Location{}, diag.SemanticConstraint, "just a warning")
	diagtest.RequireNoErrors(t, &b)
}
