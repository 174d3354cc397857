package navigation_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/navigation"
	"github.com/goliatone/go-formbuilder/pkg/submission"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

func TestNextBlockedByValidation(t *testing.T) {
	session := navigation.NewSession(testsupport.ContactDocument(t))

	result, err := session.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected navigation to be blocked")
	}
	if session.StepIndex() != 0 {
		t.Fatalf("expected the session to stay on step 0, got %d", session.StepIndex())
	}
	if got := result.Errors["fld-name"]; got != validation.ReasonRequired {
		t.Fatalf("expected required failure for fld-name, got %q", got)
	}
}

func TestNextAdvancesWhenValid(t *testing.T) {
	session := navigation.NewSession(testsupport.ContactDocument(t))
	session.SetValue("fld-name", "Ada")
	session.SetValue("fld-email", "ada@example.com")

	result, err := session.Next()
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected navigation to pass, got %v", result.Errors)
	}
	if session.StepIndex() != 1 {
		t.Fatalf("expected step 1, got %d", session.StepIndex())
	}
	if !session.Terminal() {
		t.Fatalf("expected step 1 to be terminal")
	}

	// The pointer clamps at the terminal step.
	if _, err := session.Next(); err != nil {
		t.Fatalf("next at terminal: %v", err)
	}
	if session.StepIndex() != 1 {
		t.Fatalf("expected pointer to clamp at 1, got %d", session.StepIndex())
	}
}

func TestPreviousAlwaysAllowed(t *testing.T) {
	session := navigation.NewSession(testsupport.ContactDocument(t))
	if session.Previous() {
		t.Fatalf("expected Previous to refuse at step 0")
	}

	session.SetValue("fld-name", "Ada")
	session.SetValue("fld-email", "ada@example.com")
	if _, err := session.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	// Moving back never validates, even with step 2 untouched.
	if !session.Previous() {
		t.Fatalf("expected Previous to succeed from step 1")
	}
	if session.StepIndex() != 0 {
		t.Fatalf("expected step 0, got %d", session.StepIndex())
	}
}

func TestSubmitOnlyFromTerminalStep(t *testing.T) {
	session := navigation.NewSession(testsupport.ContactDocument(t))
	_, _, err := session.Submit("form-1")
	if !errors.Is(err, navigation.ErrNotTerminalStep) {
		t.Fatalf("expected ErrNotTerminalStep, got %v", err)
	}
}

func TestSubmitCapturesAndResets(t *testing.T) {
	session := navigation.NewSession(testsupport.ContactDocument(t))
	session.SetValue("fld-name", "Ada")
	session.SetValue("fld-email", "ada@example.com")
	if _, err := session.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}
	session.SetValue("fld-message", "hello")

	sub, result, err := session.Submit("form-1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Valid {
		t.Fatalf("expected submit to pass, got %v", result.Errors)
	}
	if sub.FormID != "form-1" || sub.Status != submission.StatusPending {
		t.Fatalf("unexpected submission envelope: %+v", sub)
	}
	if sub.Data["fld-name"] != "Ada" || sub.Data["fld-message"] != "hello" {
		t.Fatalf("captured data incomplete: %v", sub.Data)
	}

	if session.StepIndex() != 0 {
		t.Fatalf("expected session to reset to step 0, got %d", session.StepIndex())
	}
	doc := session.Document()
	for _, step := range doc.Steps {
		for _, f := range step.Fields {
			if f.Value != "" {
				t.Fatalf("expected values cleared, %s still holds %q", f.ID, f.Value)
			}
		}
	}
	if len(doc.Steps) != 2 {
		t.Fatalf("schema must survive submission, got %d steps", len(doc.Steps))
	}
}

func TestSubmitBlockedByTerminalValidation(t *testing.T) {
	doc := testsupport.ContactDocument(t)
	// Make the terminal step gated.
	doc.Steps[1].Fields[0].Required = true
	session := navigation.NewSession(doc)
	session.SetValue("fld-name", "Ada")
	session.SetValue("fld-email", "ada@example.com")
	if _, err := session.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	_, result, err := session.Submit("form-1")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Valid {
		t.Fatalf("expected submit to be blocked")
	}
	if got := session.Document().Steps[0].Fields[0].Value; got != "Ada" {
		t.Fatalf("blocked submit must not clear values, got %q", got)
	}
}

func TestSessionWithoutSteps(t *testing.T) {
	session := navigation.NewSession(document.Document{})
	if _, err := session.Validate(); !errors.Is(err, navigation.ErrNoActiveStep) {
		t.Fatalf("expected ErrNoActiveStep, got %v", err)
	}
	if _, _, err := session.Submit("form-1"); !errors.Is(err, navigation.ErrNoActiveStep) {
		t.Fatalf("expected ErrNoActiveStep on submit, got %v", err)
	}
}

func TestSessionCopiesDocument(t *testing.T) {
	doc := testsupport.ContactDocument(t)
	session := navigation.NewSession(doc)
	session.SetValue("fld-name", "Ada")
	if doc.Steps[0].Fields[0].Value != "" {
		t.Fatalf("session must not mutate the source document")
	}
}
