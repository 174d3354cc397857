// Package navigation drives the fill/submit flow over a fixed form document.
// Forward movement is gated by required-field validation; moving back is
// always allowed so an incomplete step never traps the user.
package navigation

import (
	"errors"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/submission"
	"github.com/goliatone/go-formbuilder/pkg/validation"
)

var (
	// ErrNoActiveStep signals a session over a document with no steps or a
	// dangling step pointer.
	ErrNoActiveStep = errors.New("navigation: no active step")
	// ErrNotTerminalStep signals a Submit call from any step but the last.
	ErrNotTerminalStep = errors.New("navigation: submit is only allowed from the terminal step")
)

// Session walks a document step by step, collecting transient values. The
// document schema is never modified; only field values change.
type Session struct {
	doc document.Document
}

// NewSession starts a fill session at step 0.
func NewSession(doc document.Document) *Session {
	out := doc.Clone()
	out.CurrentStep = 0
	return &Session{doc: out}
}

// Document returns a copy of the session's working document.
func (s *Session) Document() document.Document {
	return s.doc.Clone()
}

// StepIndex reports the active step position.
func (s *Session) StepIndex() int {
	return s.doc.CurrentStep
}

// Terminal reports whether the session sits on the last step.
func (s *Session) Terminal() bool {
	return len(s.doc.Steps) > 0 && s.doc.CurrentStep == len(s.doc.Steps)-1
}

// SetValue records a transient value for a field on the active step.
func (s *Session) SetValue(fieldID, value string) bool {
	step, ok := s.doc.ActiveStep()
	if !ok {
		return false
	}
	next, changed := s.doc.UpdateFieldValue(step.ID, fieldID, value)
	s.doc = next
	return changed
}

// Validate checks the active step without moving.
func (s *Session) Validate() (validation.Result, error) {
	step, ok := s.doc.ActiveStep()
	if !ok {
		return validation.Result{}, ErrNoActiveStep
	}
	return validation.ValidateStep(step), nil
}

// Next advances to the following step when the active step validates. The
// pointer clamps at the terminal step. The returned result carries the
// per-field failures when navigation is blocked.
func (s *Session) Next() (validation.Result, error) {
	result, err := s.Validate()
	if err != nil {
		return validation.Result{}, err
	}
	if !result.Valid {
		return result, nil
	}
	if s.doc.CurrentStep < len(s.doc.Steps)-1 {
		s.doc.CurrentStep++
	}
	return result, nil
}

// Previous retreats one step. It never re-validates; a user may always move
// back from an incomplete step. Returns false at step 0.
func (s *Session) Previous() bool {
	if s.doc.CurrentStep <= 0 {
		return false
	}
	s.doc.CurrentStep--
	return true
}

// Submit captures the filled values into a pending submission. It is only
// allowed from the terminal step and only when that step validates. On
// success the session resets to step 0 with every transient value cleared;
// the field schema is untouched.
func (s *Session) Submit(formID string, options ...submission.CaptureOption) (submission.Submission, validation.Result, error) {
	if _, ok := s.doc.ActiveStep(); !ok {
		return submission.Submission{}, validation.Result{}, ErrNoActiveStep
	}
	if !s.Terminal() {
		return submission.Submission{}, validation.Result{}, ErrNotTerminalStep
	}
	result, err := s.Validate()
	if err != nil {
		return submission.Submission{}, validation.Result{}, err
	}
	if !result.Valid {
		return submission.Submission{}, result, nil
	}

	sub := submission.Capture(s.doc, formID, options...)

	cleared, _ := s.doc.ClearValues()
	cleared.CurrentStep = 0
	s.doc = cleared
	return sub, result, nil
}
