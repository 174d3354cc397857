// Package validation computes per-step required-field satisfaction. It is
// pure: callers may validate the same step any number of times without side
// effects.
package validation

import (
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/field"
)

// Reasons attached to failing fields.
const (
	ReasonRequired = "required"
	ReasonInvalid  = "invalid"
	ReasonMismatch = "mismatch"
)

// Result reports whether a step may be navigated past, with per-field
// failure reasons keyed by field id.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// ValidateStep checks every input field of the step. Required fields fail
// with "required" when empty; non-empty values of shape-constrained types
// (email, phone, website, id_number, payment) fail with "invalid" when they
// do not match the type's pattern; confirm_password fails with "mismatch"
// when it differs from the nearest preceding password in the step. Layout
// fields are ignored regardless of any stray required flag.
func ValidateStep(step document.Step) Result {
	var errs map[string]string
	fail := func(id, reason string) {
		if errs == nil {
			errs = make(map[string]string)
		}
		errs[id] = reason
	}

	lastPassword := ""
	lastPasswordSeen := false
	for _, f := range step.Fields {
		if !f.Type.Input() {
			continue
		}
		if f.Type == field.TypePassword {
			lastPassword = f.Value
			lastPasswordSeen = true
		}

		value := strings.TrimSpace(f.Value)
		if f.Required && value == "" {
			fail(f.ID, ReasonRequired)
			continue
		}
		if value == "" {
			continue
		}
		if pattern := field.ShapePattern(f.Type); pattern != nil && !pattern.MatchString(value) {
			fail(f.ID, ReasonInvalid)
			continue
		}
		if f.Type == field.TypeConfirmPassword && lastPasswordSeen && f.Value != lastPassword {
			fail(f.ID, ReasonMismatch)
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}
