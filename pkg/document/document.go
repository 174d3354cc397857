// Package document holds the editable definition of a multi-step form and the
// operation set that mutates it. Operations are pure: they take the receiver
// by value and return a new document plus a flag reporting whether anything
// changed. Structural misses (unknown step or field ids) are silent no-ops so
// a caller racing a deletion elsewhere never crashes.
package document

import (
	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/field"
)

// Step is an ordered page of fields within a multi-step form. Field order is
// significant for both presentation and navigation.
type Step struct {
	ID     string        `json:"id"`
	Title  string        `json:"title,omitempty"`
	Fields []field.Field `json:"fields"`
}

// Clone returns a deep copy of the step.
func (s Step) Clone() Step {
	cp := s
	cp.Fields = make([]field.Field, len(s.Fields))
	for i, f := range s.Fields {
		cp.Fields[i] = f.Clone()
	}
	return cp
}

// FieldByID returns the field with the given id and its position, or
// (-1, zero) when absent.
func (s Step) FieldByID(id string) (field.Field, int) {
	for i, f := range s.Fields {
		if f.ID == id {
			return f, i
		}
	}
	return field.Field{}, -1
}

// Style carries the cosmetic knobs applied to the whole form.
type Style struct {
	PrimaryColor    string `json:"primaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	BorderRadius    string `json:"borderRadius"`
}

// Settings carries form-level copy and notification configuration.
type Settings struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	SubmitButtonText  string `json:"submitButtonText"`
	SuccessMessage    string `json:"successMessage"`
	NotificationEmail string `json:"notificationEmail"`
}

// Document is the full editable definition of a form: ordered steps, the
// active-step pointer, style, settings, and an optional identity when the
// document is one of several saved forms.
type Document struct {
	Steps       []Step   `json:"steps"`
	CurrentStep int      `json:"currentStep"`
	Style       Style    `json:"formStyle"`
	Settings    Settings `json:"formSettings"`
	FormID      string   `json:"currentFormId,omitempty"`
}

// NewStep returns an empty step with a fresh unique id.
func NewStep() Step {
	return Step{ID: uuid.NewString(), Fields: []field.Field{}}
}

// DefaultStyle mirrors the style a brand-new document starts with.
func DefaultStyle() Style {
	return Style{
		PrimaryColor:    "#2563eb",
		BackgroundColor: "#ffffff",
		BorderRadius:    "8px",
	}
}

// DefaultSettings mirrors the settings a brand-new document starts with.
func DefaultSettings() Settings {
	return Settings{
		Title:            "New Form",
		Description:      "Please fill out the form below.",
		SubmitButtonText: "Submit",
		SuccessMessage:   "Thank you for your submission.",
	}
}

// Default synthesises the initial document: a single step holding the stock
// auth-style fields, default style and settings.
func Default() Document {
	step := NewStep()
	for _, seed := range []struct {
		t field.Type
		o field.Overrides
	}{
		{field.TypeEmail, field.Overrides{Label: "Email", Required: true}},
		{field.TypePassword, field.Overrides{Label: "Password", Required: true}},
		{field.TypeConfirmPassword, field.Overrides{Label: "Confirm Password", Placeholder: "Confirm Password", Required: true}},
	} {
		f, err := field.Instantiate(seed.t, seed.o)
		if err != nil {
			// All seed types belong to the closed set.
			continue
		}
		step.Fields = append(step.Fields, f)
	}
	return Document{
		Steps:       []Step{step},
		CurrentStep: 0,
		Style:       DefaultStyle(),
		Settings:    DefaultSettings(),
	}
}

// Clone returns a deep copy of the document.
func (d Document) Clone() Document {
	cp := d
	cp.Steps = make([]Step, len(d.Steps))
	for i, s := range d.Steps {
		cp.Steps[i] = s.Clone()
	}
	return cp
}

// StepByID returns the step with the given id and its position, or
// (-1, zero) when absent.
func (d Document) StepByID(id string) (Step, int) {
	for i, s := range d.Steps {
		if s.ID == id {
			return s, i
		}
	}
	return Step{}, -1
}

// ActiveStep returns the step CurrentStep points at. ok is false when the
// document has no steps or the pointer is out of range.
func (d Document) ActiveStep() (Step, bool) {
	if d.CurrentStep < 0 || d.CurrentStep >= len(d.Steps) {
		return Step{}, false
	}
	return d.Steps[d.CurrentStep], true
}
