// Package testsupport holds fixtures shared across the package test suites.
package testsupport

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/field"
)

// MustInstantiate builds a field of the given type and fails the test on
// error.
func MustInstantiate(t *testing.T, ft field.Type, o field.Overrides) field.Field {
	t.Helper()

	f, err := field.Instantiate(ft, o)
	if err != nil {
		t.Fatalf("instantiate %s: %v", ft, err)
	}
	return f
}

// ContactDocument returns a two-step contact form used across the test
// suite. Step one asks for name and email, both required; step two carries an
// optional message textarea. Ids are fixed so tests can address fields
// directly.
func ContactDocument(t *testing.T) document.Document {
	t.Helper()

	name := MustInstantiate(t, field.TypeText, field.Overrides{Label: "Name", Required: true})
	name.ID = "fld-name"
	email := MustInstantiate(t, field.TypeEmail, field.Overrides{Label: "Email", Required: true})
	email.ID = "fld-email"
	message := MustInstantiate(t, field.TypeTextarea, field.Overrides{Label: "Message"})
	message.ID = "fld-message"

	first := document.Step{ID: "step-contact", Title: "Contact", Fields: []field.Field{name, email}}
	second := document.Step{ID: "step-message", Title: "Message", Fields: []field.Field{message}}

	return document.Document{
		Steps:    []document.Step{first, second},
		Style:    document.DefaultStyle(),
		Settings: document.DefaultSettings(),
	}
}

// FillStep applies values to fields on the named step keyed by field ID.
func FillStep(t *testing.T, doc document.Document, stepID string, values map[string]string) document.Document {
	t.Helper()

	for id, v := range values {
		next, changed := doc.UpdateFieldValue(stepID, id, v)
		if !changed {
			t.Fatalf("set value %s: no change applied", id)
		}
		doc = next
	}
	return doc
}
