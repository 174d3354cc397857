package document

import (
	"errors"

	"github.com/goliatone/go-formbuilder/pkg/field"
)

// ErrInvalidMutation signals an attempt to change an immutable field
// attribute (id or type) or to attach attributes belonging to a different
// type. The document is returned unchanged alongside the error.
var ErrInvalidMutation = errors.New("document: invalid mutation")

// FieldPatch is a partial update applied to a field's common attributes.
// Nil members are left untouched. ID and Type are present so payloads decoded
// from external callers can be validated: setting either is rejected with
// ErrInvalidMutation.
type FieldPatch struct {
	ID          *string     `json:"id,omitempty"`
	Type        *field.Type `json:"type,omitempty"`
	Label       *string     `json:"label,omitempty"`
	Placeholder *string     `json:"placeholder,omitempty"`
	Description *string     `json:"description,omitempty"`
	Required    *bool       `json:"required,omitempty"`
	// Attrs replaces the field's type-specific attribute struct. It must
	// match the field's type.
	Attrs field.Attrs `json:"-"`
}

// StylePatch shallow-merges into the document style.
type StylePatch struct {
	PrimaryColor    *string `json:"primaryColor,omitempty"`
	BackgroundColor *string `json:"backgroundColor,omitempty"`
	BorderRadius    *string `json:"borderRadius,omitempty"`
}

// SettingsPatch shallow-merges into the document settings.
type SettingsPatch struct {
	Title             *string `json:"title,omitempty"`
	Description       *string `json:"description,omitempty"`
	SubmitButtonText  *string `json:"submitButtonText,omitempty"`
	SuccessMessage    *string `json:"successMessage,omitempty"`
	NotificationEmail *string `json:"notificationEmail,omitempty"`
}

// AddStep appends an empty step with a fresh id.
func (d Document) AddStep() (Document, bool) {
	out := d.Clone()
	out.Steps = append(out.Steps, NewStep())
	return out, true
}

// RemoveStep removes the step with the given id. Absent ids are a no-op.
// CurrentStep is clamped so it never dangles past the last remaining step.
func (d Document) RemoveStep(stepID string) (Document, bool) {
	_, idx := d.StepByID(stepID)
	if idx < 0 {
		return d, false
	}
	out := d.Clone()
	out.Steps = append(out.Steps[:idx], out.Steps[idx+1:]...)
	if last := len(out.Steps) - 1; out.CurrentStep > last {
		if last < 0 {
			out.CurrentStep = 0
		} else {
			out.CurrentStep = last
		}
	}
	return out, true
}

// SetCurrentStep moves the active-step pointer. Bounds are the caller's
// responsibility; navigation enforces them through next/previous semantics.
func (d Document) SetCurrentStep(index int) (Document, bool) {
	if index == d.CurrentStep {
		return d, false
	}
	out := d.Clone()
	out.CurrentStep = index
	return out, true
}

// AddField instantiates a field of the given type and appends it to the named
// step. An unknown step id is a no-op; an unknown type is an error.
func (d Document) AddField(stepID string, t field.Type, o field.Overrides) (Document, bool, error) {
	_, idx := d.StepByID(stepID)
	if idx < 0 {
		return d, false, nil
	}
	f, err := field.Instantiate(t, o)
	if err != nil {
		return d, false, err
	}
	out := d.Clone()
	out.Steps[idx].Fields = append(out.Steps[idx].Fields, f)
	return out, true, nil
}

// UpdateField merges the patch into the matching field. Unknown step or field
// ids are a no-op. Patches that touch id or type, or that carry an attribute
// struct belonging to a different type, fail with ErrInvalidMutation and
// leave the document unchanged.
func (d Document) UpdateField(stepID, fieldID string, patch FieldPatch) (Document, bool, error) {
	_, sIdx := d.StepByID(stepID)
	if sIdx < 0 {
		return d, false, nil
	}
	f, fIdx := d.Steps[sIdx].FieldByID(fieldID)
	if fIdx < 0 {
		return d, false, nil
	}

	if patch.ID != nil || patch.Type != nil {
		return d, false, ErrInvalidMutation
	}
	if patch.Attrs != nil && !field.AttrsMatch(f.Type, patch.Attrs) {
		return d, false, ErrInvalidMutation
	}

	out := d.Clone()
	target := &out.Steps[sIdx].Fields[fIdx]
	if patch.Label != nil {
		target.Label = *patch.Label
	}
	if patch.Placeholder != nil {
		target.Placeholder = *patch.Placeholder
	}
	if patch.Description != nil {
		target.Description = *patch.Description
	}
	if patch.Required != nil && target.Type.Input() {
		target.Required = *patch.Required
	}
	if patch.Attrs != nil {
		attrs := field.CloneAttrs(patch.Attrs)
		field.SanitizeAttrs(attrs)
		target.Attrs = attrs
	}
	return out, true, nil
}

// UpdateFieldValue sets only the transient value of an input field. It runs
// on every keystroke, so it never reshapes the schema. Layout fields and
// unknown ids are a no-op.
func (d Document) UpdateFieldValue(stepID, fieldID, value string) (Document, bool) {
	_, sIdx := d.StepByID(stepID)
	if sIdx < 0 {
		return d, false
	}
	f, fIdx := d.Steps[sIdx].FieldByID(fieldID)
	if fIdx < 0 || !f.Type.Input() {
		return d, false
	}
	out := d.Clone()
	out.Steps[sIdx].Fields[fIdx].Value = value
	return out, true
}

// RemoveField removes the field if present; absent ids are a no-op.
func (d Document) RemoveField(stepID, fieldID string) (Document, bool) {
	_, sIdx := d.StepByID(stepID)
	if sIdx < 0 {
		return d, false
	}
	_, fIdx := d.Steps[sIdx].FieldByID(fieldID)
	if fIdx < 0 {
		return d, false
	}
	out := d.Clone()
	fields := out.Steps[sIdx].Fields
	out.Steps[sIdx].Fields = append(fields[:fIdx], fields[fIdx+1:]...)
	return out, true
}

// ReorderFields moves movedID to the position targetID occupied before the
// call, splicing the remaining fields around it. Ids missing from the step,
// or movedID == targetID, are a no-op. The operation only ever permutes one
// step's fields; identity and attributes are untouched.
func (d Document) ReorderFields(stepID, movedID, targetID string) (Document, bool) {
	if movedID == targetID {
		return d, false
	}
	_, sIdx := d.StepByID(stepID)
	if sIdx < 0 {
		return d, false
	}
	step := d.Steps[sIdx]
	_, from := step.FieldByID(movedID)
	_, to := step.FieldByID(targetID)
	if from < 0 || to < 0 {
		return d, false
	}

	out := d.Clone()
	fields := out.Steps[sIdx].Fields
	moved := fields[from]
	fields = append(fields[:from], fields[from+1:]...)
	fields = append(fields[:to], append([]field.Field{moved}, fields[to:]...)...)
	out.Steps[sIdx].Fields = fields
	return out, true
}

// UpdateStyle shallow-merges the patch into the form style.
func (d Document) UpdateStyle(patch StylePatch) (Document, bool) {
	if patch == (StylePatch{}) {
		return d, false
	}
	out := d.Clone()
	if patch.PrimaryColor != nil {
		out.Style.PrimaryColor = *patch.PrimaryColor
	}
	if patch.BackgroundColor != nil {
		out.Style.BackgroundColor = *patch.BackgroundColor
	}
	if patch.BorderRadius != nil {
		out.Style.BorderRadius = *patch.BorderRadius
	}
	return out, true
}

// UpdateSettings shallow-merges the patch into the form settings.
func (d Document) UpdateSettings(patch SettingsPatch) (Document, bool) {
	if patch == (SettingsPatch{}) {
		return d, false
	}
	out := d.Clone()
	if patch.Title != nil {
		out.Settings.Title = *patch.Title
	}
	if patch.Description != nil {
		out.Settings.Description = *patch.Description
	}
	if patch.SubmitButtonText != nil {
		out.Settings.SubmitButtonText = *patch.SubmitButtonText
	}
	if patch.SuccessMessage != nil {
		out.Settings.SuccessMessage = *patch.SuccessMessage
	}
	if patch.NotificationEmail != nil {
		out.Settings.NotificationEmail = *patch.NotificationEmail
	}
	return out, true
}

// ClearValues wipes every transient input value, leaving the schema intact.
// Used after a successful submission.
func (d Document) ClearValues() (Document, bool) {
	changed := false
	out := d.Clone()
	for i := range out.Steps {
		for j := range out.Steps[i].Fields {
			f := &out.Steps[i].Fields[j]
			if f.Type.Input() && f.Value != "" {
				f.Value = ""
				changed = true
			}
		}
	}
	if !changed {
		return d, false
	}
	return out, true
}
