// Package persistence serialises the whole editor state to a key-value blob
// store and restores it on start. Restoration is fail-soft: absent or
// malformed blobs yield the default document instead of an error, so a bad
// snapshot can never take the process down.
package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/submission"
)

// DefaultKey is the fixed blob-store key the editor state lives under.
const DefaultKey = "formbuilder.state"

// Snapshot is the persisted shape of the editor: the live document, the
// saved-forms index, and every captured submission keyed by form id.
// Transient field values are included; the original editor persisted its full
// state on every mutation and round-trip tests rely on structural equality.
type Snapshot struct {
	Steps         []document.Step                    `json:"steps"`
	CurrentStep   int                                `json:"currentStep"`
	FormStyle     document.Style                     `json:"formStyle"`
	FormSettings  document.Settings                  `json:"formSettings"`
	SavedForms    []document.SavedForm               `json:"savedForms,omitempty"`
	CurrentFormID string                             `json:"currentFormId,omitempty"`
	Submissions   map[string][]submission.Submission `json:"submissions,omitempty"`
}

// Capture assembles a snapshot from the live state.
func Capture(doc document.Document, saved []document.SavedForm, subs map[string][]submission.Submission) Snapshot {
	doc = doc.Clone()
	forms := make([]document.SavedForm, len(saved))
	for i, f := range saved {
		forms[i] = f.Clone()
	}
	if len(forms) == 0 {
		forms = nil
	}
	if len(subs) == 0 {
		subs = nil
	}
	return Snapshot{
		Steps:         doc.Steps,
		CurrentStep:   doc.CurrentStep,
		FormStyle:     doc.Style,
		FormSettings:  doc.Settings,
		SavedForms:    forms,
		CurrentFormID: doc.FormID,
		Submissions:   subs,
	}
}

// Document rebuilds the live document from the snapshot.
func (s Snapshot) Document() document.Document {
	doc := document.Document{
		Steps:       s.Steps,
		CurrentStep: s.CurrentStep,
		Style:       s.FormStyle,
		Settings:    s.FormSettings,
		FormID:      s.CurrentFormID,
	}
	// A restored pointer must resolve to a live step.
	if last := len(doc.Steps) - 1; doc.CurrentStep > last || doc.CurrentStep < 0 {
		doc.CurrentStep = 0
	}
	return doc.Clone()
}

// Encode serialises the snapshot.
func Encode(s Snapshot) ([]byte, error) {
	blob, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("persistence: encode snapshot: %w", err)
	}
	return blob, nil
}

// Decode parses a stored blob. A blob that does not parse, or that lacks the
// steps array, is malformed; the steps sequence is the one non-negotiable
// key, everything else falls back to its zero value.
func Decode(blob []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(blob, &s); err != nil {
		return Snapshot{}, fmt.Errorf("persistence: decode snapshot: %w", err)
	}
	if s.Steps == nil {
		return Snapshot{}, fmt.Errorf("persistence: snapshot is missing steps")
	}
	return s, nil
}
