// Package builder is the orchestration layer around the pure document core:
// it owns the single live document, the saved-forms index, and the submission
// log, and snapshots the whole state through the persistence adapter after
// every effective mutation. No-op mutations never trigger a write.
package builder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/navigation"
	"github.com/goliatone/go-formbuilder/pkg/persistence"
	"github.com/goliatone/go-formbuilder/pkg/storage"
	"github.com/goliatone/go-formbuilder/pkg/submission"
)

// PublicLinkPrefix is the fixed route prefix shared form links hang off.
const PublicLinkPrefix = "/form/"

// ErrFormNotFound reports a saved-form id absent from the index.
var ErrFormNotFound = errors.New("builder: form not found")

// Builder coordinates the editor state for one process. It is single-writer:
// operations are issued synchronously from user interaction events.
type Builder struct {
	store       storage.BlobStore
	persistOpts []persistence.Option
	now         func() time.Time

	doc       document.Document
	saved     []document.SavedForm
	log       *submission.Log
	persister *persistence.Persister
}

// New restores state from the configured store, or synthesises the default
// document when nothing (or nothing usable) is stored.
func New(options ...Option) *Builder {
	b := &Builder{now: time.Now}
	for _, opt := range options {
		if opt != nil {
			opt(b)
		}
	}
	if b.store == nil {
		b.store = storage.NewMemoryStore()
	}
	b.persister = persistence.New(b.store, b.persistOpts...)

	if snap, ok := b.persister.Load(context.Background()); ok {
		b.doc = snap.Document()
		b.saved = snap.SavedForms
		b.log = submission.RestoreLog(snap.Submissions)
	} else {
		b.doc = document.Default()
		b.log = submission.NewLog()
	}
	return b
}

// Document returns a copy of the live document.
func (b *Builder) Document() document.Document {
	return b.doc.Clone()
}

// Close flushes any pending snapshot.
func (b *Builder) Close() {
	b.persister.Close()
}

// Flush forces the pending snapshot out immediately.
func (b *Builder) Flush() {
	b.persister.Flush()
}

func (b *Builder) persist() {
	b.persister.Queue(persistence.Capture(b.doc, b.saved, b.log.Snapshot()))
}

func (b *Builder) commit(doc document.Document, changed bool) bool {
	if !changed {
		return false
	}
	b.doc = doc
	b.persist()
	return true
}

// AddStep appends an empty step.
func (b *Builder) AddStep() {
	b.commit(b.doc.AddStep())
}

// RemoveStep removes a step by id; absent ids are a no-op.
func (b *Builder) RemoveStep(stepID string) bool {
	return b.commit(b.doc.RemoveStep(stepID))
}

// SetCurrentStep moves the active-step pointer.
func (b *Builder) SetCurrentStep(index int) bool {
	return b.commit(b.doc.SetCurrentStep(index))
}

// AddField appends a new field of the given type to a step.
func (b *Builder) AddField(stepID string, t field.Type, o field.Overrides) error {
	doc, changed, err := b.doc.AddField(stepID, t, o)
	if err != nil {
		return err
	}
	b.commit(doc, changed)
	return nil
}

// UpdateField merges a partial update into a field.
func (b *Builder) UpdateField(stepID, fieldID string, patch document.FieldPatch) error {
	doc, changed, err := b.doc.UpdateField(stepID, fieldID, patch)
	if err != nil {
		return err
	}
	b.commit(doc, changed)
	return nil
}

// UpdateFieldValue sets a field's transient value.
func (b *Builder) UpdateFieldValue(stepID, fieldID, value string) bool {
	return b.commit(b.doc.UpdateFieldValue(stepID, fieldID, value))
}

// RemoveField removes a field by id; absent ids are a no-op.
func (b *Builder) RemoveField(stepID, fieldID string) bool {
	return b.commit(b.doc.RemoveField(stepID, fieldID))
}

// ReorderFields moves a field to another field's position within one step.
func (b *Builder) ReorderFields(stepID, movedID, targetID string) bool {
	return b.commit(b.doc.ReorderFields(stepID, movedID, targetID))
}

// UpdateStyle shallow-merges style changes.
func (b *Builder) UpdateStyle(patch document.StylePatch) bool {
	return b.commit(b.doc.UpdateStyle(patch))
}

// UpdateSettings shallow-merges settings changes.
func (b *Builder) UpdateSettings(patch document.SettingsPatch) bool {
	return b.commit(b.doc.UpdateSettings(patch))
}

// SavedForms returns copies of the saved-forms index.
func (b *Builder) SavedForms() []document.SavedForm {
	out := make([]document.SavedForm, len(b.saved))
	for i, f := range b.saved {
		out[i] = f.Clone()
	}
	return out
}

// SaveForm snapshots the live document under a name. When the document is
// already bound to a saved form the snapshot replaces it and bumps
// UpdatedAt; otherwise a new saved form is created and the document binds to
// its id.
func (b *Builder) SaveForm(name string) document.SavedForm {
	now := b.now().UTC()
	if b.doc.FormID != "" {
		for i := range b.saved {
			if b.saved[i].ID == b.doc.FormID {
				b.saved[i].Name = name
				b.saved[i].Document = b.doc.Clone()
				b.saved[i].UpdatedAt = now
				b.persist()
				return b.saved[i].Clone()
			}
		}
	}

	form := document.SavedForm{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	b.doc.FormID = form.ID
	form.Document = b.doc.Clone()
	b.saved = append(b.saved, form)
	b.persist()
	return form.Clone()
}

// LoadForm replaces the live document with a saved form's snapshot.
func (b *Builder) LoadForm(formID string) bool {
	for _, f := range b.saved {
		if f.ID == formID {
			doc := f.Document.Clone()
			doc.FormID = f.ID
			b.doc = doc
			b.persist()
			return true
		}
	}
	return false
}

// ReplaceDocument swaps in an externally built document, e.g. one imported
// from an OpenAPI description or a definition file. The document starts
// unbound from any saved form.
func (b *Builder) ReplaceDocument(doc document.Document) {
	doc = doc.Clone()
	doc.FormID = ""
	if doc.CurrentStep < 0 || doc.CurrentStep >= len(doc.Steps) {
		doc.CurrentStep = 0
	}
	b.doc = doc
	b.persist()
}

// NewForm resets the editor to a fresh default document, unbound from any
// saved form.
func (b *Builder) NewForm() {
	b.doc = document.Default()
	b.persist()
}

// DeleteForm removes a saved form and every submission it owns. Deleting the
// form the editor is bound to keeps the live document but unbinds it.
func (b *Builder) DeleteForm(formID string) bool {
	for i, f := range b.saved {
		if f.ID == formID {
			b.saved = append(b.saved[:i], b.saved[i+1:]...)
			b.log.DeleteForm(formID)
			if b.doc.FormID == formID {
				b.doc.FormID = ""
			}
			b.persist()
			return true
		}
	}
	return false
}

// DuplicateForm copies a saved form under a new identity.
func (b *Builder) DuplicateForm(formID, name string) (document.SavedForm, bool) {
	for _, f := range b.saved {
		if f.ID == formID {
			now := b.now().UTC()
			cp := f.Clone()
			cp.ID = uuid.NewString()
			cp.Name = name
			cp.Document.FormID = cp.ID
			cp.CreatedAt = now
			cp.UpdatedAt = now
			b.saved = append(b.saved, cp)
			b.persist()
			return cp.Clone(), true
		}
	}
	return document.SavedForm{}, false
}

// PublicLink derives the shareable path for a saved form. The mapping is a
// pure function of the form id; serving the route is the host application's
// job.
func PublicLink(formID string) string {
	return PublicLinkPrefix + formID
}

// FillSession starts a fill/submit flow over a saved form's document.
func (b *Builder) FillSession(formID string) (*navigation.Session, bool) {
	for _, f := range b.saved {
		if f.ID == formID {
			return navigation.NewSession(f.Document), true
		}
	}
	return nil, false
}

// PreviewSession starts a fill/submit flow over the live document.
func (b *Builder) PreviewSession() *navigation.Session {
	return navigation.NewSession(b.doc)
}

// RecordSubmission appends a captured submission to the log.
func (b *Builder) RecordSubmission(sub submission.Submission) {
	b.log.Append(sub)
	b.persist()
}

// Submissions lists a form's submissions in capture order.
func (b *Builder) Submissions(formID string) []submission.Submission {
	return b.log.ForForm(formID)
}

// SubmissionCount reports how many submissions a form has received.
func (b *Builder) SubmissionCount(formID string) int {
	return b.log.Count(formID)
}

// UpdateSubmissionStatus moves a submission between review states.
// Re-applying the current status is a no-op, not an error.
func (b *Builder) UpdateSubmissionStatus(formID, subID string, status submission.Status) bool {
	if !b.log.UpdateStatus(formID, subID, status) {
		return false
	}
	b.persist()
	return true
}

// SetSubmissionNotes replaces a submission's reviewer notes.
func (b *Builder) SetSubmissionNotes(formID, subID, notes string) bool {
	if !b.log.SetNotes(formID, subID, notes) {
		return false
	}
	b.persist()
	return true
}

// DeleteSubmission removes a submission; unknown ids are a no-op.
func (b *Builder) DeleteSubmission(formID, subID string) bool {
	if !b.log.Delete(formID, subID) {
		return false
	}
	b.persist()
	return true
}

// SubmissionTable flattens a form's submissions for export.
func (b *Builder) SubmissionTable(formID string) submission.Table {
	return b.log.Table(formID)
}
