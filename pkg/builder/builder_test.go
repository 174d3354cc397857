package builder_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/storage"
	"github.com/goliatone/go-formbuilder/pkg/submission"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

type countingStore struct {
	*storage.MemoryStore
	mu    sync.Mutex
	saves int
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: storage.NewMemoryStore()}
}

func (s *countingStore) Save(ctx context.Context, key string, blob []byte) error {
	s.mu.Lock()
	s.saves++
	s.mu.Unlock()
	return s.MemoryStore.Save(ctx, key, blob)
}

func (s *countingStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func newBuilder(store storage.BlobStore) *builder.Builder {
	return builder.New(builder.WithStore(store), builder.WithDebounce(0))
}

func TestNewStartsFromDefaultDocument(t *testing.T) {
	b := newBuilder(storage.NewMemoryStore())
	doc := b.Document()
	if len(doc.Steps) != 1 || len(doc.Steps[0].Fields) != 3 {
		t.Fatalf("expected the stock default document, got %d steps", len(doc.Steps))
	}
}

func TestMutationsPersistAcrossRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	b := newBuilder(store)
	b.AddStep()
	stepID := b.Document().Steps[1].ID
	if err := b.AddField(stepID, field.TypePhone, field.Overrides{Label: "Phone"}); err != nil {
		t.Fatalf("add field: %v", err)
	}
	title := "Signup"
	b.UpdateSettings(document.SettingsPatch{Title: &title})
	before := b.Document()
	b.Close()

	restarted := newBuilder(store)
	if diff := cmp.Diff(before, restarted.Document()); diff != "" {
		t.Fatalf("state lost across restart (-want +got):\n%s", diff)
	}
}

func TestNoopMutationsDoNotWrite(t *testing.T) {
	store := newCountingStore()
	b := newBuilder(store)
	base := store.saveCount()

	if b.RemoveStep("missing") {
		t.Fatalf("expected unknown step removal to report false")
	}
	if b.RemoveField("missing-step", "missing-field") {
		t.Fatalf("expected unknown field removal to report false")
	}
	if b.UpdateStyle(document.StylePatch{}) {
		t.Fatalf("expected an empty style patch to report false")
	}
	if got := store.saveCount(); got != base {
		t.Fatalf("no-op mutations wrote %d snapshots", got-base)
	}
}

func TestSaveFormBindsAndUpdatesInPlace(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	b := builder.New(
		builder.WithStore(storage.NewMemoryStore()),
		builder.WithDebounce(0),
		builder.WithClock(func() time.Time { return fixed }),
	)

	form := b.SaveForm("Signup")
	if form.ID == "" || form.Name != "Signup" {
		t.Fatalf("unexpected saved form: %+v", form)
	}
	if !form.CreatedAt.Equal(fixed) || !form.UpdatedAt.Equal(fixed) {
		t.Fatalf("unexpected timestamps: %+v", form)
	}
	if got := b.Document().FormID; got != form.ID {
		t.Fatalf("expected the document to bind to %s, got %q", form.ID, got)
	}

	// A second save while bound updates in place instead of forking.
	again := b.SaveForm("Signup v2")
	if again.ID != form.ID {
		t.Fatalf("expected an in-place update, got a new id %s", again.ID)
	}
	forms := b.SavedForms()
	if len(forms) != 1 {
		t.Fatalf("expected one saved form, got %d", len(forms))
	}
	if forms[0].Name != "Signup v2" {
		t.Fatalf("expected the rename to stick, got %q", forms[0].Name)
	}
}

func TestLoadFormReplacesLiveDocument(t *testing.T) {
	b := newBuilder(storage.NewMemoryStore())
	form := b.SaveForm("Original")

	b.NewForm()
	if got := b.Document().FormID; got != "" {
		t.Fatalf("expected NewForm to unbind, got %q", got)
	}

	if !b.LoadForm(form.ID) {
		t.Fatalf("expected the form to load")
	}
	if got := b.Document().FormID; got != form.ID {
		t.Fatalf("expected the loaded document to bind to %s, got %q", form.ID, got)
	}
	if b.LoadForm("missing") {
		t.Fatalf("expected an unknown id to report false")
	}
}

func TestDeleteFormCascadesSubmissions(t *testing.T) {
	b := newBuilder(storage.NewMemoryStore())
	form := b.SaveForm("Signup")
	b.RecordSubmission(submission.Capture(testsupport.ContactDocument(t), form.ID))
	if got := b.SubmissionCount(form.ID); got != 1 {
		t.Fatalf("expected 1 submission, got %d", got)
	}

	if !b.DeleteForm(form.ID) {
		t.Fatalf("expected deletion to succeed")
	}
	if got := b.SubmissionCount(form.ID); got != 0 {
		t.Fatalf("expected submissions to be deleted with the form, got %d", got)
	}
	if got := b.Document().FormID; got != "" {
		t.Fatalf("expected the live document to unbind, got %q", got)
	}
	if b.DeleteForm(form.ID) {
		t.Fatalf("expected second deletion to report false")
	}
}

func TestDuplicateForm(t *testing.T) {
	b := newBuilder(storage.NewMemoryStore())
	form := b.SaveForm("Signup")

	dup, ok := b.DuplicateForm(form.ID, "Signup Copy")
	if !ok {
		t.Fatalf("expected duplication to succeed")
	}
	if dup.ID == form.ID {
		t.Fatalf("expected the copy to get a fresh id")
	}
	if dup.Name != "Signup Copy" {
		t.Fatalf("unexpected copy name %q", dup.Name)
	}
	if dup.Document.FormID != dup.ID {
		t.Fatalf("expected the copied document to bind to its own id")
	}
	if len(b.SavedForms()) != 2 {
		t.Fatalf("expected two saved forms, got %d", len(b.SavedForms()))
	}
	if _, ok := b.DuplicateForm("missing", "x"); ok {
		t.Fatalf("expected duplication of an unknown id to fail")
	}
}

func TestPublicLink(t *testing.T) {
	if got := builder.PublicLink("abc-123"); got != "/form/abc-123" {
		t.Fatalf("unexpected public link %q", got)
	}
}

func TestFillSessionOverSavedForm(t *testing.T) {
	b := newBuilder(storage.NewMemoryStore())
	form := b.SaveForm("Signup")

	session, ok := b.FillSession(form.ID)
	if !ok {
		t.Fatalf("expected a session for %s", form.ID)
	}
	if session.StepIndex() != 0 {
		t.Fatalf("expected the session to start at step 0")
	}
	if _, ok := b.FillSession("missing"); ok {
		t.Fatalf("expected no session for an unknown form")
	}
}

func TestSubmissionReviewFlow(t *testing.T) {
	b := newBuilder(storage.NewMemoryStore())
	form := b.SaveForm("Signup")

	doc := testsupport.ContactDocument(t)
	doc = testsupport.FillStep(t, doc, "step-contact", map[string]string{
		"fld-name":  "Ada",
		"fld-email": "ada@example.com",
	})
	sub := submission.Capture(doc, form.ID)
	b.RecordSubmission(sub)

	if !b.UpdateSubmissionStatus(form.ID, sub.ID, submission.StatusApproved) {
		t.Fatalf("expected the status change to apply")
	}
	if b.UpdateSubmissionStatus(form.ID, sub.ID, submission.StatusApproved) {
		t.Fatalf("expected a repeated status to report false")
	}
	if !b.SetSubmissionNotes(form.ID, sub.ID, "checked") {
		t.Fatalf("expected notes to apply")
	}

	got := b.Submissions(form.ID)[0]
	if got.Status != submission.StatusApproved || got.Notes != "checked" {
		t.Fatalf("review state lost: %+v", got)
	}

	table := b.SubmissionTable(form.ID)
	if len(table.Rows) != 1 || table.Rows[0][0] != "Ada" {
		t.Fatalf("unexpected table: %+v", table)
	}

	if !b.DeleteSubmission(form.ID, sub.ID) {
		t.Fatalf("expected deletion to apply")
	}
	if b.DeleteSubmission(form.ID, sub.ID) {
		t.Fatalf("expected second deletion to report false")
	}
}

func TestSubmissionsPersistAcrossRestart(t *testing.T) {
	store := storage.NewMemoryStore()
	b := newBuilder(store)
	form := b.SaveForm("Signup")
	b.RecordSubmission(submission.Capture(testsupport.ContactDocument(t), form.ID))
	b.Close()

	restarted := newBuilder(store)
	if got := restarted.SubmissionCount(form.ID); got != 1 {
		t.Fatalf("expected the submission to survive a restart, got %d", got)
	}
	forms := restarted.SavedForms()
	if len(forms) != 1 || forms[0].ID != form.ID {
		t.Fatalf("expected the saved form to survive a restart, got %+v", forms)
	}
}

func TestReplaceDocument(t *testing.T) {
	b := newBuilder(storage.NewMemoryStore())
	doc := testsupport.ContactDocument(t)
	doc.FormID = "stale"
	doc.CurrentStep = 9

	b.ReplaceDocument(doc)
	got := b.Document()
	if got.FormID != "" {
		t.Fatalf("expected the replacement to start unbound, got %q", got.FormID)
	}
	if got.CurrentStep != 0 {
		t.Fatalf("expected the step pointer to reset, got %d", got.CurrentStep)
	}
	if len(got.Steps) != 2 {
		t.Fatalf("expected the replacement schema, got %d steps", len(got.Steps))
	}
}
