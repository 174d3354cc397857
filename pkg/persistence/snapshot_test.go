package persistence_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/persistence"
	"github.com/goliatone/go-formbuilder/pkg/submission"
	"github.com/goliatone/go-formbuilder/pkg/testsupport"
)

func TestSnapshotRoundTrip(t *testing.T) {
	doc := testsupport.ContactDocument(t)
	doc = testsupport.FillStep(t, doc, "step-contact", map[string]string{"fld-name": "Ada"})
	doc.FormID = "form-1"

	saved := []document.SavedForm{{ID: "form-1", Name: "Contact", Document: doc.Clone()}}
	subs := map[string][]submission.Submission{
		"form-1": {submission.Capture(doc, "form-1")},
	}

	snap := persistence.Capture(doc, saved, subs)
	blob, err := persistence.Encode(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := persistence.Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff(snap, decoded); diff != "" {
		t.Fatalf("snapshot round trip mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(doc, decoded.Document()); diff != "" {
		t.Fatalf("document round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotKeepsTransientValues(t *testing.T) {
	doc := testsupport.ContactDocument(t)
	doc = testsupport.FillStep(t, doc, "step-contact", map[string]string{"fld-name": "Ada"})

	snap := persistence.Capture(doc, nil, nil)
	blob, err := persistence.Encode(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := persistence.Decode(blob)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	restored := decoded.Document()
	got, _ := restored.Steps[0].FieldByID("fld-name")
	if got.Value != "Ada" {
		t.Fatalf("expected transient value to persist, got %q", got.Value)
	}
}

func TestDecodeRejectsMalformedBlobs(t *testing.T) {
	cases := []struct {
		name string
		blob []byte
	}{
		{"not json", []byte("not json at all")},
		{"missing steps", []byte(`{"currentStep":0}`)},
		{"wrong shape", []byte(`{"steps":"nope"}`)},
	}
	for _, tc := range cases {
		if _, err := persistence.Decode(tc.blob); err == nil {
			t.Fatalf("%s: expected a decode error", tc.name)
		}
	}
}

func TestSnapshotDocumentClampsPointer(t *testing.T) {
	doc := testsupport.ContactDocument(t)
	snap := persistence.Capture(doc, nil, nil)
	snap.CurrentStep = 7
	if got := snap.Document().CurrentStep; got != 0 {
		t.Fatalf("expected a dangling pointer to reset to 0, got %d", got)
	}
	snap.CurrentStep = -1
	if got := snap.Document().CurrentStep; got != 0 {
		t.Fatalf("expected a negative pointer to reset to 0, got %d", got)
	}
}
