package submission_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/submission"
)

func TestBuildTableColumnsFollowFirstOccurrence(t *testing.T) {
	subs := []submission.Submission{
		{
			ID:         "s1",
			Data:       map[string]string{"name": "Ada", "email": "ada@example.com"},
			FieldOrder: []string{"name", "email"},
		},
		{
			ID:         "s2",
			Data:       map[string]string{"name": "Grace", "email": "g@example.com", "phone": "+1 555 000 1111"},
			FieldOrder: []string{"name", "email", "phone"},
		},
	}

	table := submission.BuildTable(subs)
	if diff := cmp.Diff([]string{"name", "email", "phone"}, table.Columns); diff != "" {
		t.Fatalf("unexpected columns (-want +got):\n%s", diff)
	}
	want := [][]string{
		{"Ada", "ada@example.com", ""},
		{"Grace", "g@example.com", "+1 555 000 1111"},
	}
	if diff := cmp.Diff(want, table.Rows); diff != "" {
		t.Fatalf("unexpected rows (-want +got):\n%s", diff)
	}
}

func TestBuildTableFallsBackToSortedKeys(t *testing.T) {
	subs := []submission.Submission{
		{ID: "s1", Data: map[string]string{"b": "2", "a": "1"}},
	}
	table := submission.BuildTable(subs)
	if diff := cmp.Diff([]string{"a", "b"}, table.Columns); diff != "" {
		t.Fatalf("unexpected fallback columns (-want +got):\n%s", diff)
	}
}

func TestBuildTableEmpty(t *testing.T) {
	table := submission.BuildTable(nil)
	if len(table.Columns) != 0 || len(table.Rows) != 0 {
		t.Fatalf("expected an empty table, got %+v", table)
	}
}

func TestLogTable(t *testing.T) {
	log := submission.NewLog()
	log.Append(submission.Submission{
		ID:         "s1",
		FormID:     "form-1",
		Data:       map[string]string{"name": "Ada"},
		FieldOrder: []string{"name"},
	})
	table := log.Table("form-1")
	if len(table.Rows) != 1 || table.Rows[0][0] != "Ada" {
		t.Fatalf("unexpected table: %+v", table)
	}
}
