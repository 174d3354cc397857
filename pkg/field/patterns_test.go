package field_test

import (
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/field"
)

func TestShapePatterns(t *testing.T) {
	cases := []struct {
		fieldType field.Type
		value     string
		match     bool
	}{
		{field.TypeEmail, "user@example.com", true},
		{field.TypeEmail, "not-an-email", false},
		{field.TypeEmail, "a@b", false},
		{field.TypePhone, "+1 (555) 123-4567", true},
		{field.TypePhone, "phone", false},
		{field.TypeWebsite, "https://example.com/path", true},
		{field.TypeWebsite, "example.com", true},
		{field.TypeWebsite, "not a url", false},
		{field.TypeIDNumber, "AB-1234", true},
		{field.TypeIDNumber, "x", false},
		{field.TypePayment, "4111 1111 1111 1111", true},
		{field.TypePayment, "41", false},
	}
	for _, tc := range cases {
		pattern := field.ShapePattern(tc.fieldType)
		if pattern == nil {
			t.Fatalf("expected a pattern for %s", tc.fieldType)
		}
		if got := pattern.MatchString(tc.value); got != tc.match {
			t.Fatalf("%s %q: expected match=%v, got %v", tc.fieldType, tc.value, tc.match, got)
		}
	}
}

func TestShapePatternAbsentForFreeText(t *testing.T) {
	for _, ft := range []field.Type{field.TypeText, field.TypeTextarea, field.TypeHeading} {
		if field.ShapePattern(ft) != nil {
			t.Fatalf("expected no pattern for %s", ft)
		}
	}
}

func TestSanitizeContent(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"plain text", "plain text"},
		{"<p>kept</p>", "<p>kept</p>"},
		{`<script>alert("x")</script>ok`, "ok"},
		{`<p onclick="alert(1)">text</p>`, "<p>text</p>"},
	}
	for _, tc := range cases {
		if got := field.SanitizeContent(tc.raw); got != tc.want {
			t.Fatalf("sanitize %q: expected %q, got %q", tc.raw, tc.want, got)
		}
	}
}
