package field

import "reflect"

// CloneAttrs returns a deep copy of an attribute struct, or nil.
func CloneAttrs(a Attrs) Attrs {
	if a == nil {
		return nil
	}
	return a.clone()
}

// AttrsMatch reports whether the attribute struct belongs to the given type.
// A nil attrs value matches types that carry no extra attributes.
func AttrsMatch(t Type, a Attrs) bool {
	want := newAttrs(t)
	if want == nil || a == nil {
		return want == nil && a == nil
	}
	return reflect.TypeOf(want) == reflect.TypeOf(a)
}

// SanitizeAttrs cleans the rich-text content carried by content-bearing
// attribute structs in place. Other attribute structs pass through untouched.
func SanitizeAttrs(a Attrs) {
	switch attrs := a.(type) {
	case *HeadingAttrs:
		attrs.Content = SanitizeContent(attrs.Content)
	case *TextBlockAttrs:
		attrs.Content = SanitizeContent(attrs.Content)
	case *ContainerAttrs:
		attrs.Content = SanitizeContent(attrs.Content)
	case *AlertAttrs:
		attrs.Content = SanitizeContent(attrs.Content)
	case *QuoteAttrs:
		attrs.Content = SanitizeContent(attrs.Content)
	}
}
