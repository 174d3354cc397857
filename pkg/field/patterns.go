package field

import "regexp"

// Shape patterns for input types whose values follow a fixed textual form.
// The shape belongs to the type, not to individual field instances.
var shapePatterns = map[Type]*regexp.Regexp{
	TypeEmail:    regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`),
	TypePhone:    regexp.MustCompile(`^\+?[0-9][0-9\s().-]{5,}$`),
	TypeWebsite:  regexp.MustCompile(`^(https?://)?[\w-]+(\.[\w-]+)+(/\S*)?$`),
	TypeIDNumber: regexp.MustCompile(`^[A-Za-z0-9-]{4,}$`),
	TypePayment:  regexp.MustCompile(`^[0-9][0-9\s-]{11,18}$`),
}

// ShapePattern returns the regular expression a non-empty value of the given
// type must match, or nil when the type carries no shape constraint.
func ShapePattern(t Type) *regexp.Regexp {
	return shapePatterns[t]
}
