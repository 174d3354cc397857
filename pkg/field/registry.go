package field

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownType signals an Instantiate call with a tag outside the closed
// set. This is a programmer error at the call boundary, never a user-facing
// condition.
var ErrUnknownType = errors.New("field: unknown field type")

// Overrides seeds a subset of attributes at instantiation time. Keys that do
// not apply to the requested type are ignored, so callers cannot smuggle
// attributes across type boundaries.
type Overrides struct {
	Label       string
	Placeholder string
	Description string
	Required    bool
	// Content seeds the initial content of content-bearing layout types
	// (heading, text_block, container, alert, quote). Ignored elsewhere.
	Content string
}

// Instantiate produces a field of the given type with a fresh unique id, the
// common defaults, and exactly the attribute subset the type dictates.
func Instantiate(t Type, o Overrides) (Field, error) {
	if !t.Known() {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}

	f := Field{
		ID:          uuid.NewString(),
		Type:        t,
		Label:       o.Label,
		Placeholder: o.Placeholder,
		Description: o.Description,
		Attrs:       defaultAttrs(t),
	}
	if t.Input() {
		f.Required = o.Required
	}
	if content := SanitizeContent(o.Content); content != "" {
		seedContent(f.Attrs, content)
	}
	return f, nil
}

func defaultAttrs(t Type) Attrs {
	switch t {
	case TypeHeading:
		return &HeadingAttrs{
			Content:   "New Heading",
			Level:     "h2",
			TextAlign: "left",
			Color:     "#000000",
			FontSize:  "default",
		}
	case TypeTextBlock:
		return &TextBlockAttrs{
			Content:   "<p>Enter your text here</p>",
			TextAlign: "left",
			Color:     "#374151",
			FontSize:  "1rem",
		}
	case TypeImage:
		return &ImageAttrs{
			Width:        "100%",
			Height:       "auto",
			Alignment:    "center",
			AllowedTypes: []string{"jpg", "jpeg", "png", "gif"},
			MaxSize:      5,
		}
	case TypeDivider:
		return &DividerAttrs{
			Style:   "solid",
			Color:   "#e5e7eb",
			Spacing: "medium",
		}
	case TypeSpacer:
		return &SpacerAttrs{
			Spacing:      "medium",
			LineColor:    "#f3f4f6",
			CustomHeight: "1rem",
		}
	case TypeContainer:
		return &ContainerAttrs{
			BackgroundColor: "#f9fafb",
			Padding:         "1.5rem",
			BorderColor:     "#e5e7eb",
			BorderRadius:    "0.5rem",
		}
	case TypeBulletList:
		return &BulletListAttrs{
			Items:     []string{"First item", "Second item", "Third item"},
			Color:     "#374151",
			TextAlign: "left",
			FontSize:  "1rem",
		}
	case TypeAlert:
		return &AlertAttrs{Variant: "info"}
	case TypeQuote:
		return &QuoteAttrs{
			AccentColor:     "#e5e7eb",
			BackgroundColor: "#f9fafb",
			TextColor:       "#374151",
			Padding:         "1.5rem",
			Italic:          true,
		}
	case TypeFile:
		return &FileAttrs{
			AllowedTypes: []string{"pdf", "doc", "docx"},
			MaxSize:      5,
		}
	case TypeProfilePhoto:
		return &ProfilePhotoAttrs{
			AllowedTypes: []string{"jpg", "jpeg", "png"},
			MaxSize:      2,
		}
	default:
		return nil
	}
}

func seedContent(attrs Attrs, content string) {
	switch a := attrs.(type) {
	case *HeadingAttrs:
		a.Content = content
	case *TextBlockAttrs:
		a.Content = content
	case *ContainerAttrs:
		a.Content = content
	case *AlertAttrs:
		a.Content = content
	case *QuoteAttrs:
		a.Content = content
	}
}

// PaletteItem describes one entry of the field picker.
type PaletteItem struct {
	Type   Type
	Name   string
	Layout bool
}

var palette = []PaletteItem{
	{Type: TypeHeading, Name: "Heading", Layout: true},
	{Type: TypeTextBlock, Name: "Text Block", Layout: true},
	{Type: TypeImage, Name: "Image", Layout: true},
	{Type: TypeDivider, Name: "Divider", Layout: true},
	{Type: TypeSpacer, Name: "Spacer", Layout: true},
	{Type: TypeContainer, Name: "Container", Layout: true},
	{Type: TypeBulletList, Name: "Bullet List", Layout: true},
	{Type: TypeAlert, Name: "Alert", Layout: true},
	{Type: TypeQuote, Name: "Quote", Layout: true},
	{Type: TypeText, Name: "Text Input"},
	{Type: TypeEmail, Name: "Email"},
	{Type: TypePhone, Name: "Phone"},
	{Type: TypePassword, Name: "Password"},
	{Type: TypeConfirmPassword, Name: "Confirm Password"},
	{Type: TypeAddress, Name: "Address"},
	{Type: TypeProfilePhoto, Name: "Profile Photo"},
	{Type: TypeDate, Name: "Date"},
	{Type: TypeCompany, Name: "Company"},
	{Type: TypeWebsite, Name: "Website"},
	{Type: TypeIDNumber, Name: "ID Number"},
	{Type: TypePayment, Name: "Payment"},
	{Type: TypeTextarea, Name: "Text Area"},
	{Type: TypeFile, Name: "File Upload"},
}

// Palette returns the ordered field picker entries, layout types first.
func Palette() []PaletteItem {
	out := make([]PaletteItem, len(palette))
	copy(out, palette)
	return out
}
