package field

// Type identifies one member of the closed set of field kinds. Layout types
// render static content and never capture input; input types carry required
// semantics and a mutable value.
type Type string

const (
	// Layout types.
	TypeHeading    Type = "heading"
	TypeTextBlock  Type = "text_block"
	TypeImage      Type = "image"
	TypeDivider    Type = "divider"
	TypeSpacer     Type = "spacer"
	TypeContainer  Type = "container"
	TypeBulletList Type = "bullet_list"
	TypeAlert      Type = "alert"
	TypeQuote      Type = "quote"

	// Input types.
	TypeText            Type = "text"
	TypeEmail           Type = "email"
	TypePhone           Type = "phone"
	TypePassword        Type = "password"
	TypeConfirmPassword Type = "confirm_password"
	TypeAddress         Type = "address"
	TypeDate            Type = "date"
	TypeCompany         Type = "company"
	TypeWebsite         Type = "website"
	TypeIDNumber        Type = "id_number"
	TypePayment         Type = "payment"
	TypeTextarea        Type = "textarea"
	TypeFile            Type = "file"
	TypeProfilePhoto    Type = "profile_photo"
)

var layoutTypes = map[Type]struct{}{
	TypeHeading:    {},
	TypeTextBlock:  {},
	TypeImage:      {},
	TypeDivider:    {},
	TypeSpacer:     {},
	TypeContainer:  {},
	TypeBulletList: {},
	TypeAlert:      {},
	TypeQuote:      {},
}

var inputTypes = map[Type]struct{}{
	TypeText:            {},
	TypeEmail:           {},
	TypePhone:           {},
	TypePassword:        {},
	TypeConfirmPassword: {},
	TypeAddress:         {},
	TypeDate:            {},
	TypeCompany:         {},
	TypeWebsite:         {},
	TypeIDNumber:        {},
	TypePayment:         {},
	TypeTextarea:        {},
	TypeFile:            {},
	TypeProfilePhoto:    {},
}

// Layout reports whether the type is a presentation-only element.
func (t Type) Layout() bool {
	_, ok := layoutTypes[t]
	return ok
}

// Input reports whether the type captures a user-supplied value.
func (t Type) Input() bool {
	_, ok := inputTypes[t]
	return ok
}

// Known reports whether the type belongs to the closed set.
func (t Type) Known() bool {
	return t.Layout() || t.Input()
}

// Attrs is the sealed interface implemented by every per-type attribute
// struct. A field carries exactly the attribute struct matching its type, or
// nil when the type has no extra attributes.
type Attrs interface {
	clone() Attrs
}

// HeadingAttrs decorates heading fields.
type HeadingAttrs struct {
	Content   string `json:"content"`
	Level     string `json:"headingLevel"`
	TextAlign string `json:"textAlign"`
	Color     string `json:"color"`
	FontSize  string `json:"fontSize"`
}

func (a *HeadingAttrs) clone() Attrs {
	cp := *a
	return &cp
}

// TextBlockAttrs decorates free-form rich text blocks. Content is treated as
// an opaque markup payload and is sanitised on write.
type TextBlockAttrs struct {
	Content   string `json:"content"`
	TextAlign string `json:"textAlign"`
	Color     string `json:"color"`
	FontSize  string `json:"fontSize"`
}

func (a *TextBlockAttrs) clone() Attrs {
	cp := *a
	return &cp
}

// ImageAttrs decorates image fields.
type ImageAttrs struct {
	Src          string   `json:"src"`
	Alt          string   `json:"alt"`
	Width        string   `json:"width"`
	Height       string   `json:"height"`
	Alignment    string   `json:"alignment"`
	AllowedTypes []string `json:"allowedTypes"`
	MaxSize      int      `json:"maxSize"`
}

func (a *ImageAttrs) clone() Attrs {
	cp := *a
	cp.AllowedTypes = append([]string(nil), a.AllowedTypes...)
	return &cp
}

// DividerAttrs decorates divider fields.
type DividerAttrs struct {
	Style   string `json:"style"`
	Color   string `json:"color"`
	Spacing string `json:"spacing"`
}

func (a *DividerAttrs) clone() Attrs {
	cp := *a
	return &cp
}

// SpacerAttrs decorates spacer fields.
type SpacerAttrs struct {
	Spacing      string `json:"spacing"`
	ShowLine     bool   `json:"showLine"`
	LineColor    string `json:"lineColor"`
	CustomHeight string `json:"customHeight"`
}

func (a *SpacerAttrs) clone() Attrs {
	cp := *a
	return &cp
}

// ContainerAttrs decorates container fields.
type ContainerAttrs struct {
	Content         string `json:"content"`
	BackgroundColor string `json:"backgroundColor"`
	Padding         string `json:"padding"`
	Border          bool   `json:"border"`
	BorderColor     string `json:"borderColor"`
	BorderRadius    string `json:"borderRadius"`
}

func (a *ContainerAttrs) clone() Attrs {
	cp := *a
	return &cp
}

// BulletListAttrs decorates bullet list fields.
type BulletListAttrs struct {
	Items     []string `json:"items"`
	Color     string   `json:"color"`
	TextAlign string   `json:"textAlign"`
	FontSize  string   `json:"fontSize"`
}

func (a *BulletListAttrs) clone() Attrs {
	cp := *a
	cp.Items = append([]string(nil), a.Items...)
	return &cp
}

// AlertAttrs decorates alert fields. Variant is one of info, success,
// warning, error.
type AlertAttrs struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Variant string `json:"variant"`
}

func (a *AlertAttrs) clone() Attrs {
	cp := *a
	return &cp
}

// QuoteAttrs decorates quote fields.
type QuoteAttrs struct {
	Content         string `json:"content"`
	Citation        string `json:"citation"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	Padding         string `json:"padding"`
	Italic          bool   `json:"italic"`
}

func (a *QuoteAttrs) clone() Attrs {
	cp := *a
	return &cp
}

// FileAttrs constrains file upload fields.
type FileAttrs struct {
	AllowedTypes []string `json:"allowedTypes"`
	MaxSize      int      `json:"maxSize"`
}

func (a *FileAttrs) clone() Attrs {
	cp := *a
	cp.AllowedTypes = append([]string(nil), a.AllowedTypes...)
	return &cp
}

// ProfilePhotoAttrs constrains profile photo fields.
type ProfilePhotoAttrs struct {
	AllowedTypes []string `json:"allowedTypes"`
	MaxSize      int      `json:"maxSize"`
	ImageURL     string   `json:"imageUrl,omitempty"`
}

func (a *ProfilePhotoAttrs) clone() Attrs {
	cp := *a
	cp.AllowedTypes = append([]string(nil), a.AllowedTypes...)
	return &cp
}

// Field is one element of a form step: a common envelope plus the attribute
// struct matching its type. ID and Type are immutable after creation.
// Required and Value are only meaningful for input types.
type Field struct {
	ID          string
	Type        Type
	Label       string
	Placeholder string
	Description string
	Required    bool
	Value       string
	Attrs       Attrs
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	cp := f
	if f.Attrs != nil {
		cp.Attrs = f.Attrs.clone()
	}
	return cp
}
