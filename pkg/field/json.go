package field

import (
	"encoding/json"
	"fmt"
)

type envelope struct {
	ID          string `json:"id"`
	Type        Type   `json:"type"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Description string `json:"description,omitempty"`
	Required    bool   `json:"required,omitempty"`
	Value       string `json:"value,omitempty"`
}

// MarshalJSON serialises the field as a flat object carrying the tag plus
// exactly the attributes applicable to it. Layout fields never emit
// required/value keys.
func (f Field) MarshalJSON() ([]byte, error) {
	doc := map[string]any{
		"id":    f.ID,
		"type":  f.Type,
		"label": f.Label,
	}
	if f.Placeholder != "" {
		doc["placeholder"] = f.Placeholder
	}
	if f.Description != "" {
		doc["description"] = f.Description
	}
	if f.Type.Input() {
		doc["required"] = f.Required
		if f.Value != "" {
			doc["value"] = f.Value
		}
	}
	if f.Attrs != nil {
		raw, err := json.Marshal(f.Attrs)
		if err != nil {
			return nil, fmt.Errorf("field: marshal %s attrs: %w", f.Type, err)
		}
		var attrs map[string]any
		if err := json.Unmarshal(raw, &attrs); err != nil {
			return nil, fmt.Errorf("field: flatten %s attrs: %w", f.Type, err)
		}
		for key, value := range attrs {
			doc[key] = value
		}
	}
	return json.Marshal(doc)
}

// UnmarshalJSON decodes the common envelope, then the attribute struct
// dictated by the tag. Attributes belonging to other types are dropped.
func (f *Field) UnmarshalJSON(data []byte) error {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("field: decode envelope: %w", err)
	}
	if !env.Type.Known() {
		return fmt.Errorf("field: unknown type %q", env.Type)
	}

	f.ID = env.ID
	f.Type = env.Type
	f.Label = env.Label
	f.Placeholder = env.Placeholder
	f.Description = env.Description
	if env.Type.Input() {
		f.Required = env.Required
		f.Value = env.Value
	} else {
		f.Required = false
		f.Value = ""
	}

	attrs := newAttrs(env.Type)
	if attrs == nil {
		f.Attrs = nil
		return nil
	}
	if err := json.Unmarshal(data, attrs); err != nil {
		return fmt.Errorf("field: decode %s attrs: %w", env.Type, err)
	}
	f.Attrs = attrs
	return nil
}

func newAttrs(t Type) Attrs {
	switch t {
	case TypeHeading:
		return &HeadingAttrs{}
	case TypeTextBlock:
		return &TextBlockAttrs{}
	case TypeImage:
		return &ImageAttrs{}
	case TypeDivider:
		return &DividerAttrs{}
	case TypeSpacer:
		return &SpacerAttrs{}
	case TypeContainer:
		return &ContainerAttrs{}
	case TypeBulletList:
		return &BulletListAttrs{}
	case TypeAlert:
		return &AlertAttrs{}
	case TypeQuote:
		return &QuoteAttrs{}
	case TypeFile:
		return &FileAttrs{}
	case TypeProfilePhoto:
		return &ProfilePhotoAttrs{}
	default:
		return nil
	}
}
