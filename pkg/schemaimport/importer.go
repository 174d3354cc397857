// Package schemaimport builds a form document from an OpenAPI operation's
// request schema, so an existing API contract can seed a form instead of
// assembling every field by hand.
package schemaimport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/field"
)

var requestMediaTypes = []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"}

// FromData parses an OpenAPI document payload and builds a form document for
// the named operation.
func FromData(ctx context.Context, data []byte, operationID string) (document.Document, error) {
	if err := ctx.Err(); err != nil {
		return document.Document{}, err
	}
	if len(data) == 0 {
		return document.Document{}, errors.New("schemaimport: document payload is empty")
	}
	if operationID == "" {
		return document.Document{}, errors.New("schemaimport: operation id is required")
	}

	loader := &openapi3.Loader{Context: ctx}
	spec, err := loader.LoadFromData(data)
	if err != nil {
		return document.Document{}, fmt.Errorf("schemaimport: load document: %w", err)
	}

	op := findOperation(spec, operationID)
	if op == nil {
		return document.Document{}, fmt.Errorf("schemaimport: operation %q not found", operationID)
	}

	schema := requestSchema(op)
	if schema == nil {
		return document.Document{}, fmt.Errorf("schemaimport: operation %q has no request schema", operationID)
	}

	return buildDocument(op, schema)
}

func findOperation(spec *openapi3.T, operationID string) *openapi3.Operation {
	if spec.Paths == nil {
		return nil
	}
	for _, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		for _, op := range []*openapi3.Operation{
			item.Get, item.Put, item.Post, item.Delete, item.Patch,
		} {
			if op != nil && op.OperationID == operationID {
				return op
			}
		}
	}
	return nil
}

func requestSchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	content := op.RequestBody.Value.Content
	for _, mediaType := range requestMediaTypes {
		if mt, ok := content[mediaType]; ok && mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	for _, mt := range content {
		if mt.Schema != nil && mt.Schema.Value != nil {
			return mt.Schema.Value
		}
	}
	return nil
}

func buildDocument(op *openapi3.Operation, schema *openapi3.Schema) (document.Document, error) {
	doc := document.Document{
		Steps:    []document.Step{document.NewStep()},
		Style:    document.DefaultStyle(),
		Settings: document.DefaultSettings(),
	}
	if op.Summary != "" {
		doc.Settings.Title = op.Summary
		doc.Steps[0].Title = op.Summary
	}
	if op.Description != "" {
		doc.Settings.Description = op.Description
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	for _, name := range sortedProperties(schema) {
		prop := schema.Properties[name].Value
		if prop == nil {
			continue
		}
		t := fieldTypeFor(name, prop)
		f, err := field.Instantiate(t, field.Overrides{
			Label:       labelFor(name, prop),
			Placeholder: placeholderFor(prop),
			Description: prop.Description,
			Required:    required[name],
		})
		if err != nil {
			return document.Document{}, fmt.Errorf("schemaimport: property %q: %w", name, err)
		}
		doc.Steps[0].Fields = append(doc.Steps[0].Fields, f)
	}

	if len(doc.Steps[0].Fields) == 0 {
		return document.Document{}, errors.New("schemaimport: request schema has no usable properties")
	}
	return doc, nil
}

func sortedProperties(schema *openapi3.Schema) []string {
	names := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fieldTypeFor(name string, prop *openapi3.Schema) field.Type {
	switch prop.Format {
	case "email":
		return field.TypeEmail
	case "password":
		return field.TypePassword
	case "date", "date-time":
		return field.TypeDate
	case "uri", "url", "hostname":
		return field.TypeWebsite
	case "phone", "tel":
		return field.TypePhone
	}

	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "email"):
		return field.TypeEmail
	case strings.Contains(lower, "phone") || strings.Contains(lower, "tel"):
		return field.TypePhone
	case strings.Contains(lower, "company") || strings.Contains(lower, "organization"):
		return field.TypeCompany
	case strings.Contains(lower, "website") || strings.Contains(lower, "url"):
		return field.TypeWebsite
	case strings.Contains(lower, "address"):
		return field.TypeAddress
	}

	if prop.MaxLength != nil && *prop.MaxLength > 255 {
		return field.TypeTextarea
	}
	return field.TypeText
}

func labelFor(name string, prop *openapi3.Schema) string {
	if prop.Title != "" {
		return prop.Title
	}
	return humanise(name)
}

func placeholderFor(prop *openapi3.Schema) string {
	if prop.Example == nil {
		return ""
	}
	if s, ok := prop.Example.(string); ok {
		return s
	}
	return ""
}

// humanise renders a camelCase or snake_case property name as a label.
func humanise(name string) string {
	var words []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}
	for _, r := range name {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush()
		case r >= 'A' && r <= 'Z':
			flush()
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()
	if len(words) == 0 {
		return name
	}
	for i, word := range words {
		if len(word) > 0 && word[0] >= 'a' && word[0] <= 'z' {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
