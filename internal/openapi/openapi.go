// Package openapi extracts intake configuration from OpenAPI 3 documents
// using kin-openapi. It is deliberately narrow: deployments publish their
// procedure code enum (and sometimes attachment constraints) in the same
// specification their backend serves, and the catalog package reads it from
// here rather than parsing specs itself.
package openapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// Document wraps a parsed OpenAPI 3 specification.
type Document struct {
	spec *openapi3.T
}

// Load parses a raw JSON or YAML OpenAPI document. External references are
// not followed; intake configuration is expected to live inline.
func Load(ctx context.Context, raw []byte) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return &Document{spec: spec}, nil
}

// Validate runs structural validation on the document. Examples are excluded
// so hand-written specs with illustrative payloads do not fail extraction.
func (d *Document) Validate(ctx context.Context) error {
	if d == nil || d.spec == nil {
		return errors.New("openapi: document not loaded")
	}
	if err := d.spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("openapi: validate: %w", err)
	}
	return nil
}

// EnumEntry is one enum member with its optional display label.
type EnumEntry struct {
	Value string
	Label string
}

// SchemaEnum returns the enum members declared directly on a component
// schema, e.g. a ProcedureCode string enum.
func (d *Document) SchemaEnum(schema string) ([]EnumEntry, error) {
	value, err := d.componentSchema(schema)
	if err != nil {
		return nil, err
	}
	entries := enumEntries(value)
	if len(entries) == 0 {
		return nil, fmt.Errorf("openapi: schema %q declares no enum", schema)
	}
	return entries, nil
}

// PropertyEnum returns the enum members of a named property on a component
// schema, following an internal reference when the property points at a
// shared enum schema.
func (d *Document) PropertyEnum(schema, property string) ([]EnumEntry, error) {
	value, err := d.componentSchema(schema)
	if err != nil {
		return nil, err
	}

	ref, ok := value.Properties[property]
	if !ok || ref == nil {
		return nil, fmt.Errorf("openapi: schema %q has no property %q", schema, property)
	}
	if ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q property %q is unresolved", schema, property)
	}

	entries := enumEntries(ref.Value)
	if len(entries) == 0 {
		return nil, fmt.Errorf("openapi: schema %q property %q declares no enum", schema, property)
	}
	return entries, nil
}

func (d *Document) componentSchema(name string) (*openapi3.Schema, error) {
	if d == nil || d.spec == nil {
		return nil, errors.New("openapi: document not loaded")
	}
	if d.spec.Components == nil || len(d.spec.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}
	ref, ok := d.spec.Components.Schemas[name]
	if !ok || ref == nil {
		return nil, fmt.Errorf("openapi: component schema %q not found", name)
	}
	if ref.Value == nil {
		return nil, fmt.Errorf("openapi: component schema %q is unresolved", name)
	}
	return ref.Value, nil
}

// enumEntries flattens a schema enum into string entries, resolving labels
// from the x-enum-labels extension. The extension accepts either a mapping
// from value to label or a list parallel to the enum.
func enumEntries(schema *openapi3.Schema) []EnumEntry {
	if schema == nil || len(schema.Enum) == 0 {
		return nil
	}

	labelByValue, labelByIndex := enumLabels(schema.Extensions)

	entries := make([]EnumEntry, 0, len(schema.Enum))
	for i, raw := range schema.Enum {
		value, ok := raw.(string)
		if !ok || value == "" {
			continue
		}
		entry := EnumEntry{Value: value}
		if label, ok := labelByValue[value]; ok {
			entry.Label = label
		} else if i < len(labelByIndex) {
			entry.Label = labelByIndex[i]
		}
		entries = append(entries, entry)
	}
	return entries
}

func enumLabels(extensions map[string]any) (map[string]string, []string) {
	raw, ok := extensions["x-enum-labels"]
	if !ok {
		return nil, nil
	}

	switch typed := raw.(type) {
	case map[string]any:
		byValue := make(map[string]string, len(typed))
		for value, label := range typed {
			if text, ok := label.(string); ok && text != "" {
				byValue[value] = text
			}
		}
		return byValue, nil
	case []any:
		byIndex := make([]string, 0, len(typed))
		for _, label := range typed {
			text, _ := label.(string)
			byIndex = append(byIndex, text)
		}
		return nil, byIndex
	}
	return nil, nil
}
