package catalog

import (
	"context"
	"fmt"

	"github.com/goliatone/go-intake/internal/openapi"
)

// FromOpenAPI extracts a procedure code Set from an OpenAPI 3 document.
// When property is empty the enum is read from the component schema itself
// (a standalone string enum such as ProcedureCode); otherwise from the named
// property of the schema, following internal references. Labels come from the
// x-enum-labels extension and fall back to the code value.
func FromOpenAPI(ctx context.Context, raw []byte, schema, property string) (Set, error) {
	if schema == "" {
		return Set{}, fmt.Errorf("catalog: schema name is required")
	}

	doc, err := openapi.Load(ctx, raw)
	if err != nil {
		return Set{}, err
	}

	var entries []openapi.EnumEntry
	if property == "" {
		entries, err = doc.SchemaEnum(schema)
	} else {
		entries, err = doc.PropertyEnum(schema, property)
	}
	if err != nil {
		return Set{}, err
	}

	options := make([]Option, 0, len(entries))
	for _, entry := range entries {
		options = append(options, Option{Value: entry.Value, Label: entry.Label})
	}
	return New(options...), nil
}
