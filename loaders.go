package intake

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-intake/pkg/catalog"
)

// DefaultCatalog returns the embedded procedure code catalog.
func DefaultCatalog() catalog.Set {
	return catalog.Default()
}

// LoadCatalog merges every JSON/YAML catalog document found under root inside
// fsys, keeping the concrete loader hidden from consumers.
func LoadCatalog(fsys fs.FS, root string) (catalog.Set, error) {
	return catalog.LoadFS(fsys, root)
}

// CatalogFromOpenAPI extracts a procedure code catalog from an OpenAPI 3
// document, reading the enum from the named component schema or one of its
// properties.
func CatalogFromOpenAPI(ctx context.Context, raw []byte, schema, property string) (catalog.Set, error) {
	return catalog.FromOpenAPI(ctx, raw, schema, property)
}
