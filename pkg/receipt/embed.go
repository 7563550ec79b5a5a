package receipt

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the bundled receipt templates so callers can render
// with the defaults or copy them as a starting point for overrides.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}
