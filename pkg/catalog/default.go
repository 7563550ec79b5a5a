package catalog

import (
	"embed"
	"sync"
)

//go:embed data/procedure_codes.yaml
var dataFS embed.FS

var (
	defaultOnce sync.Once
	defaultSet  Set
)

// Default returns the built-in procedure code catalog. The backing document
// is embedded at build time, so a parse failure here is a packaging bug and
// panics rather than surfacing an error every caller would have to ignore.
func Default() Set {
	defaultOnce.Do(func() {
		set, err := LoadFS(dataFS, "data")
		if err != nil {
			panic(err)
		}
		defaultSet = set
	})
	return defaultSet
}
