package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks root inside the provided filesystem and merges every JSON/YAML
// catalog document it finds. Files are merged in walk order; a code defined
// twice across documents is an error so deployments notice conflicting
// catalogs instead of silently shadowing one.
func LoadFS(fsys fs.FS, root string) (Set, error) {
	if fsys == nil {
		return Set{}, fmt.Errorf("catalog: missing filesystem")
	}
	if root == "" {
		root = "."
	}

	var merged []Option
	seen := map[string]string{}

	err := fs.WalkDir(fsys, root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}
		if !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseDocument(data, path)
		if err != nil {
			return err
		}

		for _, opt := range doc.ProcedureCodes {
			value := strings.TrimSpace(opt.Value)
			if value == "" {
				return fmt.Errorf("catalog: file %s defines an option with an empty value", path)
			}
			if origin, exists := seen[value]; exists {
				return fmt.Errorf("catalog: duplicate procedure code %q (files %s and %s)", value, origin, path)
			}
			seen[value] = path
			merged = append(merged, Option{Value: value, Label: strings.TrimSpace(opt.Label)})
		}
		return nil
	})
	if err != nil {
		return Set{}, err
	}

	return New(merged...), nil
}

type documentFile struct {
	ProcedureCodes []Option `json:"procedureCodes" yaml:"procedureCodes"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("catalog: file %s is empty", source)
	}

	var doc documentFile
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}
