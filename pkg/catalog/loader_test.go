package catalog

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"
)

func TestLoadFSMergesDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"codes/base.yaml": &fstest.MapFile{Data: []byte(`
procedureCodes:
  - value: A876
    label: Advanced Imaging (MRI)
  - value: B901
    label: Outpatient Surgical Procedure
`)},
		"codes/extra.json": &fstest.MapFile{Data: []byte(`{
  "procedureCodes": [{"value": "E410", "label": "Home Health Visit"}]
}`)},
		"codes/notes.txt": &fstest.MapFile{Data: []byte("not a catalog")},
	}

	set, err := LoadFS(fsys, "codes")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if set.Len() != 3 {
		t.Fatalf("expected 3 options, got %d", set.Len())
	}
	for _, code := range []string{"A876", "B901", "E410"} {
		if !set.Has(code) {
			t.Fatalf("expected %s to be loaded", code)
		}
	}
}

func TestLoadFSRejectsDuplicatesAcrossFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("procedureCodes:\n  - value: A876\n")},
		"b.yaml": &fstest.MapFile{Data: []byte("procedureCodes:\n  - value: A876\n")},
	}

	_, err := LoadFS(fsys, ".")
	if err == nil || !strings.Contains(err.Error(), "duplicate procedure code") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestLoadFSRejectsEmptyValue(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("procedureCodes:\n  - value: \"\"\n    label: nope\n")},
	}

	_, err := LoadFS(fsys, ".")
	if err == nil || !strings.Contains(err.Error(), "empty value") {
		t.Fatalf("expected empty-value error, got %v", err)
	}
}

func TestFromOpenAPIExtractsPropertyEnum(t *testing.T) {
	const document = `
openapi: 3.0.0
info:
  title: RCM Prior Authorization API
  version: 1.0.0
paths: {}
components:
  schemas:
    ClaimSubmission:
      type: object
      properties:
        procedure_code:
          type: string
          enum: [A876, B901]
          x-enum-labels:
            A876: Advanced Imaging (MRI)
`

	set, err := FromOpenAPI(context.Background(), []byte(document), "ClaimSubmission", "procedure_code")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if set.Len() != 2 {
		t.Fatalf("expected 2 options, got %d", set.Len())
	}
	if got := set.Label("A876"); got != "Advanced Imaging (MRI)" {
		t.Fatalf("unexpected label: %q", got)
	}
	if got := set.Label("B901"); got != "B901" {
		t.Fatalf("expected value fallback, got %q", got)
	}
}
