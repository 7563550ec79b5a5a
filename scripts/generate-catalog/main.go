// Regenerates a procedure code catalog document from the enum a claims
// backend publishes in its OpenAPI specification, so the embedded catalog
// under pkg/catalog/data can be kept in sync with the deployed API.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-intake/pkg/catalog"
)

func main() {
	var (
		specPath   = flag.String("spec", "examples/fixtures/prior_auth.yaml", "OpenAPI specification path")
		schemaName = flag.String("schema", "ProcedureCode", "Component schema carrying the enum")
		property   = flag.String("property", "", "Property on the schema to read instead of the schema itself")
		outputPath = flag.String("output", "pkg/catalog/data/procedure_codes.yaml", "Output path for the catalog document")
	)
	flag.Parse()

	ctx := context.Background()

	raw, err := os.ReadFile(*specPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read spec: %v\n", err)
		os.Exit(1)
	}

	set, err := catalog.FromOpenAPI(ctx, raw, *schemaName, *property)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to extract catalog: %v\n", err)
		os.Exit(1)
	}

	payload, err := marshalDocument(set)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode catalog: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outputPath, payload, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote %d procedure codes to %s\n", set.Len(), *outputPath)
}

func marshalDocument(set catalog.Set) ([]byte, error) {
	document := struct {
		ProcedureCodes []catalog.Option `yaml:"procedureCodes"`
	}{
		ProcedureCodes: set.Options(),
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(document); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
