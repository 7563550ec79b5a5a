package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	theme "github.com/goliatone/go-theme"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	intake "github.com/goliatone/go-intake"
	"github.com/goliatone/go-intake/internal/config"
	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/receipt"
	"github.com/goliatone/go-intake/pkg/submit"
	"github.com/goliatone/go-intake/pkg/tui"
	"github.com/goliatone/go-intake/pkg/validation"
)

func main() {
	transport := flag.String("transport", "", "submission transport: simulated or http")
	endpoint := flag.String("endpoint", "", "claims API base URL for the http transport")
	token := flag.String("token", "", "bearer token sent with http submissions")
	delay := flag.Duration("delay", 0, "simulated transport delay")
	timeout := flag.Duration("timeout", 0, "http transport timeout")
	codes := flag.String("codes", "", "procedure catalog file or directory (JSON/YAML)")
	themeName := flag.String("theme", "", "prompt theme: clinical")
	themeVariant := flag.String("variant", "", "prompt theme variant")
	envFile := flag.String("env-file", ".env", "optional env file")
	noInput := flag.Bool("no-input", false, "submit a synthetic claim without prompting")
	flag.Parse()

	cfg, err := config.LoadFile(*envFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Flags win; config fills the gaps.
	if *transport == "" {
		*transport = cfg.SubmitTransport
	}
	if *endpoint == "" {
		*endpoint = cfg.ClaimsAPIURL
	}
	if *delay == 0 {
		*delay = cfg.SimulatedDelay
	}
	if *timeout == 0 {
		*timeout = cfg.SubmitTimeout
	}
	if *themeName == "" {
		*themeName = cfg.Theme
	}
	if *themeVariant == "" {
		*themeVariant = cfg.ThemeVariant
	}

	set, err := loadCatalog(*codes)
	if err != nil {
		log.Fatalf("Failed to load procedure catalog: %v", err)
	}

	registry := submit.BuiltinRegistry()
	factory, err := registry.Get(*transport)
	if err != nil {
		log.Fatalf("Unknown transport %q (available: %v)", *transport, registry.List())
	}
	submitter, err := factory(submit.Params{
		BaseURL: *endpoint,
		Token:   *token,
		Delay:   *delay,
		Timeout: *timeout,
		Logger:  zerolog.Nop(),
	})
	if err != nil {
		log.Fatalf("Failed to build %s transport: %v", *transport, err)
	}

	if *noInput {
		if err := runDemo(set, submitter); err != nil {
			log.Fatalf("Demo submission failed: %v", err)
		}
		return
	}

	options := []tui.Option{
		tui.WithSubmitter(submitter),
		tui.WithCatalog(set),
		tui.WithConstraints(cfg.Constraints()),
	}
	if *themeName != "" {
		selection, err := builtinSelection(*themeName, *themeVariant)
		if err != nil {
			log.Fatalf("Failed to select theme: %v", err)
		}
		options = append(options, tui.WithTheme(tui.ThemeFromSelection(selection)))
	}

	session := tui.New(options...)
	if _, err := session.Run(context.Background()); err != nil {
		if errors.Is(err, tui.ErrAborted) {
			fmt.Fprintln(os.Stderr, "Canceled.")
			os.Exit(130)
		}
		log.Fatalf("Intake failed: %v", err)
	}
}

// runDemo submits one synthetic claim through the configured transport and
// prints the receipt, for smoke-testing a deployment without prompts. The
// patient ID is fresh per run so the backend's duplicate check stays quiet.
func runDemo(set catalog.Set, submitter submit.Submitter) error {
	if set.Empty() {
		return errors.New("procedure catalog is empty")
	}

	values := form.Values{
		PatientID:        uuid.NewString(),
		DateOfBirth:      "1980-01-15",
		PhysicianName:    "Dr. Jane Smith",
		NPINumber:        "1234567890",
		ProcedureCode:    set.Options()[0].Value,
		ServiceStartDate: "2024-01-01",
		ServiceEndDate:   "2024-01-15",
	}

	rcpt, err := intake.Submit(
		context.Background(),
		values,
		submitter,
		intake.WithValidator(validation.New(validation.WithProcedureCodes(set))),
	)
	if err != nil {
		return err
	}

	_, err = receipt.New(receipt.WithCatalog(set)).Text(*rcpt, values, os.Stdout)
	return err
}

func loadCatalog(path string) (catalog.Set, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return catalog.Set{}, err
	}
	if info.IsDir() {
		return catalog.LoadFS(os.DirFS(path), ".")
	}
	return catalog.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// builtinThemes holds the prompt themes shipped with the CLI. External themes
// come in through tui.WithThemeSelector when embedding the session.
func builtinThemes() map[string]*theme.Manifest {
	return map[string]*theme.Manifest{
		"clinical": {
			Name:    "clinical",
			Version: "1.0.0",
			Tokens: map[string]string{
				"tui.info":    "·",
				"tui.success": "✔",
				"tui.error":   "✖",
			},
			Variants: map[string]theme.Variant{
				"plain": {
					Tokens: map[string]string{
						"tui.info":    "-",
						"tui.success": "OK",
						"tui.error":   "ERR",
					},
				},
			},
		},
	}
}

func builtinSelection(name, variant string) (*theme.Selection, error) {
	manifest, ok := builtinThemes()[name]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{Theme: name, Variant: variant, Manifest: manifest}, nil
}
