package receipt

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/submit"
)

const (
	templateText = "templates/receipt.text.tpl"
	templateHTML = "templates/receipt.html.tpl"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templates fs.FS
	catalog   catalog.Set
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS. The bundle
// must carry the same template paths as the embedded one.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templates = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templates = os.DirFS(path)
	}
}

// WithCatalog supplies the procedure code set used to resolve display labels.
func WithCatalog(set catalog.Set) Option {
	return func(cfg *config) {
		cfg.catalog = set
	}
}

// Renderer renders a submission receipt together with the form values it
// confirmed. Safe for concurrent use; parsed templates are cached.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	catalog   catalog.Set
}

// New constructs a Renderer applying any provided options. Without options it
// renders the embedded templates with the default procedure catalog.
func New(options ...Option) *Renderer {
	cfg := config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templates == nil {
		cfg.templates = TemplatesFS()
	}
	if cfg.catalog.Empty() {
		cfg.catalog = catalog.Default()
	}

	registerFilters()

	return &Renderer{
		set:       pongo2.NewSet("intake-receipt", pongo2.NewFSLoader(cfg.templates)),
		templates: make(map[string]*pongo2.Template),
		catalog:   cfg.catalog,
	}
}

// Text renders the plain text receipt for terminal display, additionally
// writing it to any supplied writers.
func (r *Renderer) Text(rcpt submit.Receipt, values form.Values, out ...io.Writer) (string, error) {
	return r.render(templateText, rcpt, values, out)
}

// HTML renders the receipt as a standalone page.
func (r *Renderer) HTML(rcpt submit.Receipt, values form.Values, out ...io.Writer) (string, error) {
	return r.render(templateHTML, rcpt, values, out)
}

func (r *Renderer) render(path string, rcpt submit.Receipt, values form.Values, out []io.Writer) (string, error) {
	tmpl, err := r.template(path)
	if err != nil {
		return "", err
	}

	rendered, err := tmpl.Execute(r.context(rcpt, values))
	if err != nil {
		return "", fmt.Errorf("receipt: execute template %q: %w", path, err)
	}

	for _, w := range out {
		if _, err := w.Write([]byte(rendered)); err != nil {
			return "", fmt.Errorf("receipt: write output: %w", err)
		}
	}
	return rendered, nil
}

func (r *Renderer) context(rcpt submit.Receipt, values form.Values) pongo2.Context {
	attachment := ""
	if values.Attachment != nil {
		attachment = values.Attachment.Name
	}
	label := r.catalog.Label(values.ProcedureCode)
	if label == "" {
		label = values.ProcedureCode
	}
	return pongo2.Context{
		"reference":       rcpt.Reference.String(),
		"status":          rcpt.Status,
		"submitted_at":    rcpt.Timestamp,
		"message":         rcpt.Message,
		"patient_id":      values.PatientID,
		"physician_name":  values.PhysicianName,
		"npi_number":      values.NPINumber,
		"procedure_code":  values.ProcedureCode,
		"procedure_label": label,
		"service_start":   values.ServiceStartDate,
		"service_end":     values.ServiceEndDate,
		"attachment":      attachment,
	}
}

func (r *Renderer) template(path string) (*pongo2.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.templates[path]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.templates[path]; ok {
		return tmpl, nil
	}

	tmpl, err := r.set.FromFile(path)
	if err != nil {
		return nil, fmt.Errorf("receipt: load template %q: %w", path, err)
	}

	r.templates[path] = tmpl
	return tmpl, nil
}

func registerFilters() {
	if !pongo2.FilterExists("datefmt") {
		_ = pongo2.RegisterFilter("datefmt", filterDatefmt)
	}
}

// filterDatefmt formats a time.Time with the Go layout given as parameter. A
// zero time renders as an empty string so templates need no guard around
// timestamps the transport could not parse.
func filterDatefmt(in *pongo2.Value, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	layout := time.RFC3339
	if param != nil && param.String() != "" {
		layout = param.String()
	}

	switch v := in.Interface().(type) {
	case time.Time:
		if v.IsZero() {
			return pongo2.AsValue(""), nil
		}
		return pongo2.AsValue(v.Format(layout)), nil
	case string:
		return pongo2.AsValue(v), nil
	}
	return nil, &pongo2.Error{
		Sender:    "filter:datefmt",
		OrigError: fmt.Errorf("datefmt expects a time, got %T", in.Interface()),
	}
}
