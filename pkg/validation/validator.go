package validation

import (
	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/form"
)

// FieldError reports why a single field failed validation. Error() returns
// the user-facing reason without any prefix so callers can surface it
// verbatim next to the field.
type FieldError struct {
	Field  form.Field
	Reason string
}

func (e *FieldError) Error() string { return e.Reason }

// Validator evaluates the intake field rules. The zero configuration uses the
// embedded procedure code catalog, an empty placeholder value, and the
// standard start-date to end-date dependency; options override each piece.
// A Validator is immutable after New and safe for concurrent use.
type Validator struct {
	codes       catalog.Set
	placeholder string
	dependents  map[form.Field][]form.Field
}

// Option mutates validator configuration during New.
type Option func(*Validator)

// WithProcedureCodes replaces the catalog the procedure code rule checks
// membership against.
func WithProcedureCodes(set catalog.Set) Option {
	return func(v *Validator) {
		if v == nil {
			return
		}
		v.codes = set
	}
}

// WithPlaceholder sets the select placeholder value that always counts as
// "no procedure chosen". Defaults to the empty string.
func WithPlaceholder(value string) Option {
	return func(v *Validator) {
		if v == nil {
			return
		}
		v.placeholder = value
	}
}

// WithDependents replaces the dependent set for one field. Passing no
// dependents removes the entry.
func WithDependents(field form.Field, dependents ...form.Field) Option {
	return func(v *Validator) {
		if v == nil {
			return
		}
		if len(dependents) == 0 {
			delete(v.dependents, field)
			return
		}
		v.dependents[field] = append([]form.Field(nil), dependents...)
	}
}

// New constructs a Validator with defaults applied before options.
func New(options ...Option) *Validator {
	v := &Validator{
		codes:      catalog.Default(),
		dependents: defaultDependents(),
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(v)
	}
	return v
}

// Field validates a single field against the current form snapshot. It
// returns nil when the field passes, a *FieldError with the exact reason when
// it fails. Fields outside the intake form always pass.
func (v *Validator) Field(field form.Field, values form.Values) error {
	if reason := v.reason(field, values); reason != "" {
		return &FieldError{Field: field, Reason: reason}
	}
	return nil
}

// All applies every field rule to the snapshot and aggregates each failure,
// never stopping at the first. It covers fields the user never touched, so
// blur-only validation cannot leave a gap at submit time.
func (v *Validator) All(values form.Values) form.Errors {
	errs := make(form.Errors)
	for _, field := range form.Fields() {
		errs.Set(field, v.reason(field, values))
	}
	return errs
}

// Dependents returns the fields whose validity depends on the given field and
// therefore need re-validation when it changes.
func (v *Validator) Dependents(field form.Field) []form.Field {
	deps, ok := v.dependents[field]
	if !ok {
		return nil
	}
	return append([]form.Field(nil), deps...)
}

func defaultDependents() map[form.Field][]form.Field {
	return map[form.Field][]form.Field{
		form.ServiceStartDate: {form.ServiceEndDate},
	}
}
