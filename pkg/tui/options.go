package tui

import (
	"io"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/controller"
	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/receipt"
	"github.com/goliatone/go-intake/pkg/submit"
	"github.com/goliatone/go-intake/pkg/validation"
)

// Option configures the intake session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput redirects session output (notifications, error summaries, the
// final receipt). Defaults to stdout.
func WithOutput(out io.Writer) Option {
	return func(s *Session) {
		if out != nil {
			s.out = out
		}
	}
}

// WithTheme applies message prefixes directly.
func WithTheme(t Theme) Option {
	return func(s *Session) {
		s.theme = t
	}
}

// WithThemeSelector resolves message prefixes through a go-theme selector.
// When resolution fails the session keeps its current theme; cosmetic
// failures should not block intake.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(s *Session) {
		if selector == nil {
			return
		}
		sel, err := selector.Select(name, variant)
		if err != nil || sel == nil {
			return
		}
		s.theme = ThemeFromSelection(sel)
	}
}

// WithSubmitter selects the transport used when the operator submits.
func WithSubmitter(submitter submit.Submitter) Option {
	return func(s *Session) {
		if submitter != nil {
			s.ctrlOptions = append(s.ctrlOptions, controller.WithSubmitter(submitter))
		}
	}
}

// WithValidator overrides the field validator.
func WithValidator(v *validation.Validator) Option {
	return func(s *Session) {
		if v != nil {
			s.validator = v
		}
	}
}

// WithConstraints overrides the attachment constraints.
func WithConstraints(constraints form.Constraints) Option {
	return func(s *Session) {
		s.ctrlOptions = append(s.ctrlOptions, controller.WithConstraints(constraints))
	}
}

// WithValues seeds the form, e.g. to resume a draft.
func WithValues(values form.Values) Option {
	return func(s *Session) {
		s.ctrlOptions = append(s.ctrlOptions, controller.WithValues(values))
	}
}

// WithCatalog sets the procedure codes offered in the select prompt. Unless
// a validator is supplied too, field validation accepts the same set.
func WithCatalog(set catalog.Set) Option {
	return func(s *Session) {
		s.catalog = set
	}
}

// WithReceiptRenderer overrides the renderer used to print the receipt after
// a successful submission.
func WithReceiptRenderer(r *receipt.Renderer) Option {
	return func(s *Session) {
		if r != nil {
			s.renderer = r
		}
	}
}

// WithPageSize caps how many procedure options show per page in the select
// prompt.
func WithPageSize(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}
