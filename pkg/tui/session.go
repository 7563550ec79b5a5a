package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/controller"
	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/notify"
	"github.com/goliatone/go-intake/pkg/receipt"
	"github.com/goliatone/go-intake/pkg/submit"
	"github.com/goliatone/go-intake/pkg/validation"
)

// Session owns one interactive intake run. It constructs its own controller
// so submission notifications surface on the terminal as they happen.
type Session struct {
	controller  *controller.Controller
	driver      PromptDriver
	out         io.Writer
	theme       Theme
	catalog     catalog.Set
	renderer    *receipt.Renderer
	validator   *validation.Validator
	pageSize    int
	ctrlOptions []controller.Option
}

// New constructs a session with defaults: survey prompts on stdout, the
// bundled procedure catalog, and a simulated submitter.
func New(options ...Option) *Session {
	s := &Session{
		out:     os.Stdout,
		theme:   DefaultTheme(),
		catalog: catalog.Default(),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.driver == nil {
		s.driver = newSurveyDriver(s.out)
	}
	if s.renderer == nil {
		s.renderer = receipt.New(receipt.WithCatalog(s.catalog))
	}
	if s.validator == nil {
		s.validator = validation.New(validation.WithProcedureCodes(s.catalog))
	}

	ctrlOptions := append([]controller.Option{
		controller.WithValidator(s.validator),
		controller.WithNotifications(notify.Func(s.printNotification)),
	}, s.ctrlOptions...)
	s.controller = controller.New(ctrlOptions...)

	return s
}

// Controller exposes the session's form controller for inspection.
func (s *Session) Controller() *controller.Controller { return s.controller }

// Run walks the operator through the form, the optional clinical notes
// attachment, and submission. It loops back to editing after validation or
// transport failures until the claim is accepted or the operator aborts.
// On success it prints the receipt and returns it.
func (s *Session) Run(ctx context.Context) (*submit.Receipt, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for {
		if err := s.collect(ctx); err != nil {
			return nil, err
		}
		if err := s.promptAttachment(ctx); err != nil {
			return nil, err
		}

		confirmed, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Submit prior authorization claim?",
			Default: true,
		})
		if err != nil {
			return nil, err
		}
		if !confirmed {
			again, err := s.driver.Confirm(ctx, ConfirmConfig{
				Message: "Review the form again?",
				Default: true,
			})
			if err != nil {
				return nil, err
			}
			if !again {
				return nil, ErrAborted
			}
			continue
		}

		err = s.controller.Submit(ctx)
		var vErr *controller.ValidationError
		switch {
		case errors.As(err, &vErr):
			s.printFieldErrors(ctx, vErr.Errors)
			continue
		case err != nil:
			retry, cerr := s.driver.Confirm(ctx, ConfirmConfig{
				Message: "Submission failed. Try again?",
				Default: true,
			})
			if cerr != nil {
				return nil, cerr
			}
			if !retry {
				return nil, err
			}
			continue
		}

		rcpt := s.controller.Receipt()
		if rcpt != nil {
			if text, rerr := s.renderer.Text(*rcpt, s.controller.Values()); rerr == nil {
				fmt.Fprintln(s.out, text)
			}
		}
		return rcpt, nil
	}
}

// collect prompts every form field in canonical order, re-prompting until
// each passes validation. Current values become prompt defaults so a second
// pass only asks the operator to fix what failed.
func (s *Session) collect(ctx context.Context) error {
	for _, field := range form.Fields() {
		var err error
		if field == form.ProcedureCode && !s.catalog.Empty() {
			err = s.promptProcedure(ctx)
		} else {
			err = s.promptText(ctx, field)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptText(ctx context.Context, field form.Field) error {
	for {
		response, err := s.driver.Input(ctx, InputConfig{
			Message: s.theme.PromptPrefix + field.Label(),
			Default: s.controller.Values().Get(field),
			Help:    fieldHelp(field),
		})
		if err != nil {
			return err
		}

		s.controller.SetField(field, strings.TrimSpace(response))
		if reason := s.controller.Errors().Reason(field); reason != "" {
			_ = s.driver.Info(ctx, fmt.Sprintf("%s %s", s.theme.ErrorPrefix, reason))
			continue
		}
		return nil
	}
}

func (s *Session) promptProcedure(ctx context.Context) error {
	options := s.catalog.Options()
	display := make([]string, len(options))
	for i, opt := range options {
		display[i] = fmt.Sprintf("%s (%s)", opt.Label, opt.Value)
	}

	defaultIdx := -1
	if current := s.controller.Values().Get(form.ProcedureCode); current != "" {
		for i, opt := range options {
			if opt.Value == current {
				defaultIdx = i
				break
			}
		}
	}

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      s.theme.PromptPrefix + form.ProcedureCode.Label(),
			Options:      display,
			DefaultIndex: defaultIdx,
			Help:         "Procedure requiring prior authorization",
			PageSize:     s.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			_ = s.driver.Info(ctx, fmt.Sprintf("%s Pick one of the listed procedures", s.theme.ErrorPrefix))
			continue
		}

		s.controller.SetField(form.ProcedureCode, options[idx].Value)
		if reason := s.controller.Errors().Reason(form.ProcedureCode); reason != "" {
			_ = s.driver.Info(ctx, fmt.Sprintf("%s %s", s.theme.ErrorPrefix, reason))
			continue
		}
		return nil
	}
}

// promptAttachment runs the clinical notes flow: confirm, then ask for a
// file path until one passes the attachment constraints. An empty path
// skips; declining clears any previous attachment.
func (s *Session) promptAttachment(ctx context.Context) error {
	constraints := s.controller.Constraints()

	attach, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Attach clinical notes?",
		Default: s.controller.Attachment() != nil,
		Help:    constraints.TypeMessage(),
	})
	if err != nil {
		return err
	}
	if !attach {
		s.controller.SetAttachment(nil)
		return nil
	}

	for {
		path, err := s.driver.Input(ctx, InputConfig{
			Message: s.theme.PromptPrefix + "Clinical notes file",
			Help:    fmt.Sprintf("%s. %s.", constraints.TypeMessage(), constraints.SizeMessage()),
		})
		if err != nil {
			return err
		}
		path = strings.TrimSpace(path)
		if path == "" {
			return nil
		}

		info, err := os.Stat(path)
		if err != nil {
			_ = s.driver.Info(ctx, fmt.Sprintf("%s Cannot read %s: %v", s.theme.ErrorPrefix, path, err))
			continue
		}
		if info.IsDir() {
			_ = s.driver.Info(ctx, fmt.Sprintf("%s %s is a directory", s.theme.ErrorPrefix, path))
			continue
		}

		att := &form.Attachment{Name: filepath.Base(path), Size: info.Size()}
		s.controller.SetAttachment(att)
		if err := constraints.Check(att); err != nil {
			// rejection notification already printed through the sink
			continue
		}
		return nil
	}
}

func (s *Session) printFieldErrors(ctx context.Context, errs form.Errors) {
	for _, field := range errs.Fields() {
		_ = s.driver.Info(ctx, fmt.Sprintf("%s %s: %s", s.theme.ErrorPrefix, field.Label(), errs.Reason(field)))
	}
}

func (s *Session) printNotification(n notify.Notification) {
	prefix := s.theme.InfoPrefix
	switch n.Kind {
	case notify.KindSuccess:
		prefix = s.theme.SuccessPrefix
	case notify.KindError:
		prefix = s.theme.ErrorPrefix
	}
	fmt.Fprintf(s.out, "%s %s\n", prefix, n.Message)
}

func fieldHelp(field form.Field) string {
	switch field {
	case form.PatientID:
		return "UUID, e.g. 123e4567-e89b-12d3-a456-426614174000"
	case form.DateOfBirth:
		return "YYYY-MM-DD"
	case form.PhysicianName:
		return "2 to 100 characters"
	case form.NPINumber:
		return "Exactly 10 digits"
	case form.ProcedureCode:
		return "Procedure requiring prior authorization"
	case form.ServiceStartDate:
		return "YYYY-MM-DD"
	case form.ServiceEndDate:
		return "YYYY-MM-DD, on or after the start date"
	}
	return ""
}
