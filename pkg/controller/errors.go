package controller

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-intake/pkg/form"
)

// ErrSubmitInFlight is returned by Submit while an earlier submission is still
// waiting on the capability. The call is a pure no-op; state and notifications
// are untouched.
var ErrSubmitInFlight = errors.New("controller: submission already in flight")

// ValidationError reports a submit attempt stopped by whole-form validation.
// It carries the complete error map, never just the first failure, so callers
// can surface every problem in one pass.
type ValidationError struct {
	Errors form.Errors
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "controller: 1 field failed validation"
	}
	return fmt.Sprintf("controller: %d fields failed validation", len(e.Errors))
}
