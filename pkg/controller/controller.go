package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/notify"
	"github.com/goliatone/go-intake/pkg/submit"
	"github.com/goliatone/go-intake/pkg/validation"
)

// Status names the controller's position in the submission lifecycle.
type Status string

const (
	// StatusIdle is the initial state before any submit attempt.
	StatusIdle Status = "idle"
	// StatusValidating is the transient state while whole-form validation runs.
	StatusValidating Status = "validating"
	// StatusSubmitting means the capability call is in flight. Submit rejects
	// re-entry in this state; editing stays legal.
	StatusSubmitting Status = "submitting"
	// StatusSucceeded records a delivered submission. Re-enterable.
	StatusSucceeded Status = "succeeded"
	// StatusFailed records a validation or transport failure. Re-enterable.
	StatusFailed Status = "failed"
)

// FailureValidation is the failure reason recorded when a submit attempt stops
// on field errors. Transport failures record the capability's reason string
// instead.
const FailureValidation = "validation"

const (
	fixErrorsMessage     = "Please fix the errors in the form before submitting"
	submitSuccessMessage = "Claim submitted successfully"
)

// Option customises the controller configuration.
type Option func(*Controller)

// WithSubmitter injects the submit capability. Defaults to the simulated
// transport.
func WithSubmitter(s submit.Submitter) Option {
	return func(c *Controller) {
		if s != nil {
			c.submitter = s
		}
	}
}

// WithValidator injects the field validator.
func WithValidator(v *validation.Validator) Option {
	return func(c *Controller) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithNotifications injects the sink that receives outcome notifications.
// Defaults to notify.Discard.
func WithNotifications(sink notify.Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithConstraints overrides the attachment acceptance constraints.
func WithConstraints(constraints form.Constraints) Option {
	return func(c *Controller) {
		c.constraints = constraints
	}
}

// WithValues seeds the form with initial values, for prefilled sessions.
func WithValues(values form.Values) Option {
	return func(c *Controller) {
		c.values = values.Clone()
	}
}

// Controller is the submission state machine for one form session. All
// mutation goes through its operations; the embedded mutex makes each
// operation atomic, and the capability call runs with the lock released
// against a payload captured beforehand.
type Controller struct {
	mu          sync.Mutex
	values      form.Values
	errs        form.Errors
	status      Status
	failure     string
	receipt     *submit.Receipt
	validator   *validation.Validator
	submitter   submit.Submitter
	sink        notify.Sink
	constraints form.Constraints
}

// New constructs a Controller applying any provided options. Missing
// dependencies fall back to the built-in implementations so callers can start
// with a single constructor call.
func New(options ...Option) *Controller {
	c := &Controller{
		errs:        make(form.Errors),
		status:      StatusIdle,
		constraints: form.DefaultConstraints(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.validator == nil {
		c.validator = validation.New()
	}
	if c.submitter == nil {
		c.submitter = submit.NewSimulated()
	}
	if c.sink == nil {
		c.sink = notify.Discard
	}
	return c
}

// SetField stores a new value and immediately re-validates the field. Fields
// that depend on it are re-validated too, but only when they already hold a
// value, so an untouched dependent does not light up early. Allowed in every
// status; an in-flight submission keeps the payload captured when it started.
func (c *Controller) SetField(field form.Field, value string) {
	if !form.Known(field) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values.Set(field, value)
	c.revalidate(field)
	for _, dep := range c.validator.Dependents(field) {
		if c.values.Get(dep) == "" {
			continue
		}
		c.revalidate(dep)
	}
}

// Blur re-validates a field unconditionally, covering fields the user left at
// their default without ever typing into them.
func (c *Controller) Blur(field form.Field) {
	if !form.Known(field) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.revalidate(field)
}

// SetAttachment attaches a supporting document, or clears it when att is nil.
// A document that fails the constraints is rejected with an error notification
// naming the failed constraint and leaves all state untouched. Acceptance
// stores a copy and emits a success notification.
func (c *Controller) SetAttachment(att *form.Attachment) {
	if att == nil {
		c.mu.Lock()
		c.values.Attachment = nil
		c.mu.Unlock()
		return
	}

	if err := c.constraints.Check(att); err != nil {
		switch {
		case errors.Is(err, form.ErrAttachmentType):
			c.sink.Notify(notify.Error(c.constraints.TypeMessage()))
		case errors.Is(err, form.ErrAttachmentSize):
			c.sink.Notify(notify.Error(c.constraints.SizeMessage()))
		default:
			c.sink.Notify(notify.Error(err.Error()))
		}
		return
	}

	accepted := *att
	c.mu.Lock()
	c.values.Attachment = &accepted
	c.mu.Unlock()

	c.sink.Notify(notify.Success(fmt.Sprintf("Attached %s", accepted.Name)))
}

// Submit runs whole-form validation and, when every field passes, invokes the
// capability exactly once with the values captured at this moment. Any field
// failure stores the complete error map, records a validation failure, emits
// the fix-errors notification, and returns a *ValidationError without touching
// the capability. While a submission is in flight further Submit calls return
// ErrSubmitInFlight and change nothing. Succeeded and Failed are both
// re-enterable; the session never reaches a state that blocks editing.
func (c *Controller) Submit(ctx context.Context) error {
	if ctx == nil {
		return errors.New("controller: context is required")
	}

	c.mu.Lock()
	if c.status == StatusSubmitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	c.status = StatusValidating
	c.failure = ""

	errs := c.validator.All(c.values)
	c.errs = errs
	if !errs.Valid() {
		c.status = StatusFailed
		c.failure = FailureValidation
		c.mu.Unlock()
		c.sink.Notify(notify.Error(fixErrorsMessage))
		return &ValidationError{Errors: errs.Clone()}
	}

	payload := c.values.Clone()
	c.status = StatusSubmitting
	c.mu.Unlock()

	receipt, err := c.submitter.Submit(ctx, payload)

	c.mu.Lock()
	if err != nil {
		c.status = StatusFailed
		c.failure = err.Error()
		c.mu.Unlock()
		c.sink.Notify(notify.Error(err.Error()))
		return err
	}
	c.receipt = receipt
	c.status = StatusSucceeded
	c.mu.Unlock()

	message := submitSuccessMessage
	if receipt != nil && receipt.Message != "" {
		message = receipt.Message
	}
	c.sink.Notify(notify.Success(message))
	return nil
}

// Values returns an independent copy of the current form values.
func (c *Controller) Values() form.Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values.Clone()
}

// Errors returns an independent copy of the per-field error cache.
func (c *Controller) Errors() form.Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errs.Clone()
}

// Status returns the current lifecycle status.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// FailureReason returns the recorded reason for the last failed submission,
// empty otherwise. FailureValidation marks a validation stop; anything else is
// the capability's reason string.
func (c *Controller) FailureReason() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failure
}

// Receipt returns a copy of the last successful submission receipt, nil before
// the first success.
func (c *Controller) Receipt() *submit.Receipt {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.receipt == nil {
		return nil
	}
	receipt := *c.receipt
	return &receipt
}

// Attachment returns a copy of the current supporting document, nil when none
// is attached.
func (c *Controller) Attachment() *form.Attachment {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values.Attachment == nil {
		return nil
	}
	att := *c.values.Attachment
	return &att
}

// Constraints returns the attachment acceptance constraints in effect.
func (c *Controller) Constraints() form.Constraints {
	return c.constraints
}

// revalidate runs the single-field rule and updates the error cache. Callers
// hold the lock.
func (c *Controller) revalidate(field form.Field) {
	if err := c.validator.Field(field, c.values); err != nil {
		c.errs.Set(field, err.Error())
		return
	}
	c.errs.Set(field, "")
}
