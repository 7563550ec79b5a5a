package intake

import (
	"context"

	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/controller"
	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/notify"
	"github.com/goliatone/go-intake/pkg/submit"
	"github.com/goliatone/go-intake/pkg/validation"
)

// Values is the authoritative record of user input for one intake session.
type Values = form.Values

// Errors maps fields to their current validation failure reasons.
type Errors = form.Errors

// Field names one editable unit of the intake form.
type Field = form.Field

// Attachment carries supporting document metadata.
type Attachment = form.Attachment

// Constraints describe which supporting documents the form accepts.
type Constraints = form.Constraints

// Notification is one transient user-facing message emitted by the core.
type Notification = notify.Notification

// Sink receives notifications as the core emits them.
type Sink = notify.Sink

// Receipt is the acknowledged outcome of a submission.
type Receipt = submit.Receipt

// Submitter delivers a validated form snapshot to a claims backend.
type Submitter = submit.Submitter

// Controller is the submission state machine for one form session.
type Controller = controller.Controller

// ValidationError reports the field failures that stopped a submit attempt.
type ValidationError = controller.ValidationError

// Catalog is an ordered set of selectable procedure codes.
type Catalog = catalog.Set

// New exposes the controller constructor from the top-level module so callers
// can wire a session with a single import.
func New(options ...controller.Option) *controller.Controller {
	return controller.New(options...)
}

// NewValidator constructs the field validation engine.
func NewValidator(options ...validation.Option) *validation.Validator {
	return validation.New(options...)
}

// NewSimulated constructs the in-process submission transport used by demos
// and tests.
func NewSimulated(options ...submit.SimulatedOption) *submit.Simulated {
	return submit.NewSimulated(options...)
}

// NewClient constructs the HTTP submission transport for a claims API.
func NewClient(baseURL string, options ...submit.ClientOption) (*submit.Client, error) {
	return submit.NewClient(baseURL, options...)
}

// Submit validates values and delivers them through submitter in one call,
// for callers that do not need a long-lived controller. The returned receipt
// is the backend acknowledgement; field failures surface as a
// *ValidationError.
func Submit(ctx context.Context, values form.Values, submitter submit.Submitter, options ...controller.Option) (*submit.Receipt, error) {
	ctrl := controller.New(append([]controller.Option{
		controller.WithValues(values),
		controller.WithSubmitter(submitter),
	}, options...)...)
	if err := ctrl.Submit(ctx); err != nil {
		return nil, err
	}
	return ctrl.Receipt(), nil
}

// WithSubmitter injects the submission transport.
func WithSubmitter(s submit.Submitter) controller.Option {
	return controller.WithSubmitter(s)
}

// WithValidator injects the field validator, for catalogs or placeholder
// values that differ from the defaults.
func WithValidator(v *validation.Validator) controller.Option {
	return controller.WithValidator(v)
}

// WithNotifications injects the sink that receives outcome notifications.
func WithNotifications(sink notify.Sink) controller.Option {
	return controller.WithNotifications(sink)
}

// WithConstraints overrides the attachment acceptance constraints.
func WithConstraints(constraints form.Constraints) controller.Option {
	return controller.WithConstraints(constraints)
}

// WithValues seeds the form with initial values, for prefilled sessions.
func WithValues(values form.Values) controller.Option {
	return controller.WithValues(values)
}
