package submit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-intake/pkg/form"
)

// Submitter delivers a validated form snapshot and resolves to exactly one
// outcome: a receipt or an error. Implementations own their timeout and
// protocol; the controller treats the call as opaque and never retries.
type Submitter interface {
	Submit(ctx context.Context, values form.Values) (*Receipt, error)
}

// Func adapts a plain function to a Submitter.
type Func func(ctx context.Context, values form.Values) (*Receipt, error)

func (f Func) Submit(ctx context.Context, values form.Values) (*Receipt, error) {
	return f(ctx, values)
}

// Receipt is the acknowledged outcome of a submission, mirroring the claims
// API response (status, claim_reference, timestamp, message).
type Receipt struct {
	Status    string    `json:"status"`
	Reference uuid.UUID `json:"claim_reference"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
