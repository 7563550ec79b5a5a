package submit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-intake/pkg/form"
)

// DefaultDelay matches the processing latency the reference claims backend
// simulates before acknowledging a submission.
const DefaultDelay = 500 * time.Millisecond

// Simulated is an in-process Submitter that resolves after a fixed delay,
// honoring context cancellation. It is the default transport for local
// development and the controller's zero configuration.
type Simulated struct {
	delay  time.Duration
	fail   error
	now    func() time.Time
	newRef func() uuid.UUID
}

// SimulatedOption mutates simulated transport configuration.
type SimulatedOption func(*Simulated)

// WithDelay overrides the acknowledgement delay. Zero resolves immediately.
func WithDelay(delay time.Duration) SimulatedOption {
	return func(s *Simulated) {
		if s == nil || delay < 0 {
			return
		}
		s.delay = delay
	}
}

// WithFailure makes every submission resolve to the given error after the
// delay, for exercising the failure path.
func WithFailure(err error) SimulatedOption {
	return func(s *Simulated) {
		if s == nil {
			return
		}
		s.fail = err
	}
}

// WithClock overrides the receipt timestamp source.
func WithClock(now func() time.Time) SimulatedOption {
	return func(s *Simulated) {
		if s == nil || now == nil {
			return
		}
		s.now = now
	}
}

// WithReference overrides the claim reference generator.
func WithReference(newRef func() uuid.UUID) SimulatedOption {
	return func(s *Simulated) {
		if s == nil || newRef == nil {
			return
		}
		s.newRef = newRef
	}
}

// NewSimulated constructs a simulated transport with the default delay.
func NewSimulated(options ...SimulatedOption) *Simulated {
	s := &Simulated{
		delay:  DefaultDelay,
		now:    time.Now,
		newRef: uuid.New,
	}
	for _, option := range options {
		if option == nil {
			continue
		}
		option(s)
	}
	return s
}

// Submit waits out the configured delay then acknowledges the claim. The
// values argument is accepted for interface compatibility; nothing inspects
// it beyond the real transports.
func (s *Simulated) Submit(ctx context.Context, _ form.Values) (*Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.fail != nil {
		return nil, s.fail
	}

	return &Receipt{
		Status:    "submitted",
		Reference: s.newRef(),
		Timestamp: s.now(),
		Message:   "Claim submitted successfully for review",
	}, nil
}
