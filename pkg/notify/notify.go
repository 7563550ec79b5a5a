// Package notify defines the discrete user-facing notification events the
// intake core emits: attachment acceptance and rejection, validation failure
// on submit, and submission outcomes. The core only emits; display and
// dismissal timing belong to whatever presentation layer consumes the sink.
package notify

import "sync"

// Kind classifies a notification for presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is one transient user-facing message.
type Notification struct {
	Message string `json:"message"`
	Kind    Kind   `json:"kind"`
}

// Sink receives notifications as the core emits them. Implementations must
// not block; the controller calls Notify synchronously from its operations.
type Sink interface {
	Notify(n Notification)
}

// Func adapts a plain function to a Sink.
type Func func(n Notification)

func (f Func) Notify(n Notification) {
	if f == nil {
		return
	}
	f(n)
}

// Discard is a Sink that drops every notification.
var Discard Sink = Func(func(Notification) {})

// Success builds a success notification.
func Success(message string) Notification {
	return Notification{Message: message, Kind: KindSuccess}
}

// Error builds an error notification.
func Error(message string) Notification {
	return Notification{Message: message, Kind: KindError}
}

// Recorder is a Sink that captures notifications for tests. Safe for
// concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, n)
}

// Notifications returns a copy of everything recorded so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.events...)
}

// Last returns the most recent notification, false when none were recorded.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Notification{}, false
	}
	return r.events[len(r.events)-1], true
}

// Reset clears the recorded notifications.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
