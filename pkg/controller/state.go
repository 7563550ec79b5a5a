package controller

import "github.com/goliatone/go-intake/pkg/form"

// State is a serializable snapshot of one form session at a single instant.
// Presentation code renders from snapshots instead of reaching into the
// controller, and audit trails can persist them as-is. HasSupportingNotes is
// derived from the attachment at capture time; it is never stored separately,
// so it cannot diverge from the attachment it describes.
type State struct {
	Values             form.Values `json:"values"`
	HasSupportingNotes bool        `json:"hasSupportingNotes"`
	Errors             form.Errors `json:"errors"`
	Status             Status      `json:"status"`
	Failure            string      `json:"failure,omitempty"`
}

// Snapshot captures the current state as one consistent view.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		Values:             c.values.Clone(),
		HasSupportingNotes: c.values.HasSupportingNotes(),
		Errors:             c.errs.Clone(),
		Status:             c.status,
		Failure:            c.failure,
	}
}
