// Package controller owns the prior authorization form's mutable state: the
// field values, the per-field error cache, the optional attachment, and the
// submission status. Presentation layers never mutate that state directly;
// they call the controller's operations and observe the results through
// accessors, snapshots, and the notification sink. This keeps every state
// transition in one auditable place and makes the machine testable without a
// rendering layer.
package controller
