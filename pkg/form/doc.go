// Package form defines the prior-authorization intake form model: the named
// field set, the mutable value record, the per-field error cache, and the
// attachment constraints that gate supporting documentation. The package holds
// no behaviour beyond the model itself; validation rules live in
// pkg/validation and lifecycle orchestration in pkg/controller.
package form
