// Package validation implements the pure field rules for the
// prior-authorization intake form. Rules are side-effect free: given a field
// and a snapshot of the form values they either pass or produce a specific
// human-readable reason. The reasons are a behavioral contract shared with
// tests and downstream consumers and must not be reworded casually.
//
// The package also owns the cross-field dependency map (which fields must be
// re-validated when another changes) so the controller can propagate
// re-validation generically instead of hard-coding pairs.
package validation
