// Package submit defines the external submission capability the intake
// controller invokes once a form validates: an interface with exactly-one-
// outcome semantics, a fixed-delay simulated transport for development and
// tests, an HTTP client speaking the prior-authorization claims API, and a
// registry that resolves transports by name for CLI and config wiring.
package submit
