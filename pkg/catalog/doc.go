// Package catalog provides the enumerated procedure code options offered by
// the intake form. Options are {value, label} pairs: the value is what travels
// in payloads and what the validator checks membership against, the label is
// display text. Codes can come from the embedded defaults, from YAML/JSON
// documents on a filesystem, or from an OpenAPI schema enum.
package catalog
