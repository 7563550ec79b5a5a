package form

import (
	"errors"
	"sort"
)

var (
	// ErrAttachmentType signals a supporting document whose extension is not
	// in the allowed set.
	ErrAttachmentType = errors.New("form: attachment type not allowed")
	// ErrAttachmentSize signals a supporting document larger than the
	// configured byte ceiling.
	ErrAttachmentSize = errors.New("form: attachment exceeds size limit")
)

// Errors maps a field to its current validation reason. Absence of a key means
// the field has no known error. The map is a cache of the last validation run
// per field, owned and recomputed by the controller; it is never a source of
// truth on its own.
type Errors map[Field]string

// Set records a reason for a field. An empty reason clears the entry so the
// map only ever holds real failures.
func (e Errors) Set(f Field, reason string) {
	if reason == "" {
		delete(e, f)
		return
	}
	e[f] = reason
}

// Reason returns the cached reason for a field, empty when the field is clean.
func (e Errors) Reason(f Field) string { return e[f] }

// Has reports whether the field currently caches a failure.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Valid reports whether no field caches a failure.
func (e Errors) Valid() bool { return len(e) == 0 }

// Fields returns the failing fields in lexical order for stable display.
func (e Errors) Fields() []Field {
	out := make([]Field, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Clone returns an independent copy.
func (e Errors) Clone() Errors {
	out := make(Errors, len(e))
	for f, reason := range e {
		out[f] = reason
	}
	return out
}
