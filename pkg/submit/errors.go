package submit

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrDuplicateClaim matches (via errors.Is) a conflict response for a claim
// that already exists for the same patient and service start date.
var ErrDuplicateClaim = errors.New("submit: duplicate claim")

// StatusError is a non-2xx response from the claims API. Error() returns the
// server's human-readable reason when one was provided so the controller can
// surface it to the user unchanged.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("submit: unexpected status %d", e.Code)
}

// Is lets errors.Is(err, ErrDuplicateClaim) succeed for conflict responses.
func (e *StatusError) Is(target error) bool {
	return target == ErrDuplicateClaim && e.Code == http.StatusConflict
}
