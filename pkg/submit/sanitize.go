package submit

import (
	"html"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeName strips markup and any character outside letters, digits,
// spaces, periods, hyphens, and apostrophes. This mirrors the server-side
// physician name sanitizer so a payload never round-trips differently than
// it was accepted.
func SanitizeName(raw string) string {
	cleaned := html.UnescapeString(plainTextPolicy().Sanitize(raw))

	var b strings.Builder
	b.Grow(len(cleaned))
	for _, r := range cleaned {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '.' || r == '-' || r == '\'':
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func plainTextPolicy() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
