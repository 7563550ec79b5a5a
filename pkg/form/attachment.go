package form

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Attachment carries the metadata of a supporting document. The core gates on
// metadata only; file content handling belongs to whatever accepted the file.
type Attachment struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// Ext returns the lowercased extension, including the leading dot.
func (a Attachment) Ext() string {
	return strings.ToLower(filepath.Ext(a.Name))
}

// Constraints describe which supporting documents the form accepts.
type Constraints struct {
	// Extensions is the allow-set of file extensions, leading dot included.
	// Matching is case-insensitive.
	Extensions []string
	// MaxBytes is the inclusive size ceiling. Zero disables the size check.
	MaxBytes int64
}

// DefaultConstraints returns the clinical-notes constraints used by the
// prior-authorization intake: PDF, DOC, or DOCX up to 10MB.
func DefaultConstraints() Constraints {
	return Constraints{
		Extensions: []string{".pdf", ".doc", ".docx"},
		MaxBytes:   10 * 1024 * 1024,
	}
}

// Allows reports whether the extension is in the allow-set.
func (c Constraints) Allows(ext string) bool {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, allowed := range c.Extensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

// Check validates attachment metadata against the constraints. It returns nil
// for an acceptable attachment (or none at all), otherwise an error wrapping
// ErrAttachmentType or ErrAttachmentSize.
func (c Constraints) Check(att *Attachment) error {
	if att == nil {
		return nil
	}
	if !c.Allows(att.Ext()) {
		return fmt.Errorf("%w: %q", ErrAttachmentType, att.Name)
	}
	if c.MaxBytes > 0 && att.Size > c.MaxBytes {
		return fmt.Errorf("%w: %d bytes", ErrAttachmentSize, att.Size)
	}
	return nil
}

// TypeMessage renders the user-facing rejection text for a disallowed type,
// derived from the configured allow-set so the message never drifts from the
// rule.
func (c Constraints) TypeMessage() string {
	names := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		name := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	switch len(names) {
	case 0:
		return "No file types are allowed"
	case 1:
		return fmt.Sprintf("Only %s files are allowed", names[0])
	case 2:
		return fmt.Sprintf("Only %s or %s files are allowed", names[0], names[1])
	}
	return fmt.Sprintf("Only %s, or %s files are allowed",
		strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
}

// SizeMessage renders the user-facing rejection text for an oversized file.
func (c Constraints) SizeMessage() string {
	return fmt.Sprintf("File must be %s or smaller", humanSize(c.MaxBytes))
}

func humanSize(n int64) string {
	const (
		kb = 1 << 10
		mb = 1 << 20
	)
	switch {
	case n >= mb && n%mb == 0:
		return fmt.Sprintf("%dMB", n/mb)
	case n >= kb && n%kb == 0:
		return fmt.Sprintf("%dKB", n/kb)
	}
	return fmt.Sprintf("%dB", n)
}
