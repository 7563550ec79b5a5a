package form

import (
	"errors"
	"testing"
)

func TestConstraintsCheck_GatesTypeAndSize(t *testing.T) {
	constraints := DefaultConstraints()

	cases := []struct {
		name    string
		att     Attachment
		wantErr error
	}{
		{name: "pdf within limit", att: Attachment{Name: "notes.pdf", Size: 500_000}},
		{name: "docx within limit", att: Attachment{Name: "notes.docx", Size: 1}},
		{name: "uppercase extension", att: Attachment{Name: "NOTES.PDF", Size: 100}},
		{name: "executable rejected", att: Attachment{Name: "notes.exe", Size: 10}, wantErr: ErrAttachmentType},
		{name: "no extension rejected", att: Attachment{Name: "notes", Size: 10}, wantErr: ErrAttachmentType},
		{name: "oversized rejected", att: Attachment{Name: "notes.pdf", Size: 11_000_000}, wantErr: ErrAttachmentSize},
		{name: "exactly at limit accepted", att: Attachment{Name: "notes.pdf", Size: 10 * 1024 * 1024}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := constraints.Check(&tc.att)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("expected acceptance, got %v", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestConstraintsCheck_NilAttachmentIsAccepted(t *testing.T) {
	if err := DefaultConstraints().Check(nil); err != nil {
		t.Fatalf("expected nil attachment to pass, got %v", err)
	}
}

func TestConstraintsCheck_TypeRejectedRegardlessOfSize(t *testing.T) {
	err := DefaultConstraints().Check(&Attachment{Name: "notes.exe", Size: 1})
	if !errors.Is(err, ErrAttachmentType) {
		t.Fatalf("expected type rejection, got %v", err)
	}
}

func TestConstraintsMessages_DerivedFromConfiguration(t *testing.T) {
	constraints := DefaultConstraints()
	if got := constraints.TypeMessage(); got != "Only PDF, DOC, or DOCX files are allowed" {
		t.Fatalf("unexpected type message: %q", got)
	}
	if got := constraints.SizeMessage(); got != "File must be 10MB or smaller" {
		t.Fatalf("unexpected size message: %q", got)
	}

	narrow := Constraints{Extensions: []string{".pdf"}, MaxBytes: 512 * 1024}
	if got := narrow.TypeMessage(); got != "Only PDF files are allowed" {
		t.Fatalf("unexpected single-type message: %q", got)
	}
	if got := narrow.SizeMessage(); got != "File must be 512KB or smaller" {
		t.Fatalf("unexpected size message: %q", got)
	}

	pair := Constraints{Extensions: []string{".pdf", ".doc"}}
	if got := pair.TypeMessage(); got != "Only PDF or DOC files are allowed" {
		t.Fatalf("unexpected pair message: %q", got)
	}
}

func TestAttachmentExt_LowercasesSuffix(t *testing.T) {
	att := Attachment{Name: "Clinical Notes.PDF"}
	if got := att.Ext(); got != ".pdf" {
		t.Fatalf("expected .pdf, got %q", got)
	}
}
