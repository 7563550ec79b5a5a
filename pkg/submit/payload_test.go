package submit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goliatone/go-intake/pkg/form"
)

func TestNewPayloadMaterializesAttachmentFlag(t *testing.T) {
	values := submissionValues()

	p := NewPayload(values)
	if p.SupportingNotesAttached {
		t.Fatal("expected flag false without attachment")
	}
	if p.ClinicalNotesFilename != nil {
		t.Fatal("expected no clinical notes filename")
	}

	values.Attachment = &form.Attachment{Name: "notes.pdf", Size: 500_000}
	p = NewPayload(values)
	if !p.SupportingNotesAttached {
		t.Fatal("expected flag true with attachment")
	}
	if p.ClinicalNotesFilename == nil || *p.ClinicalNotesFilename != "notes.pdf" {
		t.Fatalf("unexpected filename: %v", p.ClinicalNotesFilename)
	}
}

func TestPayloadMarshalsSnakeCase(t *testing.T) {
	raw, err := json.Marshal(NewPayload(submissionValues()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	encoded := string(raw)
	for _, key := range []string{
		"patient_id", "date_of_birth", "physician_name", "npi_number",
		"procedure_code", "service_start_date", "service_end_date",
		"supporting_notes_attached",
	} {
		if !strings.Contains(encoded, `"`+key+`"`) {
			t.Fatalf("expected key %q in payload: %s", key, encoded)
		}
	}
	if strings.Contains(encoded, "clinical_notes_filename") {
		t.Fatalf("expected clinical_notes_filename omitted: %s", encoded)
	}
}

func TestSanitizeNameStripsMarkupAndSymbols(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "Dr. Jane Smith", want: "Dr. Jane Smith"},
		{in: "Dr. <script>alert('x')</script>Smith", want: "Dr. Smith"},
		{in: "O'Brien-Santos Jr.", want: "O'Brien-Santos Jr."},
		{in: "Jane; DROP TABLE claims", want: "Jane DROP TABLE claims"},
		{in: "<b>Bold</b> Name", want: "Bold Name"},
	}

	for _, tc := range cases {
		if got := SanitizeName(tc.in); got != tc.want {
			t.Fatalf("SanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
