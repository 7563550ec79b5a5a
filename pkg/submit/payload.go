package submit

import "github.com/goliatone/go-intake/pkg/form"

// Payload is the wire form of a claim submission. Field names follow the
// claims API contract (snake_case); supporting_notes_attached materializes
// the derived attachment flag at serialization time.
type Payload struct {
	PatientID               string  `json:"patient_id"`
	DateOfBirth             string  `json:"date_of_birth"`
	PhysicianName           string  `json:"physician_name"`
	NPINumber               string  `json:"npi_number"`
	ProcedureCode           string  `json:"procedure_code"`
	ServiceStartDate        string  `json:"service_start_date"`
	ServiceEndDate          string  `json:"service_end_date"`
	ClinicalNotesFilename   *string `json:"clinical_notes_filename,omitempty"`
	SupportingNotesAttached bool    `json:"supporting_notes_attached"`
}

// NewPayload builds the wire payload from a form snapshot. Free-text fields
// are sanitized here, at the trust boundary, so the form state keeps exactly
// what the user typed while the wire never carries markup or control
// characters.
func NewPayload(values form.Values) Payload {
	p := Payload{
		PatientID:               values.PatientID,
		DateOfBirth:             values.DateOfBirth,
		PhysicianName:           SanitizeName(values.PhysicianName),
		NPINumber:               values.NPINumber,
		ProcedureCode:           values.ProcedureCode,
		ServiceStartDate:        values.ServiceStartDate,
		ServiceEndDate:          values.ServiceEndDate,
		SupportingNotesAttached: values.HasSupportingNotes(),
	}
	if values.Attachment != nil {
		name := values.Attachment.Name
		p.ClinicalNotesFilename = &name
	}
	return p
}
