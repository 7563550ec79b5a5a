package form

import "testing"

func TestValuesGetSet_RoundTripsKnownFields(t *testing.T) {
	var values Values
	for i, field := range Fields() {
		want := field.Label() + "-value"
		values.Set(field, want)
		if got := values.Get(field); got != want {
			t.Fatalf("field %d (%s): expected %q, got %q", i, field, want, got)
		}
	}
}

func TestValuesSet_IgnoresUnknownField(t *testing.T) {
	var values Values
	values.Set(Field("favoriteColor"), "blue")
	if got := values.Get(Field("favoriteColor")); got != "" {
		t.Fatalf("expected unknown field to stay empty, got %q", got)
	}
	if values != (Values{}) {
		t.Fatalf("expected values to remain zero, got %#v", values)
	}
}

func TestValuesHasSupportingNotes_TracksAttachment(t *testing.T) {
	var values Values
	if values.HasSupportingNotes() {
		t.Fatal("expected no supporting notes on an empty form")
	}

	values.Attachment = &Attachment{Name: "notes.pdf", Size: 500_000}
	if !values.HasSupportingNotes() {
		t.Fatal("expected supporting notes after attaching")
	}

	values.Attachment = nil
	if values.HasSupportingNotes() {
		t.Fatal("expected supporting notes to clear with the attachment")
	}
}

func TestValuesClone_DetachesAttachment(t *testing.T) {
	original := Values{
		PatientID:  "123e4567-e89b-12d3-a456-426614174000",
		Attachment: &Attachment{Name: "notes.pdf", Size: 100},
	}

	clone := original.Clone()
	clone.Attachment.Name = "other.pdf"
	clone.PatientID = "changed"

	if original.Attachment.Name != "notes.pdf" {
		t.Fatalf("expected original attachment untouched, got %q", original.Attachment.Name)
	}
	if original.PatientID != "123e4567-e89b-12d3-a456-426614174000" {
		t.Fatalf("expected original patient id untouched, got %q", original.PatientID)
	}
}

func TestErrors_SetClearAndOrder(t *testing.T) {
	errs := Errors{}
	errs.Set(NPINumber, "NPI must be exactly 10 digits")
	errs.Set(PatientID, "Patient ID is required")

	if errs.Valid() {
		t.Fatal("expected errors to be present")
	}
	if !errs.Has(NPINumber) || errs.Reason(NPINumber) != "NPI must be exactly 10 digits" {
		t.Fatalf("unexpected npi entry: %q", errs.Reason(NPINumber))
	}

	fields := errs.Fields()
	if len(fields) != 2 || fields[0] != NPINumber || fields[1] != PatientID {
		t.Fatalf("expected lexical order [npiNumber patientId], got %v", fields)
	}

	errs.Set(NPINumber, "")
	if errs.Has(NPINumber) {
		t.Fatal("expected empty reason to clear the entry")
	}

	errs.Set(PatientID, "")
	if !errs.Valid() {
		t.Fatalf("expected clean map, got %v", errs)
	}
}

func TestErrorsClone_IsIndependent(t *testing.T) {
	errs := Errors{PatientID: "Patient ID is required"}
	clone := errs.Clone()
	clone.Set(PatientID, "")

	if !errs.Has(PatientID) {
		t.Fatal("expected original map to keep its entry")
	}
}
