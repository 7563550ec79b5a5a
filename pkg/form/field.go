package form

// Field names one independently editable unit of form input. The string value
// doubles as the key used in error maps, serialized state, and wire payload
// construction, so the spellings are stable identifiers rather than display
// text.
type Field string

const (
	PatientID        Field = "patientId"
	DateOfBirth      Field = "dateOfBirth"
	PhysicianName    Field = "physicianName"
	NPINumber        Field = "npiNumber"
	ProcedureCode    Field = "procedureCode"
	ServiceStartDate Field = "serviceStartDate"
	ServiceEndDate   Field = "serviceEndDate"
)

// Fields returns every editable field in canonical prompt/render order.
func Fields() []Field {
	return []Field{
		PatientID,
		DateOfBirth,
		PhysicianName,
		NPINumber,
		ProcedureCode,
		ServiceStartDate,
		ServiceEndDate,
	}
}

// Known reports whether f is part of the intake form. Mutation paths ignore
// unknown fields and validation always passes them, so callers rarely need
// this; it exists for diagnostics and prompt loops.
func Known(f Field) bool {
	switch f {
	case PatientID, DateOfBirth, PhysicianName, NPINumber,
		ProcedureCode, ServiceStartDate, ServiceEndDate:
		return true
	}
	return false
}

// Label returns the human-facing label for a field. Unknown fields fall back
// to their raw name.
func (f Field) Label() string {
	switch f {
	case PatientID:
		return "Patient ID"
	case DateOfBirth:
		return "Date of Birth"
	case PhysicianName:
		return "Physician Name"
	case NPINumber:
		return "NPI Number"
	case ProcedureCode:
		return "Procedure Code"
	case ServiceStartDate:
		return "Service Start Date"
	case ServiceEndDate:
		return "Service End Date"
	}
	return string(f)
}

func (f Field) String() string { return string(f) }
