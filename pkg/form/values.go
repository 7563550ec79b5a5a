package form

// Values is the authoritative record of user input for one form session.
// Mutation happens through the controller; presentation code reads copies.
// Dates are carried as the raw strings the user entered so the validator can
// report on exactly what was typed.
type Values struct {
	PatientID        string `json:"patientId"`
	DateOfBirth      string `json:"dateOfBirth"`
	PhysicianName    string `json:"physicianName"`
	NPINumber        string `json:"npiNumber"`
	ProcedureCode    string `json:"procedureCode"`
	ServiceStartDate string `json:"serviceStartDate"`
	ServiceEndDate   string `json:"serviceEndDate"`

	// Attachment is the currently accepted supporting document, nil when none
	// is attached. It is set only through constraint-checked acceptance.
	Attachment *Attachment `json:"attachment,omitempty"`
}

// HasSupportingNotes reports whether a supporting document is currently
// attached. It is derived from Attachment on every call so the two can never
// diverge; there is deliberately no settable flag behind it.
func (v Values) HasSupportingNotes() bool {
	return v.Attachment != nil
}

// Get returns the current value for a field. Unknown fields read as empty.
func (v Values) Get(f Field) string {
	switch f {
	case PatientID:
		return v.PatientID
	case DateOfBirth:
		return v.DateOfBirth
	case PhysicianName:
		return v.PhysicianName
	case NPINumber:
		return v.NPINumber
	case ProcedureCode:
		return v.ProcedureCode
	case ServiceStartDate:
		return v.ServiceStartDate
	case ServiceEndDate:
		return v.ServiceEndDate
	}
	return ""
}

// Set stores a value for a field. Unknown fields are ignored; the form has a
// fixed field set and there is nowhere to put anything else.
func (v *Values) Set(f Field, value string) {
	switch f {
	case PatientID:
		v.PatientID = value
	case DateOfBirth:
		v.DateOfBirth = value
	case PhysicianName:
		v.PhysicianName = value
	case NPINumber:
		v.NPINumber = value
	case ProcedureCode:
		v.ProcedureCode = value
	case ServiceStartDate:
		v.ServiceStartDate = value
	case ServiceEndDate:
		v.ServiceEndDate = value
	}
}

// Clone returns a deep copy, detaching the attachment so later edits to the
// original cannot reach a payload captured at submit time.
func (v Values) Clone() Values {
	out := v
	if v.Attachment != nil {
		att := *v.Attachment
		out.Attachment = &att
	}
	return out
}
