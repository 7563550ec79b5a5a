package validation

import (
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/goliatone/go-intake/pkg/form"
)

// Canonical UUID text: 8-4-4-4-12 hex groups, case-insensitive.
var uuidPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// National Provider Identifier: exactly ten decimal digits, nothing else.
var npiPattern = regexp.MustCompile(`^[0-9]{10}$`)

// dateLayouts accepts the wire layout plus unpadded month/day so two
// encodings of the same calendar date compare equal.
var dateLayouts = []string{"2006-01-02", "2006-1-2"}

const (
	reasonPatientIDRequired   = "Patient ID is required"
	reasonPatientIDFormat     = "Invalid UUID format"
	reasonDateOfBirthRequired = "Date of Birth is required"
	reasonPhysicianRequired   = "Physician Name is required"
	reasonPhysicianTooShort   = "Name must be at least 2 characters"
	reasonNPIRequired         = "NPI Number is required"
	reasonNPIFormat           = "NPI must be exactly 10 digits"
	reasonProcedureRequired   = "Procedure Code is required"
	reasonStartDateRequired   = "Start Date is required"
	reasonEndDateRequired     = "End Date is required"
	reasonEndBeforeStart      = "End Date cannot be before Start Date"
)

// reason evaluates one field and returns its failure reason, empty when the
// field passes. Unknown fields always pass.
func (v *Validator) reason(field form.Field, values form.Values) string {
	value := values.Get(field)

	switch field {
	case form.PatientID:
		if value == "" {
			return reasonPatientIDRequired
		}
		if !uuidPattern.MatchString(value) {
			return reasonPatientIDFormat
		}
	case form.DateOfBirth:
		if value == "" {
			return reasonDateOfBirthRequired
		}
	case form.PhysicianName:
		if value == "" {
			return reasonPhysicianRequired
		}
		if utf8.RuneCountInString(value) < 2 {
			return reasonPhysicianTooShort
		}
	case form.NPINumber:
		if value == "" {
			return reasonNPIRequired
		}
		if !npiPattern.MatchString(value) {
			return reasonNPIFormat
		}
	case form.ProcedureCode:
		if value == "" || value == v.placeholder {
			return reasonProcedureRequired
		}
		if !v.codes.Empty() && !v.codes.Has(value) {
			return reasonProcedureRequired
		}
	case form.ServiceStartDate:
		if value == "" {
			return reasonStartDateRequired
		}
	case form.ServiceEndDate:
		if value == "" {
			return reasonEndDateRequired
		}
		if endBeforeStart(values.ServiceStartDate, value) {
			return reasonEndBeforeStart
		}
	}
	return ""
}

// endBeforeStart compares calendar values, not strings. Equal dates are in
// order; a start or end that does not parse leaves ordering to the presence
// rules.
func endBeforeStart(start, end string) bool {
	if start == "" || end == "" {
		return false
	}
	startDate, ok := parseDate(start)
	if !ok {
		return false
	}
	endDate, ok := parseDate(end)
	if !ok {
		return false
	}
	return endDate.Before(startDate)
}

func parseDate(value string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
