package validation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-intake/pkg/catalog"
	"github.com/goliatone/go-intake/pkg/form"
)

func validValues() form.Values {
	return form.Values{
		PatientID:        "123e4567-e89b-12d3-a456-426614174000",
		DateOfBirth:      "1980-01-15",
		PhysicianName:    "Dr. Jane Smith",
		NPINumber:        "1234567890",
		ProcedureCode:    "A876",
		ServiceStartDate: "2024-01-01",
		ServiceEndDate:   "2024-01-15",
	}
}

func TestFieldRules_ExactReasons(t *testing.T) {
	validator := New()

	cases := []struct {
		name   string
		field  form.Field
		mutate func(*form.Values)
		want   string
	}{
		{name: "patient id empty", field: form.PatientID, mutate: func(v *form.Values) { v.PatientID = "" }, want: "Patient ID is required"},
		{name: "patient id malformed", field: form.PatientID, mutate: func(v *form.Values) { v.PatientID = "not-a-uuid" }, want: "Invalid UUID format"},
		{name: "patient id missing hyphens", field: form.PatientID, mutate: func(v *form.Values) { v.PatientID = "123e4567e89b12d3a456426614174000" }, want: "Invalid UUID format"},
		{name: "patient id non-hex", field: form.PatientID, mutate: func(v *form.Values) { v.PatientID = "123e4567-e89b-12d3-a456-42661417400g" }, want: "Invalid UUID format"},
		{name: "patient id uppercase ok", field: form.PatientID, mutate: func(v *form.Values) { v.PatientID = "123E4567-E89B-12D3-A456-426614174000" }, want: ""},
		{name: "date of birth empty", field: form.DateOfBirth, mutate: func(v *form.Values) { v.DateOfBirth = "" }, want: "Date of Birth is required"},
		{name: "physician empty", field: form.PhysicianName, mutate: func(v *form.Values) { v.PhysicianName = "" }, want: "Physician Name is required"},
		{name: "physician one character", field: form.PhysicianName, mutate: func(v *form.Values) { v.PhysicianName = "J" }, want: "Name must be at least 2 characters"},
		{name: "physician two characters ok", field: form.PhysicianName, mutate: func(v *form.Values) { v.PhysicianName = "Jo" }, want: ""},
		{name: "npi empty", field: form.NPINumber, mutate: func(v *form.Values) { v.NPINumber = "" }, want: "NPI Number is required"},
		{name: "npi nine digits", field: form.NPINumber, mutate: func(v *form.Values) { v.NPINumber = "123456789" }, want: "NPI must be exactly 10 digits"},
		{name: "npi eleven digits", field: form.NPINumber, mutate: func(v *form.Values) { v.NPINumber = "12345678901" }, want: "NPI must be exactly 10 digits"},
		{name: "npi letters", field: form.NPINumber, mutate: func(v *form.Values) { v.NPINumber = "123abc7890" }, want: "NPI must be exactly 10 digits"},
		{name: "npi ten digits ok", field: form.NPINumber, mutate: func(v *form.Values) { v.NPINumber = "1234567890" }, want: ""},
		{name: "procedure empty", field: form.ProcedureCode, mutate: func(v *form.Values) { v.ProcedureCode = "" }, want: "Procedure Code is required"},
		{name: "procedure unknown code", field: form.ProcedureCode, mutate: func(v *form.Values) { v.ProcedureCode = "Z999" }, want: "Procedure Code is required"},
		{name: "start date empty", field: form.ServiceStartDate, mutate: func(v *form.Values) { v.ServiceStartDate = "" }, want: "Start Date is required"},
		{name: "end date empty", field: form.ServiceEndDate, mutate: func(v *form.Values) { v.ServiceEndDate = "" }, want: "End Date is required"},
		{
			name:  "end before start",
			field: form.ServiceEndDate,
			mutate: func(v *form.Values) {
				v.ServiceStartDate = "2024-01-10"
				v.ServiceEndDate = "2024-01-05"
			},
			want: "End Date cannot be before Start Date",
		},
		{
			name:  "end equals start ok",
			field: form.ServiceEndDate,
			mutate: func(v *form.Values) {
				v.ServiceStartDate = "2024-01-10"
				v.ServiceEndDate = "2024-01-10"
			},
			want: "",
		},
		{
			name:  "end after start ok",
			field: form.ServiceEndDate,
			mutate: func(v *form.Values) {
				v.ServiceStartDate = "2024-01-10"
				v.ServiceEndDate = "2024-01-11"
			},
			want: "",
		},
		{
			name:  "equal dates in different encodings ok",
			field: form.ServiceEndDate,
			mutate: func(v *form.Values) {
				v.ServiceStartDate = "2024-1-10"
				v.ServiceEndDate = "2024-01-10"
			},
			want: "",
		},
		{
			name:  "unparseable start skips ordering",
			field: form.ServiceEndDate,
			mutate: func(v *form.Values) {
				v.ServiceStartDate = "someday"
				v.ServiceEndDate = "2024-01-10"
			},
			want: "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := validValues()
			tc.mutate(&values)

			err := validator.Field(tc.field, values)
			if tc.want == "" {
				if err != nil {
					t.Fatalf("expected valid, got %q", err.Error())
				}
				return
			}
			if err == nil {
				t.Fatalf("expected %q, got valid", tc.want)
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %T", err)
			}
			if fieldErr.Field != tc.field {
				t.Fatalf("expected field %s, got %s", tc.field, fieldErr.Field)
			}
			if fieldErr.Reason != tc.want {
				t.Fatalf("expected reason %q, got %q", tc.want, fieldErr.Reason)
			}
		})
	}
}

func TestFieldUnknownAlwaysPasses(t *testing.T) {
	validator := New()
	if err := validator.Field(form.Field("favoriteColor"), form.Values{}); err != nil {
		t.Fatalf("expected unknown field to pass, got %v", err)
	}
}

func TestAllAggregatesEveryFailure(t *testing.T) {
	validator := New()

	errs := validator.All(form.Values{})
	want := form.Errors{
		form.PatientID:        "Patient ID is required",
		form.DateOfBirth:      "Date of Birth is required",
		form.PhysicianName:    "Physician Name is required",
		form.NPINumber:        "NPI Number is required",
		form.ProcedureCode:    "Procedure Code is required",
		form.ServiceStartDate: "Start Date is required",
		form.ServiceEndDate:   "End Date is required",
	}
	if diff := cmp.Diff(want, errs); diff != "" {
		t.Fatalf("aggregate mismatch (-want +got):\n%s", diff)
	}
}

func TestAllPassesOnValidForm(t *testing.T) {
	validator := New()
	if errs := validator.All(validValues()); !errs.Valid() {
		t.Fatalf("expected clean form, got %v", errs)
	}
}

func TestDependentsMapsStartToEnd(t *testing.T) {
	validator := New()

	deps := validator.Dependents(form.ServiceStartDate)
	if len(deps) != 1 || deps[0] != form.ServiceEndDate {
		t.Fatalf("expected [serviceEndDate], got %v", deps)
	}
	if deps := validator.Dependents(form.PatientID); deps != nil {
		t.Fatalf("expected no dependents for patientId, got %v", deps)
	}
}

func TestWithDependentsOverridesMap(t *testing.T) {
	validator := New(WithDependents(form.ServiceStartDate))
	if deps := validator.Dependents(form.ServiceStartDate); deps != nil {
		t.Fatalf("expected dependency removed, got %v", deps)
	}

	validator = New(WithDependents(form.DateOfBirth, form.ServiceStartDate))
	deps := validator.Dependents(form.DateOfBirth)
	if len(deps) != 1 || deps[0] != form.ServiceStartDate {
		t.Fatalf("unexpected dependents: %v", deps)
	}
}

func TestWithProcedureCodesAndPlaceholder(t *testing.T) {
	set := catalog.New(catalog.Option{Value: "X100", Label: "Custom"})
	validator := New(WithProcedureCodes(set), WithPlaceholder("--"))

	values := validValues()
	values.ProcedureCode = "--"
	if err := validator.Field(form.ProcedureCode, values); err == nil || err.Error() != "Procedure Code is required" {
		t.Fatalf("expected placeholder rejection, got %v", err)
	}

	values.ProcedureCode = "A876"
	if err := validator.Field(form.ProcedureCode, values); err == nil {
		t.Fatal("expected code outside the custom catalog to fail")
	}

	values.ProcedureCode = "X100"
	if err := validator.Field(form.ProcedureCode, values); err != nil {
		t.Fatalf("expected catalog member to pass, got %v", err)
	}
}
