package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/goliatone/go-intake/pkg/form"
	"github.com/goliatone/go-intake/pkg/submit"
)

// fieldViolation is one entry of a 422 detail list, shaped like the claims
// API's schema-validation output.
type fieldViolation struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

func (s *Server) submitPriorAuth(c echo.Context) error {
	var payload submit.Payload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, []fieldViolation{{
			Loc:  []string{"body"},
			Msg:  "Invalid request body",
			Type: "value_error.jsondecode",
		}})
	}

	// The claims backend pauses here to mimic downstream adjudication.
	if s.cfg.SimulatedDelay > 0 {
		select {
		case <-time.After(s.cfg.SimulatedDelay):
		case <-c.Request().Context().Done():
			return c.Request().Context().Err()
		}
	}

	payload.PhysicianName = submit.SanitizeName(payload.PhysicianName)
	values := payloadValues(payload)

	if errs := s.validator.All(values); !errs.Valid() {
		if invalidRangeOnly(errs, values) {
			return echo.NewHTTPError(http.StatusBadRequest, echo.Map{
				"error":   "Invalid date range",
				"message": "Service start date cannot be after service end date",
				"field":   "service_start_date",
			})
		}
		return echo.NewHTTPError(http.StatusUnprocessableEntity, violations(errs))
	}

	key := claimKey(values)
	s.mu.Lock()
	if existing, ok := s.claims[key]; ok {
		s.mu.Unlock()
		return echo.NewHTTPError(http.StatusConflict, echo.Map{
			"error":             "Duplicate claim",
			"message":           "A claim for this patient and service date already exists",
			"existing_claim_id": existing.PatientID,
		})
	}
	s.claims[key] = payload
	s.mu.Unlock()

	u := s.identify(c)
	receipt := submit.Receipt{
		Status:    "submitted",
		Reference: s.newRef(),
		Timestamp: s.clock().UTC(),
		Message:   fmt.Sprintf("Claim submitted successfully by %s", u.Username),
	}

	s.logger.Info().
		Str("claim_reference", receipt.Reference.String()).
		Str("procedure_code", payload.ProcedureCode).
		Str("submitted_by", u.Username).
		Msg("claim accepted")

	return c.JSON(http.StatusCreated, receipt)
}

func (s *Server) claimStats(c echo.Context) error {
	s.mu.RLock()
	total := len(s.claims)
	s.mu.RUnlock()

	u := s.identify(c)
	return c.JSON(http.StatusOK, echo.Map{
		"total_claims": total,
		"accessed_by":  u.Username,
		"role":         u.Role,
	})
}

// claimKey is the duplicate-detection key: one claim per patient per service
// start date.
func claimKey(values form.Values) string {
	return values.PatientID + "_" + values.ServiceStartDate
}

func payloadValues(p submit.Payload) form.Values {
	values := form.Values{
		PatientID:        p.PatientID,
		DateOfBirth:      p.DateOfBirth,
		PhysicianName:    p.PhysicianName,
		NPINumber:        p.NPINumber,
		ProcedureCode:    p.ProcedureCode,
		ServiceStartDate: p.ServiceStartDate,
		ServiceEndDate:   p.ServiceEndDate,
	}
	if p.ClinicalNotesFilename != nil {
		values.Attachment = &form.Attachment{Name: *p.ClinicalNotesFilename}
	}
	return values
}

// invalidRangeOnly reports whether the sole failure is the end date falling
// before the start date. That case is the claims API's own 400, not a schema
// violation.
func invalidRangeOnly(errs form.Errors, values form.Values) bool {
	fields := errs.Fields()
	if len(fields) != 1 || fields[0] != form.ServiceEndDate {
		return false
	}
	start, err := time.Parse("2006-01-02", values.ServiceStartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse("2006-01-02", values.ServiceEndDate)
	if err != nil {
		return false
	}
	return end.Before(start)
}

func violations(errs form.Errors) []fieldViolation {
	fields := errs.Fields()
	out := make([]fieldViolation, 0, len(fields))
	for _, field := range fields {
		out = append(out, fieldViolation{
			Loc:  []string{"body", wireName(field)},
			Msg:  errs.Reason(field),
			Type: "value_error",
		})
	}
	return out
}

// wireName maps a form field to its snake_case name on the wire.
func wireName(field form.Field) string {
	switch field {
	case form.PatientID:
		return "patient_id"
	case form.DateOfBirth:
		return "date_of_birth"
	case form.PhysicianName:
		return "physician_name"
	case form.NPINumber:
		return "npi_number"
	case form.ProcedureCode:
		return "procedure_code"
	case form.ServiceStartDate:
		return "service_start_date"
	case form.ServiceEndDate:
		return "service_end_date"
	}
	return string(field)
}
