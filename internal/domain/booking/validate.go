package booking

import "strings"

// FieldError reports a single missing or invalid required field. MessageKey
// is a translation key; rendering the human string is a presentation concern.
type FieldError struct {
	Field      string `json:"field"`
	MessageKey string `json:"messageKey"`
}

// Validate checks the selection for completeness. It is not fail-fast: every
// missing or invalid required field yields one FieldError, and an empty
// result is the success signal. Only the branch selected by VisitType is
// inspected.
func Validate(sel BookingSelection) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(sel.FullName) == "" {
		errs = append(errs, FieldError{Field: "fullName", MessageKey: "booking.fullName.required"})
	}
	if strings.TrimSpace(sel.PhoneNumber) == "" {
		errs = append(errs, FieldError{Field: "phoneNumber", MessageKey: "booking.phoneNumber.required"})
	}
	if strings.TrimSpace(sel.CountryCode) == "" {
		errs = append(errs, FieldError{Field: "countryCode", MessageKey: "booking.countryCode.required"})
	}

	if !sel.VisitType.IsValid() {
		errs = append(errs, FieldError{Field: "visitType", MessageKey: "booking.visitType.required"})
		return errs
	}

	switch sel.VisitType {
	case VisitTypeHomeVisit:
		errs = append(errs, validateHomeVisit(sel.HomeVisit)...)
	case VisitTypePackage:
		if sel.Package == nil || !sel.Package.PackageType.IsValid() {
			errs = append(errs, FieldError{Field: "packageType", MessageKey: "booking.packageType.required"})
		}
	case VisitTypeTelemedicine:
		// Flat fee, no sub-options.
	}

	return errs
}

func validateHomeVisit(hv *HomeVisitSelection) []FieldError {
	if hv == nil || !hv.ServiceType.IsValid() {
		return []FieldError{{Field: "serviceType", MessageKey: "booking.serviceType.required"}}
	}

	var errs []FieldError
	switch hv.ServiceType {
	case ServiceTypeDoctorVisit:
		if hv.DoctorVisit == nil || !hv.DoctorVisit.Specialty.IsValid() {
			errs = append(errs, FieldError{Field: "specialty", MessageKey: "booking.specialty.required"})
		}
		if hv.DoctorVisit == nil || !hv.DoctorVisit.TimePreference.IsValid() {
			errs = append(errs, FieldError{Field: "timePreference", MessageKey: "booking.timePreference.required"})
		}

	case ServiceTypePhysiotherapy:
		if hv.Physiotherapy == nil || !hv.Physiotherapy.SessionCount.IsValid() {
			errs = append(errs, FieldError{Field: "sessionCount", MessageKey: "booking.sessionCount.required"})
		}
		if hv.Physiotherapy == nil || !hv.Physiotherapy.CaseType.IsValid() {
			errs = append(errs, FieldError{Field: "caseType", MessageKey: "booking.caseType.required"})
		}

	case ServiceTypeNursing:
		if hv.Nursing == nil || !hv.Nursing.NursingType.IsValid() {
			errs = append(errs, FieldError{Field: "nursingType", MessageKey: "booking.nursingType.required"})
		}
		if hv.Nursing == nil || !hv.Nursing.HoursPerDay.IsValid() {
			errs = append(errs, FieldError{Field: "nursingHoursPerDay", MessageKey: "booking.nursingHoursPerDay.required"})
		}
		if hv.Nursing == nil || !hv.Nursing.Duration.IsValid() {
			errs = append(errs, FieldError{Field: "nursingDuration", MessageKey: "booking.nursingDuration.required"})
		}
	}

	return errs
}
