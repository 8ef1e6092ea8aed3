package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contactFields() BookingSelection {
	return BookingSelection{
		FullName:    "Ahmed Hassan",
		PhoneNumber: "1001234567",
		CountryCode: "+20",
	}
}

func fieldsOf(errs []FieldError) []string {
	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.Field
	}
	return fields
}

func TestValidate_ValidTelemedicine(t *testing.T) {
	sel := contactFields()
	sel.VisitType = VisitTypeTelemedicine

	assert.Empty(t, Validate(sel))
}

func TestValidate_MissingContactFields(t *testing.T) {
	sel := BookingSelection{
		FullName:    "   ",
		PhoneNumber: "",
		CountryCode: "",
		VisitType:   VisitTypeTelemedicine,
	}

	errs := Validate(sel)
	assert.ElementsMatch(t, []string{"fullName", "phoneNumber", "countryCode"}, fieldsOf(errs))
}

func TestValidate_InvalidVisitType(t *testing.T) {
	sel := contactFields()
	sel.VisitType = "houseCall"

	errs := Validate(sel)
	require.Len(t, errs, 1)
	assert.Equal(t, "visitType", errs[0].Field)
	assert.Equal(t, "booking.visitType.required", errs[0].MessageKey)
}

func TestValidate_NursingMissingAllSubFields(t *testing.T) {
	sel := contactFields()
	sel.VisitType = VisitTypeHomeVisit
	sel.HomeVisit = &HomeVisitSelection{ServiceType: ServiceTypeNursing}

	errs := Validate(sel)

	// Exactly one error per missing nursing field, none from other branches.
	assert.ElementsMatch(t,
		[]string{"nursingType", "nursingHoursPerDay", "nursingDuration"},
		fieldsOf(errs),
	)
}

func TestValidate_NursingComplete(t *testing.T) {
	sel := contactFields()
	sel.VisitType = VisitTypeHomeVisit
	sel.HomeVisit = &HomeVisitSelection{
		ServiceType: ServiceTypeNursing,
		Nursing: &NursingSelection{
			NursingType: NursingNurse,
			HoursPerDay: Hours12,
			Duration:    Duration1Month,
		},
	}

	assert.Empty(t, Validate(sel))
}

func TestValidate_HomeVisitMissingServiceType(t *testing.T) {
	sel := contactFields()
	sel.VisitType = VisitTypeHomeVisit

	errs := Validate(sel)
	assert.ElementsMatch(t, []string{"serviceType"}, fieldsOf(errs))
}

func TestValidate_DoctorVisitRequirements(t *testing.T) {
	sel := contactFields()
	sel.VisitType = VisitTypeHomeVisit
	sel.HomeVisit = &HomeVisitSelection{ServiceType: ServiceTypeDoctorVisit}

	errs := Validate(sel)
	assert.ElementsMatch(t, []string{"specialty", "timePreference"}, fieldsOf(errs))

	sel.HomeVisit.DoctorVisit = &DoctorVisitSelection{
		Specialty:      SpecialtyPediatrics,
		TimePreference: TimeDoesntMatter,
	}
	assert.Empty(t, Validate(sel), "preferred date is optional")
}

func TestValidate_PhysiotherapyRequirements(t *testing.T) {
	sel := contactFields()
	sel.VisitType = VisitTypeHomeVisit
	sel.HomeVisit = &HomeVisitSelection{
		ServiceType:   ServiceTypePhysiotherapy,
		Physiotherapy: &PhysiotherapySelection{SessionCount: "6"},
	}

	errs := Validate(sel)
	assert.ElementsMatch(t, []string{"sessionCount", "caseType"}, fieldsOf(errs))
}

func TestValidate_PackageRequirements(t *testing.T) {
	sel := contactFields()
	sel.VisitType = VisitTypePackage

	errs := Validate(sel)
	assert.ElementsMatch(t, []string{"packageType"}, fieldsOf(errs))

	sel.Package = &PackageSelection{PackageType: PackageHaraka}
	assert.Empty(t, Validate(sel))
}

func TestValidate_IgnoresOtherBranches(t *testing.T) {
	// A telemedicine selection carrying stale home-visit state validates
	// on the telemedicine branch only.
	sel := contactFields()
	sel.VisitType = VisitTypeTelemedicine
	sel.HomeVisit = &HomeVisitSelection{ServiceType: ServiceTypeNursing}

	assert.Empty(t, Validate(sel))
}
