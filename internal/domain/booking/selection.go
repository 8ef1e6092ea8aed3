package booking

// VisitType is the top-level booking category.
type VisitType string

const (
	VisitTypeHomeVisit    VisitType = "homeVisit"
	VisitTypeTelemedicine VisitType = "telemedicine"
	VisitTypePackage      VisitType = "package"
)

// IsValid returns true if the visit type is recognized.
func (v VisitType) IsValid() bool {
	switch v {
	case VisitTypeHomeVisit, VisitTypeTelemedicine, VisitTypePackage:
		return true
	}
	return false
}

// ServiceType is the home-visit sub-category.
type ServiceType string

const (
	ServiceTypeDoctorVisit   ServiceType = "doctorVisit"
	ServiceTypePhysiotherapy ServiceType = "physiotherapy"
	ServiceTypeNursing       ServiceType = "nursing"
)

// IsValid returns true if the service type is recognized.
func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceTypeDoctorVisit, ServiceTypePhysiotherapy, ServiceTypeNursing:
		return true
	}
	return false
}

// Specialty is the medical specialty requested for a doctor visit.
// Specialty is scheduling metadata, not a price driver.
type Specialty string

const (
	SpecialtyGeneralPractice  Specialty = "generalPractice"
	SpecialtyInternalMedicine Specialty = "internalMedicine"
	SpecialtyPediatrics       Specialty = "pediatrics"
	SpecialtyCardiology       Specialty = "cardiology"
	SpecialtyOrthopedics      Specialty = "orthopedics"
	SpecialtyNeurology        Specialty = "neurology"
	SpecialtyGeriatrics       Specialty = "geriatrics"
	SpecialtyDermatology      Specialty = "dermatology"
)

// IsValid returns true if the specialty is recognized.
func (s Specialty) IsValid() bool {
	switch s {
	case SpecialtyGeneralPractice, SpecialtyInternalMedicine, SpecialtyPediatrics,
		SpecialtyCardiology, SpecialtyOrthopedics, SpecialtyNeurology,
		SpecialtyGeriatrics, SpecialtyDermatology:
		return true
	}
	return false
}

// TimePreference is the requested visit window.
type TimePreference string

const (
	TimeMorning      TimePreference = "morning"
	TimeEvening      TimePreference = "evening"
	TimeDoesntMatter TimePreference = "doesntMatter"
)

// IsValid returns true if the time preference is recognized.
func (t TimePreference) IsValid() bool {
	switch t {
	case TimeMorning, TimeEvening, TimeDoesntMatter:
		return true
	}
	return false
}

// SessionCount is the physiotherapy session count: a single session or the
// twelve-session bundle.
type SessionCount string

const (
	SessionSingle SessionCount = "1"
	SessionBundle SessionCount = "12"
)

// IsValid returns true if the session count is recognized.
func (s SessionCount) IsValid() bool {
	return s == SessionSingle || s == SessionBundle
}

// CaseType is the physiotherapy case category.
type CaseType string

const (
	CaseStrokeRehab    CaseType = "strokeRehab"
	CasePostSurgery    CaseType = "postSurgery"
	CaseBackPain       CaseType = "backPain"
	CaseSportsInjury   CaseType = "sportsInjury"
	CasePediatricRehab CaseType = "pediatricRehab"
	CaseGeriatricRehab CaseType = "geriatricRehab"
)

// IsValid returns true if the case type is recognized.
func (c CaseType) IsValid() bool {
	switch c {
	case CaseStrokeRehab, CasePostSurgery, CaseBackPain,
		CaseSportsInjury, CasePediatricRehab, CaseGeriatricRehab:
		return true
	}
	return false
}

// NursingType distinguishes a registered nurse from a nursing assistant.
type NursingType string

const (
	NursingNurse     NursingType = "nurse"
	NursingAssistant NursingType = "nursingAssistant"
)

// IsValid returns true if the nursing type is recognized.
func (n NursingType) IsValid() bool {
	return n == NursingNurse || n == NursingAssistant
}

// NursingHours is the shift length per day.
type NursingHours string

const (
	Hours8  NursingHours = "8hrs"
	Hours12 NursingHours = "12hrs"
	Hours24 NursingHours = "24hrs"
)

// IsValid returns true if the shift length is recognized.
func (h NursingHours) IsValid() bool {
	switch h {
	case Hours8, Hours12, Hours24:
		return true
	}
	return false
}

// NursingDuration is the booking commitment length.
type NursingDuration string

const (
	Duration1Week  NursingDuration = "1week"
	Duration2Weeks NursingDuration = "2weeks"
	Duration1Month NursingDuration = "1month"
)

// IsValid returns true if the duration is recognized.
func (d NursingDuration) IsValid() bool {
	switch d {
	case Duration1Week, Duration2Weeks, Duration1Month:
		return true
	}
	return false
}

// PackageType identifies a fixed-price bundled care program.
type PackageType string

const (
	PackageHaraka PackageType = "haraka"
	PackageWai    PackageType = "wai"
	PackageAmal   PackageType = "amal"
)

// IsValid returns true if the package type is recognized.
func (p PackageType) IsValid() bool {
	switch p {
	case PackageHaraka, PackageWai, PackageAmal:
		return true
	}
	return false
}

// DoctorVisitSelection holds the doctor-visit branch options. PreferredDate
// is free-form scheduling metadata and never drives the price.
type DoctorVisitSelection struct {
	Specialty      Specialty      `json:"specialty"`
	PreferredDate  string         `json:"preferredDate,omitempty"`
	TimePreference TimePreference `json:"timePreference"`
}

// PhysiotherapySelection holds the physiotherapy branch options.
type PhysiotherapySelection struct {
	SessionCount SessionCount `json:"sessionCount"`
	CaseType     CaseType     `json:"caseType"`
}

// NursingSelection holds the nursing branch options.
type NursingSelection struct {
	NursingType NursingType     `json:"nursingType"`
	HoursPerDay NursingHours    `json:"nursingHoursPerDay"`
	Duration    NursingDuration `json:"nursingDuration"`
}

// HomeVisitSelection carries the home-visit sub-branch. Only the detail
// struct matching ServiceType is ever read.
type HomeVisitSelection struct {
	ServiceType   ServiceType             `json:"serviceType"`
	DoctorVisit   *DoctorVisitSelection   `json:"doctorVisit,omitempty"`
	Physiotherapy *PhysiotherapySelection `json:"physiotherapy,omitempty"`
	Nursing       *NursingSelection       `json:"nursing,omitempty"`
}

// BookingSelection is the discriminated booking form. VisitType selects
// which branch struct is read; fields belonging to other branches are
// disregarded even when present, so stale state from an abandoned branch
// can never leak into validation or pricing.
type BookingSelection struct {
	FullName    string    `json:"fullName"`
	PhoneNumber string    `json:"phoneNumber"`
	CountryCode string    `json:"countryCode"`
	VisitType   VisitType `json:"visitType"`

	HomeVisit *HomeVisitSelection `json:"homeVisit,omitempty"`
	Package   *PackageSelection   `json:"package,omitempty"`
}

// PackageSelection carries the package branch.
type PackageSelection struct {
	PackageType PackageType `json:"packageType"`
}
