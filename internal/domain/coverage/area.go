package coverage

// GeoPoint is a geographic coordinate (WGS 84) supplied by the caller.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// InRange returns true if the coordinate is inside the valid
// latitude/longitude domain. Out-of-range input is a validation error for
// the caller, never a coverage miss.
func (p GeoPoint) InRange() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// CoverageArea is a named service-area polygon with bilingual metadata.
// A feature may exist in the dataset but be marked not-yet-serviceable
// via Covered=false.
type CoverageArea struct {
	Name          string     `json:"name"`
	NameAr        string     `json:"name_ar"`
	Governorate   string     `json:"governorate"`
	GovernorateAr string     `json:"governorate_ar"`
	Covered       bool       `json:"covered"`
	Ring          []GeoPoint `json:"-"`
}

// ZoneInfo is the display listing for a covered zone: bilingual
// name/governorate fields only, no geometry.
type ZoneInfo struct {
	Name          string `json:"name"`
	NameAr        string `json:"name_ar"`
	Governorate   string `json:"governorate"`
	GovernorateAr string `json:"governorate_ar"`
}

// CoverageResult is the outcome of a coverage check. Area is populated
// only when Covered is true.
type CoverageResult struct {
	Covered bool          `json:"covered"`
	Area    *CoverageArea `json:"area,omitempty"`
	Message string        `json:"message"`
}

const (
	// MsgCovered is returned when a point or zone falls inside a service area.
	MsgCovered = "Location is within our service area"
	// MsgNotCovered is returned when nothing matches.
	MsgNotCovered = "Location is not currently covered by our services"
)
