package coverage

import "strings"

// ToleranceDegrees is the fixed buffer around polygon boundaries. Service
// areas are hand-drawn approximations of real neighborhoods, so points just
// outside an imprecise boundary are still treated as served. 0.02 degrees is
// roughly 2.2 km at the equator.
const ToleranceDegrees = 0.02

// CheckByPoint tests the point against every covered area. A strict
// point-in-polygon hit wins first, in dataset iteration order; otherwise any
// covered area whose boundary lies within ToleranceDegrees of the point
// matches. Malformed rings (fewer than 3 vertices) are skipped.
//
// Callers validate the coordinate range before calling; see GeoPoint.InRange.
func CheckByPoint(point GeoPoint, dataset []CoverageArea) CoverageResult {
	for i := range dataset {
		area := &dataset[i]
		if !area.Covered || len(area.Ring) < 3 {
			continue
		}
		if ringContains(area.Ring, point) {
			return CoverageResult{Covered: true, Area: area, Message: MsgCovered}
		}
	}

	for i := range dataset {
		area := &dataset[i]
		if !area.Covered || len(area.Ring) < 3 {
			continue
		}
		if ringDistance(area.Ring, point) <= ToleranceDegrees {
			return CoverageResult{Covered: true, Area: area, Message: MsgCovered}
		}
	}

	return CoverageResult{Covered: false, Message: MsgNotCovered}
}

// CheckByZone matches a free-text zone name against covered areas. English
// names match case-insensitively by substring in either direction; Arabic
// names match by direct substring containment, since case folding is not
// meaningful for Arabic script. First match wins.
func CheckByZone(zoneName string, dataset []CoverageArea) CoverageResult {
	query := strings.TrimSpace(zoneName)
	if query == "" {
		return CoverageResult{Covered: false, Message: MsgNotCovered}
	}
	queryLower := strings.ToLower(query)

	for i := range dataset {
		area := &dataset[i]
		if !area.Covered {
			continue
		}
		nameLower := strings.ToLower(area.Name)
		if strings.Contains(nameLower, queryLower) || strings.Contains(queryLower, nameLower) {
			return CoverageResult{Covered: true, Area: area, Message: MsgCovered}
		}
		if area.NameAr != "" && (strings.Contains(area.NameAr, query) || strings.Contains(query, area.NameAr)) {
			return CoverageResult{Covered: true, Area: area, Message: MsgCovered}
		}
	}

	return CoverageResult{Covered: false, Message: MsgNotCovered}
}

// ListCoveredZones returns the display listing of serviceable zones.
func ListCoveredZones(dataset []CoverageArea) []ZoneInfo {
	zones := make([]ZoneInfo, 0, len(dataset))
	for i := range dataset {
		if !dataset[i].Covered {
			continue
		}
		zones = append(zones, ZoneInfo{
			Name:          dataset[i].Name,
			NameAr:        dataset[i].NameAr,
			Governorate:   dataset[i].Governorate,
			GovernorateAr: dataset[i].GovernorateAr,
		})
	}
	return zones
}
