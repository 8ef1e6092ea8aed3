package coverage

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
)

// LoadDataset reads and parses the coverage GeoJSON file. The dataset is
// loaded once at startup and treated as immutable for the process lifetime;
// a missing or empty dataset is a hard error so the service can never start
// in a silent "always not covered" state.
func LoadDataset(path string) ([]CoverageArea, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coverage dataset %q: %w", path, err)
	}
	return ParseDataset(data)
}

// ParseDataset parses a GeoJSON FeatureCollection into coverage areas.
// Only Polygon features are considered, and only the outer ring of each
// polygon; holes are not modeled. Features with malformed geometry or a
// missing name are skipped rather than failing the whole dataset.
func ParseDataset(data []byte) ([]CoverageArea, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse coverage dataset: %w", err)
	}

	areas := make([]CoverageArea, 0, len(fc.Features))
	for _, f := range fc.Features {
		area, ok := featureToArea(f)
		if !ok {
			continue
		}
		areas = append(areas, area)
	}

	if len(areas) == 0 {
		return nil, fmt.Errorf("coverage dataset contains no usable features")
	}
	return areas, nil
}

func featureToArea(f *geojson.Feature) (CoverageArea, bool) {
	if f == nil || f.Geometry == nil || !f.Geometry.IsPolygon() || len(f.Geometry.Polygon) == 0 {
		return CoverageArea{}, false
	}

	name, err := f.PropertyString("name")
	if err != nil || name == "" {
		return CoverageArea{}, false
	}

	outer := f.Geometry.Polygon[0]
	ring := make([]GeoPoint, 0, len(outer))
	for _, coord := range outer {
		if len(coord) < 2 {
			continue
		}
		// GeoJSON positions are [lng, lat].
		ring = append(ring, GeoPoint{Lat: coord[1], Lng: coord[0]})
	}
	if len(ring) < 3 {
		return CoverageArea{}, false
	}

	area := CoverageArea{Name: name, Ring: ring}
	area.NameAr, _ = f.PropertyString("name_ar")
	area.Governorate, _ = f.PropertyString("governorate")
	area.GovernorateAr, _ = f.PropertyString("governorate_ar")
	area.Covered, _ = f.PropertyBool("covered")
	return area, true
}
