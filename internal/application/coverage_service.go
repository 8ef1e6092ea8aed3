package application

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/anees-health/service-booking/internal/domain"
	"github.com/anees-health/service-booking/internal/domain/coverage"
)

// CoverageService answers coverage queries over the immutable service-area
// dataset loaded at startup.
type CoverageService struct {
	dataset []coverage.CoverageArea
	logger  *zap.Logger
}

// NewCoverageService creates a CoverageService. The dataset must be
// non-empty; refusing to construct without data keeps "always not covered"
// from shipping silently.
func NewCoverageService(dataset []coverage.CoverageArea, logger *zap.Logger) (*CoverageService, error) {
	if len(dataset) == 0 {
		return nil, fmt.Errorf("coverage dataset is empty")
	}
	return &CoverageService{dataset: dataset, logger: logger}, nil
}

// CheckPoint validates the coordinate range and runs the geometric check.
// An out-of-range coordinate is a validation error, not a coverage miss.
func (s *CoverageService) CheckPoint(lat, lng float64) (coverage.CoverageResult, error) {
	point := coverage.GeoPoint{Lat: lat, Lng: lng}
	if !point.InRange() {
		return coverage.CoverageResult{}, domain.NewValidationError(
			fmt.Sprintf("coordinates out of range: lat=%v lng=%v", lat, lng))
	}

	result := coverage.CheckByPoint(point, s.dataset)
	s.logger.Debug("coverage point check",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng),
		zap.Bool("covered", result.Covered),
	)
	return result, nil
}

// CheckZone validates the zone string and runs the name match.
func (s *CoverageService) CheckZone(zone string) (coverage.CoverageResult, error) {
	if strings.TrimSpace(zone) == "" {
		return coverage.CoverageResult{}, domain.NewValidationError("zone name is required")
	}

	result := coverage.CheckByZone(zone, s.dataset)
	s.logger.Debug("coverage zone check",
		zap.String("zone", zone),
		zap.Bool("covered", result.Covered),
	)
	return result, nil
}

// ListZones returns the bilingual display listing of serviceable zones.
func (s *CoverageService) ListZones() []coverage.ZoneInfo {
	return coverage.ListCoveredZones(s.dataset)
}
