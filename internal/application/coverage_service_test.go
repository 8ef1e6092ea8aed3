package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/anees-health/service-booking/internal/domain"
	"github.com/anees-health/service-booking/internal/domain/coverage"
)

func testDataset() []coverage.CoverageArea {
	return []coverage.CoverageArea{
		{
			Name:          "Zamalek",
			NameAr:        "الزمالك",
			Governorate:   "Cairo",
			GovernorateAr: "القاهرة",
			Covered:       true,
			Ring: []coverage.GeoPoint{
				{Lat: 30.050, Lng: 31.214},
				{Lat: 30.050, Lng: 31.229},
				{Lat: 30.073, Lng: 31.229},
				{Lat: 30.073, Lng: 31.214},
			},
		},
	}
}

func newTestCoverageService(t *testing.T) *CoverageService {
	t.Helper()
	svc, err := NewCoverageService(testDataset(), zap.NewNop())
	require.NoError(t, err)
	return svc
}

func TestNewCoverageService_EmptyDataset(t *testing.T) {
	_, err := NewCoverageService(nil, zap.NewNop())
	assert.Error(t, err)
}

func TestCheckPoint(t *testing.T) {
	svc := newTestCoverageService(t)

	result, err := svc.CheckPoint(30.06, 31.22)
	require.NoError(t, err)
	require.True(t, result.Covered)
	assert.Equal(t, "Zamalek", result.Area.Name)

	result, err = svc.CheckPoint(25.0, 32.0)
	require.NoError(t, err)
	assert.False(t, result.Covered)
}

func TestCheckPoint_OutOfRange(t *testing.T) {
	svc := newTestCoverageService(t)

	_, err := svc.CheckPoint(95.0, 31.22)

	require.Error(t, err)
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, kind)
}

func TestCheckZone(t *testing.T) {
	svc := newTestCoverageService(t)

	result, err := svc.CheckZone("zamalek")
	require.NoError(t, err)
	assert.True(t, result.Covered)

	result, err = svc.CheckZone("Luxor")
	require.NoError(t, err)
	assert.False(t, result.Covered)
}

func TestCheckZone_Empty(t *testing.T) {
	svc := newTestCoverageService(t)

	_, err := svc.CheckZone("   ")

	require.Error(t, err)
	kind, ok := domain.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindValidation, kind)
}

func TestListZones(t *testing.T) {
	svc := newTestCoverageService(t)

	zones := svc.ListZones()

	require.Len(t, zones, 1)
	assert.Equal(t, "Zamalek", zones[0].Name)
	assert.Equal(t, "الزمالك", zones[0].NameAr)
}
