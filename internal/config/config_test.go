package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "data/coverage_zones.geojson", cfg.CoverageDataset)
	assert.Equal(t, "https://checkout.kashier.io", cfg.Kashier.CheckoutURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ANEES_SERVICE_PORT", "9000")
	t.Setenv("ANEES_APP_ENV", "production")
	t.Setenv("ANEES_KASHIER_MERCHANT_ID", "MID-LIVE")
	t.Setenv("ANEES_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Port, "bare port gets a colon prefix")
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, "MID-LIVE", cfg.Kashier.MerchantID)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka().Brokers)
}
