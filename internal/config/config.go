package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// KashierConfig holds credentials for the Kashier payment gateway.
// Loaded once here and passed into the payment client; business logic
// never reads the environment directly.
type KashierConfig struct {
	MerchantID  string `mapstructure:"KASHIER_MERCHANT_ID"`
	APIKey      string `mapstructure:"KASHIER_API_KEY"`
	CheckoutURL string `mapstructure:"KASHIER_CHECKOUT_URL"`
	RedirectURL string `mapstructure:"KASHIER_REDIRECT_URL"`
}

// KafkaConfig holds broker addresses for event publishing.
type KafkaConfig struct {
	Brokers []string
}

// ServiceConfig holds all configuration for the booking service.
type ServiceConfig struct {
	Port            string `mapstructure:"SERVICE_PORT"`
	AppEnv          string `mapstructure:"APP_ENV"`
	CoverageDataset string `mapstructure:"COVERAGE_DATASET"`
	KafkaBrokers    string `mapstructure:"KAFKA_BROKERS"`

	Kashier KashierConfig `mapstructure:",squash"`
}

// Load reads configuration from environment variables (ANEES_ prefix) and
// an optional config.yaml in the working directory.
func Load() (*ServiceConfig, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("ANEES")
	v.AutomaticEnv()

	v.SetDefault("SERVICE_PORT", ":8080")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("COVERAGE_DATASET", "data/coverage_zones.geojson")
	v.SetDefault("KAFKA_BROKERS", "localhost:9092")
	v.SetDefault("KASHIER_MERCHANT_ID", "")
	v.SetDefault("KASHIER_API_KEY", "")
	v.SetDefault("KASHIER_CHECKOUT_URL", "https://checkout.kashier.io")
	v.SetDefault("KASHIER_REDIRECT_URL", "https://aneeshealth.com/booking/confirmation")

	// Bind explicitly so env vars resolve without a config file present.
	for _, key := range []string{
		"SERVICE_PORT", "APP_ENV", "COVERAGE_DATASET", "KAFKA_BROKERS",
		"KASHIER_MERCHANT_ID", "KASHIER_API_KEY", "KASHIER_CHECKOUT_URL", "KASHIER_REDIRECT_URL",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg ServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if !strings.HasPrefix(cfg.Port, ":") {
		cfg.Port = ":" + cfg.Port
	}

	return &cfg, nil
}

// Kafka returns the parsed Kafka broker list.
func (c *ServiceConfig) Kafka() KafkaConfig {
	parts := strings.Split(c.KafkaBrokers, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			brokers = append(brokers, p)
		}
	}
	return KafkaConfig{Brokers: brokers}
}
