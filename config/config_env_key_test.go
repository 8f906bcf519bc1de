package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId":       "",
			"consumerGroup": "",
		},
		"http": map[string]any{
			"timeouts": map[string]any{
				"requestTimeout": "30s",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "PUBSUB_CONSUMERGROUP", want: "pubsub.consumerGroup"},
		{envKey: "HTTP_TIMEOUTS_REQUESTTIMEOUT", want: "http.timeouts.requestTimeout"},
		{envKey: "INVENTORY_DEFAULT_MINIMUM", want: "inventory.default.minimum"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("empty config", func(t *testing.T) {
		cfg := &Config{PubSub: &PubSubConfig{Provider: "kafka"}}

		applyDefaults(cfg)

		assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
		assert.Equal(t, 30*time.Second, cfg.HTTP.Timeouts.RequestTimeout)
		assert.Equal(t, 10, cfg.Pool.MaxOpenConns)
		assert.Equal(t, 10, cfg.Pool.MaxIdleConns)
		assert.Equal(t, 5, cfg.Inventory.DefaultMinimum)
		assert.Equal(t, "Estoque Principal", cfg.Inventory.DefaultLocation)
		assert.Equal(t, "dncommerce-stockworker", cfg.PubSub.ConsumerGroup)
	})

	t.Run("idle connections never exceed open connections", func(t *testing.T) {
		cfg := &Config{}
		cfg.Pool.MaxOpenConns = 4
		cfg.Pool.MaxIdleConns = 20

		applyDefaults(cfg)

		assert.Equal(t, 4, cfg.Pool.MaxIdleConns)
	})

	t.Run("configured values are kept", func(t *testing.T) {
		cfg := &Config{}
		cfg.HTTP.Timeouts.RequestTimeout = 5 * time.Second
		cfg.Inventory.DefaultMinimum = 12
		cfg.Inventory.DefaultLocation = "Depósito 2"

		applyDefaults(cfg)

		assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.RequestTimeout)
		assert.Equal(t, 12, cfg.Inventory.DefaultMinimum)
		assert.Equal(t, "Depósito 2", cfg.Inventory.DefaultLocation)
		assert.Nil(t, cfg.PubSub)
	})
}

func newValidConfig() *Config {
	cfg := &Config{
		PubSub: &PubSubConfig{
			Provider:      "local",
			TopicID:       "order-events",
			LocalEndpoint: "http://localhost:8081/push",
		},
		Redis:   &RedisConfig{Addr: "localhost:6379", TTL: time.Minute},
		Tracing: &TracingConfig{SampleRatio: 1},
		QRCode:  &QRCodeConfig{Size: 256, ErrorCorrectionLevel: "M"},
	}
	cfg.HTTP.Port = 3000
	applyDefaults(cfg)

	return cfg
}

func TestValidate(t *testing.T) {
	require.NoError(t, validate(newValidConfig()))

	tests := []struct {
		name   string
		mutate func(cfg *Config)
		field  string
	}{
		{
			name:   "port out of range",
			mutate: func(cfg *Config) { cfg.HTTP.Port = 70000 },
			field:  "Config.HTTP.Port",
		},
		{
			name:   "unknown provider",
			mutate: func(cfg *Config) { cfg.PubSub.Provider = "sqs" },
			field:  "Config.PubSub.Provider",
		},
		{
			name: "google provider without project",
			mutate: func(cfg *Config) {
				cfg.PubSub.Provider = "google"
			},
			field: "Config.PubSub.ProjectID",
		},
		{
			name: "kafka provider without brokers",
			mutate: func(cfg *Config) {
				cfg.PubSub.Provider = "kafka"
			},
			field: "Config.PubSub.Brokers",
		},
		{
			name:   "redis without address",
			mutate: func(cfg *Config) { cfg.Redis.Addr = "" },
			field:  "Config.Redis.Addr",
		},
		{
			name: "tracing enabled without endpoint",
			mutate: func(cfg *Config) {
				cfg.Tracing.Enabled = true
			},
			field: "Config.Tracing.Endpoint",
		},
		{
			name:   "sample ratio above one",
			mutate: func(cfg *Config) { cfg.Tracing.SampleRatio = 1.5 },
			field:  "Config.Tracing.SampleRatio",
		},
		{
			name:   "unknown qr correction level",
			mutate: func(cfg *Config) { cfg.QRCode.ErrorCorrectionLevel = "X" },
			field:  "Config.QRCode.ErrorCorrectionLevel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := newValidConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidate_OptionalSectionsMayBeAbsent(t *testing.T) {
	cfg := newValidConfig()
	cfg.PubSub = nil
	cfg.Redis = nil
	cfg.Tracing = nil
	cfg.QRCode = nil

	assert.NoError(t, validate(cfg))
}

func TestBuildReplicasFromEnv(t *testing.T) {
	t.Setenv("POSTGRES_REPLICAS_0_HOST", "replica-0")
	t.Setenv("POSTGRES_REPLICAS_0_PORT", "5433")
	t.Setenv("POSTGRES_REPLICAS_0_USERNAME", "reader")
	t.Setenv("POSTGRES_REPLICAS_1_HOST", "replica-1")

	replicas := buildReplicasFromEnv()

	if assert.Len(t, replicas, 1) {
		assert.Equal(t, "replica-0", replicas[0].Host)
		assert.Equal(t, "5433", replicas[0].Port)
		assert.Equal(t, "reader", replicas[0].UserName)
	}
}
