package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "shop")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, "invoice-archiver", conf.Kafka.GroupID)
	assert.Equal(t, "data/invoices", conf.Invoice.Dir)
	assert.Equal(t, 30*24*time.Hour, conf.Redis.CartTTL)
}

func TestNew_FromEnv(t *testing.T) {
	setRequired(t)
	t.Setenv("ENV", "production")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	conf := config.New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "production", conf.Env)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, time.Minute, conf.Cache.TTL)
	assert.Equal(t, 1000, conf.Cache.Capacity)
}

func TestValidate_Errors(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"ENV": "dev"}},
		{name: "short jwt secret", env: map[string]string{"JWT_SECRET": "short"}},
		{name: "bad ssl mode", env: map[string]string{"POSTGRES_SSL_MODE": "maybe"}},
		{name: "bad cors origin", env: map[string]string{"ALLOWED_CORS_ORIGINS": "not a url"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, config.New().Validate())
		})
	}
}
