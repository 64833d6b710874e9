package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.GetServerAddress())
	assert.Equal(t, "/api/v1", cfg.GetAPIBasePath())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 1*time.Hour, cfg.Redis.CacheTTL)
	assert.Equal(t, 24*time.Hour, cfg.Redis.IdempotencyTTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.JWTExpiresIn)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "usd", cfg.Payments.Currency)
	assert.Equal(t, 300, cfg.RateLimit.HealthRequests)
	assert.Contains(t, cfg.Database.DSN, "dbname=hallbook_db")
	assert.Contains(t, cfg.Database.DSN, "sslmode=disable")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("REDIS_CACHE_TTL", "30m")
	t.Setenv("JWT_EXPIRES_IN", "900") // seconds
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("RATE_LIMIT_WHITELISTED_IPS", "10.0.0.1,10.0.0.2")
	t.Setenv("DB_NAME", "hallbook_test")

	cfg := Load()

	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.Redis.CacheTTL)
	assert.Equal(t, 15*time.Minute, cfg.JWT.JWTExpiresIn)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RateLimit.WhitelistedIPs)
	assert.Contains(t, cfg.Database.DSN, "dbname=hallbook_test")
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	t.Setenv("REDIS_CACHE_TTL", "soon")
	t.Setenv("RATE_LIMIT_ENABLED", "definitely")

	cfg := Load()

	assert.Equal(t, 0, cfg.Redis.DB)
	assert.Equal(t, 1*time.Hour, cfg.Redis.CacheTTL)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestGatewayConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.GatewayConfigured())

	cfg.Payments.GatewaySecretKey = "sk_test_placeholder_key"
	assert.False(t, cfg.GatewayConfigured())

	cfg.Payments.GatewaySecretKey = "sk_live_abc123"
	assert.True(t, cfg.GatewayConfigured())
}
