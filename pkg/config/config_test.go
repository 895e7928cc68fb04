package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/sigec-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "sigec", cfg.DB.DBName)
	assert.Equal(t, 25, cfg.DB.MaxConns)
	assert.True(t, cfg.DB.ForceIPv4)
	assert.Equal(t, 100, cfg.RateLimit.GlobalMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.GlobalWindow)
	assert.Equal(t, 10, cfg.RateLimit.LoginMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.LoginWindow)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("FRONTEND_URL", "https://asesores.example.com/")
	t.Setenv("DB_FORCE_IPV4", "false")
	t.Setenv("DB_MAX_CONNS", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.Brokers)
	assert.True(t, cfg.Events.Enabled())
	assert.True(t, cfg.Mail.Enabled())
	assert.Equal(t, "https://asesores.example.com", cfg.App.FrontendURL)
	assert.False(t, cfg.DB.ForceIPv4)
	assert.Equal(t, 5, cfg.DB.MaxConns)
}

func TestLoad_ProductionExigeSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "u", Password: "p@ss", DBName: "sigec", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p%40ss@db:5432/sigec?sslmode=disable", c.DSN())
	assert.Equal(t, c.DSN(), c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
