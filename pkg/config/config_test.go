package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, CartDriverMemory, cfg.Cart.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Cart.AbsoluteTTL)
	assert.Equal(t, 30*time.Minute, cfg.Cart.SlidingTTL)
	assert.False(t, cfg.Cart.SharedFallback)
	assert.Equal(t, 10, cfg.Catalog.PageSize)
	assert.Equal(t, "booklib_session", cfg.Session.CookieName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.App.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartSlidingTTL, "5m")
	t.Setenv(EnvCartDriver, "redis")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.Cart.SlidingTTL)
	assert.True(t, cfg.Cart.UsesRedis())
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	require.NoError(t, os.Unsetenv(EnvSessionSecret))

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RedisDriverNeedsAddress(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartDriver, "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartDriver, "memcached")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveTTL(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvCartAbsoluteTTL, "0s")

	_, err := Load()
	assert.Error(t, err)
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvSessionSecret, "secret")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	assert.True(t, devConfig.IsDev())
	assert.False(t, devConfig.IsProd())

	prodConfig := AppConfig{Env: "prod"}
	assert.True(t, prodConfig.IsProd())
	assert.False(t, prodConfig.IsDev())
}
