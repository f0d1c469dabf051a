package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"MONGODB_URI", "DB_NAME", "STORE_DRIVER", "PORT", "ALLOWED_ORIGINS",
		"RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "REQUEST_TIMEOUT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, DriverMongo, cfg.StoreDriver)
	assert.Equal(t, "MarkMe", cfg.DBName)
	assert.Equal(t, "3000", cfg.Port)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, 15*time.Minute, cfg.RateLimitWindow)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.Debug())
}

func TestFromEnvRequiresMongoURI(t *testing.T) {
	clearEnv(t)

	_, err := FromEnv()
	require.Error(t, err)

	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, err.Error(), "MONGODB_URI")
}

func TestFromEnvMemoryDriverSkipsURI(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "Memory")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.StoreDriver)
}

func TestFromEnvParsesOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example ,, https://b.example")
	t.Setenv("RATE_LIMIT_MAX", "5")
	t.Setenv("RATE_LIMIT_WINDOW", "1m")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 5, cfg.RateLimitMax)
	assert.Equal(t, time.Minute, cfg.RateLimitWindow)
	assert.True(t, cfg.Debug())
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	cases := map[string][2]string{
		"bad int":      {"RATE_LIMIT_MAX", "lots"},
		"zero max":     {"RATE_LIMIT_MAX", "0"},
		"bad duration": {"REQUEST_TIMEOUT", "soon"},
		"bad driver":   {"STORE_DRIVER", "postgres"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
			t.Setenv(kv[0], kv[1])

			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
