package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
level = "debug"

[calendly]
api_token = "file-token"
timeout = 5

[auth]
api_key = "file-key"

[rate_limit]
requests = 50
window_seconds = 60

[scheduling]
timezone = "UTC"
`)
	t.Setenv(EnvCalendlyAPIToken, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvHTTPPort, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "https://api.calendly.com", cfg.Calendly.BaseURL)
	assert.Equal(t, "file-token", cfg.Calendly.APIToken)
	assert.Equal(t, 5, cfg.Calendly.Timeout)
	assert.Equal(t, "file-key", cfg.Auth.APIKey)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window())

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
[calendly]
api_token = "file-token"

[auth]
api_key = "file-key"
`)
	t.Setenv(EnvCalendlyAPIToken, "env-token")
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvHTTPPort, "3000")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Calendly.APIToken)
	assert.Equal(t, "env-key", cfg.Auth.APIKey)
	assert.Equal(t, 3000, cfg.Server.HTTPPort)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv(EnvCalendlyAPIToken, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvHTTPPort, "")

	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "missing token",
			content: "[auth]\napi_key = \"k\"\n",
		},
		{
			name:    "missing api key",
			content: "[calendly]\napi_token = \"t\"\n",
		},
		{
			name:    "bad timezone",
			content: "[calendly]\napi_token = \"t\"\n[auth]\napi_key = \"k\"\n[scheduling]\ntimezone = \"Mars/Olympus\"\n",
		},
		{
			name:    "bad rate limit",
			content: "[calendly]\napi_token = \"t\"\n[auth]\napi_key = \"k\"\n[rate_limit]\nrequests = 0\n",
		},
		{
			name:    "negative proxy hops",
			content: "[calendly]\napi_token = \"t\"\n[auth]\napi_key = \"k\"\n[rate_limit]\ntrust_proxy_hops = -1\n",
		},
		{
			name:    "negative cors max age",
			content: "[calendly]\napi_token = \"t\"\n[auth]\napi_key = \"k\"\n[cors]\nmax_age_seconds = -5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_CORSAndProxyDefaults(t *testing.T) {
	t.Setenv(EnvCalendlyAPIToken, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvHTTPPort, "")

	cfg, err := Load(writeConfig(t, "[calendly]\napi_token = \"t\"\n[auth]\napi_key = \"k\"\n"))
	require.NoError(t, err)

	assert.False(t, cfg.Server.ForceHTTPS)
	assert.Equal(t, 0, cfg.RateLimit.TrustProxyHops)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Contains(t, cfg.CORS.AllowedHeaders, "X-API-Key")
	assert.Equal(t, 24*time.Hour, cfg.CORS.MaxAge())
}

func TestLoad_CORSAndProxyOverrides(t *testing.T) {
	t.Setenv(EnvCalendlyAPIToken, "")
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvHTTPPort, "")

	cfg, err := Load(writeConfig(t, `
[server]
force_https = true

[calendly]
api_token = "t"

[auth]
api_key = "k"

[rate_limit]
trust_proxy_hops = 1

[cors]
allowed_origins = ["https://app.example.com"]
allow_credentials = true
`))
	require.NoError(t, err)

	assert.True(t, cfg.Server.ForceHTTPS)
	assert.Equal(t, 1, cfg.RateLimit.TrustProxyHops)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
	assert.Equal(t, []string{"GET", "POST", "PUT", "DELETE"}, cfg.CORS.AllowedMethods)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestSchedulingLocation_Local(t *testing.T) {
	loc, err := SchedulingConfig{Timezone: "Local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = SchedulingConfig{}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
