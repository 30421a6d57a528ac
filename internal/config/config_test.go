package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idscan/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT",
		"FORM_RECOGNIZER_KEY",
		"FORM_RECOGNIZER_ENDPOINT",
		"IDSCAN_SERVER_PORT",
		"IDSCAN_ANALYZER_KEY",
		"IDSCAN_ANALYZER_ENDPOINT",
		"IDSCAN_ANALYZER_POLL_TIMEOUT",
		"IDSCAN_UPLOAD_CLEANUP_ON_ERROR",
	} {
		t.Setenv(k, "")
	}
	// Keep any developer .env out of the way.
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.Server.Port)
	assert.True(t, cfg.Server.ExposeErrors)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.True(t, cfg.Upload.CleanupOnError)
	assert.Equal(t, config.PlaceholderKey, cfg.Analyzer.Key)
	assert.Equal(t, config.PlaceholderEndpoint, cfg.Analyzer.Endpoint)
	assert.Equal(t, "2024-11-30", cfg.Analyzer.APIVersion)
	assert.Equal(t, time.Second, cfg.Analyzer.PollInterval)
	assert.Zero(t, cfg.Analyzer.PollTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORS.AllowedOrigins)

	assert.ErrorIs(t, cfg.Validate(), config.ErrPlaceholderCredentials)
}

func TestLoad_LegacyEnvironmentNames(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORM_RECOGNIZER_KEY", "secret")
	t.Setenv("FORM_RECOGNIZER_ENDPOINT", "https://my-resource.cognitiveservices.azure.com/")
	t.Setenv("PORT", "8081")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Analyzer.Key)
	assert.Equal(t, "https://my-resource.cognitiveservices.azure.com", cfg.Analyzer.Endpoint)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PrefixedEnvironmentWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("FORM_RECOGNIZER_KEY", "legacy")
	t.Setenv("IDSCAN_ANALYZER_KEY", "prefixed")
	t.Setenv("IDSCAN_SERVER_PORT", ":9000")
	t.Setenv("PORT", "8081")
	t.Setenv("IDSCAN_ANALYZER_POLL_TIMEOUT", "90s")
	t.Setenv("IDSCAN_UPLOAD_CLEANUP_ON_ERROR", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "prefixed", cfg.Analyzer.Key)
	assert.Equal(t, ":9000", cfg.Server.Port)
	assert.Equal(t, 90*time.Second, cfg.Analyzer.PollTimeout)
	assert.False(t, cfg.Upload.CleanupOnError)
}

func TestValidate(t *testing.T) {
	valid := func() *config.Config {
		return &config.Config{
			Upload: config.UploadConfig{Dir: "uploads"},
			Analyzer: config.AnalyzerConfig{
				Endpoint: "https://my-resource.cognitiveservices.azure.com",
				Key:      "secret",
			},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Analyzer.Key = ""
	assert.ErrorIs(t, cfg.Validate(), config.ErrPlaceholderCredentials)

	cfg = valid()
	cfg.Analyzer.Endpoint = config.PlaceholderEndpoint
	assert.ErrorIs(t, cfg.Validate(), config.ErrPlaceholderCredentials)

	cfg = valid()
	cfg.Analyzer.Endpoint = "my-resource.cognitiveservices.azure.com"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Analyzer.PollTimeout = -time.Second
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Upload.Dir = ""
	assert.Error(t, cfg.Validate())
}

func TestServerConfig_IsProduction(t *testing.T) {
	assert.True(t, (&config.ServerConfig{Environment: "Production"}).IsProduction())
	assert.False(t, (&config.ServerConfig{Environment: "development"}).IsProduction())
}
