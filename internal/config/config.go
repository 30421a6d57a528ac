package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Placeholder credentials applied when the Azure settings are not provided.
// They never authenticate; Validate rejects them.
const (
	PlaceholderKey      = "TU_KEY_AQUI"
	PlaceholderEndpoint = "TU_ENDPOINT_AQUI"
)

// ErrPlaceholderCredentials is returned by Validate when the analyzer would run
// with the placeholder key or endpoint.
var ErrPlaceholderCredentials = errors.New("document analyzer credentials are not configured")

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	Analyzer AnalyzerConfig
	CORS     CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	Environment     string        `mapstructure:"environment"`
	// ExposeErrors relays raw error messages to clients on 5xx responses.
	ExposeErrors bool `mapstructure:"expose_errors"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// UploadConfig holds settings for the temporary upload directory.
type UploadConfig struct {
	Dir            string `mapstructure:"dir"`
	MaxMemoryMB    int64  `mapstructure:"max_memory_mb"`
	CleanupOnError bool   `mapstructure:"cleanup_on_error"`
}

// AnalyzerConfig holds Azure Document Intelligence settings.
type AnalyzerConfig struct {
	Endpoint     string        `mapstructure:"endpoint"`
	Key          string        `mapstructure:"key"`
	APIVersion   string        `mapstructure:"api_version"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// PollTimeout bounds the whole submit-and-poll cycle. Zero waits forever.
	PollTimeout time.Duration `mapstructure:"poll_timeout"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Validate checks that the configuration can serve real requests.
func (c *Config) Validate() error {
	key := strings.TrimSpace(c.Analyzer.Key)
	endpoint := strings.TrimSpace(c.Analyzer.Endpoint)
	if key == "" || key == PlaceholderKey || endpoint == "" || endpoint == PlaceholderEndpoint {
		return ErrPlaceholderCredentials
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		return fmt.Errorf("analyzer endpoint %q must be an http(s) URL", endpoint)
	}
	if c.Analyzer.PollTimeout < 0 {
		return fmt.Errorf("analyzer poll timeout must not be negative, got %s", c.Analyzer.PollTimeout)
	}
	if c.Upload.Dir == "" {
		return errors.New("upload directory must not be empty")
	}
	return nil
}

// Load reads configuration from a .env file (if present) and environment
// variables. Settings use the IDSCAN_ prefix; the Azure credentials and the
// listen port also honour FORM_RECOGNIZER_KEY, FORM_RECOGNIZER_ENDPOINT and PORT.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("IDSCAN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":3000")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.expose_errors", true)

	// Upload defaults
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("upload.max_memory_mb", 32)
	v.SetDefault("upload.cleanup_on_error", true)

	// Analyzer defaults
	v.SetDefault("analyzer.endpoint", PlaceholderEndpoint)
	v.SetDefault("analyzer.key", PlaceholderKey)
	v.SetDefault("analyzer.api_version", "2024-11-30")
	v.SetDefault("analyzer.poll_interval", "1s")
	v.SetDefault("analyzer.poll_timeout", "0s")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys. The first name
	// listed wins when several are set.
	envBindings := map[string][]string{
		"server.port":             {"IDSCAN_SERVER_PORT"},
		"server.read_timeout":     {"IDSCAN_SERVER_READ_TIMEOUT"},
		"server.shutdown_timeout": {"IDSCAN_SERVER_SHUTDOWN_TIMEOUT"},
		"server.environment":      {"IDSCAN_SERVER_ENVIRONMENT"},
		"server.expose_errors":    {"IDSCAN_SERVER_EXPOSE_ERRORS"},
		"upload.dir":              {"IDSCAN_UPLOAD_DIR"},
		"upload.max_memory_mb":    {"IDSCAN_UPLOAD_MAX_MEMORY_MB"},
		"upload.cleanup_on_error": {"IDSCAN_UPLOAD_CLEANUP_ON_ERROR"},
		"analyzer.endpoint":       {"IDSCAN_ANALYZER_ENDPOINT", "FORM_RECOGNIZER_ENDPOINT"},
		"analyzer.key":            {"IDSCAN_ANALYZER_KEY", "FORM_RECOGNIZER_KEY"},
		"analyzer.api_version":    {"IDSCAN_ANALYZER_API_VERSION"},
		"analyzer.poll_interval":  {"IDSCAN_ANALYZER_POLL_INTERVAL"},
		"analyzer.poll_timeout":   {"IDSCAN_ANALYZER_POLL_TIMEOUT"},
		"cors.allowed_origins":    {"IDSCAN_CORS_ALLOWED_ORIGINS"},
	}
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	cfg := &Config{}

	// Hosting platforms set a PORT env var. Use it if IDSCAN_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("IDSCAN_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:            serverPort,
		ReadTimeout:     v.GetDuration("server.read_timeout"),
		ShutdownTimeout: v.GetDuration("server.shutdown_timeout"),
		Environment:     v.GetString("server.environment"),
		ExposeErrors:    v.GetBool("server.expose_errors"),
	}
	cfg.Upload = UploadConfig{
		Dir:            v.GetString("upload.dir"),
		MaxMemoryMB:    v.GetInt64("upload.max_memory_mb"),
		CleanupOnError: v.GetBool("upload.cleanup_on_error"),
	}
	cfg.Analyzer = AnalyzerConfig{
		Endpoint:     strings.TrimRight(v.GetString("analyzer.endpoint"), "/"),
		Key:          v.GetString("analyzer.key"),
		APIVersion:   v.GetString("analyzer.api_version"),
		PollInterval: v.GetDuration("analyzer.poll_interval"),
		PollTimeout:  v.GetDuration("analyzer.poll_timeout"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
