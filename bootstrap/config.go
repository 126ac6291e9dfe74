package bootstrap

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (API endpoint,
//   credential)
// - default: values common across all environments (timeouts, UI timings)
// -----------------------------------------------------------------------------

type Config struct {
	API       APIConfig
	Log       LogConfig
	Dashboard DashboardConfig
}

type APIConfig struct {
	BaseURL   string        `envconfig:"STARCLIP_API_BASE_URL" required:"true"`
	Token     string        `envconfig:"STARCLIP_API_TOKEN" required:"true"`
	Timeout   time.Duration `envconfig:"STARCLIP_API_TIMEOUT" default:"30s"`
	RateLimit float64       `envconfig:"STARCLIP_API_RATE_LIMIT" default:"10"`
	RateBurst int           `envconfig:"STARCLIP_API_RATE_BURST" default:"5"`
}

type LogConfig struct {
	Level string `envconfig:"STARCLIP_LOG_LEVEL" default:"info"`
}

type DashboardConfig struct {
	NoticeTTL        time.Duration `envconfig:"STARCLIP_NOTICE_TTL" default:"4s"`
	UploadCloseDelay time.Duration `envconfig:"STARCLIP_UPLOAD_CLOSE_DELAY" default:"1500ms"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:   "http://localhost:8899",
			Token:     "test-token",
			Timeout:   5 * time.Second,
			RateLimit: 0, // no throttling in tests
		},
		Log: LogConfig{
			Level: "error",
		},
		Dashboard: DashboardConfig{
			NoticeTTL:        50 * time.Millisecond,
			UploadCloseDelay: 10 * time.Millisecond,
		},
	}
}
