// Package bootstrap wires the SDK's components for host applications. Hosts
// built on fx mount Module directly; everything is also constructible by
// hand through the individual packages.
package bootstrap

import (
	"log/slog"
	"net/http"

	"starclip/client"
	"starclip/dashboard"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

var ClientModule = fx.Module("client",
	fx.Provide(
		NewSession,
		NewClient,
	),
)

var DashboardModule = fx.Module("dashboard",
	fx.Provide(
		NewController,
		NewAvailabilityEditor,
	),
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	ClientModule,
	DashboardModule,
)

func NewSession(cfg Config) (*client.Session, error) {
	return client.NewSession(cfg.API.Token)
}

func NewClient(cfg Config, sess *client.Session, logger *slog.Logger) *client.Client {
	return client.New(
		cfg.API.BaseURL,
		sess,
		logger,
		client.WithHTTPClient(&http.Client{Timeout: cfg.API.Timeout}),
		client.WithRateLimit(cfg.API.RateLimit, cfg.API.RateBurst),
	)
}

func NewController(cfg Config, c *client.Client, logger *slog.Logger) *dashboard.Controller {
	return dashboard.NewController(
		c,
		logger,
		dashboard.WithNoticeTTL(cfg.Dashboard.NoticeTTL),
		dashboard.WithUploadCloseDelay(cfg.Dashboard.UploadCloseDelay),
	)
}

func NewAvailabilityEditor(c *client.Client, logger *slog.Logger) *dashboard.AvailabilityEditor {
	return dashboard.NewAvailabilityEditor(c, logger)
}
