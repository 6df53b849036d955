// Package web parses dashboard service flags and launches the service.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/aislehq/aisle/internal/platform/cmd"
	"github.com/aislehq/aisle/internal/services/web"
	"github.com/aislehq/aisle/internal/services/web/gateway"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr       string `env:"AISLE_WEB_HTTP_ADDR" envDefault:"localhost:8090"`
	PlannerBaseURL string `env:"AISLE_WEB_PLANNER_BASE_URL" envDefault:"http://localhost:8091"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The dashboard HTTP listen address")
	fs.StringVar(&cfg.PlannerBaseURL, "planner-base-url", cfg.PlannerBaseURL, "The planner API base URL")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the dashboard HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(context.Context) error {
		gw, err := gateway.New(cfg.PlannerBaseURL)
		if err != nil {
			return fmt.Errorf("configure planner gateway: %w", err)
		}
		srv, err := web.NewServer(ctx, web.Config{
			HTTPAddr:        cfg.HTTPAddr,
			SessionClient:   gw,
			AccountClient:   gw,
			DirectoryClient: gw,
			HotelClient:     gw,
			GiftClient:      gw,
			SmsClient:       gw,
		})
		if err != nil {
			return fmt.Errorf("configure dashboard server: %w", err)
		}
		return srv.ListenAndServe(ctx)
	})
}
