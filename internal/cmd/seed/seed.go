// Package seed parses seed tool flags and loads demo fixtures.
package seed

import (
	"context"
	"flag"
	"io"

	entrypoint "github.com/aislehq/aisle/internal/platform/cmd"
	"github.com/aislehq/aisle/internal/tools/seed"
)

// Config holds seed command configuration.
type Config struct {
	DBPath   string `env:"AISLE_PLANNER_DB_PATH" envDefault:"data/planner.db"`
	Email    string `env:"AISLE_SEED_EMAIL" envDefault:"ana@example.com"`
	Password string `env:"AISLE_SEED_PASSWORD" envDefault:"aisle-demo"`
	Verbose  bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "planner sqlite database path")
	fs.StringVar(&cfg.Email, "email", cfg.Email, "demo planner account email")
	fs.StringVar(&cfg.Password, "password", cfg.Password, "demo planner account password")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(context.Context) error {
		return seed.Run(ctx, seed.Config{
			DBPath:   cfg.DBPath,
			Email:    cfg.Email,
			Password: cfg.Password,
			Verbose:  cfg.Verbose,
		}, out)
	})
}
