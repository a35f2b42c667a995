package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the configuration needed to build a Reporter.
type Config struct {
	// Product is the name of the distributed artifact (extension,
	// CLI, ...). It ends up in tags and in every prefixed
	// identifier sent to the backend.
	Product string `env:"PRODUCT,default=core"`
	// DSN is the destination endpoint of the error-tracking
	// backend. When empty the backend client discards everything.
	DSN string `env:"SENTRY_DSN"`
	// Version is the version of the tool, supplied by the
	// embedding application.
	Version string
	// Environment is the deploy environment reported to the
	// backend (e.g. "production", "development").
	Environment string
	// Logger is the logger used for local output. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// LoadConfig populates a Config from TELEMETRY_-prefixed environment
// variables.
func LoadConfig(ctx context.Context) (Config, error) {
	var cfg Config
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.PrefixLookuper("TELEMETRY_", envconfig.OsLookuper()),
	})
	if err != nil {
		return Config{}, fmt.Errorf("parse the env: %w", err)
	}
	return cfg, nil
}

// numericVersion encodes the leading major.minor.patch triple of a
// version string as a single integer ("0.27.3" -> 27003). Parts that
// are missing or not numeric count as 0.
func numericVersion(version string) int {
	parts := strings.SplitN(version, ".", 4)
	encoded := 0
	for i := 0; i < 3; i++ {
		encoded *= 1000
		if i >= len(parts) {
			continue
		}
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			continue
		}
		encoded += n
	}
	return encoded
}
