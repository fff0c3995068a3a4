package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/collabctl/internal/adapters/driving/cli"
	"github.com/custodia-labs/collabctl/internal/connectors/m365"
	"github.com/custodia-labs/collabctl/internal/core/ports/driving"
	"github.com/custodia-labs/collabctl/internal/core/services"
	"github.com/custodia-labs/collabctl/internal/logger"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cli.SetVersion(version)

	// Pick up a local .env when present; a missing file is not an error.
	_ = godotenv.Load()

	// Providers are registered explicitly during bootstrap, not as an
	// import-time side effect. Re-registering a name overwrites.
	registry := services.NewProviderRegistry()
	registry.Register(m365.ProviderName, func(_ context.Context) (driving.CollaborationProvider, error) {
		cfg, err := loadM365Config()
		if err != nil {
			return nil, err
		}
		return m365.New(cfg, logger.Default()), nil
	})

	cli.SetRegistry(registry)

	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// loadM365Config reads the m365 configuration from the --config file when
// given, otherwise from the environment.
func loadM365Config() (*m365.Config, error) {
	if path := cli.ConfigPath(); path != "" {
		return m365.LoadFile(path)
	}
	return m365.FromEnv()
}
