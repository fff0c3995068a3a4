// Package cli wires the collaboration-provider capability set to cobra
// commands, resolving providers by name through the injected registry.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/collabctl/internal/core/ports/driving"
	"github.com/custodia-labs/collabctl/internal/core/services"
	"github.com/custodia-labs/collabctl/internal/logger"
)

var (
	// Version is set by goreleaser ldflags.
	version = "dev"

	// Verbose enables debug logging.
	verbose bool

	// providerName selects which registered provider handles the command.
	providerName string

	// configPath optionally points at a TOML config file instead of the
	// environment.
	configPath string

	// providerRegistry is injected from main during bootstrap.
	providerRegistry *services.ProviderRegistry
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "collabctl",
	Short: "Talk to collaboration platforms through one uniform interface",
	Long: `Collabctl exposes users, channels, messages, documents, tasks and email
of a collaboration platform through a single provider interface.

Providers are selected with --provider; m365 (Microsoft 365 via Microsoft
Graph) is the default. Credentials come from the environment or a TOML
config file.`,
}

// SetRegistry injects the provider registry for CLI commands.
func SetRegistry(r *services.ProviderRegistry) {
	providerRegistry = r
}

// ConfigPath returns the --config flag value, empty when unset.
func ConfigPath() string {
	return configPath
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// resolveProvider creates the selected provider through the registry.
func resolveProvider(ctx context.Context) (driving.CollaborationProvider, error) {
	if providerRegistry == nil {
		return nil, errors.New("provider registry not configured")
	}
	return providerRegistry.Create(ctx, providerName)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose debug output")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "m365", "collaboration provider to use")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file (defaults to environment variables)")

	// Use PersistentPreRunE to set verbose mode before any command executes
	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return nil
	}
}
