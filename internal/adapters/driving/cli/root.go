// Package cli provides the cobra commands of the smartmirror binary.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driven/backend"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
	"github.com/custodia-labs/smartmirror-cli/internal/core/services"
	"github.com/custodia-labs/smartmirror-cli/internal/logger"
)

// version is set at build time via ldflags or SetVersion.
var version = "dev"

// Persistent flags.
var (
	verbose     bool
	configDir   string
	backendURL  string
	localeFlag  string
	envFilePath string
	noConfig    bool
)

var rootCmd = &cobra.Command{
	Use:   "smartmirror",
	Short: "Transit and commute dashboard for the terminal",
	Long: `smartmirror shows taxi estimates, bus arrivals, subway departures and the
chance of arriving on time, backed by the mirror HTTP service.

Run "smartmirror tui" for the interactive dashboard, or use the one-shot
commands below from scripts.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	flags.StringVar(&configDir, "config-dir", "", "config directory (default ~/.smartmirror)")
	flags.StringVar(&backendURL, "backend", "", "backend base URL (overrides config and environment)")
	flags.StringVar(&localeFlag, "locale", "", "UI locale: ko or en")
	flags.StringVar(&envFilePath, "env-file", "", "KEY=VALUE file loaded before reading the environment (default .env)")
	flags.BoolVar(&noConfig, "no-config", false, "ignore config.toml and never write to disk")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// environment is the wiring built for one command invocation.
type environment struct {
	store     driven.ConfigStore
	settings  file.Settings
	dashboard *services.Dashboard
}

// bootstrap loads settings and wires the dashboard. Flags win over the
// environment, which wins over the config file.
func bootstrap(cmd *cobra.Command) (*environment, error) {
	var envFiles []string
	if envFilePath != "" {
		envFiles = append(envFiles, envFilePath)
	}
	if err := file.LoadDotEnv(envFiles...); err != nil {
		return nil, fmt.Errorf("loading env file: %w", err)
	}

	store, err := openStore()
	if err != nil {
		return nil, err
	}

	settings := file.LoadSettings(store, file.OSLookup)
	if backendURL != "" {
		settings.BackendURL = backendURL
	}
	if localeFlag != "" {
		settings.Locale = localeFlag
	}
	logger.Debug("backend %s, locale %s", settings.BackendURL, settings.Locale)

	client := backend.New(backend.Config{
		BaseURL:       settings.BackendURL,
		Timeout:       settings.BackendTimeout,
		RatePerSecond: settings.RatePerSecond,
		Burst:         settings.Burst,
	})

	dash := services.NewDashboard(services.DashboardConfig{
		Backend:             client,
		Labels:              settings.Labels(),
		Debounce:            settings.Debounce,
		Context:             cmd.Context(),
		Voice:               settings.VoiceRequest(),
		InteractionInterval: settings.InteractionInterval,
	})

	return &environment{store: store, settings: settings, dashboard: dash}, nil
}

// openStore returns the file store, or an empty memory store for --no-config.
func openStore() (driven.ConfigStore, error) {
	if noConfig {
		return memory.NewConfigStore(nil), nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	return store, nil
}
