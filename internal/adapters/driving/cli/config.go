package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/smartmirror-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit the configuration",
	Long: `Shows the effective settings or writes a key to config.toml.

Keys use dot notation, for example:
  smartmirror config set backend.url http://mirror.local:8080
  smartmirror config set ui.locale en`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Write a key to the config file",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	env, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	s := env.settings

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("File: %s\n", env.store.Path())
	cmd.Println()

	cmd.Println("[Backend]")
	cmd.Printf("  URL: %s\n", s.BackendURL)
	if s.BackendTimeout > 0 {
		cmd.Printf("  Timeout: %s\n", s.BackendTimeout)
	} else {
		cmd.Println("  Timeout: none")
	}
	cmd.Printf("  Rate: %g/s (burst %d)\n", s.RatePerSecond, s.Burst)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  Debounce: %s\n", s.Debounce)
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Locale: %s\n", s.Locale)
	cmd.Println()

	cmd.Println("[Voice]")
	cmd.Printf("  Engine: %s\n", s.VoiceEngine)
	cmd.Printf("  Timeout: %gs\n", s.VoiceTimeoutSeconds)
	cmd.Println()

	cmd.Println("[Interaction]")
	cmd.Printf("  Min interval: %s\n", s.InteractionInterval)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.TrimSpace(args[0])
	if !knownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	if noConfig {
		return ErrConfigDisabled
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	if err := store.Set(key, parseValue(args[1])); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	cmd.Printf("%s = %s\n", key, args[1])
	return nil
}

func knownKey(key string) bool {
	switch key {
	case file.KeyBackendURL, file.KeyBackendTimeout, file.KeyBackendRate, file.KeyBackendBurst,
		file.KeyDebounceMillis, file.KeyLocale, file.KeyVoiceEngine, file.KeyVoiceTimeout,
		file.KeyInteractionInterval:
		return true
	}
	return false
}

// parseValue keeps numbers numeric in the TOML file.
func parseValue(raw string) any {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}
