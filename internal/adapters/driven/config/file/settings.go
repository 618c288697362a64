package file

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/smartmirror-cli/internal/core/domain"
	"github.com/custodia-labs/smartmirror-cli/internal/core/ports/driven"
)

// Configuration keys.
const (
	KeyBackendURL          = "backend.url"
	KeyBackendTimeout      = "backend.timeout_seconds"
	KeyBackendRate         = "backend.rate_per_second"
	KeyBackendBurst        = "backend.burst"
	KeyDebounceMillis      = "search.debounce_ms"
	KeyLocale              = "ui.locale"
	KeyVoiceEngine         = "voice.engine"
	KeyVoiceTimeout        = "voice.timeout_seconds"
	KeyInteractionInterval = "interaction.min_interval_seconds"
)

// Environment overrides. They win over the config file.
const (
	EnvBackendURL = "SMARTMIRROR_BACKEND_URL"
	EnvLocale     = "SMARTMIRROR_LOCALE"
)

// Settings is the typed view of the configuration.
type Settings struct {
	BackendURL          string
	BackendTimeout      time.Duration
	RatePerSecond       float64
	Burst               int
	Debounce            time.Duration
	Locale              string
	VoiceEngine         string
	VoiceTimeoutSeconds float64
	InteractionInterval time.Duration
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		BackendURL:          "http://localhost:8080",
		RatePerSecond:       10,
		Burst:               5,
		Debounce:            300 * time.Millisecond,
		Locale:              "ko",
		VoiceEngine:         "google",
		VoiceTimeoutSeconds: 5.0,
		InteractionInterval: 5 * time.Second,
	}
}

// LookupEnv reads an environment variable. os.LookupEnv satisfies it.
type LookupEnv func(key string) (string, bool)

// LoadSettings overlays the store's values and then the environment on
// the defaults. A nil store or lookup is skipped.
func LoadSettings(store driven.ConfigStore, lookup LookupEnv) Settings {
	s := DefaultSettings()

	if store != nil {
		if v := store.GetString(KeyBackendURL); v != "" {
			s.BackendURL = v
		}
		if v, ok := store.Get(KeyBackendTimeout); ok && isNumber(v) {
			s.BackendTimeout = seconds(store.GetFloat(KeyBackendTimeout))
		}
		if v := store.GetFloat(KeyBackendRate); v != 0 {
			s.RatePerSecond = v
		}
		if v := store.GetInt(KeyBackendBurst); v > 0 {
			s.Burst = v
		}
		if v := store.GetInt(KeyDebounceMillis); v > 0 {
			s.Debounce = time.Duration(v) * time.Millisecond
		}
		if v := store.GetString(KeyLocale); v != "" {
			s.Locale = v
		}
		if v := store.GetString(KeyVoiceEngine); v != "" {
			s.VoiceEngine = v
		}
		if v := store.GetFloat(KeyVoiceTimeout); v > 0 {
			s.VoiceTimeoutSeconds = v
		}
		if v := store.GetFloat(KeyInteractionInterval); v > 0 {
			s.InteractionInterval = seconds(v)
		}
	}

	if lookup != nil {
		if v, ok := lookup(EnvBackendURL); ok && strings.TrimSpace(v) != "" {
			s.BackendURL = strings.TrimSpace(v)
		}
		if v, ok := lookup(EnvLocale); ok && strings.TrimSpace(v) != "" {
			s.Locale = strings.TrimSpace(v)
		}
	}
	return s
}

// Labels returns the strings for the configured locale.
func (s Settings) Labels() *domain.Labels {
	return domain.LabelsFor(s.Locale)
}

// VoiceRequest returns the push-to-talk request for these settings.
func (s Settings) VoiceRequest() domain.VoiceRequest {
	return domain.VoiceRequest{Engine: s.VoiceEngine, TimeoutSeconds: s.VoiceTimeoutSeconds}
}

// LoadDotEnv loads KEY=VALUE files into the process environment.
// Missing files are skipped; variables already set are kept.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// OSLookup is the process environment.
var OSLookup LookupEnv = os.LookupEnv

func isNumber(v any) bool {
	switch v.(type) {
	case int64, int, float64:
		return true
	default:
		return false
	}
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
