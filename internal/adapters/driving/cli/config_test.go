package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigShow_Defaults(t *testing.T) {
	dir := t.TempDir()

	out, err := executeCommand(t, "--config-dir", dir, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "URL: http://localhost:8080")
	assert.Contains(t, out, "Timeout: none")
	assert.Contains(t, out, "Debounce: 300ms")
	assert.Contains(t, out, "Locale: ko")
	assert.Contains(t, out, "Engine: google")
}

func TestConfigShow_FlagOverridesBackend(t *testing.T) {
	out, err := executeCommand(t, "--config-dir", t.TempDir(), "--backend", "http://mirror.local:9000", "config")

	require.NoError(t, err)
	assert.Contains(t, out, "URL: http://mirror.local:9000")
}

func TestConfigSet_PersistsValue(t *testing.T) {
	dir := t.TempDir()

	_, err := executeCommand(t, "--config-dir", dir, "config", "set", "ui.locale", "en")
	require.NoError(t, err)
	_, err = executeCommand(t, "--config-dir", dir, "config", "set", "search.debounce_ms", "150")
	require.NoError(t, err)

	out, err := executeCommand(t, "--config-dir", dir, "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Locale: en")
	assert.Contains(t, out, "Debounce: 150ms")
}

func TestConfigSet_RejectsUnknownKey(t *testing.T) {
	_, err := executeCommand(t, "--config-dir", t.TempDir(), "config", "set", "search.mode", "hybrid")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
	}{
		{"integer", "300", int64(300)},
		{"float", "2.5", 2.5},
		{"string", "en", "en"},
		{"url", "http://localhost:8080", "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseValue(tt.input))
		})
	}
}

func TestConfig_NoConfigUsesMemoryStore(t *testing.T) {
	dir := t.TempDir()
	_, err := executeCommand(t, "--config-dir", dir, "config", "set", "ui.locale", "en")
	require.NoError(t, err)

	out, err := executeCommand(t, "--config-dir", dir, "--no-config", "config", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "File: :memory:")
	assert.Contains(t, out, "Locale: ko")
}

func TestConfigSet_RefusedWithNoConfig(t *testing.T) {
	_, err := executeCommand(t, "--no-config", "config", "set", "ui.locale", "en")

	assert.ErrorIs(t, err, ErrConfigDisabled)
}
