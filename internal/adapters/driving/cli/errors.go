package cli

import "errors"

var (
	// ErrNotTerminal is returned when the TUI is started without a terminal.
	ErrNotTerminal = errors.New("cli: stdout is not a terminal")

	// ErrIndexOutOfRange is returned when --pick names no result.
	ErrIndexOutOfRange = errors.New("cli: pick index out of range")

	// ErrConfigDisabled is returned when writing config under --no-config.
	ErrConfigDisabled = errors.New("cli: config file is disabled by --no-config")

	// ErrNoResults is returned when --pick is used on an empty result list.
	ErrNoResults = errors.New("cli: no results to pick from")
)
