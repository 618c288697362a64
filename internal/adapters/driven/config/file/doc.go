// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - Settings: typed view of the configuration with environment overrides
//   - Watcher: live reload of the configuration file
package file
