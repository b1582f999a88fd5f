// Package config provides user configuration management for crewfile.
//
// This package manages a YAML-based configuration file that stores the
// roster file location and CLI output preferences. The configuration
// follows OS-specific conventions for storage location.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/crewfile/config.yaml or $HOME/.config/crewfile/config.yaml
//   - macOS: $HOME/.config/crewfile/config.yaml
//   - Windows: %LOCALAPPDATA%\crewfile\config.yaml
//
// The roster file defaults to users.json in the same directory unless
// storage.path points elsewhere.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	path, err := cfg.StorePath()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Persist changed preferences atomically
//	cfg.Output.Format = "json"
//	if err := cfg.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global config uses sync.Once for safe initialization across
// goroutines. File operations are protected by a mutex to ensure atomic
// writes.
package config
