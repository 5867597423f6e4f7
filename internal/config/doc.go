// Package config loads pocsum's optional TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/pocsum/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Log file: logs.txt (relative to the working directory)
//   - Endpoints: Authentik http://localhost:9000, JumpServer http://localhost:8080
//
// # TOML Format
//
//	log_path = "~/poc/logs.txt"
//
//	[[endpoints]]
//	name = "Authentik"
//	url = "http://localhost:9000"
//
//	[[endpoints]]
//	name = "JumpServer"
//	url = "http://localhost:8080"
//
// Endpoints missing a name or URL are skipped. When no usable endpoint
// remains the defaults are kept.
//
// Only report inputs live here. The markers used to classify log lines are
// fixed and cannot be configured.
//
// # Error Handling
//
// A missing file is not an error. Permission problems and malformed TOML
// are returned wrapped ("open config", "read config", "parse config"); the
// command line downgrades them to a warning and continues with Default().
//
// # Path Expansion
//
// Paths starting with ~ are expanded with go-homedir and made absolute.
// The default log path is left relative so it resolves against the
// directory pocsum runs in.
package config
