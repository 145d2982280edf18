// Package logging provides structured logging with per-module log level
// configuration.
//
// # Overview
//
// The logging system uses Go's slog package with automatic output routing:
//   - Logs to systemd journal when available (Linux systems with journald)
//   - Logs to stdout when a terminal, pipe, or file is connected
//   - Logs to both when both are available
//
// # Usage
//
// Initialize the logging system once at startup:
//
//	logging.Initialize(logging.Config{
//		Level:  "info",      // Global log level: debug, info, warn, error
//		Format: "text",      // Output format: text or json
//		Modules: map[string]string{
//			"capture": "debug",  // Per-module overrides
//			"convert": "warn",
//		},
//	})
//
// Get a logger for your module:
//
//	logger := logging.GetLogger("mymodule")
//	logger.Info("Starting up", "port", 8080)
//
// # Viewing Logs
//
// When running as a systemd service or on a system with journald:
//
//	journalctl -t framecap              # All framecap logs
//	journalctl -t framecap -f           # Follow live
//	journalctl -t framecap MODULE=capture
//
// # Configuration
//
// Log levels can be set globally or per-module; module-specific levels
// override the global level for that module only. UpdateLevels applies a
// changed configuration at runtime without recreating handlers.
//
// Example TOML configuration:
//
//	[logging]
//	level = "info"
//	format = "text"
//
//	[logging.modules]
//	capture = "debug"
//	convert = "warn"
package logging
