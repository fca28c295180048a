// Package config loads runtime configuration for the travelbook CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or --config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Environment variables prefixed with TRAVELBOOK_.
//  4. Command-line flags registered by AddFlags, which override everything
//     else. Only flags the user actually set take part.
//
// Supported flags
//
//	-c, --config string  path to a JSON or YAML config file
//	--db string          path to the SQLite database file
//	--log-level string   debug, info, warn or error
//	--log-format string  text or json
//	--splash duration    startup banner delay (e.g. 2s, 0 to skip)
//	--remember           keep the session across runs
//
// Environment
//
//	TRAVELBOOK_DB_PATH, TRAVELBOOK_LOG_LEVEL, TRAVELBOOK_LOG_FORMAT,
//	TRAVELBOOK_SPLASH_DELAY, TRAVELBOOK_REMEMBER_SESSION
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "2s" or integer
// nanoseconds. Keys absent from the file keep their previous value:
//
//	{
//	  "db_path": "travelbook.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "splash_delay": "2s",
//	  "remember_session": false
//	}
package config
