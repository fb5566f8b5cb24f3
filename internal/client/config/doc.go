// Package config loads runtime configuration for the pollhub client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, after loading an optional .env file from the
//     working directory.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags.
//
// Environment
//
//	POLLHUB_API_URL      API base URL
//	POLLHUB_STORAGE      session storage file
//	POLLHUB_VOTE_DELAY   vote pacing delay, Go duration ("600ms")
//	POLLHUB_LOG_LEVEL    debug | info | warn | error
//	POLLHUB_LOG_BACKEND  slog | zap
//
// Flags
//
//	-a string   API base URL
//	-s string   session storage file ("" keeps the session in memory only)
//	-d int      vote pacing delay (milliseconds)
//	-l string   log level
//	-b string   log backend
//
// JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "storage_path": "pollhub.db",
//	  "vote_delay": "600ms",
//	  "log_level": "info",
//	  "log_backend": "slog"
//	}
package config
