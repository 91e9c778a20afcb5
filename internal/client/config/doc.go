// Package config loads runtime configuration for the Nado Quest CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables (see parseEnv).
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-m string   base URL for derived media retrieval links
//	-d string   path of the local state database
//	-t int      request timeout in seconds (0 disables the timeout)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://quest.nado.cloud/api",
//	  "media_base_url": "https://media-forge.nado.cloud",
//	  "state_db_path": "nadoquest.db",
//	  "request_timeout": "30s"
//	}
package config
