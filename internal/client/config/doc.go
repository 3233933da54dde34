// Package config loads runtime configuration for the Finanzas terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-t int      request timeout (seconds)
//
// Environment variables
//
//	FINANZAS_BASE_URL         base URL of the backend REST API
//	FINANZAS_REQUEST_TIMEOUT  request timeout as a Go duration ("15s")
//
// # JSON schema
//
// The JSON loader uses timex.Duration, so the timeout can be either a string
// like "15s" or integer nanoseconds:
//
//	{
//	  "base_url": "http://localhost:8000/api/v1",
//	  "request_timeout": "15s"
//	}
package config
