// Package config provides centralized configuration management for the MEG
// data-preparation pipeline. It handles loading configuration from multiple
// sources, validation, and provides a type-safe API for accessing
// configuration values throughout the application.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern MEGPREP_* for namespacing:
//
//	MEGPREP_PATHS_RECORDINGS_DIR=/data/meg
//	MEGPREP_LOGGING_LEVEL=debug
//	MEGPREP_SIGNAL_SAMPLING_RATE=2034.51
//
// # Validation
//
// The loaded configuration is validated with go-playground/validator struct
// tags before it is handed to callers; an invalid configuration fails the
// Load call with a wrapped error naming the offending field.
package config
