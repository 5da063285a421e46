package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid database settings
	// (for example, missing user or database name when no DSN is given).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrUnknownDBEngine indicates that the configured database engine is
	// neither "postgres" nor "sqlite".
	ErrUnknownDBEngine = errors.New("unknown database engine")
	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, empty listen address or non-positive request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
