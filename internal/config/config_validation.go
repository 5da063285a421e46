// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 FundVista Authors

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	db := cfg.Storage.DB

	switch db.Engine {
	case EnginePostgres:
		if db.DSN == "" && (db.User == "" || db.Name == "") {
			return ErrInvalidStorageConfigs
		}
	case EngineSQLite:
		if db.DSN == "" && db.Name == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrUnknownDBEngine
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
