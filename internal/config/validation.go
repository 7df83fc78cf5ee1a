// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package config

import "strings"

// validate checks that the merged [ClientConfig] satisfies the invariants
// required at startup: a persistent local database and a reachable backend.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
