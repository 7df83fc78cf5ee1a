// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	t.Setenv("CONFIG", "/path/to/config.json")
	t.Setenv("ADAPTER_BASE_URL", "http://example.com:8000")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "30s")
	// Storage has nested prefixes: STORAGE_ + DB_
	t.Setenv("STORAGE_DB_DSN", "/var/lib/gamideck/state.db")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "http://example.com:8000", cfg.Adapter.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/gamideck/state.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	t.Setenv("ADAPTER_BASE_URL", "http://example.com:8000")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "http://example.com:8000", cfg.Adapter.BaseURL)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	// Arrange
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
