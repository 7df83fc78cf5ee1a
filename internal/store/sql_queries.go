// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

package store

const (
	upsertEntry = `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	getEntry = `
		SELECT value
		FROM kv_entries
		WHERE key = $1;`

	deleteEntry = `
		DELETE FROM kv_entries
		WHERE key = $1;`
)

// Well-known keys in kv_entries.
const (
	keyAuthToken = "auth_token"
	keyAuthUser  = "auth_user"
	keyTheme     = "theme"
)
