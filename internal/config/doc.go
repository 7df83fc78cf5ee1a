// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

// Package config loads and validates the gamideck client configuration.
//
// Values are merged from three layers in precedence order: environment
// variables, command-line flags, and an optional JSON file, with built-in
// defaults filling whatever remains. [GetClientConfig] returns the validated
// client view used by the composition root.
package config
