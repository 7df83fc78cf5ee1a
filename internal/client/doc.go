// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Pavel Kazancev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI, the session store, and background workers into a
// single process lifecycle.
package client
