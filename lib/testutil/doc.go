// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil holds fixtures shared by Tigris tests: manifest and
// file writers, [LinkExtension] for installing the running test binary
// as an extension, and [RequireReceive] for waiting on goroutines that
// drive extension processes. Helpers fail the test instead of
// returning errors.
package testutil
