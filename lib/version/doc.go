// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for Tigris binaries.
//
// Four package-level variables are injected at build time via
// -ldflags -X:
//
//   - [GitCommit] -- short git SHA of the build
//   - [GitDirty] -- "true" if there were uncommitted changes
//   - [BuildTime] -- UTC timestamp of the build
//   - [Version] -- semantic version string (set manually for releases)
//
// [Info] is the --version line; [Full] adds the Go toolchain and
// platform. [Protocols] lists the wire format versions this build
// speaks, which is what matters when an extension and the host were
// built from different releases.
package version
