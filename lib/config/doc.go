// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the Tigris
// host binaries.
//
// Configuration comes from a single file named by the TIGRIS_CONFIG
// environment variable (via [Load]) or a --config flag (via
// [LoadFile]). Unlike a server, a desktop launcher must start on a
// fresh account, so when neither is given [Load] returns [Default].
// There is no discovery of other files and no environment variable
// overrides individual values.
//
// Variable expansion is performed on path fields after loading:
// ${HOME}, ${TIGRIS_RUNTIME} and ${VAR:-default} patterns are
// expanded.
//
// Key exports:
//
//   - [Config] -- master struct with Paths, Invocation and LogLevel
//   - [Default] -- XDG paths, 5s invocation timeout, LZ4 mailboxes
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
