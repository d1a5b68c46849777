// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind the tigris
// binaries. A [Command] tree dispatches on the first positional
// argument, parses pflag flag sets lazily, prints structured help, and
// suggests the nearest subcommand or flag name when the user mistypes
// one.
//
// [NewCommandLogger] builds the slog logger every command shares: text
// output on a terminal, JSON when stderr is redirected.
package cli
