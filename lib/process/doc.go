// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds entrypoint helpers for Tigris binaries. They
// cover the raw stderr output that happens before a structured logger
// exists or after main has given up on one:
//
//   - [Fatal] reports an unrecoverable error and exits 1.
//   - [Exit] honours an error's ExitCode method so commands that have
//     already printed their own output do not get a second "error:" line.
//
// Extension binaries must not use these helpers to write to stdout:
// stdout is the pipe transport's result channel.
package process
