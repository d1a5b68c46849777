// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Tigris is the command-line face of the launcher's extension host.
//
// It indexes extension manifests into the catalog and settings store,
// routes typed queries to extensions, search engines and apps, runs
// extension actions and submits the forms they return, and inspects
// the settings document and mailbox files.
//
// Global flags come before the command:
//
//	tigris [--config FILE] [--log-level LEVEL] <command> ...
//
// Without --config, the file named by TIGRIS_CONFIG is used, and
// without that the built-in defaults.
package main
