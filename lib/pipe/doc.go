// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package pipe implements the one-shot stdio exchange used to ask an
// extension for search results.
//
// The host spawns the extension with the search text as its first
// argument, writes one request to its stdin and closes it. The
// extension reads stdin to end of file, writes one list of results to
// stdout and exits zero. The host parses stdout only after the process
// has exited: there is no streaming and no partial result. Any other
// exit path (non-zero status, a signal, a timeout) is a
// [ProcessError], and whatever the extension wrote is discarded.
//
// Host side: [Query], built on [Run], which the mailbox transport
// also uses to drive an extension process. Extension side: [ReadRequest] and
// [WriteResults].
package pipe
