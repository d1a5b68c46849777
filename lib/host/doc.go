// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package host is the launcher's invocation site for extensions.
//
// An [Invoker] looks an extension up in the catalog written by
// indexing, spawns its executable and talks to it over one of two
// transports, never both in the same invocation:
//
//   - [Invoker.Search] sends a GetResults request over the stdio pipe
//     and returns the search results the extension printed.
//   - [Invoker.RunAction] and [Invoker.SubmitForm] write a request into
//     a fresh mailbox file, wait for the extension to exit and read back
//     whatever it left: a form to render, results to show, or nothing.
//
// Every invocation runs under the configured timeout. An extension that
// outlives it is killed together with its process group, and the
// invocation fails with a *pipe.ProcessError whose TimedOut flag is
// set.
//
// [Invoker.SubmitForm] enforces the validation a form declares before
// the answers reach the extension; violations are reported as a
// [*ValidationError] listing every failing field.
//
// [Invoker.Route] turns typed launcher input into results: a leading
// keyword selects an extension (by its "keyword" setting) or a web
// search engine, and anything else is fuzzy-matched against the
// installed applications.
package host
