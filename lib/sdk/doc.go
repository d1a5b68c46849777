// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package sdk is what an extension binary uses to talk to the
// launcher.
//
// The launcher starts an extension once per request. How the request
// arrives depends on what the launcher wants:
//
//   - A search arrives on stdin (the search text is also argv[1]). The
//     extension answers with [Extension.ReturnSearchResults], which
//     writes to stdout.
//   - An action or a form submission arrives in the mailbox file named
//     by TIGRIS_MAILBOX. The extension answers with
//     [Extension.ReturnForm] or [Extension.ReturnResults], or with
//     nothing at all.
//
// [Extension.Request] reads whichever applies. Most extensions only
// need [Main]:
//
//	func main() {
//		sdk.Main(func(ext *sdk.Extension, req request.ExtensionRequest) error {
//			if getResults, ok := req.GetResults(); ok {
//				return ext.ReturnSearchResults(answer(getResults.SearchText))
//			}
//			return nil
//		})
//	}
//
// Stdout belongs to the pipe transport. Diagnostics go to stderr,
// which the launcher keeps when an extension fails.
package sdk
