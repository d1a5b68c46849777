// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package request defines the envelope the host sends to an extension.
//
// An [ExtensionRequest] carries exactly one of three payloads: a search
// ([GetResultsRequest]), an action trigger ([RunActionRequest]) or the
// answers to a form ([FormResultsRequest]). Like the action types, the
// envelope is a sum type whose payload is only reachable through its
// constructor.
//
// Form answers travel as untyped text so that an extension written in
// any language only has to produce strings. [FormResultsRequest] offers
// typed lookups on top:
//
//   - Bool is lenient: only the exact text "true" is true; anything
//     else is false and never an error.
//   - Uint fails with a [ParseError] unless the text is a non-negative
//     base-10 integer.
//   - Path always succeeds.
//
// Every lookup fails with a [NotFoundError] when no answer has the id.
package request
