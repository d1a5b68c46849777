// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package action defines what a search result can do when the user
// activates it, and the interactive form sub-protocol an extension uses
// to ask the user for more input.
//
// [ResultAction] and [Field] are sum types. Their payloads are
// unexported and only reachable through one constructor per variant
// ([NewCopyText], [NewOpenForm], [NewSliderField], ...), so the variant
// tag and the populated payload can never disagree. On the wire each is
// encoded as a CBOR map carrying the tag and exactly one payload;
// decoding rejects a tag whose payload is missing or unknown.
//
// Every builder method (WithArg, WithField, WithPlaceholder, ...) has a
// value receiver and returns a new value. Slices are copied before they
// are extended, so a builder call never changes a value another caller
// still holds.
//
// Validation declared on a field ([FieldValidation]) is data only. The
// host enforces it before forwarding form results to an extension.
//
// This package performs no I/O.
package action
