// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package wire defines the byte formats that carry envelopes across
// the host/extension process boundary.
//
// There are two formats and they are deliberately incompatible:
//
//   - [PipeFormat] is used on an extension's stdin and stdout. It is a
//     CBOR sequence: a two-element header array [version, kind]
//     followed by exactly one payload item.
//
//   - [MailboxFormat] is used for the mailbox file. It is a binary
//     frame with the magic "TGMB", a fixed header carrying version,
//     kind, compression, write time, payload length and a BLAKE3
//     checksum, followed by the (optionally compressed) CBOR payload.
//
// Bytes produced by one format never decode under the other: a pipe
// stream starts with a CBOR array head where the mailbox expects its
// magic, and the mailbox magic decodes as a CBOR byte string where
// the pipe expects an array. An extension built against one format
// therefore fails loudly with a [DecodeError] instead of
// misinterpreting the other.
//
// Both formats carry a [Kind] so a reader can reject a payload of the
// wrong envelope type (a form where a request was expected) before
// attempting to decode it.
package wire
