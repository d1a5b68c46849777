// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec is the single CBOR configuration shared by every
// Tigris package that serializes data: wire payloads on both
// transports, the settings document and the catalog caches.
//
// Encoding is Core Deterministic (RFC 8949 §4.2). Decoding tolerates
// unknown keys but rejects duplicate keys and lists longer than
// MaxListLength.
//
// Types that only ever travel as CBOR carry `cbor` struct tags.
// Manifest types are authored as JSON and carry `json` tags, which the
// CBOR library falls back to when stored in the catalog.
package codec
