// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"
)

// MaxListLength bounds every array and map decoded from CBOR. Payloads
// come from extension processes the host does not control; a result
// list or settings document anywhere near this size is a bug.
const MaxListLength = 1 << 16

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: building CBOR encoder: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		// A repeated key would let two readers of the same message
		// disagree about its value.
		DupMapKey:        cbor.DupMapKeyEnforcedAPF,
		MaxArrayElements: MaxListLength,
		MaxMapPairs:      MaxListLength,
		// Untyped targets decode maps with string keys, matching every
		// Tigris message.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("codec: building CBOR decoder: " + err.Error())
	}
}

// Marshal encodes v deterministically: equal values give equal bytes.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes data, which must hold exactly one CBOR item, into
// v. Unknown map keys are skipped so a newer writer can add fields.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// UnmarshalFirst decodes the leading item of a CBOR sequence into v and
// returns the bytes after it.
func UnmarshalFirst(data []byte, v any) ([]byte, error) {
	return decMode.UnmarshalFirst(data, v)
}

// RawMessage holds one encoded item whose decoding is deferred, such
// as a sum type payload read before its type tag.
type RawMessage = cbor.RawMessage

// Diagnose renders data in CBOR diagnostic notation (RFC 8949 §8).
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}
