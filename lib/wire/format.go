// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"errors"
	"fmt"
	"time"
)

// Kind identifies which envelope a message carries. Values are
// protocol constants stored in both formats' headers.
type Kind uint8

const (
	// KindRequest carries a request.ExtensionRequest.
	KindRequest Kind = 1

	// KindForm carries an action.OpenFormAction.
	KindForm Kind = 2

	// KindResults carries a []action.SearchResult.
	KindResults Kind = 3
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRequest:
		return "request"
	case KindForm:
		return "form"
	case KindResults:
		return "results"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindRequest && k <= KindResults
}

// Format encodes and decodes one envelope per message.
type Format interface {
	// Name is a short identifier used in errors and logs.
	Name() string

	// Version is the format version this implementation writes.
	// Decoding rejects any other version.
	Version() uint8

	// Encode serialises v as a message of the given kind.
	Encode(kind Kind, v any) ([]byte, error)

	// Decode verifies that data is a complete message of the given
	// kind and decodes its payload into v. All failures are
	// *DecodeError.
	Decode(data []byte, kind Kind, v any) error

	// Peek reads the message header without decoding the payload.
	Peek(data []byte) (Header, error)
}

// Header describes a message without its payload. Fields a format
// does not carry are zero.
type Header struct {
	Version     uint8
	Kind        Kind
	Compression Compression
	WrittenAt   time.Time

	// Length is the uncompressed payload size in bytes.
	Length int
}

// ErrDecode matches every *DecodeError under errors.Is.
var ErrDecode = errors.New("wire: decode failed")

// DecodeError reports bytes that are not a valid message of the
// expected format and kind. Decode errors are never retried: the
// exchange that produced them has failed.
type DecodeError struct {
	Format string
	Kind   Kind
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("wire: decoding %s %s message: %v", e.Format, e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrDecode) true for any DecodeError.
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

func decodeErrorf(name string, kind Kind, message string, args ...any) *DecodeError {
	return &DecodeError{Format: name, Kind: kind, Err: fmt.Errorf(message, args...)}
}
