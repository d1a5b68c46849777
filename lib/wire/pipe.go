// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"

	"github.com/tigris-launcher/tigris/lib/codec"
)

// PipeVersion is the stdio format version.
const PipeVersion uint8 = 1

// Pipe is the stdio format.
var Pipe Format = PipeFormat{}

// PipeFormat writes a header array [version, kind] followed by one
// CBOR payload item. There is no framing beyond CBOR's own: the
// stream ends when the writer closes its end.
type PipeFormat struct{}

type pipeHeader struct {
	_       struct{} `cbor:",toarray"`
	Version uint8
	Kind    Kind
}

func (PipeFormat) Name() string   { return "pipe" }
func (PipeFormat) Version() uint8 { return PipeVersion }

// Encode returns the header item followed by the payload item.
func (PipeFormat) Encode(kind Kind, v any) ([]byte, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("wire: pipe encode: invalid kind %s", kind)
	}
	header, err := codec.Marshal(pipeHeader{Version: PipeVersion, Kind: kind})
	if err != nil {
		return nil, fmt.Errorf("wire: pipe encode header: %w", err)
	}
	payload, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire: pipe encode %s: %w", kind, err)
	}
	return append(header, payload...), nil
}

// Decode rejects any data that is not exactly one header item and one
// payload item of the expected kind.
func (p PipeFormat) Decode(data []byte, kind Kind, v any) error {
	rest, header, err := p.peek(data, kind)
	if err != nil {
		return err
	}
	if header.Kind != kind {
		return decodeErrorf(p.Name(), kind, "got a %s message", header.Kind)
	}
	if len(rest) == 0 {
		return decodeErrorf(p.Name(), kind, "missing payload")
	}
	if err := codec.Unmarshal(rest, v); err != nil {
		return &DecodeError{Format: p.Name(), Kind: kind, Err: err}
	}
	return nil
}

// Peek decodes only the header item.
func (p PipeFormat) Peek(data []byte) (Header, error) {
	_, header, err := p.peek(data, 0)
	if err != nil {
		return Header{}, err
	}
	return Header{Version: header.Version, Kind: header.Kind}, nil
}

func (p PipeFormat) peek(data []byte, expected Kind) ([]byte, pipeHeader, error) {
	if len(data) == 0 {
		return nil, pipeHeader{}, decodeErrorf(p.Name(), expected, "empty message")
	}
	var header pipeHeader
	rest, err := codec.UnmarshalFirst(data, &header)
	if err != nil {
		return nil, pipeHeader{}, decodeErrorf(p.Name(), expected, "reading header: %w", err)
	}
	if header.Version != PipeVersion {
		return nil, pipeHeader{}, decodeErrorf(p.Name(), expected,
			"unsupported version %d (want %d)", header.Version, PipeVersion)
	}
	if !header.Kind.Valid() {
		return nil, pipeHeader{}, decodeErrorf(p.Name(), expected, "invalid kind %s", header.Kind)
	}
	return rest, header, nil
}
