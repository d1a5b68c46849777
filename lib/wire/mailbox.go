// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/zeebo/blake3"

	"github.com/tigris-launcher/tigris/lib/clock"
	"github.com/tigris-launcher/tigris/lib/codec"
)

// MailboxVersion is the mailbox frame version.
const MailboxVersion uint8 = 1

// MailboxMagic opens every mailbox frame.
const MailboxMagic = "TGMB"

// Frame layout, all integers big-endian:
//
//	offset  size  field
//	0       4     magic "TGMB"
//	4       1     version
//	5       1     kind
//	6       1     compression
//	7       1     reserved, zero
//	8       8     written-at, unix nanoseconds
//	16      4     uncompressed payload length
//	20      32    BLAKE3-256 of the uncompressed payload
//	52      ...   payload
const (
	mailboxHeaderSize = 52
	checksumSize      = 32
)

// MaxMailboxPayload bounds the uncompressed payload a frame may
// declare. Protects readers from allocating on a corrupt length.
const MaxMailboxPayload = 64 << 20

// MailboxFormat is the mailbox file format. The zero value writes
// uncompressed frames stamped with the real clock.
type MailboxFormat struct {
	// Compression is the algorithm requested for new frames. Frames
	// whose payload does not shrink are written uncompressed.
	Compression Compression

	// Clock stamps the written-at field. Nil means clock.Real().
	Clock clock.Clock
}

// NewMailboxFormat returns a mailbox format writing with the given
// compression.
func NewMailboxFormat(compression Compression, c clock.Clock) *MailboxFormat {
	return &MailboxFormat{Compression: compression, Clock: c}
}

func (*MailboxFormat) Name() string   { return "mailbox" }
func (*MailboxFormat) Version() uint8 { return MailboxVersion }

// Encode builds a complete frame for v.
func (m *MailboxFormat) Encode(kind Kind, v any) ([]byte, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("wire: mailbox encode: invalid kind %s", kind)
	}
	payload, err := codec.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("wire: mailbox encode %s: %w", kind, err)
	}
	if len(payload) > MaxMailboxPayload {
		return nil, fmt.Errorf("wire: mailbox encode %s: payload is %d bytes, limit %d",
			kind, len(payload), MaxMailboxPayload)
	}
	body, applied, err := compress(payload, m.Compression)
	if err != nil {
		return nil, fmt.Errorf("wire: mailbox encode %s: %w", kind, err)
	}

	now := m.now()
	frame := make([]byte, mailboxHeaderSize, mailboxHeaderSize+len(body))
	copy(frame[0:4], MailboxMagic)
	frame[4] = MailboxVersion
	frame[5] = byte(kind)
	frame[6] = byte(applied)
	frame[7] = 0
	binary.BigEndian.PutUint64(frame[8:16], uint64(now.UnixNano()))
	binary.BigEndian.PutUint32(frame[16:20], uint32(len(payload)))
	checksum := blake3.Sum256(payload)
	copy(frame[20:52], checksum[:])
	return append(frame, body...), nil
}

// Decode verifies the frame header, decompresses and checksums the
// payload, then decodes it into v.
func (m *MailboxFormat) Decode(data []byte, kind Kind, v any) error {
	header, err := m.parseHeader(data, kind)
	if err != nil {
		return err
	}
	if header.Kind != kind {
		return decodeErrorf(m.Name(), kind, "mailbox holds a %s", header.Kind)
	}

	payload, err := decompress(data[mailboxHeaderSize:], header.Compression, header.Length)
	if err != nil {
		return &DecodeError{Format: m.Name(), Kind: kind, Err: err}
	}
	checksum := blake3.Sum256(payload)
	if !bytes.Equal(checksum[:], data[20:20+checksumSize]) {
		return decodeErrorf(m.Name(), kind, "payload checksum mismatch")
	}
	if err := codec.Unmarshal(payload, v); err != nil {
		return &DecodeError{Format: m.Name(), Kind: kind, Err: err}
	}
	return nil
}

// Peek parses the frame header only. The payload is neither
// decompressed nor checksummed.
func (m *MailboxFormat) Peek(data []byte) (Header, error) {
	return m.parseHeader(data, 0)
}

func (m *MailboxFormat) parseHeader(data []byte, expected Kind) (Header, error) {
	if len(data) < mailboxHeaderSize {
		return Header{}, decodeErrorf(m.Name(), expected,
			"frame is %d bytes, shorter than the %d-byte header", len(data), mailboxHeaderSize)
	}
	if string(data[0:4]) != MailboxMagic {
		return Header{}, decodeErrorf(m.Name(), expected, "bad magic %q", data[0:4])
	}
	if data[4] != MailboxVersion {
		return Header{}, decodeErrorf(m.Name(), expected,
			"unsupported version %d (want %d)", data[4], MailboxVersion)
	}
	kind := Kind(data[5])
	if !kind.Valid() {
		return Header{}, decodeErrorf(m.Name(), expected, "invalid kind %s", kind)
	}
	compression := Compression(data[6])
	if compression > CompressionZstd {
		return Header{}, decodeErrorf(m.Name(), expected, "unsupported compression %s", compression)
	}
	if data[7] != 0 {
		return Header{}, decodeErrorf(m.Name(), expected, "reserved byte is %#x", data[7])
	}
	nanos := binary.BigEndian.Uint64(data[8:16])
	if nanos > math.MaxInt64 {
		return Header{}, decodeErrorf(m.Name(), expected, "written-at out of range")
	}
	length := binary.BigEndian.Uint32(data[16:20])
	if length > MaxMailboxPayload {
		return Header{}, decodeErrorf(m.Name(), expected,
			"declared payload length %d exceeds limit %d", length, MaxMailboxPayload)
	}
	return Header{
		Version:     data[4],
		Kind:        kind,
		Compression: compression,
		WrittenAt:   time.Unix(0, int64(nanos)),
		Length:      int(length),
	}, nil
}

func (m *MailboxFormat) now() time.Time {
	if m.Clock == nil {
		return time.Now()
	}
	return m.Clock.Now()
}
