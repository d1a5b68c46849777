// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies how a mailbox payload is compressed. Stored
// as one header byte; values are protocol constants.
type Compression uint8

const (
	// CompressionNone stores the CBOR payload as is. Also used when
	// the requested algorithm would not shrink the payload.
	CompressionNone Compression = 0

	// CompressionLZ4 is LZ4 block compression. The default: payloads
	// are small and LZ4 costs almost nothing to decode.
	CompressionLZ4 Compression = 1

	// CompressionZstd is zstd at the default level. Worth it for
	// large result lists with repetitive text.
	CompressionZstd Compression = 2
)

// String returns the configuration name of the compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseCompression parses a compression name as used in configuration.
func ParseCompression(name string) (Compression, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression %q (want none, lz4, or zstd)", name)
	}
}

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("wire: zstd encoder initialization failed: " + err.Error())
	}
	// The cap bounds what a forged frame can make DecodeAll allocate.
	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(MaxMailboxPayload),
		zstd.WithDecoderConcurrency(1))
	if err != nil {
		panic("wire: zstd decoder initialization failed: " + err.Error())
	}
}

// compress returns the payload compressed with the requested
// algorithm and the tag actually applied. Incompressible payloads come
// back unchanged under CompressionNone.
func compress(data []byte, requested Compression) ([]byte, Compression, error) {
	switch requested {
	case CompressionNone:
		return data, CompressionNone, nil

	case CompressionLZ4:
		destination := make([]byte, lz4.CompressBlockBound(len(data)))
		written, err := lz4.CompressBlock(data, destination, nil)
		if err != nil {
			return nil, 0, fmt.Errorf("lz4 compress: %w", err)
		}
		// CompressBlock returns 0 for incompressible input.
		if written == 0 || written >= len(data) {
			return data, CompressionNone, nil
		}
		return destination[:written], CompressionLZ4, nil

	case CompressionZstd:
		compressed := zstdEncoder.EncodeAll(data, nil)
		if len(compressed) >= len(data) {
			return data, CompressionNone, nil
		}
		return compressed, CompressionZstd, nil

	default:
		return nil, 0, fmt.Errorf("unsupported compression %s", requested)
	}
}

// decompress reverses compress. The result must be exactly size bytes.
func decompress(data []byte, tag Compression, size int) ([]byte, error) {
	switch tag {
	case CompressionNone:
		if len(data) != size {
			return nil, fmt.Errorf("payload is %d bytes, header says %d", len(data), size)
		}
		return data, nil

	case CompressionLZ4:
		destination := make([]byte, size)
		read, err := lz4.UncompressBlock(data, destination)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if read != size {
			return nil, fmt.Errorf("lz4 decompress: got %d bytes, header says %d", read, size)
		}
		return destination, nil

	case CompressionZstd:
		if size > MaxMailboxPayload {
			return nil, fmt.Errorf("zstd decompress: header says %d bytes, limit is %d", size, MaxMailboxPayload)
		}
		decompressed, err := zstdDecoder.DecodeAll(data, make([]byte, 0, size))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(decompressed) != size {
			return nil, fmt.Errorf("zstd decompress: got %d bytes, header says %d", len(decompressed), size)
		}
		return decompressed, nil

	default:
		return nil, fmt.Errorf("unsupported compression %s", tag)
	}
}
