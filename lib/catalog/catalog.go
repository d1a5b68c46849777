// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog reads and writes the cache files produced by
// indexing: the installed extensions, the desktop application list and
// the recently launched applications.
//
// Each file is a zstd-compressed CBOR list, replaced atomically as a
// whole. A missing file reads as an empty list because indexing may
// not have run yet. A file that exists but cannot be decoded is an
// error.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/tigris-launcher/tigris/lib/atomicfile"
	"github.com/tigris-launcher/tigris/lib/codec"
	"github.com/tigris-launcher/tigris/lib/schema/manifest"
)

// ExecutableName is the file name of an extension's binary inside its
// directory, next to manifest.json.
const ExecutableName = "extension"

// FileMode is the permission of catalog files.
const FileMode fs.FileMode = 0o644

// Entry is one installed extension.
type Entry struct {
	Extension manifest.Extension `cbor:"extension"`

	// Dir is the directory holding manifest.json and the executable.
	Dir string `cbor:"dir"`
}

// Executable returns the path of the extension binary.
func (e Entry) Executable() string {
	return filepath.Join(e.Dir, ExecutableName)
}

// NotFoundError reports a lookup of an extension that is not
// installed.
type NotFoundError struct {
	ExtensionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("extension %q is not installed", e.ExtensionID)
}

// Find returns the entry with the given extension id.
func Find(entries []Entry, extensionID string) (Entry, error) {
	for _, entry := range entries {
		if entry.Extension.ID == extensionID {
			return entry, nil
		}
	}
	return Entry{}, &NotFoundError{ExtensionID: extensionID}
}

// Manifests returns the manifests of entries in order.
func Manifests(entries []Entry) []manifest.Extension {
	manifests := make([]manifest.Extension, len(entries))
	for i, entry := range entries {
		manifests[i] = entry.Extension
	}
	return manifests
}

// WriteExtensions replaces the extension catalog at path.
func WriteExtensions(path string, entries []Entry) error {
	return writeList(path, entries)
}

// ReadExtensions reads the extension catalog at path.
func ReadExtensions(path string) ([]Entry, error) {
	return readList[Entry](path)
}

// maxFileSize bounds the decompressed size of one catalog file.
const maxFileSize = 64 << 20

var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("catalog: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil,
		zstd.WithDecoderMaxMemory(maxFileSize),
		zstd.WithDecoderConcurrency(1))
	if err != nil {
		panic("catalog: zstd decoder initialization failed: " + err.Error())
	}
}

func writeList[T any](path string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := codec.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := atomicfile.WriteFile(path, zstdEncoder.EncodeAll(data, nil), FileMode); err != nil {
		return err
	}
	return nil
}

func readList[T any](path string) ([]T, error) {
	compressed, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := zstdDecoder.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("decompressing %s: %w", path, err)
	}
	var items []T
	if err := codec.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}
