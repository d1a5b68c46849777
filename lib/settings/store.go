// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/tigris-launcher/tigris/lib/atomicfile"
	"github.com/tigris-launcher/tigris/lib/codec"
)

// FileMode is the permission of the settings file.
const FileMode fs.FileMode = 0o600

// Store reads and writes the settings document at one path. Every
// write replaces the whole file. Store does not serialise concurrent
// writers: two processes running Update at once can lose one update.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a store for the file at path. A nil logger means
// slog.Default().
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{path: path, logger: logger}
}

// Path returns the settings file path.
func (s *Store) Path() string { return s.path }

// Read decodes the stored document. Fields absent from the file keep
// their default values. Unlike Load, a missing or corrupt file is an
// error.
func (s *Store) Read() (*Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	settings := Default()
	if err := codec.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("decoding settings %s: %w", s.path, err)
	}
	return settings, nil
}

// Load returns the stored document, or the defaults when the file is
// missing or cannot be decoded. It never fails: a launcher with a
// broken settings file still starts.
func (s *Store) Load() *Settings {
	settings, err := s.Read()
	if err == nil {
		return settings
	}
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("no settings file, using defaults", "path", s.path)
	} else {
		s.logger.Warn("settings file unreadable, using defaults", "path", s.path, "error", err)
	}
	return Default()
}

// Save replaces the stored document with settings. Errors are
// returned, never swallowed: a settings file that cannot be written
// would break the next launch.
func (s *Store) Save(settings *Settings) error {
	data, err := codec.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := atomicfile.WriteFile(s.path, data, FileMode); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// Update reads the document, applies mutate and saves the result. A
// missing file starts from the defaults; a file that cannot be decoded
// is an error and is left in place. If mutate returns an error nothing
// is written.
func (s *Store) Update(mutate func(*Settings) error) (*Settings, error) {
	settings, err := s.Read()
	if errors.Is(err, fs.ErrNotExist) {
		settings = Default()
	} else if err != nil {
		return nil, err
	}
	if err := mutate(settings); err != nil {
		return nil, err
	}
	if err := s.Save(settings); err != nil {
		return nil, err
	}
	return settings, nil
}
