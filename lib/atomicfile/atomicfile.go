// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package atomicfile replaces whole files so that readers never see a
// partial write.
//
// The mailbox, the settings store and the catalog are all single
// files rewritten as a unit and read to completion by other
// processes. WriteFile writes to a temporary file in the same
// directory, fsyncs it, renames it over the target and fsyncs the
// directory. A reader racing the writer sees either the old contents
// or the new contents. A process killed mid-write leaves the old
// contents and, at worst, a stray temporary file.
package atomicfile

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile atomically replaces path with data. The file ends up with
// permission perm. The parent directory must exist.
func WriteFile(path string, data []byte, perm fs.FileMode) error {
	directory := filepath.Dir(path)
	file, err := os.CreateTemp(directory, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	temporaryPath := file.Name()

	// Write, chmod, sync, close in that order. If any step fails,
	// remove the temporary file and report the first error.
	if _, err := file.Write(data); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing temporary file for %s: %w", path, err)
	}
	if err := file.Chmod(perm); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("setting mode on temporary file for %s: %w", path, err)
	}
	if err := file.Sync(); err != nil {
		file.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("syncing temporary file for %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing temporary file for %s: %w", path, err)
	}

	if err := os.Rename(temporaryPath, path); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming %s into place: %w", path, err)
	}

	// Sync the parent directory so the rename survives power loss.
	parentDirectory, err := os.Open(directory)
	if err == nil {
		parentDirectory.Sync()
		parentDirectory.Close()
	}
	return nil
}

// Remove deletes path. A missing file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing %s: %w", path, err)
	}
	return nil
}
