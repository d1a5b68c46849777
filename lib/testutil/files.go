// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// WriteManifest writes manifest.json into dir/extensionID and returns
// the manifest path.
func WriteManifest(t *testing.T, dir, extensionID, content string) string {
	t.Helper()
	path := filepath.Join(dir, extensionID, "manifest.json")
	WriteFile(t, path, content)
	return path
}

// LinkExtension symlinks the running test binary into dir under name,
// so the host can spawn it as an extension executable. Pair it with a
// TestMain that switches on an environment variable to act as the
// extension.
func LinkExtension(t *testing.T, dir, name string) string {
	t.Helper()
	self, err := os.Executable()
	if err != nil {
		t.Fatalf("locating test binary: %v", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating %s: %v", dir, err)
	}
	link := filepath.Join(dir, name)
	if err := os.Symlink(self, link); err != nil {
		t.Fatalf("linking %s: %v", link, err)
	}
	return link
}
