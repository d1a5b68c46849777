// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package paths lays out where the launcher keeps its files.
//
// Four roots, each overridable through configuration:
//
//   - Data: installed extensions (one directory each, holding
//     manifest.json and the extension binary).
//   - Config: the settings document.
//   - Cache: indexing output (extension catalog, app lists).
//   - Runtime: mailbox files, one per in-flight invocation.
package paths

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory name under the XDG roots.
const AppDirName = "org-whiskersapps-tigris"

// DefaultRuntimeDir holds mailboxes when no runtime root is configured.
const DefaultRuntimeDir = "/tmp/tigris-launcher"

// Environment variables the host sets for every extension process.
const (
	// ExtensionIDEnv is the id of the extension being invoked.
	ExtensionIDEnv = "TIGRIS_EXTENSION_ID"

	// SettingsEnv is the settings document path.
	SettingsEnv = "TIGRIS_SETTINGS"

	// MailboxEnv is the mailbox path. Set only for mailbox
	// invocations; its absence means the request is on stdin.
	MailboxEnv = "TIGRIS_MAILBOX"
)

// Layout is the set of root directories.
type Layout struct {
	Data    string `yaml:"data"`
	Config  string `yaml:"config"`
	Cache   string `yaml:"cache"`
	Runtime string `yaml:"runtime"`
}

// Default returns the XDG-based layout for the current user. Roots
// whose XDG base cannot be determined are left empty for Validate to
// report.
func Default() Layout {
	var layout Layout
	if home, err := os.UserHomeDir(); err == nil {
		layout.Data = filepath.Join(xdg("XDG_DATA_HOME", filepath.Join(home, ".local", "share")), AppDirName)
	}
	if config, err := os.UserConfigDir(); err == nil {
		layout.Config = filepath.Join(config, AppDirName)
	}
	if cache, err := os.UserCacheDir(); err == nil {
		layout.Cache = filepath.Join(cache, AppDirName)
	}
	layout.Runtime = DefaultRuntimeDir
	return layout
}

func xdg(variable, fallback string) string {
	if value := os.Getenv(variable); value != "" && filepath.IsAbs(value) {
		return value
	}
	return fallback
}

// ExtensionsDir holds one directory per installed extension.
func (l Layout) ExtensionsDir() string { return filepath.Join(l.Data, "extensions") }

// SettingsFile is the settings document.
func (l Layout) SettingsFile() string { return filepath.Join(l.Config, "settings.bin") }

// ExtensionsFile is the extension catalog written by indexing.
func (l Layout) ExtensionsFile() string { return filepath.Join(l.Cache, "extensions.bin") }

// AppsFile is the desktop application list.
func (l Layout) AppsFile() string { return filepath.Join(l.Cache, "apps.bin") }

// RecentAppsFile is the recently launched application list.
func (l Layout) RecentAppsFile() string { return filepath.Join(l.Cache, "recent-apps.bin") }

// MailboxFile is the mailbox for one invocation. name must be unique
// among in-flight invocations.
func (l Layout) MailboxFile(name string) string {
	return filepath.Join(l.Runtime, "mailbox-"+name+".bin")
}

// FormFile holds a form an extension returned until the user submits
// it. Ids are path-escaped so any id maps to one file.
func (l Layout) FormFile(extensionID, formID string) string {
	return filepath.Join(l.Runtime, "forms", url.PathEscape(extensionID), url.PathEscape(formID)+".bin")
}

// Validate reports roots that are unset or relative.
func (l Layout) Validate() error {
	for _, root := range []struct{ name, path string }{
		{"data", l.Data},
		{"config", l.Config},
		{"cache", l.Cache},
		{"runtime", l.Runtime},
	} {
		if root.path == "" {
			return fmt.Errorf("paths.%s is required", root.name)
		}
		if !filepath.IsAbs(root.path) {
			return fmt.Errorf("paths.%s must be absolute, got %q", root.name, root.path)
		}
	}
	return nil
}

// Ensure creates every root directory. The runtime root is private to
// the user because mailboxes carry form answers.
func (l Layout) Ensure() error {
	for _, directory := range []string{l.Data, l.Config, l.Cache, l.ExtensionsDir()} {
		if err := os.MkdirAll(directory, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", directory, err)
		}
	}
	if err := os.MkdirAll(l.Runtime, 0o700); err != nil {
		return fmt.Errorf("creating %s: %w", l.Runtime, err)
	}
	return nil
}
