// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"slices"
	"strings"
)

// RecentLimit is how many recently launched apps are remembered.
const RecentLimit = 10

// App is a launchable desktop application.
type App struct {
	// Path is the desktop entry file, which also identifies the app.
	Path     string `cbor:"path"`
	Name     string `cbor:"name"`
	IconPath string `cbor:"icon_path,omitempty"`
}

// ReadApps reads the application list at path.
func ReadApps(path string) ([]App, error) {
	return readList[App](path)
}

// WriteApps replaces the application list at path, sorted by name.
func WriteApps(path string, apps []App) error {
	sorted := slices.Clone(apps)
	slices.SortStableFunc(sorted, func(a, b App) int {
		return strings.Compare(a.Name, b.Name)
	})
	return writeList(path, sorted)
}

// ReadRecentApps reads the recently launched list at path, most recent
// first.
func ReadRecentApps(path string) ([]App, error) {
	return readList[App](path)
}

// WriteRecentApps replaces the recently launched list at path.
func WriteRecentApps(path string, recent []App) error {
	return writeList(path, recent)
}

// PushRecent returns recent with app moved to the front, without
// duplicates, truncated to RecentLimit. recent is not modified.
func PushRecent(recent []App, app App) []App {
	pushed := make([]App, 0, min(len(recent)+1, RecentLimit))
	pushed = append(pushed, app)
	for _, existing := range recent {
		if len(pushed) == RecentLimit {
			break
		}
		if existing.Path != app.Path {
			pushed = append(pushed, existing)
		}
	}
	return pushed
}

// PruneRecent drops recent entries that are no longer installed.
func PruneRecent(recent, installed []App) []App {
	present := make(map[string]struct{}, len(installed))
	for _, app := range installed {
		present[app.Path] = struct{}{}
	}
	pruned := make([]App, 0, len(recent))
	for _, app := range recent {
		if _, ok := present[app.Path]; ok {
			pruned = append(pruned, app)
		}
	}
	return pruned
}
