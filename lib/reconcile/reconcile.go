// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package reconcile keeps the settings store consistent with the
// manifests of installed extensions.
//
// Reconciliation only ever adds. For each installed extension every
// declared setting without a stored value gets one, seeded from the
// manifest default, and every extension gets a "keyword" value
// (initially empty) if it has none. Stored values are never changed,
// so user edits survive manifest default changes. Values belonging to
// uninstalled extensions or removed settings are left in place; they
// are simply never recreated. Running a pass twice is a no-op the
// second time.
package reconcile

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/tigris-launcher/tigris/lib/schema/manifest"
	"github.com/tigris-launcher/tigris/lib/settings"
)

// Report lists what a merge added.
type Report struct {
	Added []settings.ExtensionValue
}

// Changed reports whether the merge added anything.
func (r Report) Changed() bool { return len(r.Added) > 0 }

// Merge upserts missing extension values into s in place. Values are
// appended in manifest order: an extension's declared settings first,
// then its keyword.
func Merge(s *settings.Settings, extensions []manifest.Extension) Report {
	var report Report
	add := func(extensionID, settingID, value string) {
		if s.HasExtensionValue(extensionID, settingID) {
			return
		}
		added := settings.ExtensionValue{ExtensionID: extensionID, SettingID: settingID, Value: value}
		s.ExtensionValues = append(s.ExtensionValues, added)
		report.Added = append(report.Added, added)
	}

	for _, extension := range extensions {
		for _, setting := range extension.Settings {
			add(extension.ID, setting.ID, setting.Value)
		}
		add(extension.ID, manifest.KeywordSettingID, "")
	}
	return report
}

// Pass performs one reconciliation: one load, one in-memory merge,
// one save. The document is saved even when nothing was added, so a
// missing settings file is created on the first pass.
//
// Only a missing settings file starts from the defaults. A file that
// exists but cannot be read or decoded aborts the pass before anything
// is written, so stored user values are never replaced. Read and save
// failures must be treated as fatal to the indexing pass.
func Pass(store *settings.Store, extensions []manifest.Extension, logger *slog.Logger) (Report, error) {
	if logger == nil {
		logger = slog.Default()
	}

	current, err := store.Read()
	if errors.Is(err, fs.ErrNotExist) {
		logger.Debug("no settings file, starting from defaults", "path", store.Path())
		current = settings.Default()
	} else if err != nil {
		return Report{}, fmt.Errorf("reconciling settings: %w", err)
	}
	report := Merge(current, extensions)
	for _, added := range report.Added {
		logger.Debug("added extension setting",
			"extension_id", added.ExtensionID,
			"setting_id", added.SettingID,
			"value", added.Value,
		)
	}

	if err := store.Save(current); err != nil {
		return report, fmt.Errorf("reconciling settings: %w", err)
	}
	logger.Info("settings reconciled",
		"extensions", len(extensions),
		"added", len(report.Added),
		"path", store.Path(),
	)
	return report, nil
}
