// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"errors"

	"github.com/tigris-launcher/tigris/lib/settings"
)

// ErrNoSettings is returned when the launcher did not say where the
// settings document lives.
var ErrNoSettings = errors.New("sdk: settings path not set")

// Settings reads the launcher's settings document. A missing or
// unreadable document yields the defaults, as it does for the
// launcher.
func (e *Extension) Settings() (*settings.Settings, error) {
	if e.settingsPath == "" {
		return nil, ErrNoSettings
	}
	return settings.NewStore(e.settingsPath, e.logger).Load(), nil
}

// Setting returns this extension's value for settingID, or a
// *settings.NotFoundError.
func (e *Extension) Setting(settingID string) (string, error) {
	current, err := e.Settings()
	if err != nil {
		return "", err
	}
	return current.ExtensionValue(e.id, settingID)
}

// BoolSetting returns this extension's switch setting. Only "true" is
// true.
func (e *Extension) BoolSetting(settingID string) (bool, error) {
	current, err := e.Settings()
	if err != nil {
		return false, err
	}
	return current.ExtensionBool(e.id, settingID)
}

// UintSetting returns this extension's numeric setting, or a
// *settings.ParseError when the value is not a whole number.
func (e *Extension) UintSetting(settingID string) (uint, error) {
	current, err := e.Settings()
	if err != nil {
		return 0, err
	}
	return current.ExtensionUint(e.id, settingID)
}
