// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"fmt"
	"strconv"
)

// NotFoundError reports a lookup of an extension setting that has no
// stored value.
type NotFoundError struct {
	ExtensionID string
	SettingID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no value for setting %q of extension %q", e.SettingID, e.ExtensionID)
}

// ParseError reports a stored value that does not have the requested
// shape.
type ParseError struct {
	ExtensionID string
	SettingID   string
	Value       string
	Err         error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("setting %q of extension %q: cannot parse %q as a non-negative integer: %v",
		e.SettingID, e.ExtensionID, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// HasExtensionValue reports whether a value is stored for the pair.
func (s *Settings) HasExtensionValue(extensionID, settingID string) bool {
	return s.indexOf(extensionID, settingID) >= 0
}

// ExtensionValue returns the stored value for the pair.
func (s *Settings) ExtensionValue(extensionID, settingID string) (string, error) {
	index := s.indexOf(extensionID, settingID)
	if index < 0 {
		return "", &NotFoundError{ExtensionID: extensionID, SettingID: settingID}
	}
	return s.ExtensionValues[index].Value, nil
}

// ExtensionBool returns true only when the stored value is exactly
// "true". Any other text, including "True" and "1", is false.
func (s *Settings) ExtensionBool(extensionID, settingID string) (bool, error) {
	value, err := s.ExtensionValue(extensionID, settingID)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

// ExtensionUint parses the stored value as a non-negative integer.
func (s *Settings) ExtensionUint(extensionID, settingID string) (uint, error) {
	value, err := s.ExtensionValue(extensionID, settingID)
	if err != nil {
		return 0, err
	}
	parsed, err := strconv.ParseUint(value, 10, strconv.IntSize)
	if err != nil {
		return 0, &ParseError{ExtensionID: extensionID, SettingID: settingID, Value: value, Err: err}
	}
	return uint(parsed), nil
}

// SetExtensionValue stores value for the pair, replacing an existing
// entry or appending a new one.
func (s *Settings) SetExtensionValue(extensionID, settingID, value string) {
	if index := s.indexOf(extensionID, settingID); index >= 0 {
		s.ExtensionValues[index].Value = value
		return
	}
	s.ExtensionValues = append(s.ExtensionValues, ExtensionValue{
		ExtensionID: extensionID,
		SettingID:   settingID,
		Value:       value,
	})
}

// ExtensionValuesFor returns the stored values of one extension in
// stored order.
func (s *Settings) ExtensionValuesFor(extensionID string) []ExtensionValue {
	var values []ExtensionValue
	for _, value := range s.ExtensionValues {
		if value.ExtensionID == extensionID {
			values = append(values, value)
		}
	}
	return values
}

func (s *Settings) indexOf(extensionID, settingID string) int {
	for i, value := range s.ExtensionValues {
		if value.ExtensionID == extensionID && value.SettingID == settingID {
			return i
		}
	}
	return -1
}
