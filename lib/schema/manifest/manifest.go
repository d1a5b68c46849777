// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest defines an extension's static declaration of
// identity and configurable settings, as authored in manifest.json.
//
// Manifests are JSON with JSONC extensions (// and /* */ comments,
// trailing commas). Finding manifest files on disk is the indexer's
// business; this package only parses and validates one document.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/tidwall/jsonc"
)

// KeywordSettingID is the synthetic per-extension setting that holds
// the keyword routing a query to the extension. It is never declared
// in a manifest.
const KeywordSettingID = "keyword"

// SettingType is how the settings UI renders a setting.
type SettingType string

const (
	SettingText   SettingType = "Text"
	SettingSelect SettingType = "Select"
	SettingSwitch SettingType = "Switch"
	SettingSlider SettingType = "Slider"
)

// Extension is one installed extension's manifest.
type Extension struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	CreatorName    string    `json:"creator_name,omitempty"`
	CreatorLink    string    `json:"creator_link,omitempty"`
	RepositoryLink string    `json:"repository_link,omitempty"`
	Settings       []Setting `json:"settings"`
}

// Setting declares one configurable value. Value is the default the
// reconciler seeds into the settings store; once a user edits it the
// stored value wins.
type Setting struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Value       string      `json:"value"`
	SettingType SettingType `json:"setting_type"`

	// Min, Max and Step bound a Slider setting.
	Min  *uint `json:"min,omitempty"`
	Max  *uint `json:"max,omitempty"`
	Step *uint `json:"step,omitempty"`

	// SelectValues are the choices of a Select setting.
	SelectValues []SelectValue `json:"select_values,omitempty"`

	// ConditionalShow hides the setting unless every referenced
	// setting currently holds the given value.
	ConditionalShow []ConditionalShow `json:"conditional_show,omitempty"`
}

// SelectValue is one choice of a Select setting.
type SelectValue struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// ConditionalShow references another setting of the same extension.
type ConditionalShow struct {
	SettingID    string `json:"setting_id"`
	SettingValue string `json:"setting_value"`
}

// Parse strips JSONC comments and trailing commas from data, then
// unmarshals and validates the result.
func Parse(data []byte) (*Extension, error) {
	var extension Extension
	if err := json.Unmarshal(jsonc.ToJSON(data), &extension); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := extension.Validate(); err != nil {
		return nil, err
	}
	return &extension, nil
}

// ReadFile reads and parses the manifest at path.
func ReadFile(path string) (*Extension, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	extension, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return extension, nil
}

// Validate checks identity fields and that settings are internally
// consistent. Returns an error describing the first problem found.
func (e *Extension) Validate() error {
	if e.ID == "" {
		return errors.New("manifest: id is required")
	}
	if e.Name == "" {
		return fmt.Errorf("manifest %s: name is required", e.ID)
	}

	declared := make(map[string]struct{}, len(e.Settings))
	for i := range e.Settings {
		setting := &e.Settings[i]
		if setting.ID == "" {
			return fmt.Errorf("manifest %s: settings[%d]: id is required", e.ID, i)
		}
		if setting.ID == KeywordSettingID {
			return fmt.Errorf("manifest %s: setting id %q is reserved", e.ID, KeywordSettingID)
		}
		if _, duplicate := declared[setting.ID]; duplicate {
			return fmt.Errorf("manifest %s: duplicate setting id %q", e.ID, setting.ID)
		}
		declared[setting.ID] = struct{}{}
		if err := setting.validate(); err != nil {
			return fmt.Errorf("manifest %s: setting %q: %w", e.ID, setting.ID, err)
		}
	}

	for _, setting := range e.Settings {
		for _, condition := range setting.ConditionalShow {
			if _, ok := declared[condition.SettingID]; !ok {
				return fmt.Errorf("manifest %s: setting %q: conditional_show references unknown setting %q",
					e.ID, setting.ID, condition.SettingID)
			}
		}
	}
	return nil
}

func (s *Setting) validate() error {
	switch s.SettingType {
	case SettingText:
	case SettingSwitch:
		if s.Value != "true" && s.Value != "false" {
			return fmt.Errorf("switch default must be \"true\" or \"false\", got %q", s.Value)
		}
	case SettingSelect:
		if len(s.SelectValues) == 0 {
			return errors.New("select setting needs select_values")
		}
		found := false
		for _, choice := range s.SelectValues {
			if choice.ID == s.Value {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("select default %q is not one of select_values", s.Value)
		}
	case SettingSlider:
		if s.Min != nil && s.Max != nil && *s.Min > *s.Max {
			return fmt.Errorf("slider min %d exceeds max %d", *s.Min, *s.Max)
		}
	case "":
		return errors.New("setting_type is required")
	default:
		return fmt.Errorf("unknown setting_type %q", s.SettingType)
	}
	return nil
}

// Setting returns the declared setting with the given id.
func (e *Extension) Setting(id string) (Setting, bool) {
	for _, setting := range e.Settings {
		if setting.ID == id {
			return setting, true
		}
	}
	return Setting{}, false
}

// CheckValue reports whether value may be stored for this setting:
// switches take "true" or "false", selects one of their choice ids,
// sliders a whole number within any declared bounds. Text settings
// accept anything.
func (s Setting) CheckValue(value string) error {
	switch s.SettingType {
	case SettingSwitch:
		if value != "true" && value != "false" {
			return fmt.Errorf("setting %q: %q is not true or false", s.ID, value)
		}
	case SettingSelect:
		if !slices.ContainsFunc(s.SelectValues, func(choice SelectValue) bool { return choice.ID == value }) {
			return fmt.Errorf("setting %q: %q is not one of the choices", s.ID, value)
		}
	case SettingSlider:
		number, err := strconv.ParseUint(value, 10, 0)
		if err != nil {
			return fmt.Errorf("setting %q: %q is not a whole number", s.ID, value)
		}
		if (s.Min != nil && uint(number) < *s.Min) || (s.Max != nil && uint(number) > *s.Max) {
			return fmt.Errorf("setting %q: %d is out of range", s.ID, number)
		}
	}
	return nil
}
