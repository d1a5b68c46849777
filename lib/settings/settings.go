// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings holds the launcher's persisted configuration: window
// geometry, appearance, search engines, and the per-extension setting
// values that reconciliation keeps in step with extension manifests.
//
// The document is stored as one CBOR file and only ever rewritten as a
// whole (see [Store]). Fields missing from a stored document take
// their default values, so documents written by older versions stay
// readable as fields are added.
package settings

// Settings is the whole persisted document.
type Settings struct {
	Width  uint32 `cbor:"width" yaml:"width"`
	Height uint32 `cbor:"height" yaml:"height"`

	ShowRecentApps     bool  `cbor:"show_recent_apps" yaml:"show_recent_apps"`
	BoxBorderRadius    uint8 `cbor:"box_border_radius" yaml:"box_border_radius"`
	BorderWidth        uint8 `cbor:"border_width" yaml:"border_width"`
	ResultBorderRadius uint8 `cbor:"result_border_radius" yaml:"result_border_radius"`
	IconBorderRadius   uint8 `cbor:"icon_border_radius" yaml:"icon_border_radius"`
	HideAppIcons       bool  `cbor:"hide_app_icons" yaml:"hide_app_icons"`
	AccentBorder       bool  `cbor:"accent_border" yaml:"accent_border"`
	ShowShortcutHint   bool  `cbor:"show_shortcut_hint" yaml:"show_shortcut_hint"`

	// ShortcutKey is the modifier that, held with a digit, activates
	// the nth result.
	ShortcutKey string `cbor:"shortcut_key" yaml:"shortcut_key"`

	Theme Theme `cbor:"theme" yaml:"theme"`

	// ExtensionValues holds one entry per (extension, setting) pair.
	// Entries for uninstalled extensions or removed settings are kept.
	ExtensionValues []ExtensionValue `cbor:"extension_values" yaml:"extension_values"`

	SearchEngines []SearchEngine `cbor:"search_engines" yaml:"search_engines"`

	// DefaultSearchEngine is the ID of the engine used when a query has
	// no recognised keyword.
	DefaultSearchEngine uint `cbor:"default_search_engine" yaml:"default_search_engine"`

	// Blacklist lists app paths hidden from results.
	Blacklist []string `cbor:"blacklist" yaml:"blacklist"`
}

// Theme holds CSS hex colours.
type Theme struct {
	Accent              string `cbor:"accent" yaml:"accent"`
	OnAccent            string `cbor:"on_accent" yaml:"on_accent"`
	Danger              string `cbor:"danger" yaml:"danger"`
	OnDanger            string `cbor:"on_danger" yaml:"on_danger"`
	Background          string `cbor:"background" yaml:"background"`
	SecondaryBackground string `cbor:"secondary_background" yaml:"secondary_background"`
	TertiaryBackground  string `cbor:"tertiary_background" yaml:"tertiary_background"`
	Text                string `cbor:"text" yaml:"text"`
	SecondaryText       string `cbor:"secondary_text" yaml:"secondary_text"`
	TertiaryText        string `cbor:"tertiary_text" yaml:"tertiary_text"`
	DisabledText        string `cbor:"disabled_text" yaml:"disabled_text"`
}

// ExtensionValue is the stored value of one extension setting.
type ExtensionValue struct {
	ExtensionID string `cbor:"extension_id" yaml:"extension_id"`
	SettingID   string `cbor:"setting_id" yaml:"setting_id"`
	Value       string `cbor:"value" yaml:"value"`
}

// SearchEngine is a web search reachable by keyword. Query contains a
// %s placeholder for the escaped search text.
type SearchEngine struct {
	ID      uint   `cbor:"id" yaml:"id"`
	Keyword string `cbor:"keyword" yaml:"keyword"`
	Name    string `cbor:"name" yaml:"name"`
	Query   string `cbor:"query" yaml:"query"`
}

// Default returns the built-in settings used on first run and whenever
// the stored document cannot be read.
func Default() *Settings {
	return &Settings{
		Width:              900,
		Height:             660,
		ShowRecentApps:     true,
		BoxBorderRadius:    16,
		BorderWidth:        3,
		ResultBorderRadius: 32,
		IconBorderRadius:   8,
		HideAppIcons:       false,
		AccentBorder:       false,
		ShowShortcutHint:   true,
		ShortcutKey:        "alt",
		Theme:              DefaultTheme(),
		ExtensionValues:    []ExtensionValue{},
		SearchEngines:      DefaultSearchEngines(),
		Blacklist:          []string{},
	}
}

// DefaultTheme is the dark theme with a yellow accent.
func DefaultTheme() Theme {
	return Theme{
		Accent:              "#FFE072",
		OnAccent:            "#000000",
		Danger:              "#ff7272",
		OnDanger:            "#000000",
		Background:          "#141414",
		SecondaryBackground: "#222222",
		TertiaryBackground:  "#181818",
		Text:                "#f2f2f2",
		SecondaryText:       "#eaeaea",
		TertiaryText:        "#d8d8d8",
		DisabledText:        "#bdbdbd",
	}
}

// DefaultSearchEngines returns DuckDuckGo, Google, Brave Search and
// Startpage with IDs 0 through 3.
func DefaultSearchEngines() []SearchEngine {
	return []SearchEngine{
		{ID: 0, Keyword: "ds", Name: "DuckDuckGo", Query: "https://duckduckgo.com/?q=%s"},
		{ID: 1, Keyword: "gs", Name: "Google", Query: "https://www.google.com/search?q=%s"},
		{ID: 2, Keyword: "bs", Name: "Brave Search", Query: "https://search.brave.com/search?q=%s"},
		{ID: 3, Keyword: "ss", Name: "Startpage", Query: "https://www.startpage.com/do/dsearch?q=%s"},
	}
}

// DefaultEngine returns the engine whose ID is DefaultSearchEngine,
// falling back to the first engine. Reports false only when there are
// no engines at all.
func (s *Settings) DefaultEngine() (SearchEngine, bool) {
	for _, engine := range s.SearchEngines {
		if engine.ID == s.DefaultSearchEngine {
			return engine, true
		}
	}
	if len(s.SearchEngines) > 0 {
		return s.SearchEngines[0], true
	}
	return SearchEngine{}, false
}

// EngineByKeyword returns the first engine with the given keyword.
func (s *Settings) EngineByKeyword(keyword string) (SearchEngine, bool) {
	for _, engine := range s.SearchEngines {
		if engine.Keyword == keyword {
			return engine, true
		}
	}
	return SearchEngine{}, false
}

// Blacklisted reports whether the app at path is hidden.
func (s *Settings) Blacklisted(path string) bool {
	for _, entry := range s.Blacklist {
		if entry == path {
			return true
		}
	}
	return false
}
