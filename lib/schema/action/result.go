// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package action

// SearchResult is one row an extension returns for a query. Action is
// nil when activating the row does nothing.
type SearchResult struct {
	Title       string        `cbor:"title"`
	Description string        `cbor:"description,omitempty"`
	IconPath    string        `cbor:"icon_path,omitempty"`
	IconColor   string        `cbor:"icon_color,omitempty"`
	Action      *ResultAction `cbor:"action,omitempty"`
}

// NewSearchResult returns a result with only a title.
func NewSearchResult(title string) SearchResult {
	return SearchResult{Title: title}
}

// WithDescription returns a copy with a secondary line of text.
func (r SearchResult) WithDescription(description string) SearchResult {
	r.Description = description
	return r
}

// WithIconPath returns a copy showing the icon at path.
func (r SearchResult) WithIconPath(path string) SearchResult {
	r.IconPath = path
	return r
}

// WithIconColor returns a copy whose icon is tinted with color, a CSS
// hex string such as "#FFE072".
func (r SearchResult) WithIconColor(color string) SearchResult {
	r.IconColor = color
	return r
}

// WithAction returns a copy that performs action when activated.
func (r SearchResult) WithAction(action ResultAction) SearchResult {
	r.Action = &action
	return r
}
