// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package search interprets what the user typed: splitting a leading
// keyword from the search text, expanding web search engine URLs, and
// ranking candidates by fuzzy match.
package search

import (
	"net/url"
	"strings"

	"github.com/tigris-launcher/tigris/lib/settings"
)

// Query is typed input split at its first space.
type Query struct {
	// Keyword is everything before the first space. Only meaningful
	// when HasKeyword is set; it may be empty if the input starts
	// with a space.
	Keyword    string
	HasKeyword bool

	// Text is the rest of the input with surrounding spaces trimmed,
	// or the whole trimmed input when there is no space.
	Text string
}

// ParseQuery splits input at its first space. "gs rust lang" has
// keyword "gs" and text "rust lang"; "justtext" has no keyword and
// text "justtext".
func ParseQuery(input string) Query {
	keyword, rest, found := strings.Cut(input, " ")
	if !found {
		return Query{Text: strings.TrimSpace(input)}
	}
	return Query{
		Keyword:    keyword,
		HasKeyword: true,
		Text:       strings.TrimSpace(rest),
	}
}

// EngineURL expands every %s in the engine's query template with the
// URL-escaped text.
func EngineURL(engine settings.SearchEngine, text string) string {
	return strings.ReplaceAll(engine.Query, "%s", url.QueryEscape(text))
}
