// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"context"
	"fmt"
	"strings"

	"github.com/tigris-launcher/tigris/lib/catalog"
	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/manifest"
	"github.com/tigris-launcher/tigris/lib/search"
	"github.com/tigris-launcher/tigris/lib/settings"
)

// RouteKind says what a query was routed to.
type RouteKind int

const (
	// RouteApps means the input was matched against installed apps.
	RouteApps RouteKind = iota

	// RouteExtension means a keyword selected an extension.
	RouteExtension

	// RouteEngine means a keyword selected a web search engine.
	RouteEngine
)

func (k RouteKind) String() string {
	switch k {
	case RouteApps:
		return "apps"
	case RouteExtension:
		return "extension"
	case RouteEngine:
		return "engine"
	default:
		return "unknown"
	}
}

// Routed is the answer to one query.
type Routed struct {
	Kind  RouteKind
	Query search.Query

	// ExtensionID is set for RouteExtension.
	ExtensionID string

	Results []action.SearchResult
}

// Route resolves typed input to results. A leading keyword equal to an
// installed extension's "keyword" setting sends the rest of the input
// to that extension; extensions take precedence over search engines
// sharing the keyword. A keyword naming a search engine yields a single
// web search result. Anything else is fuzzy-matched against app names
// and followed by a search with the default engine. An empty keyword
// never matches. Empty input lists the recently launched apps when
// settings allow it.
func (i *Invoker) Route(ctx context.Context, input string) (Routed, error) {
	query := search.ParseQuery(input)
	current := i.store.Load()

	if query.HasKeyword && query.Keyword != "" {
		entries, err := i.Extensions()
		if err != nil {
			return Routed{}, err
		}
		for _, entry := range entries {
			keyword, err := current.ExtensionValue(entry.Extension.ID, manifest.KeywordSettingID)
			if err != nil || keyword != query.Keyword {
				continue
			}
			results, err := i.Search(ctx, entry.Extension.ID, query.Text)
			if err != nil {
				return Routed{}, err
			}
			return Routed{
				Kind:        RouteExtension,
				Query:       query,
				ExtensionID: entry.Extension.ID,
				Results:     results,
			}, nil
		}

		if engine, ok := current.EngineByKeyword(query.Keyword); ok {
			return Routed{
				Kind:    RouteEngine,
				Query:   query,
				Results: []action.SearchResult{engineResult(engine, query.Text)},
			}, nil
		}
	}

	results, err := i.appResults(current, strings.TrimSpace(input))
	if err != nil {
		return Routed{}, err
	}
	return Routed{Kind: RouteApps, Query: query, Results: results}, nil
}

// appResults fuzzy-matches text, the whole trimmed input, against the
// visible apps.
func (i *Invoker) appResults(current *settings.Settings, text string) ([]action.SearchResult, error) {
	if text == "" {
		if !current.ShowRecentApps {
			return []action.SearchResult{}, nil
		}
		recent, err := catalog.ReadRecentApps(i.layout.RecentAppsFile())
		if err != nil {
			return nil, err
		}
		return appsToResults(current, recent), nil
	}

	apps, err := catalog.ReadApps(i.layout.AppsFile())
	if err != nil {
		return nil, err
	}
	visible := make([]catalog.App, 0, len(apps))
	for _, app := range apps {
		if !current.Blacklisted(app.Path) {
			visible = append(visible, app)
		}
	}
	names := make([]string, len(visible))
	for index, app := range visible {
		names[index] = app.Name
	}
	matches := search.Rank(text, names)
	ranked := make([]catalog.App, len(matches))
	for index, match := range matches {
		ranked[index] = visible[match.Index]
	}

	results := appsToResults(current, ranked)
	if engine, ok := current.DefaultEngine(); ok {
		results = append(results, engineResult(engine, text))
	}
	return results, nil
}

func appsToResults(current *settings.Settings, apps []catalog.App) []action.SearchResult {
	results := make([]action.SearchResult, 0, len(apps))
	for _, app := range apps {
		result := action.NewSearchResult(app.Name).WithAction(action.NewOpenApp(app.Path))
		if !current.HideAppIcons && app.IconPath != "" {
			result = result.WithIconPath(app.IconPath)
		}
		results = append(results, result)
	}
	return results
}

func engineResult(engine settings.SearchEngine, text string) action.SearchResult {
	return action.NewSearchResult(fmt.Sprintf("Search %s for %q", engine.Name, text)).
		WithDescription(search.EngineURL(engine, text)).
		WithAction(action.NewOpenLink(search.EngineURL(engine, text)))
}
