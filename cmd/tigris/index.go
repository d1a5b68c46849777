// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/tigris-launcher/tigris/lib/catalog"
	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/process"
	"github.com/tigris-launcher/tigris/lib/reconcile"
	"github.com/tigris-launcher/tigris/lib/schema/manifest"
)

func indexCommand(a *app) *cli.Command {
	var manifestPaths []string
	return &cli.Command{
		Name:    "index",
		Summary: "Register extensions and reconcile their settings",
		Description: `Read the given extension manifests, write the extension catalog, and
add a stored value for every declared setting that has none. Stored
values are never changed.

Each manifest's directory must also hold the extension executable,
named "` + catalog.ExecutableName + `".`,
		Usage: "tigris index --manifest PATH [--manifest PATH]...",
		Examples: []cli.Example{{
			Description: "index two extensions",
			Command:     "tigris index --manifest ~/ext/calc/manifest.json --manifest ~/ext/weather/manifest.json",
		}},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("index", pflag.ContinueOnError)
			flagSet.StringArrayVar(&manifestPaths, "manifest", nil, "extension manifest.json (repeatable)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected arguments %q", args)
			}
			if len(manifestPaths) == 0 {
				return errors.New("at least one --manifest is required")
			}
			return runIndex(a, manifestPaths)
		},
	}
}

func runIndex(a *app, manifestPaths []string) error {
	entries, err := readEntries(manifestPaths)
	if err != nil {
		return err
	}
	cfg, err := a.config()
	if err != nil {
		return err
	}
	if err := cfg.Paths.Ensure(); err != nil {
		return err
	}
	store, err := a.store()
	if err != nil {
		return err
	}

	report, err := reconcile.Pass(store, catalog.Manifests(entries), a.logger)
	if err != nil {
		// The settings document is now in an unknown state; later
		// launches must not run against a half-finished index.
		a.logger.Error("indexing aborted", "error", err)
		process.Fatal(err)
	}
	if err := catalog.WriteExtensions(cfg.Paths.ExtensionsFile(), entries); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "indexed %d extensions, added %d setting values\n", len(entries), len(report.Added))
	for _, added := range report.Added {
		fmt.Fprintf(a.stdout, "  %s.%s = %q\n", added.ExtensionID, added.SettingID, added.Value)
	}
	return nil
}

// readEntries parses every manifest. Two manifests declaring the same
// extension id are an error.
func readEntries(manifestPaths []string) ([]catalog.Entry, error) {
	entries := make([]catalog.Entry, 0, len(manifestPaths))
	seen := make(map[string]string, len(manifestPaths))
	for _, path := range manifestPaths {
		absolute, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		extension, err := manifest.ReadFile(absolute)
		if err != nil {
			return nil, err
		}
		if previous, duplicate := seen[extension.ID]; duplicate {
			return nil, fmt.Errorf("extension %q is declared by both %s and %s", extension.ID, previous, absolute)
		}
		seen[extension.ID] = absolute
		entries = append(entries, catalog.Entry{Extension: *extension, Dir: filepath.Dir(absolute)})
	}
	return entries, nil
}
