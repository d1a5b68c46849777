// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/alecthomas/chroma/v2/quick"
	"gopkg.in/yaml.v3"

	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/schema/manifest"
	"github.com/tigris-launcher/tigris/lib/settings"
)

func settingsCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "settings",
		Summary: "Show and edit launcher settings",
		Description: `Inspect the settings document and edit extension setting values.
Values are checked against the extension manifest before they are
stored.`,
		Subcommands: []*cli.Command{
			{
				Name:    "show",
				Summary: "Print the whole settings document as YAML",
				Run: func(args []string) error {
					if len(args) > 0 {
						return fmt.Errorf("unexpected arguments %q", args)
					}
					store, err := a.store()
					if err != nil {
						return err
					}
					data, err := yaml.Marshal(store.Load())
					if err != nil {
						return err
					}
					if _, terminal := a.terminalWidth(); terminal {
						if err := quick.Highlight(a.stdout, string(data), "yaml", "terminal256", "monokai"); err == nil {
							return nil
						}
					}
					_, err = a.stdout.Write(data)
					return err
				},
			},
			{
				Name:    "get",
				Summary: "Print one extension setting value",
				Usage:   "tigris settings get EXTENSION SETTING",
				Run: func(args []string) error {
					if len(args) != 2 {
						return errors.New("usage: tigris settings get EXTENSION SETTING")
					}
					store, err := a.store()
					if err != nil {
						return err
					}
					value, err := store.Load().ExtensionValue(args[0], args[1])
					if err != nil {
						return err
					}
					fmt.Fprintln(a.stdout, value)
					return nil
				},
			},
			{
				Name:    "set",
				Summary: "Store one extension setting value",
				Usage:   "tigris settings set EXTENSION SETTING VALUE",
				Examples: []cli.Example{{
					Description: "bind the echo extension to the keyword \"e\"",
					Command:     "tigris settings set echo keyword e",
				}},
				Run: func(args []string) error {
					if len(args) != 3 {
						return errors.New("usage: tigris settings set EXTENSION SETTING VALUE")
					}
					return setExtensionValue(a, args[0], args[1], args[2])
				},
			},
		},
	}
}

func setExtensionValue(a *app, extensionID, settingID, value string) error {
	invoker, err := a.invoker()
	if err != nil {
		return err
	}
	entry, err := invoker.Extension(extensionID)
	if err != nil {
		return err
	}
	if settingID != manifest.KeywordSettingID {
		setting, ok := entry.Extension.Setting(settingID)
		if !ok {
			return fmt.Errorf("extension %q declares no setting %q", extensionID, settingID)
		}
		if err := setting.CheckValue(value); err != nil {
			return err
		}
	}
	_, err = invoker.Settings().Update(func(s *settings.Settings) error {
		s.SetExtensionValue(extensionID, settingID, value)
		return nil
	})
	if err != nil {
		return err
	}
	a.logger.Info("extension setting stored", "extension_id", extensionID, "setting_id", settingID)
	return nil
}
