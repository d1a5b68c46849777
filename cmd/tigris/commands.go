// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/version"
)

func root(a *app) *cli.Command {
	return &cli.Command{
		Name: "tigris",
		Description: `Tigris: application launcher extension host.

Index extension manifests, query extensions and apps, run extension
actions and answer the forms they return.`,
		Subcommands: []*cli.Command{
			indexCommand(a),
			queryCommand(a),
			actionCommand(a),
			formCommand(a),
			settingsCommand(a),
			mailboxCommand(a),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Fprintf(a.stdout, "tigris %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
