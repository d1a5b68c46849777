// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"strings"

	"github.com/tigris-launcher/tigris/lib/cli"
)

func queryCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "query",
		Summary: "Resolve launcher input to results",
		Description: `Resolve input the way the launcher search box does. A leading keyword
bound to an extension sends the rest of the input to that extension; a
search engine keyword yields a web search. Other input is matched
against the installed applications.

Exits with status 1 when nothing matched.`,
		Usage: "tigris query [TEXT]...",
		Examples: []cli.Example{
			{Description: "search apps", Command: "tigris query fire fox"},
			{Description: "ask the extension bound to \"calc\"", Command: "tigris query calc 2+2"},
		},
		Run: func(args []string) error {
			invoker, err := a.invoker()
			if err != nil {
				return err
			}
			routed, err := invoker.Route(a.ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			a.logger.Debug("query routed",
				"route", routed.Kind,
				"extension_id", routed.ExtensionID,
				"results", len(routed.Results),
			)
			if len(routed.Results) == 0 {
				fmt.Fprintln(a.stdout, "no results")
				return &cli.ExitError{Code: 1}
			}
			a.renderer(invoker.Settings()).results(a.stdout, routed.Results)
			return nil
		},
	}
}
