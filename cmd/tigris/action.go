// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"

	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/host"
	"github.com/tigris-launcher/tigris/lib/schema/action"
)

func actionCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "action",
		Summary: "Run an extension action",
		Description: `Invoke ACTION on the extension EXTENSION through a mailbox, passing
ARGS unchanged. The extension may answer with results, with a form to
fill in, or with nothing. A returned form is kept until it is answered
with "tigris form".`,
		Usage: "tigris action EXTENSION ACTION [ARGS]...",
		Examples: []cli.Example{{
			Description: "ask the echo extension for its form",
			Command:     "tigris action echo form",
		}},
		Run: func(args []string) error {
			if len(args) < 2 {
				return errors.New("usage: tigris action EXTENSION ACTION [ARGS]...")
			}
			invoker, err := a.invoker()
			if err != nil {
				return err
			}
			run := action.NewRunExtensionAction(args[0], args[1])
			for _, arg := range args[2:] {
				run = run.WithArg(arg)
			}
			outcome, err := invoker.RunAction(a.ctx, run)
			if err != nil {
				return err
			}
			return showOutcome(a, invoker, outcome)
		},
	}
}

// showOutcome prints what an extension answered. Forms are kept so
// that a later "tigris form" can answer them.
func showOutcome(a *app, invoker *host.Invoker, outcome host.Outcome) error {
	render := a.renderer(invoker.Settings())
	switch outcome.Kind() {
	case host.OutcomeResults:
		results, _ := outcome.Results()
		if len(results) == 0 {
			fmt.Fprintln(a.stdout, "no results")
			return nil
		}
		render.results(a.stdout, results)
	case host.OutcomeForm:
		form, _ := outcome.Form()
		if err := invoker.KeepForm(form); err != nil {
			return err
		}
		render.form(a.stdout, form)
	default:
		fmt.Fprintln(a.stdout, "no answer")
	}
	return nil
}
