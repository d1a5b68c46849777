// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/host"
	"github.com/tigris-launcher/tigris/lib/mailbox"
	"github.com/tigris-launcher/tigris/lib/schema/request"
)

func formCommand(a *app) *cli.Command {
	var show bool
	return &cli.Command{
		Name:    "form",
		Summary: "Answer a form returned by an extension",
		Description: `Submit answers to a form an extension returned from "tigris action".
Each answer is FIELD=VALUE. Fields left out keep the value the form was
shown with. Answers are validated before the extension is run; on
failure the form stays open and can be answered again.`,
		Usage: "tigris form EXTENSION FORM [FIELD=VALUE]...",
		Examples: []cli.Example{
			{Description: "show a kept form", Command: "tigris form --show echo greeting"},
			{Description: "answer it", Command: "tigris form echo greeting name=Ada loud=true"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("form", pflag.ContinueOnError)
			flagSet.BoolVar(&show, "show", false, "print the form instead of submitting it")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return errors.New("usage: tigris form EXTENSION FORM [FIELD=VALUE]...")
			}
			extensionID, formID := args[0], args[1]
			answers, err := parseAnswers(args[2:])
			if err != nil {
				return err
			}

			invoker, err := a.invoker()
			if err != nil {
				return err
			}
			form, err := invoker.KeptForm(extensionID, formID)
			if errors.Is(err, mailbox.ErrEmpty) {
				return fmt.Errorf("no open form %q from %s; run the action that shows it first", formID, extensionID)
			}
			if err != nil {
				return err
			}
			render := a.renderer(invoker.Settings())
			if show {
				render.form(a.stdout, form)
				return nil
			}

			outcome, err := invoker.SubmitForm(a.ctx, form, answers)
			var invalid *host.ValidationError
			if errors.As(err, &invalid) {
				fmt.Fprintf(a.stdout, "form %s was not submitted:\n", formID)
				render.failures(a.stdout, invalid.Failures)
				return &cli.ExitError{Code: 1}
			}
			if err != nil {
				return err
			}
			if err := invoker.DropForm(extensionID, formID); err != nil {
				a.logger.Warn("dropping answered form", "form_id", formID, "error", err)
			}
			return showOutcome(a, invoker, outcome)
		},
	}
}

// parseAnswers splits FIELD=VALUE arguments. The value may be empty
// and may itself contain "=".
func parseAnswers(args []string) ([]request.FormResult, error) {
	answers := make([]request.FormResult, 0, len(args))
	for _, arg := range args {
		id, value, ok := strings.Cut(arg, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("answer %q is not FIELD=VALUE", arg)
		}
		answers = append(answers, request.NewFormResult(id, value))
	}
	return answers, nil
}
