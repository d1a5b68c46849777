// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Tigris-echo is the reference extension. It shows every way an
// extension can answer the launcher:
//
//   - a search returns one result per word, copying the word;
//   - the "form" action returns a form asking what to echo;
//   - submitting that form returns a single result copying the answer,
//     upper-cased when the "shout" setting or form switch is on.
//
// Install it by building into a directory next to manifest.json under
// the name "extension", then run "tigris index --manifest".
package main

import (
	"fmt"
	"strings"

	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
	"github.com/tigris-launcher/tigris/lib/sdk"
)

func main() {
	sdk.Main(handle)
}

func handle(ext *sdk.Extension, req request.ExtensionRequest) error {
	if getResults, ok := req.GetResults(); ok {
		return ext.ReturnSearchResults(words(getResults.SearchText))
	}
	if runAction, ok := req.RunAction(); ok {
		switch runAction.Action {
		case "form":
			// Unindexed or unreadable settings just start quiet.
			shout, _ := ext.BoolSetting("shout")
			return ext.ReturnForm(echoForm(shout, runAction.Args))
		case "words":
			return ext.ReturnResults(words(strings.Join(runAction.Args, " ")))
		default:
			return fmt.Errorf("unknown action %q", runAction.Action)
		}
	}
	if formResults, ok := req.FormResults(); ok {
		return ext.ReturnResults([]action.SearchResult{answer(formResults)})
	}
	return fmt.Errorf("unsupported request %s", req.Type())
}

func words(text string) []action.SearchResult {
	fields := strings.Fields(text)
	results := make([]action.SearchResult, 0, len(fields))
	for _, word := range fields {
		results = append(results, action.NewSearchResult(word).
			WithDescription("Copy to clipboard").
			WithAction(action.NewCopyText(word)))
	}
	return results
}

func echoForm(shout bool, args []string) action.OpenFormAction {
	form := action.NewForm("", "echo", "Echo", "Echo").WithFields(
		action.NewTextField("text", "Text", "What to echo back",
			action.NewTextInput("").
				WithPlaceholder("hello").
				WithValidation(action.NewFieldValidation().WithNotEmpty(true).WithMaxCharacters(200))),
		action.NewSwitchField("shout", "Shout", "Upper-case the answer", action.NewSwitchInput(shout)),
		action.NewSliderField("repeat", "Repeat", "", action.NewSliderInput(1, 1, 5, 1)),
	)
	for _, arg := range args {
		form = form.WithArg(arg)
	}
	return form
}

func answer(form request.FormResultsRequest) action.SearchResult {
	text, err := form.Text("text")
	if err != nil {
		return action.NewSearchResult("nothing to echo").WithDescription(err.Error())
	}
	if shout, err := form.Bool("shout"); err == nil && shout {
		text = strings.ToUpper(text)
	}
	if repeat, err := form.Uint("repeat"); err == nil && repeat > 1 {
		text = strings.TrimSpace(strings.Repeat(text+" ", int(repeat)))
	}
	result := action.NewSearchResult(text).WithAction(action.NewCopyText(text))
	if len(form.Args) > 0 {
		result = result.WithDescription("from " + strings.Join(form.Args, " "))
	}
	return result
}
