// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/tigris-launcher/tigris/lib/host"
	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/settings"
)

// renderer prints results and forms in the launcher's theme colours.
// Lines longer than width are cut; zero width never cuts.
type renderer struct {
	width int

	index       lipgloss.Style
	title       lipgloss.Style
	description lipgloss.Style
	action      lipgloss.Style
	danger      lipgloss.Style
}

func newRenderer(theme settings.Theme, width int) renderer {
	return renderer{
		width:       width,
		index:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TertiaryText)).Width(4),
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent)),
		description: lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SecondaryText)),
		action:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TertiaryText)).Italic(true),
		danger:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Danger)),
	}
}

func (r renderer) results(w io.Writer, results []action.SearchResult) {
	for i, result := range results {
		line := r.index.Render(fmt.Sprintf("%d.", i+1)) + r.title.Render(result.Title)
		if result.Action != nil {
			line += "  " + r.action.Render(describeAction(*result.Action))
		}
		r.println(w, line)
		if result.Description != "" {
			r.println(w, r.index.Render("")+r.description.Render(result.Description))
		}
	}
}

func (r renderer) form(w io.Writer, form action.OpenFormAction) {
	r.println(w, r.title.Render(form.Title)+"  "+r.action.Render("["+form.FormID+"]"))
	for _, field := range form.Fields {
		line := fmt.Sprintf("  %s (%s) = %q", field.ID(), field.Kind(), currentValue(field))
		r.println(w, line+"  "+r.description.Render(fieldHint(field)))
	}
	answers := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		answers = append(answers, field.ID()+"=...")
	}
	fmt.Fprintf(w, "answer with: tigris form %s %s %s\n", form.ExtensionID, form.FormID, strings.Join(answers, " "))
}

func (r renderer) failures(w io.Writer, failures []host.FieldFailure) {
	for _, failure := range failures {
		fmt.Fprintln(w, r.danger.Render(fmt.Sprintf("  %s: %s", failure.FieldID, failure.Reason)))
	}
}

func (r renderer) println(w io.Writer, line string) {
	if r.width > 0 {
		line = ansi.Truncate(line, r.width, "…")
	}
	fmt.Fprintln(w, line)
}

func describeAction(a action.ResultAction) string {
	var detail string
	switch payload := a.Payload().(type) {
	case action.CopyTextAction:
		detail = payload.Text
	case action.CopyImageAction:
		detail = payload.ImagePath
	case action.OpenLinkAction:
		detail = payload.Link
	case action.OpenAppAction:
		detail = payload.Path
	case action.OpenFormAction:
		detail = payload.ExtensionID + "/" + payload.FormID
	case action.RunExtensionAction:
		detail = strings.Join(append([]string{payload.ExtensionID, payload.ExtensionAction}, payload.Args...), " ")
	}
	description := string(a.Type())
	if detail != "" {
		description += " " + detail
	}
	if a.RequireConfirmation() {
		description += " (confirm)"
	}
	return description
}

func currentValue(field action.Field) string {
	switch input := field.Input().(type) {
	case action.TextInput:
		return input.Value
	case action.TextAreaInput:
		return input.Value
	case action.SelectInput:
		return input.Value
	case action.SwitchInput:
		return fmt.Sprint(input.Value)
	case action.SliderInput:
		return fmt.Sprint(input.Value)
	case action.FileSystemInput:
		return input.Value
	}
	return ""
}

func fieldHint(field action.Field) string {
	var hints []string
	if field.Title() != "" {
		hints = append(hints, field.Title())
	}
	switch input := field.Input().(type) {
	case action.SelectInput:
		ids := make([]string, len(input.Options))
		for i, option := range input.Options {
			ids[i] = option.ID
		}
		hints = append(hints, "one of "+strings.Join(ids, ", "))
	case action.SliderInput:
		hints = append(hints, fmt.Sprintf("%d..%d step %d", input.Min, input.Max, input.Step))
	}
	if validation := field.Validation(); validation != nil {
		if validation.NotEmpty {
			hints = append(hints, "required")
		}
		if validation.OnlyNumbers {
			hints = append(hints, "digits only")
		}
		if validation.MaxCharacters != nil {
			hints = append(hints, fmt.Sprintf("at most %d characters", *validation.MaxCharacters))
		}
	}
	return strings.Join(hints, "; ")
}
