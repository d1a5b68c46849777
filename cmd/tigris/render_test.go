// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/tigris-launcher/tigris/lib/host"
	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/settings"
)

func TestRendererTruncatesToWidth(t *testing.T) {
	var buffer bytes.Buffer
	render := newRenderer(settings.DefaultTheme(), 20)
	render.results(&buffer, []action.SearchResult{
		action.NewSearchResult(strings.Repeat("long title ", 10)).
			WithDescription("short"),
	})

	lines := strings.Split(strings.TrimSuffix(buffer.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buffer.String())
	}
	for _, line := range lines {
		if width := ansi.StringWidth(line); width > 20 {
			t.Errorf("line %q is %d cells wide", ansi.Strip(line), width)
		}
	}
	if !strings.HasSuffix(ansi.Strip(lines[0]), "…") {
		t.Errorf("cut line %q has no ellipsis", ansi.Strip(lines[0]))
	}
}

func TestRendererForm(t *testing.T) {
	form := action.NewForm("echo", "echo", "Echo", "Send").WithFields(
		action.NewTextField("text", "Text", "", action.NewTextInput("hi").
			WithValidation(action.NewFieldValidation().WithNotEmpty(true).WithMaxCharacters(5))),
		action.NewSelectField("tone", "", "", action.NewSelectInput("warm",
			action.NewSelectOption("warm", "Warm"), action.NewSelectOption("dry", "Dry"))),
		action.NewSliderField("count", "", "", action.NewSliderInput(2, 1, 9, 1)),
	)

	var buffer bytes.Buffer
	newRenderer(settings.DefaultTheme(), 0).form(&buffer, form)
	output := ansi.Strip(buffer.String())
	for _, want := range []string{
		`text (Text) = "hi"`,
		"required; at most 5 characters",
		"one of warm, dry",
		"1..9 step 1",
		"tigris form echo echo text=... tone=... count=...",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("form output missing %q:\n%s", want, output)
		}
	}
}

func TestRendererFailures(t *testing.T) {
	var buffer bytes.Buffer
	newRenderer(settings.DefaultTheme(), 0).failures(&buffer, []host.FieldFailure{
		{FieldID: "name", Reason: "must not be empty"},
	})
	if got := ansi.Strip(buffer.String()); got != "  name: must not be empty\n" {
		t.Errorf("failures = %q", got)
	}
}
