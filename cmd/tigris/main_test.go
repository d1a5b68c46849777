// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tigris-launcher/tigris/lib/catalog"
	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/mailbox"
	"github.com/tigris-launcher/tigris/lib/paths"
	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
	"github.com/tigris-launcher/tigris/lib/sdk"
	"github.com/tigris-launcher/tigris/lib/testutil"
)

const helperEnv = "TIGRIS_CLI_TEST_EXTENSION"

func TestMain(m *testing.M) {
	if os.Getenv(helperEnv) != "" && os.Getenv(paths.ExtensionIDEnv) != "" {
		sdk.Main(greeter)
	}
	os.Exit(m.Run())
}

// greeter echoes search words, offers a one-field form and greets
// whoever fills it in.
func greeter(ext *sdk.Extension, req request.ExtensionRequest) error {
	if getResults, ok := req.GetResults(); ok {
		var results []action.SearchResult
		for _, word := range strings.Fields(getResults.SearchText) {
			results = append(results, action.NewSearchResult(word))
		}
		return ext.ReturnSearchResults(results)
	}
	if runAction, ok := req.RunAction(); ok {
		if runAction.Action != "greet" {
			return nil
		}
		return ext.ReturnForm(action.NewForm("", "greeting", "Greeting", "Send").WithField(
			action.NewTextField("name", "Name", "", action.NewTextInput("").WithValidation(
				action.NewFieldValidation().WithNotEmpty(true)))))
	}
	formResults, _ := req.FormResults()
	name, err := formResults.Text("name")
	if err != nil {
		return err
	}
	return ext.ReturnResults([]action.SearchResult{
		action.NewSearchResult("hello " + name).WithAction(action.NewCopyText(name)),
	})
}

const greeterManifest = `{
	// JSONC: comments and trailing commas are allowed.
	"id": "greeter",
	"name": "Greeter",
	"description": "Says hello",
	"settings": [
		{"id": "loud", "name": "Loud", "description": "", "value": "false", "setting_type": "Switch"},
	],
}`

type harness struct {
	t        *testing.T
	config   string
	manifest string
	root     string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv(helperEnv, "1")
	root := t.TempDir()
	config := filepath.Join(root, "tigris.yaml")
	testutil.WriteFile(t, config, `
paths:
  data: `+filepath.Join(root, "data")+`
  config: `+filepath.Join(root, "config")+`
  cache: `+filepath.Join(root, "cache")+`
  runtime: `+filepath.Join(root, "run")+`
invocation:
  timeout: 10s
  mailbox_compression: zstd
log_level: error
`)
	manifest := testutil.WriteManifest(t, filepath.Join(root, "extensions"), "greeter", greeterManifest)
	testutil.LinkExtension(t, filepath.Dir(manifest), catalog.ExecutableName)
	return &harness{t: t, config: config, manifest: manifest, root: root}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	var stdout bytes.Buffer
	err := run(append([]string{"--config", h.config}, args...), &stdout)
	return stdout.String(), err
}

func (h *harness) mustRun(args ...string) string {
	h.t.Helper()
	output, err := h.run(args...)
	if err != nil {
		h.t.Fatalf("tigris %s: %v\n%s", strings.Join(args, " "), err, output)
	}
	return output
}

func TestIndexSeedsSettings(t *testing.T) {
	h := newHarness(t)

	output := h.mustRun("index", "--manifest", h.manifest)
	if !strings.Contains(output, "indexed 1 extensions, added 2 setting values") {
		t.Errorf("index output = %q", output)
	}
	if got := strings.TrimSpace(h.mustRun("settings", "get", "greeter", "loud")); got != "false" {
		t.Errorf("loud = %q, want manifest default", got)
	}

	// A second pass adds nothing and keeps edits.
	h.mustRun("settings", "set", "greeter", "loud", "true")
	output = h.mustRun("index", "--manifest", h.manifest)
	if !strings.Contains(output, "added 0 setting values") {
		t.Errorf("second index output = %q", output)
	}
	if got := strings.TrimSpace(h.mustRun("settings", "get", "greeter", "loud")); got != "true" {
		t.Errorf("loud = %q after reindex, want the edited value", got)
	}
}

func TestIndexRequiresManifest(t *testing.T) {
	h := newHarness(t)
	if _, err := h.run("index"); err == nil {
		t.Fatal("index without --manifest succeeded")
	}
}

func TestReadEntriesRejectsDuplicateIDs(t *testing.T) {
	h := newHarness(t)
	other := testutil.WriteManifest(t, filepath.Join(h.root, "copy"), "greeter", greeterManifest)

	_, err := readEntries([]string{h.manifest, other})
	if err == nil || !strings.Contains(err.Error(), `"greeter" is declared by both`) {
		t.Fatalf("readEntries error = %v", err)
	}
}

func TestSettingsSetChecksManifest(t *testing.T) {
	h := newHarness(t)
	h.mustRun("index", "--manifest", h.manifest)

	if _, err := h.run("settings", "set", "greeter", "loud", "very"); err == nil {
		t.Error("switch accepted a non-boolean value")
	}
	if _, err := h.run("settings", "set", "greeter", "volume", "3"); err == nil {
		t.Error("undeclared setting accepted")
	}
	if _, err := h.run("settings", "set", "missing", "keyword", "m"); err == nil {
		t.Error("setting stored for an extension that is not installed")
	}

	h.mustRun("settings", "set", "greeter", "keyword", "hi")
	if output := h.mustRun("settings", "show"); !strings.Contains(output, "value: hi") {
		t.Errorf("settings show does not include the keyword:\n%s", output)
	}
}

func TestQueryWithoutResultsExitsOne(t *testing.T) {
	h := newHarness(t)
	h.mustRun("index", "--manifest", h.manifest)

	output, err := h.run("query")
	var exit *cli.ExitError
	if !errors.As(err, &exit) || exit.Code != 1 {
		t.Fatalf("query error = %v, want exit code 1", err)
	}
	if !strings.Contains(output, "no results") {
		t.Errorf("output = %q", output)
	}
}

func TestQueryRoutesKeywordToExtension(t *testing.T) {
	h := newHarness(t)
	h.mustRun("index", "--manifest", h.manifest)
	h.mustRun("settings", "set", "greeter", "keyword", "g")

	output := h.mustRun("query", "g", "open", "sesame")
	if !strings.Contains(output, "open") || !strings.Contains(output, "sesame") {
		t.Errorf("query output = %q", output)
	}
}

func TestActionFormRoundTrip(t *testing.T) {
	h := newHarness(t)
	h.mustRun("index", "--manifest", h.manifest)

	output := h.mustRun("action", "greeter", "greet")
	if !strings.Contains(output, "tigris form greeter greeting name=...") {
		t.Errorf("action output = %q", output)
	}
	if output := h.mustRun("form", "--show", "greeter", "greeting"); !strings.Contains(output, "Greeting") {
		t.Errorf("form --show output = %q", output)
	}

	output, err := h.run("form", "greeter", "greeting", "name=")
	var exit *cli.ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("empty name error = %v, want validation exit", err)
	}
	if !strings.Contains(output, "name:") {
		t.Errorf("validation output = %q", output)
	}

	output = h.mustRun("form", "greeter", "greeting", "name=Ada")
	if !strings.Contains(output, "hello Ada") {
		t.Errorf("form output = %q", output)
	}
	if _, err := h.run("form", "greeter", "greeting", "name=Ada"); err == nil {
		t.Error("answered form could be submitted twice")
	}

	if output := h.mustRun("action", "greeter", "nothing"); !strings.Contains(output, "no answer") {
		t.Errorf("silent action output = %q", output)
	}
}

func TestParseAnswers(t *testing.T) {
	answers, err := parseAnswers([]string{"name=Ada", "empty=", "expr=a=b"})
	if err != nil {
		t.Fatalf("parseAnswers: %v", err)
	}
	want := []request.FormResult{
		{ID: "name", Value: "Ada"},
		{ID: "empty", Value: ""},
		{ID: "expr", Value: "a=b"},
	}
	for i, answer := range answers {
		if answer.ID != want[i].ID || answer.Value != want[i].Value {
			t.Errorf("answer %d = %+v, want %+v", i, answer, want[i])
		}
	}
	if _, err := parseAnswers([]string{"novalue"}); err == nil {
		t.Error("answer without = accepted")
	}
	if _, err := parseAnswers([]string{"=x"}); err == nil {
		t.Error("answer without field accepted")
	}
}

func TestMailboxShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mailbox")
	if err := mailbox.New(path).WriteExtensionRequest(request.NewRunAction("greet", []string{"a"})); err != nil {
		t.Fatalf("WriteExtensionRequest: %v", err)
	}

	var stdout bytes.Buffer
	a := &app{ctx: context.Background(), stdout: &stdout}
	if err := mailboxCommand(a).Execute([]string{"show", path}); err != nil {
		t.Fatalf("mailbox show: %v", err)
	}
	output := stdout.String()
	for _, want := range []string{"version:", "kind:", "greet"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestDescribeAction(t *testing.T) {
	run := action.NewRunExtension(action.NewRunExtensionAction("calc", "copy").WithArg("42"))
	if got := describeAction(run.WithRequireConfirmation(true)); !strings.Contains(got, "calc copy 42 (confirm)") {
		t.Errorf("describeAction = %q", got)
	}
	if got := describeAction(action.NewOpenSettings()); got != string(action.ActionOpenSettings) {
		t.Errorf("describeAction(OpenSettings) = %q", got)
	}
}
