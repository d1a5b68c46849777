// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package sdk

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tigris-launcher/tigris/lib/mailbox"
	"github.com/tigris-launcher/tigris/lib/paths"
	"github.com/tigris-launcher/tigris/lib/pipe"
	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
)

// ErrNoMailbox is returned by mailbox operations when the extension was
// started for a search, which has no mailbox.
var ErrNoMailbox = errors.New("sdk: no mailbox for this invocation")

// Extension is one running invocation of an extension.
type Extension struct {
	id           string
	settingsPath string
	box          *mailbox.Mailbox

	stdin  io.Reader
	stdout io.Writer
	logger *slog.Logger
}

// FromEnvironment describes the current process as started by the
// launcher.
func FromEnvironment() *Extension {
	return New(os.Getenv, os.Stdin, os.Stdout)
}

// New builds an Extension from an environment lookup and the stdio
// streams. Tests use it to drive an extension without a launcher.
// Library logging goes to stderr: stdout is the result channel.
func New(getenv func(string) string, stdin io.Reader, stdout io.Writer) *Extension {
	ext := &Extension{
		id:           getenv(paths.ExtensionIDEnv),
		settingsPath: getenv(paths.SettingsEnv),
		stdin:        stdin,
		stdout:       stdout,
		logger:       slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
	if path := getenv(paths.MailboxEnv); path != "" {
		ext.box = mailbox.New(path)
	}
	return ext
}

// ID returns the id the launcher invoked this extension as.
func (e *Extension) ID() string { return e.id }

// HasMailbox reports whether this invocation uses the mailbox rather
// than stdin and stdout.
func (e *Extension) HasMailbox() bool { return e.box != nil }

// Request reads this invocation's request from the mailbox or from
// stdin, whichever the launcher used.
func (e *Extension) Request() (request.ExtensionRequest, error) {
	if e.HasMailbox() {
		return e.MailboxRequest()
	}
	return e.GetRequest()
}

// GetRequest reads the request from stdin. It blocks until the
// launcher closes stdin.
func (e *Extension) GetRequest() (request.ExtensionRequest, error) {
	return pipe.ReadRequest(e.stdin)
}

// ReturnSearchResults writes results to stdout. Call it once, then
// exit zero.
func (e *Extension) ReturnSearchResults(results []action.SearchResult) error {
	return pipe.WriteResults(e.stdout, results)
}

// MailboxRequest reads the request the launcher left in the mailbox.
func (e *Extension) MailboxRequest() (request.ExtensionRequest, error) {
	if e.box == nil {
		return request.ExtensionRequest{}, ErrNoMailbox
	}
	return e.box.GetExtensionRequest()
}

// ReturnForm asks the launcher to show form. The form's answers come
// back in a later invocation as a FormResults request.
func (e *Extension) ReturnForm(form action.OpenFormAction) error {
	if e.box == nil {
		return ErrNoMailbox
	}
	if form.ExtensionID == "" {
		form.ExtensionID = e.id
	}
	return e.box.WriteForm(form)
}

// ReturnResults answers an action or form submission with results for
// the launcher to show.
func (e *Extension) ReturnResults(results []action.SearchResult) error {
	if e.box == nil {
		return ErrNoMailbox
	}
	return e.box.WriteExtensionResults(results)
}

// Handler answers one request.
type Handler func(ext *Extension, req request.ExtensionRequest) error

// Main reads the request, runs handle and exits: zero on success, one
// with the error on stderr otherwise. It never returns.
func Main(handle Handler) {
	os.Exit(run(FromEnvironment(), handle, os.Stderr))
}

func run(ext *Extension, handle Handler, stderr io.Writer) int {
	req, err := ext.Request()
	if err != nil {
		fmt.Fprintf(stderr, "%s: reading request: %v\n", ext.name(), err)
		return 1
	}
	if err := handle(ext, req); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", ext.name(), err)
		return 1
	}
	return 0
}

func (e *Extension) name() string {
	if e.id == "" {
		return "extension"
	}
	return e.id
}
