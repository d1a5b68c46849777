// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package host

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/tigris-launcher/tigris/lib/catalog"
	"github.com/tigris-launcher/tigris/lib/clock"
	"github.com/tigris-launcher/tigris/lib/mailbox"
	"github.com/tigris-launcher/tigris/lib/paths"
	"github.com/tigris-launcher/tigris/lib/pipe"
	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
	"github.com/tigris-launcher/tigris/lib/settings"
	"github.com/tigris-launcher/tigris/lib/wire"
)

// DefaultTimeout bounds an invocation when Config.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Config configures an Invoker.
type Config struct {
	Layout paths.Layout

	// Timeout bounds each extension process. Zero means DefaultTimeout.
	Timeout time.Duration

	// Compression is used for mailbox frames the host writes.
	Compression wire.Compression

	// Clock stamps mailbox frames and times invocations. Nil means
	// clock.Real().
	Clock clock.Clock

	// Logger receives one record per invocation. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Invoker runs extensions on behalf of the launcher. It is safe for
// concurrent use: every mailbox invocation gets its own file.
type Invoker struct {
	layout        paths.Layout
	store         *settings.Store
	timeout       time.Duration
	mailboxFormat wire.Format
	clock         clock.Clock
	logger        *slog.Logger

	sequence atomic.Uint64
}

// New returns an Invoker for config.
func New(config Config) *Invoker {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.Clock == nil {
		config.Clock = clock.Real()
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Invoker{
		layout:        config.Layout,
		store:         settings.NewStore(config.Layout.SettingsFile(), config.Logger),
		timeout:       config.Timeout,
		mailboxFormat: wire.NewMailboxFormat(config.Compression, config.Clock),
		clock:         config.Clock,
		logger:        config.Logger,
	}
}

// Settings returns the settings store the invoker reads.
func (i *Invoker) Settings() *settings.Store { return i.store }

// Extensions returns the installed extensions from the catalog.
func (i *Invoker) Extensions() ([]catalog.Entry, error) {
	return catalog.ReadExtensions(i.layout.ExtensionsFile())
}

// Extension returns the installed extension with the given id, or a
// *catalog.NotFoundError.
func (i *Invoker) Extension(extensionID string) (catalog.Entry, error) {
	entries, err := i.Extensions()
	if err != nil {
		return catalog.Entry{}, err
	}
	return catalog.Find(entries, extensionID)
}

// Search asks extensionID for results matching text over the stdio
// pipe.
func (i *Invoker) Search(ctx context.Context, extensionID, text string) ([]action.SearchResult, error) {
	entry, err := i.Extension(extensionID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	start := i.clock.Now()
	results, err := pipe.Query(ctx, i.command(entry, ""), request.NewGetResults(text))
	logger := i.logger.With(
		"extension_id", extensionID,
		"transport", "pipe",
		"duration", i.clock.Since(start),
	)
	if err != nil {
		logger.Warn("extension search failed", "error", err)
		return nil, err
	}
	logger.Debug("extension search", "results", len(results))
	return results, nil
}

// RunAction runs run.ExtensionAction on run.ExtensionID through a
// mailbox and returns what the extension answered.
func (i *Invoker) RunAction(ctx context.Context, run action.RunExtensionAction) (Outcome, error) {
	req := request.NewRunAction(run.ExtensionAction, run.Args)
	return i.exchange(ctx, run.ExtensionID, req)
}

// SubmitForm validates answers against form and, when they pass, sends
// them to the form's extension through a mailbox. Fields the answers
// omit are submitted with the value the form was rendered with.
func (i *Invoker) SubmitForm(ctx context.Context, form action.OpenFormAction, answers []request.FormResult) (Outcome, error) {
	results, err := Complete(form, answers)
	if err != nil {
		return Outcome{}, err
	}
	if err := Validate(form, results); err != nil {
		return Outcome{}, err
	}
	req := request.NewFormResults(form.FormID, results, form.Args)
	return i.exchange(ctx, form.ExtensionID, req)
}

// exchange runs one mailbox round trip: write req, run the extension,
// read back whatever it left. The mailbox file is removed afterwards
// whatever happened.
func (i *Invoker) exchange(ctx context.Context, extensionID string, req request.ExtensionRequest) (Outcome, error) {
	entry, err := i.Extension(extensionID)
	if err != nil {
		return Outcome{}, err
	}
	if err := os.MkdirAll(i.layout.Runtime, 0o700); err != nil {
		return Outcome{}, fmt.Errorf("creating runtime directory: %w", err)
	}

	box := mailbox.New(i.mailboxPath(), mailbox.WithFormat(i.mailboxFormat))
	logger := i.logger.With(
		"extension_id", extensionID,
		"transport", "mailbox",
		"request", req.Type(),
		"mailbox", box.Path(),
	)
	defer func() {
		if err := box.Clear(); err != nil {
			logger.Warn("removing mailbox", "error", err)
		}
	}()

	if err := box.WriteExtensionRequest(req); err != nil {
		return Outcome{}, fmt.Errorf("writing request for %s: %w", extensionID, err)
	}

	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	start := i.clock.Now()
	_, runErr := pipe.Run(ctx, i.command(entry, box.Path()), nil, nil)
	logger = logger.With("duration", i.clock.Since(start))
	if runErr != nil {
		// Whatever the extension wrote before dying is stale.
		logger.Warn("extension action failed", "error", runErr)
		return Outcome{}, runErr
	}

	outcome, err := collect(box)
	if err != nil {
		logger.Warn("reading extension answer", "error", err)
		return Outcome{}, fmt.Errorf("reading answer from %s: %w", extensionID, err)
	}
	// Submitting a form goes to the extension named in it, so one
	// extension must not hand out forms owned by another.
	if form, ok := outcome.Form(); ok && form.ExtensionID != extensionID {
		logger.Warn("extension returned a foreign form", "form_extension_id", form.ExtensionID)
		return Outcome{}, fmt.Errorf("extension %s returned a form owned by %q", extensionID, form.ExtensionID)
	}
	logger.Debug("extension action", "outcome", outcome.Kind())
	return outcome, nil
}

// collect dispatches on what the extension left in the mailbox. The
// request the host wrote still being there means the extension had
// nothing to say.
func collect(box *mailbox.Mailbox) (Outcome, error) {
	header, err := box.Peek()
	if errors.Is(err, mailbox.ErrEmpty) {
		return Outcome{}, nil
	}
	if err != nil {
		return Outcome{}, err
	}
	switch header.Kind {
	case wire.KindRequest:
		return Outcome{}, nil
	case wire.KindForm:
		form, err := box.GetForm()
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{form: &form}, nil
	case wire.KindResults:
		results, err := box.GetExtensionResults()
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{results: results}, nil
	default:
		return Outcome{}, fmt.Errorf("mailbox %s holds unexpected %s", box.Path(), header.Kind)
	}
}

func (i *Invoker) mailboxPath() string {
	return i.layout.MailboxFile(fmt.Sprintf("%d-%d", os.Getpid(), i.sequence.Add(1)))
}

// command builds the process description for entry. mailboxPath is
// empty for pipe invocations.
func (i *Invoker) command(entry catalog.Entry, mailboxPath string) pipe.Command {
	env := append(os.Environ(),
		paths.ExtensionIDEnv+"="+entry.Extension.ID,
		paths.SettingsEnv+"="+i.layout.SettingsFile(),
	)
	if mailboxPath != "" {
		env = append(env, paths.MailboxEnv+"="+mailboxPath)
	}
	return pipe.Command{
		Path: entry.Executable(),
		Dir:  entry.Dir,
		Env:  env,
	}
}
