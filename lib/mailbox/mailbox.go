// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package mailbox implements the single-slot file channel used for
// action and form round-trips between the host and an extension.
//
// A mailbox is one file. Every write replaces the whole file
// atomically, so a reader sees either the previous message or the new
// one, never a mixture. There is no queue: a write discards whatever
// was there. There is no locking either. Callers guarantee that only
// one invocation uses a mailbox path at a time, typically by giving
// every in-flight invocation its own path.
//
// Each message records its kind, so reading a form where a request is
// expected fails with a wire.DecodeError rather than producing a
// half-populated value. Any read or write failure ends the current
// invocation; the mailbox never retries.
package mailbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tigris-launcher/tigris/lib/atomicfile"
	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
	"github.com/tigris-launcher/tigris/lib/wire"
)

// FileMode is the permission of mailbox files. Mailboxes can carry
// form answers, so only the owner may read them.
const FileMode fs.FileMode = 0o600

// ErrEmpty is returned by reads and Peek when the mailbox file does
// not exist.
var ErrEmpty = errors.New("mailbox is empty")

// Mailbox is a single-slot message channel backed by the file at its
// path.
type Mailbox struct {
	path   string
	format wire.Format
}

// Option configures a Mailbox.
type Option func(*Mailbox)

// WithFormat selects the wire format. The default is an LZ4-compressed
// wire.MailboxFormat on the real clock.
func WithFormat(format wire.Format) Option {
	return func(m *Mailbox) { m.format = format }
}

// New returns a mailbox at path. The file is not touched until the
// first write.
func New(path string, options ...Option) *Mailbox {
	m := &Mailbox{
		path:   path,
		format: wire.NewMailboxFormat(wire.CompressionLZ4, nil),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Path returns the mailbox file path.
func (m *Mailbox) Path() string { return m.path }

// WriteExtensionRequest replaces the mailbox contents with req.
func (m *Mailbox) WriteExtensionRequest(req request.ExtensionRequest) error {
	return m.write(wire.KindRequest, req)
}

// GetExtensionRequest reads the request the host left in the mailbox.
func (m *Mailbox) GetExtensionRequest() (request.ExtensionRequest, error) {
	var req request.ExtensionRequest
	if err := m.read(wire.KindRequest, &req); err != nil {
		return request.ExtensionRequest{}, err
	}
	return req, nil
}

// WriteForm replaces the mailbox contents with a form for the host to
// render. The form is validated first so an extension cannot hand the
// host a form it could never answer.
func (m *Mailbox) WriteForm(form action.OpenFormAction) error {
	if err := form.Validate(); err != nil {
		return fmt.Errorf("mailbox %s: %w", m.path, err)
	}
	return m.write(wire.KindForm, form)
}

// GetForm reads a form from the mailbox.
func (m *Mailbox) GetForm() (action.OpenFormAction, error) {
	var form action.OpenFormAction
	if err := m.read(wire.KindForm, &form); err != nil {
		return action.OpenFormAction{}, err
	}
	if err := form.Validate(); err != nil {
		return action.OpenFormAction{}, fmt.Errorf("mailbox %s: %w", m.path, err)
	}
	return form, nil
}

// WriteExtensionResults replaces the mailbox contents with results.
// A nil slice is written as an empty list.
func (m *Mailbox) WriteExtensionResults(results []action.SearchResult) error {
	if results == nil {
		results = []action.SearchResult{}
	}
	return m.write(wire.KindResults, results)
}

// GetExtensionResults reads the results an extension left in the
// mailbox. Never returns a nil slice on success.
func (m *Mailbox) GetExtensionResults() ([]action.SearchResult, error) {
	var results []action.SearchResult
	if err := m.read(wire.KindResults, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []action.SearchResult{}
	}
	return results, nil
}

// Peek reports which kind of message the mailbox currently holds
// without decoding it.
func (m *Mailbox) Peek() (wire.Header, error) {
	data, err := m.readFile()
	if err != nil {
		return wire.Header{}, err
	}
	header, err := m.format.Peek(data)
	if err != nil {
		return wire.Header{}, fmt.Errorf("mailbox %s: %w", m.path, err)
	}
	return header, nil
}

// Clear removes the mailbox file. Clearing an empty mailbox succeeds.
func (m *Mailbox) Clear() error {
	return atomicfile.Remove(m.path)
}

func (m *Mailbox) write(kind wire.Kind, v any) error {
	data, err := m.format.Encode(kind, v)
	if err != nil {
		return fmt.Errorf("mailbox %s: %w", m.path, err)
	}
	if err := atomicfile.WriteFile(m.path, data, FileMode); err != nil {
		return fmt.Errorf("mailbox %s: %w", m.path, err)
	}
	return nil
}

// read loads the whole file before decoding; there are no partial
// reads.
func (m *Mailbox) read(kind wire.Kind, v any) error {
	data, err := m.readFile()
	if err != nil {
		return err
	}
	if err := m.format.Decode(data, kind, v); err != nil {
		return fmt.Errorf("mailbox %s: %w", m.path, err)
	}
	return nil
}

func (m *Mailbox) readFile() ([]byte, error) {
	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("mailbox %s: %w", m.path, ErrEmpty)
	}
	if err != nil {
		return nil, fmt.Errorf("mailbox %s: %w", m.path, err)
	}
	return data, nil
}
