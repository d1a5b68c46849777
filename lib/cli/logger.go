// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// NewCommandLogger creates the logger for a command run at the given
// level. Stderr on a terminal gets slog.TextHandler; anything else
// (scripts, the launcher UI capturing output) gets slog.JSONHandler.
//
// Scope it with command context:
//
//	logger := cli.NewCommandLogger(cfg.Level()).With("command", "action", "extension_id", id)
func NewCommandLogger(level slog.Level) *slog.Logger {
	return newLogger(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), level)
}

func newLogger(w io.Writer, terminal bool, level slog.Level) *slog.Logger {
	options := &slog.HandlerOptions{Level: level}
	if terminal {
		return slog.New(slog.NewTextHandler(w, options))
	}
	return slog.New(slog.NewJSONHandler(w, options))
}
