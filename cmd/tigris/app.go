// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/config"
	"github.com/tigris-launcher/tigris/lib/host"
	"github.com/tigris-launcher/tigris/lib/settings"
)

// app carries what every command needs. Configuration is loaded on
// first use so that --help works without a valid config.
type app struct {
	ctx        context.Context
	stdout     io.Writer
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func (a *app) config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}
	var (
		cfg *config.Config
		err error
	)
	if a.configPath != "" {
		cfg, err = config.LoadFile(a.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	a.cfg = cfg
	a.logger = cli.NewCommandLogger(cfg.Level())
	return cfg, nil
}

func (a *app) invoker() (*host.Invoker, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	return host.New(host.Config{
		Layout:      cfg.Paths,
		Timeout:     cfg.InvocationTimeout(),
		Compression: cfg.MailboxCompression(),
		Logger:      a.logger,
	}), nil
}

func (a *app) store() (*settings.Store, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	return settings.NewStore(cfg.Paths.SettingsFile(), a.logger), nil
}

// terminalWidth returns the width of stdout when it is a terminal.
func (a *app) terminalWidth() (int, bool) {
	file, ok := a.stdout.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0, true
	}
	return width, true
}

func (a *app) renderer(store *settings.Store) renderer {
	width, _ := a.terminalWidth()
	return newRenderer(store.Load().Theme, width)
}
