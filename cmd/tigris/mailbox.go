// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/tigris-launcher/tigris/lib/cli"
	"github.com/tigris-launcher/tigris/lib/codec"
	"github.com/tigris-launcher/tigris/lib/wire"
)

func mailboxCommand(a *app) *cli.Command {
	return &cli.Command{
		Name:    "mailbox",
		Summary: "Inspect mailbox files",
		Subcommands: []*cli.Command{
			{
				Name:    "show",
				Summary: "Print a mailbox frame header and its payload in CBOR diagnostic notation",
				Usage:   "tigris mailbox show PATH",
				Run: func(args []string) error {
					if len(args) != 1 {
						return errors.New("usage: tigris mailbox show PATH")
					}
					data, err := os.ReadFile(args[0])
					if err != nil {
						return err
					}
					return showMailbox(a, data)
				},
			},
		},
	}
}

func showMailbox(a *app, data []byte) error {
	format := &wire.MailboxFormat{}
	header, err := format.Peek(data)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "version:     %d\n", header.Version)
	fmt.Fprintf(a.stdout, "kind:        %s\n", header.Kind)
	fmt.Fprintf(a.stdout, "compression: %s\n", header.Compression)
	fmt.Fprintf(a.stdout, "written:     %s\n", header.WrittenAt.Format(time.RFC3339))
	fmt.Fprintf(a.stdout, "length:      %d\n", header.Length)

	var payload codec.RawMessage
	if err := format.Decode(data, header.Kind, &payload); err != nil {
		return err
	}
	diagnostic, err := codec.Diagnose(payload)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, diagnostic)
	return nil
}
