// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/tigris-launcher/tigris/lib/process"
	"github.com/tigris-launcher/tigris/lib/version"
)

func main() {
	process.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{ctx: ctx, stdout: stdout}

	flagSet := pflag.NewFlagSet("tigris", pflag.ContinueOnError)
	flagSet.SetInterspersed(false)
	flagSet.StringVar(&a.configPath, "config", "", "configuration file (default $TIGRIS_CONFIG)")
	flagSet.StringVar(&a.logLevel, "log-level", "", "override the configured log level")
	showVersion := flagSet.Bool("version", false, "print version information")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if *showVersion {
		fmt.Fprintf(stdout, "tigris %s\n", version.Full())
		return nil
	}

	return root(a).Execute(flagSet.Args())
}
