// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Fatal writes "error: err" to stderr and exits with code 1. Use it in
// main() for errors from run() where the logger may not be initialized.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// Exit terminates the process according to err. A nil error exits 0.
// An error carrying an ExitCode method exits with that code silently;
// any other error is reported like [Fatal].
func Exit(err error) {
	os.Exit(report(os.Stderr, err))
}

// report writes the diagnostic for err (if any) and returns the exit code.
func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	fmt.Fprintf(w, "error: %v\n", err)
	return 1
}
