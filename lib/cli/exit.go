// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ExitError asks main to exit with Code without printing anything
// further. The command has already written its own output; for
// example "tigris query" exits 1 when no result matched.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode implements the interface process.Exit looks for.
func (e *ExitError) ExitCode() int {
	return e.Code
}
