// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package pipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
	"github.com/tigris-launcher/tigris/lib/wire"
)

// waitDelay bounds how long Query waits for stdout to drain after the
// process group has been killed.
const waitDelay = 2 * time.Second

// stderrLimit caps the stderr kept for a ProcessError.
const stderrLimit = 4096

// Command describes how to start an extension.
type Command struct {
	// Path is the extension executable.
	Path string

	// Dir is the working directory. Empty means the host's.
	Dir string

	// Env is the full environment. Nil means the host's.
	Env []string
}

// ProcessError reports an extension that did not exit cleanly. Its
// stdout is never parsed.
type ProcessError struct {
	Executable string

	// ExitCode is the process exit status, or -1 when the process
	// could not be started or was killed.
	ExitCode int

	// Stderr is the tail of what the extension wrote to stderr.
	Stderr string

	// TimedOut is set when the context deadline killed the process.
	TimedOut bool

	Err error
}

func (e *ProcessError) Error() string {
	switch {
	case e.TimedOut:
		return fmt.Sprintf("extension %s timed out", e.Executable)
	case e.ExitCode >= 0:
		message := fmt.Sprintf("extension %s exited with status %d", e.Executable, e.ExitCode)
		if e.Stderr != "" {
			message += ": " + e.Stderr
		}
		return message
	default:
		return fmt.Sprintf("extension %s: %v", e.Executable, e.Err)
	}
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Query runs one stdio exchange. It blocks until the extension exits
// or ctx is done. When ctx is done the extension's whole process group
// is killed with SIGKILL.
//
// For GetResults requests the search text is also passed as argv[1],
// so extensions that only need the text do not have to decode stdin.
func Query(ctx context.Context, command Command, req request.ExtensionRequest) ([]action.SearchResult, error) {
	input, err := wire.Pipe.Encode(wire.KindRequest, req)
	if err != nil {
		return nil, fmt.Errorf("encoding request for %s: %w", command.Path, err)
	}

	var args []string
	if getResults, ok := req.GetResults(); ok {
		args = append(args, getResults.SearchText)
	}

	stdout, err := Run(ctx, command, args, input)
	if err != nil {
		return nil, err
	}

	var results []action.SearchResult
	if err := wire.Pipe.Decode(stdout, wire.KindResults, &results); err != nil {
		return nil, fmt.Errorf("reading results from %s: %w", command.Path, err)
	}
	if results == nil {
		results = []action.SearchResult{}
	}
	return results, nil
}

// Run starts command with args, feeds it stdin (nil means an empty
// stdin) and waits for it to exit. It returns stdout only when the
// process exited zero; every other outcome is a *ProcessError. The
// process gets its own group so a cancelled ctx also kills anything it
// spawned that still holds stdout open.
//
// The mailbox transport uses Run directly: the extension's answer is
// in the mailbox file, and stdout is ignored.
func Run(ctx context.Context, command Command, args []string, stdin []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command.Path, args...)
	cmd.Dir = command.Dir
	cmd.Env = command.Env
	cmd.Stdin = bytes.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
	cmd.WaitDelay = waitDelay

	runErr := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, &ProcessError{
			Executable: command.Path,
			ExitCode:   -1,
			Stderr:     tail(stderr.Bytes()),
			TimedOut:   errors.Is(ctxErr, context.DeadlineExceeded),
			Err:        ctxErr,
		}
	}
	if runErr != nil {
		processErr := &ProcessError{
			Executable: command.Path,
			ExitCode:   -1,
			Stderr:     tail(stderr.Bytes()),
			Err:        runErr,
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			processErr.ExitCode = exitErr.ExitCode()
		}
		return nil, processErr
	}
	return stdout.Bytes(), nil
}

func tail(stderr []byte) string {
	stderr = bytes.TrimSpace(stderr)
	if len(stderr) > stderrLimit {
		stderr = stderr[len(stderr)-stderrLimit:]
	}
	return string(stderr)
}
