// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package pipe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/tigris-launcher/tigris/lib/schema/action"
	"github.com/tigris-launcher/tigris/lib/schema/request"
	"github.com/tigris-launcher/tigris/lib/testutil"
	"github.com/tigris-launcher/tigris/lib/wire"
)

// helperModeEnv selects extension behavior when the test binary is
// re-executed as a fake extension.
const helperModeEnv = "TIGRIS_PIPE_TEST_EXTENSION"

func TestMain(m *testing.M) {
	if mode := os.Getenv(helperModeEnv); mode != "" {
		os.Exit(runFakeExtension(mode))
	}
	os.Exit(m.Run())
}

// runFakeExtension behaves like an extension binary built on this
// package. It must never call into the testing package.
func runFakeExtension(mode string) int {
	switch mode {
	case "words":
		req, err := ReadRequest(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		getResults, ok := req.GetResults()
		if !ok {
			fmt.Fprintf(os.Stderr, "unexpected request %s\n", req.Type())
			return 2
		}
		var results []action.SearchResult
		for _, word := range strings.Fields(getResults.SearchText) {
			results = append(results,
				action.NewSearchResult(word).WithAction(action.NewCopyText(word)))
		}
		if err := WriteResults(os.Stdout, results); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
		return 0

	case "argv":
		// Ignores stdin entirely and answers from argv[1].
		title := "<none>"
		if len(os.Args) > 1 {
			title = os.Args[1]
		}
		if err := WriteResults(os.Stdout, []action.SearchResult{action.NewSearchResult(title)}); err != nil {
			return 2
		}
		return 0

	case "run-action":
		req, err := ReadRequest(os.Stdin)
		if err != nil {
			return 2
		}
		runAction, ok := req.RunAction()
		if !ok {
			return 2
		}
		title := runAction.Action + ":" + strings.Join(runAction.Args, ",") + ":" + fmt.Sprint(len(os.Args))
		if err := WriteResults(os.Stdout, []action.SearchResult{action.NewSearchResult(title)}); err != nil {
			return 2
		}
		return 0

	case "fail":
		WriteResults(os.Stdout, []action.SearchResult{action.NewSearchResult("ignored")})
		fmt.Fprintln(os.Stderr, "weather service unreachable")
		return 3

	case "garbage":
		os.Stdout.WriteString("definitely not cbor")
		return 0

	case "nothing":
		return 0

	case "hang":
		time.Sleep(time.Minute)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q\n", mode)
		return 2
	}
}

func fakeExtension(t *testing.T, mode string) Command {
	t.Helper()
	executable, err := os.Executable()
	if err != nil {
		t.Fatalf("os.Executable: %v", err)
	}
	return Command{
		Path: executable,
		Env:  append(os.Environ(), helperModeEnv+"="+mode),
	}
}

func TestQueryReturnsResults(t *testing.T) {
	results, err := Query(context.Background(), fakeExtension(t, "words"), request.NewGetResults("rust lang"))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for i, want := range []string{"rust", "lang"} {
		if results[i].Title != want {
			t.Errorf("results[%d].Title = %q, want %q", i, results[i].Title, want)
		}
		copyText, ok := results[i].Action.CopyText()
		if !ok || copyText.Text != want {
			t.Errorf("results[%d] action = %+v", i, results[i].Action)
		}
	}
}

func TestQueryPassesSearchTextAsArgument(t *testing.T) {
	results, err := Query(context.Background(), fakeExtension(t, "argv"), request.NewGetResults("weather berlin"))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(results) != 1 || results[0].Title != "weather berlin" {
		t.Errorf("results = %+v, want one titled %q", results, "weather berlin")
	}
}

func TestQueryNonSearchRequestHasNoArgument(t *testing.T) {
	results, err := Query(context.Background(), fakeExtension(t, "run-action"),
		request.NewRunAction("refresh", []string{"a", "b"}))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(results) != 1 || results[0].Title != "refresh:a,b:1" {
		t.Errorf("results = %+v", results)
	}
}

func TestQueryEmptyResults(t *testing.T) {
	results, err := Query(context.Background(), fakeExtension(t, "words"), request.NewGetResults("   "))
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if results == nil || len(results) != 0 {
		t.Errorf("results = %#v, want empty non-nil slice", results)
	}
}

func TestQueryNonZeroExit(t *testing.T) {
	_, err := Query(context.Background(), fakeExtension(t, "fail"), request.NewGetResults("x"))
	var processErr *ProcessError
	if !errors.As(err, &processErr) {
		t.Fatalf("error = %v, want *ProcessError", err)
	}
	if processErr.ExitCode != 3 || processErr.TimedOut {
		t.Errorf("ProcessError = %+v", processErr)
	}
	if processErr.Stderr != "weather service unreachable" {
		t.Errorf("Stderr = %q", processErr.Stderr)
	}
}

func TestQueryGarbageOutput(t *testing.T) {
	_, err := Query(context.Background(), fakeExtension(t, "garbage"), request.NewGetResults("x"))
	if !errors.Is(err, wire.ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestQueryNoOutput(t *testing.T) {
	_, err := Query(context.Background(), fakeExtension(t, "nothing"), request.NewGetResults("x"))
	if !errors.Is(err, wire.ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestQueryTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := Query(ctx, fakeExtension(t, "hang"), request.NewGetResults("x"))
	elapsed := time.Since(start)

	var processErr *ProcessError
	if !errors.As(err, &processErr) {
		t.Fatalf("error = %v, want *ProcessError", err)
	}
	if !processErr.TimedOut {
		t.Errorf("TimedOut = false, want true")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error does not wrap DeadlineExceeded: %v", err)
	}
	if elapsed > 10*time.Second {
		t.Errorf("Query took %v after a 300ms deadline", elapsed)
	}
}

func TestQueryMissingExecutable(t *testing.T) {
	_, err := Query(context.Background(), Command{Path: "/nonexistent/extension"}, request.NewGetResults("x"))
	var processErr *ProcessError
	if !errors.As(err, &processErr) {
		t.Fatalf("error = %v, want *ProcessError", err)
	}
	if processErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", processErr.ExitCode)
	}
}

func TestQueryRejectsZeroRequest(t *testing.T) {
	if _, err := Query(context.Background(), Command{Path: "/bin/true"}, request.ExtensionRequest{}); err == nil {
		t.Error("Query with a zero request succeeded")
	}
}

func TestReadRequestWriteResultsInProcess(t *testing.T) {
	encoded, err := wire.Pipe.Encode(wire.KindRequest, request.NewGetResults("hello"))
	if err != nil {
		t.Fatal(err)
	}
	req, err := ReadRequest(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("ReadRequest: %v", err)
	}
	getResults, ok := req.GetResults()
	if !ok || getResults.SearchText != "hello" {
		t.Errorf("request = %+v", req)
	}

	var output bytes.Buffer
	if err := WriteResults(&output, nil); err != nil {
		t.Fatalf("WriteResults: %v", err)
	}
	var results []action.SearchResult
	if err := wire.Pipe.Decode(output.Bytes(), wire.KindResults, &results); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("results = %+v", results)
	}
}

func TestReadRequestRejectsMailboxFrame(t *testing.T) {
	encoded, err := wire.NewMailboxFormat(wire.CompressionNone, nil).Encode(wire.KindRequest, request.NewGetResults("x"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRequest(bytes.NewReader(encoded)); !errors.Is(err, wire.ErrDecode) {
		t.Errorf("error = %v, want ErrDecode", err)
	}
}

func TestRunReturnsRawStdout(t *testing.T) {
	stdout, err := Run(context.Background(), fakeExtension(t, "garbage"), nil, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(stdout) != "definitely not cbor" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunMissingExecutable(t *testing.T) {
	_, err := Run(context.Background(), Command{Path: t.TempDir() + "/absent"}, nil, nil)
	var processErr *ProcessError
	if !errors.As(err, &processErr) {
		t.Fatalf("error = %v, want *ProcessError", err)
	}
	if processErr.ExitCode != -1 || processErr.TimedOut {
		t.Errorf("ProcessError = %+v, want exit -1 without timeout", processErr)
	}
}

func TestRunCancelledByCaller(t *testing.T) {
	command := fakeExtension(t, "hang")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := Run(ctx, command, nil, nil)
		done <- err
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	err := testutil.RequireReceive(t, done, 10*time.Second, "Run returning after cancel")

	var processErr *ProcessError
	if !errors.As(err, &processErr) {
		t.Fatalf("error = %v, want *ProcessError", err)
	}
	if processErr.TimedOut {
		t.Error("cancellation reported as a timeout")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error does not wrap context.Canceled: %v", err)
	}
}
