// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerJSONWhenRedirected(t *testing.T) {
	var output bytes.Buffer
	logger := newLogger(&output, false, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("invoked", "extension_id", "calc")

	lines := strings.Split(strings.TrimSpace(output.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (debug filtered): %q", len(lines), output.String())
	}
	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if record["extension_id"] != "calc" {
		t.Errorf("extension_id = %v, want calc", record["extension_id"])
	}
}

func TestLoggerTextOnTerminal(t *testing.T) {
	var output bytes.Buffer
	newLogger(&output, true, slog.LevelDebug).Debug("spawn", "mailbox", "/tmp/m")
	if !strings.Contains(output.String(), "mailbox=/tmp/m") {
		t.Errorf("output = %q, want text handler key=value", output.String())
	}
}
