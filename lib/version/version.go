// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"runtime"

	"github.com/tigris-launcher/tigris/lib/wire"
)

// Set via -ldflags, e.g.
//
//	go build -ldflags "-X github.com/tigris-launcher/tigris/lib/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	GitCommit = "unknown"
	GitDirty  = "false"
	BuildTime = "unknown"
	Version   = "0.1.0-dev"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	dirty := ""
	if GitDirty == "true" {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", Version, GitCommit, dirty, BuildTime)
}

// Full returns Info plus toolchain, platform and wire protocol versions.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s\n  Protocols: %s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH, Protocols())
}

// Protocols describes the wire formats this build reads and writes.
func Protocols() string {
	return fmt.Sprintf("%s/v%d %s/v%d",
		wire.Pipe.Name(), wire.Pipe.Version(),
		(&wire.MailboxFormat{}).Name(), wire.MailboxVersion)
}
