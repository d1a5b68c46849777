// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock is the time source for mailbox frame timestamps and
// extension invocation timing. Production code uses Real; tests use a
// ManualClock so that timestamps written into mailbox frames are exact.
package clock
