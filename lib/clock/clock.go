// Copyright 2026 The Tigris Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Clock is a source of wall-clock time.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// Real returns the system clock.
func Real() Clock { return system{} }

type system struct{}

func (system) Now() time.Time                  { return time.Now() }
func (system) Since(t time.Time) time.Duration { return time.Since(t) }

// ManualClock only moves when told to. It is safe for concurrent use.
type ManualClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// Manual returns a ManualClock reading start.
func Manual(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current reading, then moves the clock on by the
// configured step.
func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now
	c.now = c.now.Add(c.step)
	return now
}

// Since reports the time from t to the current reading. It does not
// step the clock.
func (c *ManualClock) Since(t time.Time) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(t)
}

// Advance moves the clock forward by d. Non-positive d is ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

// Set moves the clock to t, which may be in the past.
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

// Step makes every later Now call advance the clock by d afterwards,
// so consecutive readings differ. Zero stops stepping.
func (c *ManualClock) Step(d time.Duration) {
	c.mu.Lock()
	c.step = max(d, 0)
	c.mu.Unlock()
}
