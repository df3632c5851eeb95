// © 2025 Platform Engineering Labs Inc.
//
// SPDX-License-Identifier: FSL-1.1-ALv2

package logging

import (
	"log/slog"
	"strings"
	"sync"
)

// TestLogCapture is a thread-safe log writer for test assertions
type TestLogCapture struct {
	mu      sync.RWMutex
	entries []string
}

// CaptureDefault installs a text handler writing into a new capture as the
// default slog logger and returns a func restoring the previous default.
func CaptureDefault(level slog.Level) (*TestLogCapture, func()) {
	previous := slog.Default()
	capture := &TestLogCapture{}
	slog.SetDefault(slog.New(slog.NewTextHandler(capture, &slog.HandlerOptions{Level: level})))

	return capture, func() { slog.SetDefault(previous) }
}

func (c *TestLogCapture) Write(p []byte) (n int, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, string(p))
	return len(p), nil
}

// ContainsAll reports whether a single entry contains every substring
func (c *TestLogCapture) ContainsAll(substrs ...string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, entry := range c.entries {
		found := true
		for _, substr := range substrs {
			if !strings.Contains(entry, substr) {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}

func (c *TestLogCapture) Entries() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entries := make([]string, len(c.entries))
	copy(entries, c.entries)
	return entries
}
