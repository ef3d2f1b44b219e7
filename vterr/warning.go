// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package vterr

import (
	"fmt"
	"sync"
)

// Warning is a non-fatal finding surfaced to the user without stopping
// the operation.
type Warning struct {
	Message  string
	Category string
	Fields   map[string]any
}

// String renders the warning with its category when present.
func (w Warning) String() string {
	if w.Category != "" {
		return w.Category + ": " + w.Message
	}

	return w.Message
}

// Collector accumulates warnings across an operation. It is safe for
// concurrent use, and a nil Collector silently drops everything so call
// sites need no guards.
type Collector struct {
	mu       sync.Mutex
	warnings []Warning
}

// Add records a warning.
func (c *Collector) Add(w Warning) {
	if c == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.warnings = append(c.warnings, w)
}

// Addf records a warning from a format string under the given category.
func (c *Collector) Addf(category, format string, args ...any) {
	c.Add(Warning{
		Message:  fmt.Sprintf(format, args...),
		Category: category,
	})
}

// HasWarnings reports whether anything was collected.
func (c *Collector) HasWarnings() bool {
	return c.Len() > 0
}

// Len returns the number of collected warnings.
func (c *Collector) Len() int {
	if c == nil {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.warnings)
}

// Warnings returns a copy of the collected warnings in arrival order.
func (c *Collector) Warnings() []Warning {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Warning, len(c.warnings))
	copy(out, c.warnings)

	return out
}

// Flush renders every collected warning through render and clears the
// collector.
func (c *Collector) Flush(render func(Warning)) {
	if c == nil {
		return
	}

	c.mu.Lock()
	flushed := c.warnings
	c.warnings = nil
	c.mu.Unlock()

	for _, w := range flushed {
		render(w)
	}
}
