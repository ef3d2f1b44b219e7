// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package vterr_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaastav-tech/vterrs/vterr"
)

func TestWarningString(t *testing.T) {
	assert.Equal(t, "config: key deprecated", vterr.Warning{Message: "key deprecated", Category: "config"}.String())
	assert.Equal(t, "key deprecated", vterr.Warning{Message: "key deprecated"}.String())
}

func TestCollectorAccumulates(t *testing.T) {
	var c vterr.Collector

	assert.False(t, c.HasWarnings())

	c.Addf("config", "unknown key %q ignored", "colour")
	c.Add(vterr.Warning{Message: "catalog missing locale", Category: "errmsg"})

	require.Equal(t, 2, c.Len())
	assert.True(t, c.HasWarnings())

	warnings := c.Warnings()
	assert.Equal(t, `unknown key "colour" ignored`, warnings[0].Message)
	assert.Equal(t, "errmsg", warnings[1].Category)

	// Warnings returns a copy; mutating it does not affect the collector.
	warnings[0].Message = "mutated"
	assert.Equal(t, `unknown key "colour" ignored`, c.Warnings()[0].Message)
}

func TestCollectorFlush(t *testing.T) {
	var c vterr.Collector

	c.Addf("a", "first")
	c.Addf("b", "second")

	var rendered []string

	c.Flush(func(w vterr.Warning) {
		rendered = append(rendered, w.String())
	})

	assert.Equal(t, []string{"a: first", "b: second"}, rendered)
	assert.False(t, c.HasWarnings())
}

// TestNilCollectorIsNoOp verifies call sites never need nil guards.
func TestNilCollectorIsNoOp(t *testing.T) {
	var c *vterr.Collector

	c.Add(vterr.Warning{Message: "dropped"})
	c.Addf("cat", "dropped %d", 1)
	c.Flush(func(vterr.Warning) { t.Fatal("nothing to flush") })

	assert.False(t, c.HasWarnings())
	assert.Zero(t, c.Len())
	assert.Nil(t, c.Warnings())
}

func TestCollectorConcurrentAdds(t *testing.T) {
	var (
		c  vterr.Collector
		wg sync.WaitGroup
	)

	const workers = 16

	for i := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()
			c.Addf("worker", "warning from %d", i)
		}()
	}

	wg.Wait()

	assert.Equal(t, workers, c.Len())
}
