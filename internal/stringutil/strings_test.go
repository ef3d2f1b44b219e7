// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package stringutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaastav-tech/vterrs/internal/stringutil"
)

func TestContainsIgnoreCase(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		substr string
		want   bool
	}{
		{"exact match", "permission denied", "permission", true},
		{"mixed case", "Permission Denied", "permission denied", true},
		{"no match", "network failure", "permission", false},
		{"empty substr matches", "anything", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stringutil.ContainsIgnoreCase(tc.text, tc.substr))
		})
	}
}

func TestContainsAny(t *testing.T) {
	patterns := []string{"not found", "no such"}

	assert.True(t, stringutil.ContainsAny("file not found", patterns))
	assert.True(t, stringutil.ContainsAny("no such directory", patterns))
	assert.False(t, stringutil.ContainsAny("permission denied", patterns))
	assert.False(t, stringutil.ContainsAny("anything", nil))
}
