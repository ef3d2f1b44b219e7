// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package errmsg_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/errmsg"
	"github.com/vaastav-tech/vterrs/vterr"
)

const testCatalog = `
[locales.en]
and = "and"
or = "or"

[locales.sv]
and = "och"
or = "eller"

[locales.de]
and = "und"
or = "oder"
oxford_comma = false
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "messages.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadCatalog(t *testing.T) {
	catalog, err := errmsg.LoadCatalog(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	assert.Len(t, catalog.Locales, 3)
	assert.Equal(t, "och", catalog.Locales["sv"].And)
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := errmsg.LoadCatalog(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)

	assert.Equal(t, errcode.FileNotFound, vterr.CodeOf(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadCatalogMalformed(t *testing.T) {
	_, err := errmsg.LoadCatalog(writeCatalog(t, "[locales.en\nand ="))
	require.Error(t, err)

	assert.Equal(t, errcode.DataFormat, vterr.CodeOf(err))
}

func TestCatalogFormer(t *testing.T) {
	catalog, err := errmsg.LoadCatalog(writeCatalog(t, testCatalog))
	require.NoError(t, err)

	tests := []struct {
		name      string
		requested language.Tag
		wantMsg   string
	}{
		{
			name:      "exact match",
			requested: language.Swedish,
			wantMsg:   "x och y are not allowed together.",
		},
		{
			name:      "regional variant matches base language",
			requested: language.MustParse("de-AT"),
			wantMsg:   "x und y are not allowed together.",
		},
		{
			name:      "unknown locale falls back to english defaults",
			requested: language.Japanese,
			wantMsg:   "x and y are not allowed together.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := catalog.Former(tc.requested)
			assert.Equal(t, tc.wantMsg, f.NotAllowedTogether("x", "y"))
		})
	}
}

// TestCatalogFormerPrefersExactRegionalEntry: with both a base language
// and a regional variant defined, the regional request resolves to the
// regional entry and the base request to the base entry, every time.
func TestCatalogFormerPrefersExactRegionalEntry(t *testing.T) {
	const regionalCatalog = `
[locales.en]
and = "and"
or = "or"

[locales.en-GB]
and = "as well as"
or = "or"
oxford_comma = false
`

	catalog, err := errmsg.ParseCatalog([]byte(regionalCatalog))
	require.NoError(t, err)

	tests := []struct {
		name      string
		requested language.Tag
		wantMsg   string
	}{
		{
			name:      "regional variant gets the regional entry",
			requested: language.MustParse("en-GB"),
			wantMsg:   "x as well as y are not allowed together.",
		},
		{
			name:      "base language gets the base entry",
			requested: language.English,
			wantMsg:   "x and y are not allowed together.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			for range 10 {
				f := catalog.Former(tc.requested)
				require.Equal(t, tc.wantMsg, f.NotAllowedTogether("x", "y"))
			}
		})
	}
}

func TestCatalogEmptyFallsBack(t *testing.T) {
	catalog, err := errmsg.ParseCatalog([]byte(""))
	require.NoError(t, err)

	f := catalog.Former(language.Swedish)
	assert.Equal(t, "Both a and b are required.", f.AllRequired("a", "b"))
}
