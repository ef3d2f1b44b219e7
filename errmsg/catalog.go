// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package errmsg

import (
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/vterr"
)

// Catalog holds per-locale message forming rules loaded from TOML:
//
//	[locales.en]
//	and = "and"
//	or = "or"
//
//	[locales.sv]
//	and = "och"
//	or = "eller"
//	oxford_comma = false
type Catalog struct {
	Locales map[string]LocaleEntry `toml:"locales"`
}

// LocaleEntry is the forming configuration of one locale.
type LocaleEntry struct {
	And         string `toml:"and"`
	Or          string `toml:"or"`
	OxfordComma bool   `toml:"oxford_comma"`
}

// LoadCatalog reads a TOML locale catalog from path. A missing file is
// a file-not-found error; a file that does not parse is a data-format
// error.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if os.IsNotExist(err) {
			return nil, vterr.Wrap(err, "message catalog not found at '"+path+"'").
				WithCode(errcode.FileNotFound)
		}

		return nil, vterr.Wrap(err, "reading message catalog '"+path+"'").
			WithCode(errcode.UnderlyingCommand)
	}

	return ParseCatalog(data)
}

// ParseCatalog decodes TOML catalog bytes.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := toml.Unmarshal(data, &catalog); err != nil {
		return nil, vterr.Wrap(err, "malformed message catalog").
			WithCode(errcode.DataFormat)
	}

	return &catalog, nil
}

// Tags returns the language tags the catalog defines, skipping entries
// whose key is not a well-formed tag.
func (c *Catalog) Tags() []language.Tag {
	tags := make([]language.Tag, 0, len(c.Locales))

	for key := range c.Locales {
		if tag, err := language.Parse(key); err == nil {
			tags = append(tags, tag)
		}
	}

	return tags
}

// Former returns a Former for the locale best matching the requested
// tag, falling back to English defaults when the catalog has no usable
// match.
func (c *Catalog) Former(requested language.Tag) Former {
	keys := make([]string, 0, len(c.Locales))

	for key := range c.Locales {
		if _, err := language.Parse(key); err == nil {
			keys = append(keys, key)
		}
	}

	if len(keys) == 0 {
		return New().WithLocale(requested)
	}

	// Sorted keys keep the matcher's tie-breaking stable across runs.
	sort.Strings(keys)

	tags := make([]language.Tag, len(keys))
	for i, key := range keys {
		tags[i], _ = language.Parse(key)
	}

	matcher := language.NewMatcher(tags)

	_, index, confidence := matcher.Match(requested)
	if confidence == language.No {
		return New().WithLocale(requested)
	}

	entry := c.Locales[keys[index]]

	return New().
		WithLocale(tags[index]).
		WithConjunctions(entry.And, entry.Or).
		WithOxfordComma(entry.OxfordComma)
}
