// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package errmsg builds structured, reusable validation error messages.
//
// A Former is a small value type configured with locale-style options:
// Oxford comma usage, conjunction word overrides, and per-message
// prefix/suffix. Formers are immutable; every With* method returns a
// modified copy, so a package-level default can be shared freely:
//
//	errmsg.New().NotAllowedTogether("a", "b")
//	// "a and b are not allowed together."
//
//	errmsg.New().WithOxfordComma(true).AllRequired("a", "b", "c")
//	// "All a, b, and c are required."
package errmsg

import (
	"strings"

	"golang.org/x/text/language"
)

// Former generates validation error messages for argument and option
// combinations. The zero value is not ready for use; construct with New
// or Catalog.Former.
type Former struct {
	locale      language.Tag
	oxfordComma bool
	and         string
	or          string
	prefix      string
	suffix      string
}

// New returns a Former with English defaults and no Oxford comma.
func New() Former {
	return Former{
		locale: language.English,
		and:    "and",
		or:     "or",
	}
}

// Locale returns the locale the former was built for.
func (f Former) Locale() language.Tag {
	return f.locale
}

// WithLocale returns a copy tagged with the given locale. The tag is
// informational; conjunction words come from WithConjunctions or a
// catalog.
func (f Former) WithLocale(tag language.Tag) Former {
	f.locale = tag

	return f
}

// WithOxfordComma returns a copy that places a comma before the final
// conjunction in lists of three or more.
func (f Former) WithOxfordComma(use bool) Former {
	f.oxfordComma = use

	return f
}

// WithConjunctions returns a copy using the given words for "and" and
// "or". Empty strings keep the current words.
func (f Former) WithConjunctions(and, or string) Former {
	if and != "" {
		f.and = and
	}

	if or != "" {
		f.or = or
	}

	return f
}

// WithPrefix returns a copy that prepends prefix to every message.
func (f Former) WithPrefix(prefix string) Former {
	f.prefix = prefix

	return f
}

// WithSuffix returns a copy that replaces the default sentence ending
// of every message.
func (f Former) WithSuffix(suffix string) Former {
	f.suffix = suffix

	return f
}

// join combines items using the configured conjunction and comma rules:
// two items read "x CONJ y", longer lists are comma-joined with the
// conjunction before the last item.
func (f Former) join(items []string, conjunction, surround string) string {
	if surround != "" {
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = surround + item + surround
		}

		items = quoted
	}

	switch {
	case len(items) == 0:
		return ""
	case len(items) == 1:
		return items[0]
	case len(items) == 2:
		return items[0] + " " + conjunction + " " + items[1]
	default:
		comma := ""
		if f.oxfordComma {
			comma = ","
		}

		return strings.Join(items[:len(items)-1], ", ") + comma + " " + conjunction + " " + items[len(items)-1]
	}
}

// ending returns the suffix override when set, the fallback otherwise.
func (f Former) ending(fallback string) string {
	if f.suffix != "" {
		return f.suffix
	}

	return fallback
}

// NotAllowedTogether builds a message for arguments that must not be
// supplied together.
//
//	NotAllowedTogether("a", "b")      // "a and b are not allowed together."
//	NotAllowedTogether("a", "b", "c") // "a, b and c are not allowed together."
func (f Former) NotAllowedTogether(first, second string, more ...string) string {
	all := append([]string{first, second}, more...)

	return f.prefix + f.join(all, f.and, "") + f.ending(" are not allowed together.")
}

// AtLeastOneRequired builds a message stating that at least one of the
// arguments must be supplied.
//
//	AtLeastOneRequired("a", "b") // "Either a or b is required."
func (f Former) AtLeastOneRequired(first, second string, more ...string) string {
	all := append([]string{first, second}, more...)

	return f.prefix + "Either " + f.join(all, f.or, "") + f.ending(" is required.")
}

// AllRequired builds a message stating that all arguments must be
// supplied. Two items read "Both", three or more read "All".
//
//	AllRequired("a", "b")      // "Both a and b are required."
//	AllRequired("a", "b", "c") // "All a, b and c are required."
func (f Former) AllRequired(first, second string, more ...string) string {
	all := append([]string{first, second}, more...)

	keyword := "All"
	if len(all) == 2 {
		keyword = "Both"
	}

	return f.prefix + keyword + " " + f.join(all, f.and, "") + f.ending(" are required.")
}

// ForChoices builds a message for an unexpected value, optionally
// naming what the value was for and which values are accepted.
//
//	ForChoices("color", "red", "green")
//	// "Unexpected color value. Choose from 'red' and 'green'."
func (f Former) ForChoices(emphasis string, choices ...string) string {
	msg := "Unexpected value."
	if emphasis != "" {
		msg = "Unexpected " + emphasis + " value."
	}

	if len(choices) > 0 {
		msg += " Choose from " + f.join(choices, f.and, "'") + "."
	}

	return f.prefix + msg
}
