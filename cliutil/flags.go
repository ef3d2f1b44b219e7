// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package cliutil provides reusable flag and argument validators for
// urfave/cli based tools.
//
// Validators are plain func(string) error so they can be unit tested
// and composed; Action adapts any of them to a urfave/cli/v3 string
// flag Action. All failures are invalid-usage coded vterr errors, so a
// tool's exit path maps them without special cases.
package cliutil

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/pathcheck"
	"github.com/vaastav-tech/vterrs/vterr"
)

// Validator checks one string flag or argument value.
type Validator func(value string) error

// Action adapts a Validator to a urfave/cli/v3 string flag Action.
func Action(validate Validator) func(context.Context, *cli.Command, string) error {
	return func(_ context.Context, _ *cli.Command, value string) error {
		return validate(value)
	}
}

// NotDash rejects '-' as a filename. Tools that persist their input
// cannot accept the stdin/stdout convention.
func NotDash(value string) error {
	if value == "-" {
		return vterr.New(errcode.InvalidUsage, "file must not be '-'")
	}

	return nil
}

// ExplainInput returns help text for flags validated with NotDash on
// input files.
func ExplainInput(filename string) string {
	return "Only readable files are accepted. Since '-' as a filename opens <stdin> and the " +
		filename + " is stored for later use, '-' is not accepted. Directories are not accepted either."
}

// ExplainOutput returns help text for flags validated with NotDash on
// output files.
func ExplainOutput(filename string) string {
	return "Only writable files are accepted. Since '-' as a filename opens <stdout> and the " +
		filename + " is stored for later use, '-' is not accepted. Directories are not accepted either."
}

// ReadableFile requires an existing, readable regular file and rejects
// '-'.
func ReadableFile(emphasis string) Validator {
	return func(value string) error {
		if err := NotDash(value); err != nil {
			return err
		}

		if err := pathcheck.RequireFile(value, emphasis, true); err != nil {
			return err
		}

		f, err := pathcheck.Open(value, emphasis, os.O_RDONLY, 0)
		if err != nil {
			return err
		}

		return f.Close()
	}
}

// NonEmptyFile is ReadableFile plus a non-empty content requirement,
// for key files and similar secrets where an empty file is always a
// mistake.
func NonEmptyFile(emphasis string) Validator {
	return func(value string) error {
		if err := ReadableFile(emphasis)(value); err != nil {
			return err
		}

		info, err := os.Stat(value)
		if err != nil {
			return vterr.Wrap(err, "inspecting the "+emphasis+" '"+value+"'").
				WithCode(errcode.UnderlyingCommand)
		}

		if info.Size() == 0 {
			return vterr.Newf(errcode.InvalidUsage,
				"supplied %s '%s' is empty. The %s must not be empty", emphasis, value, emphasis)
		}

		return nil
	}
}

// StringNotIn rejects values that normalize to one of the banned
// values. A nil normalize keeps the value as-is; strings.TrimSpace is
// the usual choice.
func StringNotIn(normalize func(string) string, banned ...string) Validator {
	if normalize == nil {
		normalize = func(s string) string { return s }
	}

	return func(value string) error {
		normalized := normalize(value)

		for _, b := range banned {
			if normalized == b {
				return vterr.Newf(errcode.InvalidUsage,
					"value must not be '%s'. [%s] values are not supported",
					value, strings.Join(banned, ", "))
			}
		}

		return nil
	}
}

// Dir validates a directory flag with the given check, appending
// remediation advice to the raw validation error. The remedy is part of
// the rendered message so it reaches the user, and doubles as a
// structured field for logging.
func Dir(check pathcheck.DirCheck) Validator {
	return func(value string) error {
		_, err := check.Validate(value)
		if err == nil {
			return nil
		}

		remedy := "A directory is required as the value for this option."

		switch {
		case errors.Is(err, os.ErrNotExist):
			remedy = "Provide a valid existing directory path."
		case errors.Is(err, os.ErrExist):
			remedy = "Provide a new (non-existing) path to create the directory at."
		}

		return vterr.Newf(errcode.InvalidUsage, "%w %s", err, remedy).
			WithField("remedy", remedy)
	}
}

// Forbidden rejects any use of a flag that is kept only so old command
// lines still parse to a clear error.
func Forbidden(name string) func(context.Context, *cli.Command, bool) error {
	return func(_ context.Context, _ *cli.Command, _ bool) error {
		return vterr.Newf(errcode.InvalidUsage, "flag --%s: not allowed", name)
	}
}
