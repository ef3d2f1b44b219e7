// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package vterr

import (
	"strings"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/internal/stringutil"
)

// Advice provides user-friendly error information.
type Advice struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

// adviceMatchers maps error text patterns to their advice.
func adviceMatchers() []struct {
	patterns []string
	advise   func(subject string, verbose bool) Advice
} {
	return []struct {
		patterns []string
		advise   func(subject string, verbose bool) Advice
	}{
		{
			patterns: []string{"permission", "denied", "unauthorised", "operation not permitted"},
			advise: func(_ string, verbose bool) Advice {
				return Advice{
					Message:     "Permission denied",
					Suggestions: []string{"Check file and directory permissions", "Rerun with sufficient privileges"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"network", "connection", "timeout", "no such host", "unreachable"},
			advise: func(_ string, verbose bool) Advice {
				return Advice{
					Message:     "Network connection failed",
					Suggestions: []string{"Check your internet connection", "Try again in a few moments"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"not found", "no such", "does not exist"},
			advise: func(subject string, verbose bool) Advice {
				if subject != "" {
					return Advice{
						Message:     "'" + subject + "' not found",
						Suggestions: []string{"Check the path or name spelling", "Verify the resource exists"},
						ShowDetails: verbose,
					}
				}

				return Advice{
					Message:     "Not found",
					Suggestions: []string{"Check the path or name spelling"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"already exists"},
			advise: func(_ string, verbose bool) Advice {
				return Advice{
					Message:     "Already exists",
					Suggestions: []string{"Provide a new, non-existing path", "Remove the existing one first if it is stale"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"parse", "unmarshal", "malformed", "invalid syntax", "data format"},
			advise: func(_ string, verbose bool) Advice {
				return Advice{
					Message:     "Input data is malformed",
					Suggestions: []string{"Validate the file against its expected format", "Check for recent edits to config files"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"interrupt", "signal: killed", "context canceled"},
			advise: func(_ string, verbose bool) Advice {
				return Advice{
					Message:     "Operation interrupted",
					Suggestions: []string{"Rerun the command to continue"},
					ShowDetails: verbose,
				}
			},
		},
	}
}

// AdviceFor analyzes an error and returns user-friendly information.
func AdviceFor(err error, subject string, verbose bool) Advice {
	if err == nil {
		return Advice{}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range adviceMatchers() {
		if stringutil.ContainsAny(errStr, matcher.patterns) {
			return matcher.advise(subject, verbose)
		}
	}

	// Generic error - show details in verbose mode
	return Advice{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// Format renders an error for terminal display: a ✗ line, technical
// details in verbose mode, and either the first suggestion inline or
// all suggestions as a list.
func Format(err error, subject string, verbose bool) string {
	advice := AdviceFor(err, subject, verbose)

	var result strings.Builder

	if subject != "" {
		result.WriteString("✗ ")
		result.WriteString(subject)
		result.WriteString(" failed")

		if advice.Message != "" {
			result.WriteString(": ")
			result.WriteString(advice.Message)
		}
	} else {
		result.WriteString("✗ ")
		result.WriteString(advice.Message)
	}

	if code := CodeOf(err); code != errcode.Generic && code != errcode.OK {
		result.WriteString(" [exit ")
		result.WriteString(code.String())
		result.WriteString("]")
	}

	if advice.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	if len(advice.Suggestions) > 0 && !verbose {
		result.WriteString(" (")
		result.WriteString(advice.Suggestions[0])
		result.WriteString(")")
	} else if len(advice.Suggestions) > 0 && verbose {
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range advice.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}
