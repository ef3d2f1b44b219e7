// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package console provides the output discipline shared by Vaastav
// Technologies CLIs: results to stdout, messages to stderr, structured
// JSON on demand, and error/warning rendering driven by vterr advice.
package console

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vaastav-tech/vterrs/vterr"
)

// OutputState holds output configuration for one command invocation.
type OutputState struct {
	Verbose bool
	JSON    bool
	Plain   bool

	// Stdout and Stderr default to the process streams; tests swap
	// them out.
	Stdout io.Writer
	Stderr io.Writer
}

// New returns an OutputState bound to the process streams.
func New() *OutputState {
	return &OutputState{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, plain bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Plain = plain
}

// IsTTY checks if output is going to a terminal (not piped/redirected).
func (o *OutputState) IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

// Bold formats text with bold when in TTY, uppercase when piped.
func (o *OutputState) Bold(text string) string {
	if o.JSON || o.Plain {
		return text
	}

	// no-color.org standards
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return text
	}

	if o.IsTTY(os.Stdout.Fd()) {
		return "\033[1m" + text + "\033[0m"
	}

	// Fallback for pipes/redirects
	return strings.ToUpper(text)
}

// Progressf writes progress messages to stderr (only if verbose and not
// JSON/Plain).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON && !o.Plain {
		fmt.Fprintf(o.stderr(), format+"\n", args...)
	}
}

// Successf writes success messages to stderr (only if not JSON/Plain).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Plain {
		fmt.Fprintf(o.stderr(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages to stderr (always visible).
func (o *OutputState) Warningf(format string, args ...any) {
	if o.Plain {
		fmt.Fprintf(o.stderr(), "warning: "+format+"\n", args...)
	} else {
		fmt.Fprintf(o.stderr(), "⚠ "+format+"\n", args...)
	}
}

// Errorf writes error messages to stderr (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	if o.Plain {
		fmt.Fprintf(o.stderr(), "error: "+format+"\n", args...)
	} else {
		fmt.Fprintf(o.stderr(), "✗ "+format+"\n", args...)
	}
}

// Result writes command results to stdout (machine-readable primary
// output).
func (o *OutputState) Result(data any) {
	_, _ = fmt.Fprintf(o.stdout(), "%v\n", data)
}

// PlainKeyValue outputs key:value pairs for machine parsing.
func (o *OutputState) PlainKeyValue(key, value string) {
	_, _ = fmt.Fprintf(o.stdout(), "%s:%s\n", key, value)
}

// JSONResult writes structured JSON results to stdout.
func (o *OutputState) JSONResult(status string, data map[string]any) {
	result := map[string]any{
		"status": status,
	}
	maps.Copy(result, data)

	if err := json.NewEncoder(o.stdout()).Encode(result); err != nil {
		// Best effort - output encoding errors shouldn't crash the program
		fmt.Fprintf(o.stderr(), "error encoding JSON: %v\n", err)
	}
}

// RenderError writes an error to stderr in the advice-driven user
// format, and to stdout as JSON when JSON mode is on. Subject names the
// operation that failed.
func (o *OutputState) RenderError(err error, subject string) {
	if err == nil {
		return
	}

	if o.JSON {
		o.JSONResult("error", map[string]any{
			"error": err.Error(),
			"code":  int(vterr.CodeOf(err)),
		})
	}

	if o.Plain {
		fmt.Fprintf(o.stderr(), "error: %s\n", err.Error())

		return
	}

	fmt.Fprintln(o.stderr(), vterr.Format(err, subject, o.Verbose))
}

// RenderWarnings flushes a collector through Warningf, and emits a JSON
// warning list when JSON mode is on.
func (o *OutputState) RenderWarnings(c *vterr.Collector) {
	if !c.HasWarnings() {
		return
	}

	if o.JSON {
		items := make([]string, 0, c.Len())
		for _, w := range c.Warnings() {
			items = append(items, w.String())
		}

		o.JSONResult("warnings", map[string]any{"warnings": items})
	}

	c.Flush(func(w vterr.Warning) {
		o.Warningf("%s", w.String())
	})
}

func (o *OutputState) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}

	return os.Stdout
}

func (o *OutputState) stderr() io.Writer {
	if o.Stderr != nil {
		return o.Stderr
	}

	return os.Stderr
}
