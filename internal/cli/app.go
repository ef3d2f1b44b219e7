// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the vterrs diagnostic command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/vaastav-tech/vterrs/console"
	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/internal/tui"
	"github.com/vaastav-tech/vterrs/vterr"
)

// version is set at build time via -ldflags.
var version = "dev" //nolint:gochecknoglobals

// CLI wires the vterrs command tree to one output state.
type CLI struct {
	app     *cli.Command
	out     *console.OutputState
	verbose bool
	json    bool
	plain   bool
	yes     bool
}

// NewCLI creates the vterrs command-line interface.
func NewCLI() *CLI {
	app := &CLI{
		out: console.New(),
	}

	app.app = &cli.Command{
		Name:    "vterrs",
		Usage:   "Inspect and exercise the common error and warning conventions",
		Version: version,
		Suggest: true,
		Description: `Diagnostic companion for the vterrs library.

ESSENTIAL COMMANDS:
  codes                     List the exit code registry
  explain not-found         Show the reference entry for a code
  check dir ./out --new     Validate a path the way project CLIs do
  message one-of -- -a -b   Preview a validation error message

EXAMPLES:
  vterrs codes --plain                  # name:code lines for scripts
  vterrs codes --browse                 # interactive browser
  vterrs explain 127                    # what does exit 127 mean?
  vterrs check keyfile ./secret.pem     # non-empty readable file?`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages and technical error details",
				Aliases:     []string{"v"},
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "plain",
				Usage:       "plain output without symbols or styling",
				Destination: &app.plain,
			},
			&cli.BoolFlag{
				Name:        "yes",
				Usage:       "auto-accept all prompts",
				Aliases:     []string{"y"},
				Destination: &app.yes,
			},
		},
	}

	app.app.Commands = []*cli.Command{
		app.createCodesCommand(),
		app.createExplainCommand(),
		app.createCheckCommand(),
		app.createMessageCommand(),
	}

	return app
}

// Run executes the CLI with the given arguments.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// Output exposes the configured output state for the entry point.
func (app *CLI) Output() *console.OutputState {
	return app.out
}

// syncOutput applies the parsed global flags to the output state.
// Flag destinations are only populated once Run has parsed, so every
// command action calls this first.
func (app *CLI) syncOutput() {
	app.out.SetMode(app.verbose, app.json, app.plain)
}

// createCodesCommand lists or browses the exit code registry.
func (app *CLI) createCodesCommand() *cli.Command {
	return &cli.Command{
		Name:  "codes",
		Usage: "List the exit code registry",
		Description: `Prints every registered exit code with its canonical name,
aliases and description.

OUTPUT MODES:
  default     aligned table
  --plain     name:code lines for machine parsing
  --json      structured JSON
  --browse    interactive browser (filter with /)`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "browse",
				Usage: "open the interactive code browser",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			app.syncOutput()

			if cmd.Bool("browse") {
				if err := tui.Run(); err != nil {
					return vterr.Wrap(err, "running code browser").
						WithCode(errcode.UnstableState)
				}

				return nil
			}

			return app.listCodes()
		},
	}
}

func (app *CLI) listCodes() error {
	infos := errcode.All()

	switch {
	case app.json:
		entries := make([]map[string]any, 0, len(infos))
		for _, info := range infos {
			entries = append(entries, map[string]any{
				"code":        int(info.Code),
				"name":        info.Name,
				"description": info.Description,
				"aliases":     info.Aliases,
			})
		}

		app.out.JSONResult("success", map[string]any{"codes": entries})

	case app.plain:
		for _, info := range infos {
			app.out.PlainKeyValue(info.Name, strconv.Itoa(int(info.Code)))
		}

	default:
		app.out.Result(app.out.Bold("NAME                    CODE  DESCRIPTION"))

		for _, info := range infos {
			app.out.Result(fmt.Sprintf("%-22s  %4d  %s", info.Name, int(info.Code), info.Description))
		}
	}

	return nil
}

// createExplainCommand renders the reference entry for one code.
func (app *CLI) createExplainCommand() *cli.Command {
	return &cli.Command{
		Name:      "explain",
		Usage:     "Show the reference entry for an exit code",
		ArgsUsage: "<code|name>",
		Description: `Accepts a numeric code or a registered name or alias.

EXAMPLES:
  vterrs explain 127
  vterrs explain file-not-found`,
		Action: func(_ context.Context, cmd *cli.Command) error {
			app.syncOutput()

			args := cmd.Args().Slice()
			if len(args) != 1 {
				return vterr.New(errcode.InvalidUsage, "exactly one code or name is required")
			}

			info, err := resolveCode(args[0])
			if err != nil {
				return err
			}

			if app.json {
				app.out.JSONResult("success", map[string]any{
					"code":        int(info.Code),
					"name":        info.Name,
					"description": info.Description,
					"aliases":     info.Aliases,
				})

				return nil
			}

			markdown := markdownFor(info)

			if app.plain || !app.out.IsTTY(os.Stdout.Fd()) {
				app.out.Result(markdown)

				return nil
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(80),
			)
			if err != nil {
				// Fallback to raw markdown rather than failing the lookup.
				app.out.Result(markdown)

				return nil
			}

			rendered, err := renderer.Render(markdown)
			if err != nil {
				app.out.Result(markdown)

				return nil
			}

			app.out.Result(rendered)

			return nil
		},
	}
}

// resolveCode turns a numeric or symbolic argument into its registry
// entry.
func resolveCode(arg string) (errcode.Info, error) {
	if value, err := strconv.Atoi(arg); err == nil {
		for _, info := range errcode.All() {
			if info.Code == errcode.Code(value) {
				return info, nil
			}
		}

		return errcode.Info{}, vterr.Newf(errcode.NotFound,
			"no registered exit code with value %d: %w", value, vterr.ErrNotFound)
	}

	info, ok := errcode.Lookup(arg)
	if !ok {
		return errcode.Info{}, vterr.Newf(errcode.NotFound,
			"no registered exit code named '%s': %w", arg, vterr.ErrNotFound)
	}

	return info, nil
}

// markdownFor builds the reference entry rendered by explain.
func markdownFor(info errcode.Info) string {
	var doc strings.Builder

	doc.WriteString(fmt.Sprintf("# %s (exit %d)\n\n", info.Name, int(info.Code)))
	doc.WriteString(info.Description + "\n")

	if len(info.Aliases) > 0 {
		doc.WriteString("\n**Also known as:** `" + strings.Join(info.Aliases, "`, `") + "`\n")
	}

	doc.WriteString("\n> Codes are part of the scripting contract and never renumber.\n")

	return doc.String()
}
