// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/language"

	"github.com/vaastav-tech/vterrs/cliutil"
	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/errmsg"
	"github.com/vaastav-tech/vterrs/pathcheck"
	"github.com/vaastav-tech/vterrs/vterr"
)

// createCheckCommand validates paths the way project CLIs do.
func (app *CLI) createCheckCommand() *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Validate files and directories against project conventions",
		Description: `Runs the same validators project CLIs attach to their flags, and
exits with the code a real tool would.

EXAMPLES:
  vterrs check file ./input.txt          Readable regular file?
  vterrs check keyfile ./secret.pem      Readable and non-empty?
  vterrs check dir ./cache               Existing usable directory?
  vterrs check dir ./out --new           Path free for creation?
  vterrs check dir ./out --new --create  Create it after confirmation`,
		Commands: []*cli.Command{
			app.createCheckFileCommand(),
			app.createCheckKeyfileCommand(),
			app.createCheckDirCommand(),
		},
	}
}

func (app *CLI) createCheckFileCommand() *cli.Command {
	return &cli.Command{
		Name:      "file",
		Usage:     "Validate a readable regular file",
		ArgsUsage: "<path>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			app.syncOutput()

			path, err := singlePathArg(cmd)
			if err != nil {
				return err
			}

			if err := cliutil.ReadableFile("input file")(path); err != nil {
				return err
			}

			app.out.Successf("'%s' is a readable file", path)
			app.out.Result("ok")

			return nil
		},
	}
}

func (app *CLI) createCheckKeyfileCommand() *cli.Command {
	return &cli.Command{
		Name:        "keyfile",
		Usage:       "Validate a non-empty key file",
		ArgsUsage:   "<path>",
		Description: cliutil.ExplainInput("key file"),
		Action: func(_ context.Context, cmd *cli.Command) error {
			app.syncOutput()

			path, err := singlePathArg(cmd)
			if err != nil {
				return err
			}

			if err := cliutil.NonEmptyFile("key file")(path); err != nil {
				return err
			}

			app.out.Successf("'%s' is a usable key file", path)
			app.out.Result("ok")

			return nil
		},
	}
}

func (app *CLI) createCheckDirCommand() *cli.Command {
	return &cli.Command{
		Name:      "dir",
		Usage:     "Validate a directory path",
		ArgsUsage: "<path>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "new",
				Usage: "require the path to be free for creation",
			},
			&cli.BoolFlag{
				Name:  "create",
				Usage: "create the directory after validation (implies --new)",
			},
			&cli.BoolFlag{
				Name:  "no-write",
				Usage: "skip the write permission probe on existing directories",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			app.syncOutput()

			path, err := singlePathArg(cmd)
			if err != nil {
				return err
			}

			wantNew := cmd.Bool("new") || cmd.Bool("create")

			check := pathcheck.DirCheck{
				AllowExisting: !wantNew,
				Readable:      true,
				Writable:      !cmd.Bool("no-write"),
			}

			cleaned, err := check.Validate(path)
			if err != nil {
				return err
			}

			if cmd.Bool("create") {
				return app.createDir(cleaned)
			}

			app.out.Successf("'%s' passed validation", cleaned)
			app.out.Result("ok")

			return nil
		},
	}
}

// createDir creates a validated directory path after user consent.
func (app *CLI) createDir(path string) error {
	if !app.confirmCreate(path) {
		return vterr.New(errcode.Interrupted, "directory creation declined")
	}

	if err := os.MkdirAll(path, 0o755); err != nil { //nolint:gosec
		return vterr.Wrap(err, "creating directory '"+path+"'").
			WithCode(errcode.UnderlyingCommand)
	}

	app.out.Successf("created '%s'", path)
	app.out.Result("ok")

	return nil
}

// confirmCreate prompts before touching the filesystem. --yes
// auto-accepts; a non-interactive session declines.
func (app *CLI) confirmCreate(path string) bool {
	if app.yes {
		app.out.Progressf("auto-accepting: creating '%s'", path)

		return true
	}

	if !app.out.IsTTY(os.Stdin.Fd()) {
		return false
	}

	confirmed := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create directory?").
				Description("'" + path + "' will be created with parents.").
				Affirmative("Create").
				Negative("Cancel").
				Value(&confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return false
	}

	return confirmed
}

// singlePathArg extracts the exactly-one path argument of a check
// subcommand.
func singlePathArg(cmd *cli.Command) (string, error) {
	args := cmd.Args().Slice()
	if len(args) != 1 {
		return "", vterr.New(errcode.InvalidUsage, "exactly one path argument is required")
	}

	return args[0], nil
}

// createMessageCommand previews validation error messages.
func (app *CLI) createMessageCommand() *cli.Command {
	former := func(cmd *cli.Command) (errmsg.Former, error) {
		f := errmsg.New()

		if catalogPath := cmd.String("catalog"); catalogPath != "" {
			catalog, err := errmsg.LoadCatalog(catalogPath)
			if err != nil {
				return f, err
			}

			tag, err := language.Parse(cmd.String("locale"))
			if err != nil {
				return f, vterr.Wrap(err, "unusable locale '"+cmd.String("locale")+"'").
					WithCode(errcode.InvalidUsage)
			}

			f = catalog.Former(tag)
		}

		if cmd.Bool("oxford") {
			f = f.WithOxfordComma(true)
		}

		return f.WithPrefix(cmd.String("prefix")).WithSuffix(cmd.String("suffix")), nil
	}

	messageFlags := []cli.Flag{
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "prepend to the message",
		},
		&cli.StringFlag{
			Name:  "suffix",
			Usage: "replace the default sentence ending",
		},
		&cli.BoolFlag{
			Name:  "oxford",
			Usage: "use an Oxford comma in lists of three or more",
		},
		&cli.StringFlag{
			Name:  "locale",
			Usage: "locale tag resolved against --catalog",
			Value: "en",
		},
		&cli.StringFlag{
			Name:   "catalog",
			Usage:  "TOML message catalog path",
			Action: cliutil.Action(cliutil.NotDash),
		},
	}

	twoNames := func(cmd *cli.Command) (string, string, []string, error) {
		args := cmd.Args().Slice()
		if len(args) < 2 {
			return "", "", nil, vterr.New(errcode.InvalidUsage,
				errmsg.New().AtLeastOneRequired("two argument names", "more"))
		}

		return args[0], args[1], args[2:], nil
	}

	return &cli.Command{
		Name:  "message",
		Usage: "Preview validation error messages",
		Description: `Renders the shared validation messages exactly as project CLIs
emit them. Useful when wording must match in docs and tests.

EXAMPLES:
  vterrs message not-together -- --force --dry-run
  vterrs message one-of -- --input --stdin
  vterrs message all-of --oxford -- host port user
  vterrs message choices --about color -- red green blue`,
		Commands: []*cli.Command{
			{
				Name:      "not-together",
				Usage:     "Arguments that must not be combined",
				ArgsUsage: "<name> <name> [name...]",
				Flags:     messageFlags,
				Action: func(_ context.Context, cmd *cli.Command) error {
					app.syncOutput()

					first, second, more, err := twoNames(cmd)
					if err != nil {
						return err
					}

					f, err := former(cmd)
					if err != nil {
						return err
					}

					app.out.Result(f.NotAllowedTogether(first, second, more...))

					return nil
				},
			},
			{
				Name:      "one-of",
				Usage:     "At least one of the arguments is required",
				ArgsUsage: "<name> <name> [name...]",
				Flags:     messageFlags,
				Action: func(_ context.Context, cmd *cli.Command) error {
					app.syncOutput()

					first, second, more, err := twoNames(cmd)
					if err != nil {
						return err
					}

					f, err := former(cmd)
					if err != nil {
						return err
					}

					app.out.Result(f.AtLeastOneRequired(first, second, more...))

					return nil
				},
			},
			{
				Name:      "all-of",
				Usage:     "All of the arguments are required",
				ArgsUsage: "<name> <name> [name...]",
				Flags:     messageFlags,
				Action: func(_ context.Context, cmd *cli.Command) error {
					app.syncOutput()

					first, second, more, err := twoNames(cmd)
					if err != nil {
						return err
					}

					f, err := former(cmd)
					if err != nil {
						return err
					}

					app.out.Result(f.AllRequired(first, second, more...))

					return nil
				},
			},
			{
				Name:      "choices",
				Usage:     "Unexpected value with accepted choices",
				ArgsUsage: "[choice...]",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:  "about",
						Usage: "what the unexpected value was for",
					},
				}, messageFlags...),
				Action: func(_ context.Context, cmd *cli.Command) error {
					app.syncOutput()

					f, err := former(cmd)
					if err != nil {
						return err
					}

					app.out.Result(f.ForChoices(cmd.String("about"), cmd.Args().Slice()...))

					return nil
				},
			},
		},
	}
}
