// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/vterr"
)

// newTestCLI returns a CLI with its streams captured.
func newTestCLI() (*CLI, *bytes.Buffer, *bytes.Buffer) {
	app := NewCLI()

	var stdout, stderr bytes.Buffer

	app.out.Stdout = &stdout
	app.out.Stderr = &stderr

	return app, &stdout, &stderr
}

func TestNewCLI(t *testing.T) {
	t.Parallel()

	app := NewCLI()

	require.NotNil(t, app)
	require.NotNil(t, app.app)
	require.Equal(t, "vterrs", app.app.Name)
	require.NotEmpty(t, app.app.Usage)
	require.NotEmpty(t, app.app.Description)

	commandNames := make(map[string]bool)
	for _, cmd := range app.app.Commands {
		commandNames[cmd.Name] = true
	}

	for _, expected := range []string{"codes", "explain", "check", "message"} {
		require.True(t, commandNames[expected], "command %s should exist", expected)
	}
}

func TestResolveCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		arg      string
		wantCode errcode.Code
		wantErr  bool
	}{
		{
			name:     "numeric value",
			arg:      "127",
			wantCode: errcode.NotFound,
		},
		{
			name:     "canonical name",
			arg:      "invalid-usage",
			wantCode: errcode.InvalidUsage,
		},
		{
			name:     "alias resolves to canonical entry",
			arg:      "file-not-found",
			wantCode: errcode.NotFound,
		},
		{
			name:    "unregistered value",
			arg:     "999",
			wantErr: true,
		},
		{
			name:    "unregistered name",
			arg:     "no-such-code",
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			info, err := resolveCode(testCase.arg)
			if testCase.wantErr {
				require.Error(t, err)
				assert.Equal(t, errcode.NotFound, vterr.CodeOf(err))
				assert.ErrorIs(t, err, vterr.ErrNotFound)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.wantCode, info.Code)
		})
	}
}

func TestMarkdownFor(t *testing.T) {
	t.Parallel()

	info, ok := errcode.Lookup("not-found")
	require.True(t, ok)

	markdown := markdownFor(info)

	assert.Contains(t, markdown, "# not-found (exit 127)")
	assert.Contains(t, markdown, info.Description)
	assert.Contains(t, markdown, "`file-not-found`")
}

func TestListCodesModes(t *testing.T) {
	t.Parallel()

	t.Run("plain mode emits name:code lines", func(t *testing.T) {
		t.Parallel()

		app, stdout, _ := newTestCLI()
		app.plain = true
		app.syncOutput()

		require.NoError(t, app.listCodes())
		assert.Contains(t, stdout.String(), "not-found:127")
		assert.Contains(t, stdout.String(), "ok:0")
	})

	t.Run("json mode emits the full registry", func(t *testing.T) {
		t.Parallel()

		app, stdout, _ := newTestCLI()
		app.json = true
		app.syncOutput()

		require.NoError(t, app.listCodes())

		var result map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &result))
		assert.Equal(t, "success", result["status"])

		codes, ok := result["codes"].([]any)
		require.True(t, ok)
		assert.Len(t, codes, len(errcode.All()))
	})

	t.Run("default mode emits an aligned table", func(t *testing.T) {
		t.Parallel()

		app, stdout, _ := newTestCLI()
		app.syncOutput()

		require.NoError(t, app.listCodes())
		assert.Contains(t, stdout.String(), "invalid-usage")
		assert.Contains(t, stdout.String(), "data-format")
	})
}

func TestExplainCommand(t *testing.T) {
	t.Parallel()

	t.Run("plain mode prints raw markdown", func(t *testing.T) {
		t.Parallel()

		app, stdout, _ := newTestCLI()

		err := app.Run(context.Background(), []string{"vterrs", "--plain", "explain", "127"})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "# not-found (exit 127)")
	})

	t.Run("json mode emits a structured entry", func(t *testing.T) {
		t.Parallel()

		app, stdout, _ := newTestCLI()

		err := app.Run(context.Background(), []string{"vterrs", "--json", "explain", "not-found"})

		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &decoded))
		assert.Equal(t, "success", decoded["status"])
		assert.Equal(t, "not-found", decoded["name"])
		assert.EqualValues(t, 127, decoded["code"])
		assert.Contains(t, decoded["aliases"], "file-not-found")
		assert.NotContains(t, stdout.String(), "# not-found", "no raw markdown in JSON mode")
	})

	t.Run("unknown code fails with not-found", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()

		err := app.Run(context.Background(), []string{"vterrs", "explain", "bogus"})

		require.Error(t, err)
		assert.Equal(t, errcode.NotFound, vterr.CodeOf(err))
	})

	t.Run("missing argument is invalid usage", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()

		err := app.Run(context.Background(), []string{"vterrs", "explain"})

		require.Error(t, err)
		assert.Equal(t, errcode.InvalidUsage, vterr.CodeOf(err))
	})
}

func TestCheckFileCommand(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "input.txt")
	require.NoError(t, os.WriteFile(existing, []byte("content\n"), 0o600))

	tests := []struct {
		name     string
		path     string
		wantCode errcode.Code
	}{
		{
			name:     "readable file passes",
			path:     existing,
			wantCode: errcode.OK,
		},
		{
			name:     "missing file is file-not-found",
			path:     filepath.Join(tmpDir, "missing.txt"),
			wantCode: errcode.FileNotFound,
		},
		{
			name:     "dash is rejected",
			path:     "-",
			wantCode: errcode.InvalidUsage,
		},
		{
			name:     "directory is rejected",
			path:     tmpDir,
			wantCode: errcode.InvalidUsage,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			app, stdout, _ := newTestCLI()

			err := app.Run(context.Background(), []string{"vterrs", "check", "file", testCase.path})

			if testCase.wantCode == errcode.OK {
				require.NoError(t, err)
				assert.Contains(t, stdout.String(), "ok")

				return
			}

			require.Error(t, err)
			assert.Equal(t, testCase.wantCode, vterr.CodeOf(err))
		})
	}
}

func TestCheckKeyfileCommand(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	filled := filepath.Join(tmpDir, "secret.pem")
	require.NoError(t, os.WriteFile(filled, []byte("-----BEGIN KEY-----\n"), 0o600))

	empty := filepath.Join(tmpDir, "empty.pem")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))

	t.Run("non-empty key file passes", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()

		require.NoError(t, app.Run(context.Background(), []string{"vterrs", "check", "keyfile", filled}))
	})

	t.Run("empty key file is invalid usage", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()

		err := app.Run(context.Background(), []string{"vterrs", "check", "keyfile", empty})

		require.Error(t, err)
		assert.Equal(t, errcode.InvalidUsage, vterr.CodeOf(err))
		assert.Contains(t, err.Error(), "must not be empty")
	})
}

func TestCheckDirCommand(t *testing.T) {
	t.Parallel()

	t.Run("existing directory passes", func(t *testing.T) {
		t.Parallel()

		app, stdout, _ := newTestCLI()

		err := app.Run(context.Background(), []string{"vterrs", "check", "dir", t.TempDir()})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "ok")
	})

	t.Run("new requires a free path", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()

		err := app.Run(context.Background(), []string{"vterrs", "check", "dir", "--new", t.TempDir()})

		require.Error(t, err)
		assert.Equal(t, errcode.DirAlreadyExists, vterr.CodeOf(err))
	})

	t.Run("new passes on a free path", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()
		target := filepath.Join(t.TempDir(), "fresh")

		require.NoError(t, app.Run(context.Background(),
			[]string{"vterrs", "check", "dir", "--new", target}))

		_, err := os.Stat(target)
		assert.True(t, os.IsNotExist(err), "validation must not create the directory")
	})

	t.Run("create with yes creates the directory", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()
		target := filepath.Join(t.TempDir(), "made", "nested")

		require.NoError(t, app.Run(context.Background(),
			[]string{"vterrs", "--yes", "check", "dir", "--create", target}))

		info, err := os.Stat(target)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("create without consent is interrupted", func(t *testing.T) {
		t.Parallel()

		// Test stdin is not a terminal, so the prompt declines.
		app, _, _ := newTestCLI()
		target := filepath.Join(t.TempDir(), "declined")

		err := app.Run(context.Background(),
			[]string{"vterrs", "check", "dir", "--create", target})

		require.Error(t, err)
		assert.Equal(t, errcode.Interrupted, vterr.CodeOf(err))

		_, statErr := os.Stat(target)
		assert.True(t, os.IsNotExist(statErr))
	})
}

func TestMessageCommands(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "not-together",
			args: []string{"vterrs", "message", "not-together", "--", "--force", "--dry-run"},
			want: "--force and --dry-run are not allowed together.",
		},
		{
			name: "one-of",
			args: []string{"vterrs", "message", "one-of", "--", "--input", "--stdin"},
			want: "Either --input or --stdin is required.",
		},
		{
			name: "all-of with two names",
			args: []string{"vterrs", "message", "all-of", "--", "host", "port"},
			want: "Both host and port are required.",
		},
		{
			name: "all-of with oxford comma",
			args: []string{"vterrs", "message", "all-of", "--oxford", "--", "host", "port", "user"},
			want: "All host, port, and user are required.",
		},
		{
			name: "choices",
			args: []string{"vterrs", "message", "choices", "--about", "color", "red", "green", "blue"},
			want: "Unexpected color value. Choose from 'red', 'green' and 'blue'.",
		},
		{
			name: "prefix and suffix",
			args: []string{
				"vterrs", "message", "not-together",
				"--prefix", "Usage error: ", "--suffix", " cannot be combined.",
				"--", "--force", "--dry-run",
			},
			want: "Usage error: --force and --dry-run cannot be combined.",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			app, stdout, _ := newTestCLI()

			require.NoError(t, app.Run(context.Background(), testCase.args))
			assert.Equal(t, testCase.want+"\n", stdout.String())
		})
	}
}

func TestMessageCommandArgCount(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestCLI()

	err := app.Run(context.Background(), []string{"vterrs", "message", "one-of", "--", "--lonely"})

	require.Error(t, err)
	assert.Equal(t, errcode.InvalidUsage, vterr.CodeOf(err))
}

func TestMessageCommandCatalog(t *testing.T) {
	t.Parallel()

	catalog := filepath.Join(t.TempDir(), "messages.toml")
	require.NoError(t, os.WriteFile(catalog, []byte(`
[locales.en]
and = "and"
or = "or"

[locales.sv]
and = "och"
or = "eller"
`), 0o600))

	t.Run("swedish conjunctions", func(t *testing.T) {
		t.Parallel()

		app, stdout, _ := newTestCLI()

		require.NoError(t, app.Run(context.Background(), []string{
			"vterrs", "message", "all-of",
			"--catalog", catalog, "--locale", "sv",
			"--", "host", "port",
		}))
		assert.Equal(t, "Both host och port are required.\n", stdout.String())
	})

	t.Run("missing catalog is file-not-found", func(t *testing.T) {
		t.Parallel()

		app, _, _ := newTestCLI()

		err := app.Run(context.Background(), []string{
			"vterrs", "message", "one-of",
			"--catalog", filepath.Join(t.TempDir(), "nope.toml"),
			"--", "-a", "-b",
		})

		require.Error(t, err)
		assert.Equal(t, errcode.FileNotFound, vterr.CodeOf(err))
	})
}
