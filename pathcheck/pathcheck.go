// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package pathcheck validates filesystem paths before tools act on
// them, turning raw OS failures into coded errors with user-level
// messages.
package pathcheck

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/vterr"
)

// Sentinel errors for directory validation; exists/not-exists and
// permission conditions reuse the os package sentinels.
var (
	// ErrNotADirectory is returned when a path exists but is not a
	// directory.
	ErrNotADirectory = errors.New("not a directory")
	// ErrIsADirectory is returned when a file was expected but the
	// path is a directory.
	ErrIsADirectory = errors.New("is a directory")
)

// DirCheck validates a string path as a directory.
type DirCheck struct {
	// AllowExisting selects the mode: true requires the directory to
	// exist, false requires the path to be free for creation.
	AllowExisting bool
	// Readable requires read permission on an existing directory.
	Readable bool
	// Writable requires write permission on an existing directory.
	Writable bool
}

// Validate checks path against the configured conditions and returns
// the cleaned path. Errors wrap os.ErrNotExist, os.ErrExist,
// os.ErrPermission or ErrNotADirectory for errors.Is dispatch.
func (c DirCheck) Validate(path string) (string, error) {
	info, err := os.Stat(path)

	if c.AllowExisting {
		if err != nil {
			return "", vterr.Newf(errcode.DirNotFound, "path '%s' does not exist: %w", path, os.ErrNotExist)
		}

		if err := c.validateProps(path, info); err != nil {
			return "", err
		}

		return filepath.Clean(path), nil
	}

	if err == nil {
		// Still surface property problems first so the user fixes the
		// more fundamental condition.
		if err := c.validateProps(path, info); err != nil {
			return "", err
		}

		return "", vterr.Newf(errcode.DirAlreadyExists, "path '%s' already exists: %w", path, os.ErrExist)
	}

	return filepath.Clean(path), nil
}

// validateProps checks that an existing path is a directory with the
// required permissions.
func (c DirCheck) validateProps(path string, info os.FileInfo) error {
	if !info.IsDir() {
		return vterr.Newf(errcode.InvalidUsage, "'%s' is not a directory: %w", path, ErrNotADirectory)
	}

	if c.Readable && !canReadDir(path) {
		return vterr.Newf(errcode.PermissionDenied, "no read permission for '%s': %w", path, os.ErrPermission)
	}

	if c.Writable && !canWriteDir(path) {
		return vterr.Newf(errcode.PermissionDenied, "no write permission for '%s': %w", path, os.ErrPermission)
	}

	return nil
}

// canReadDir probes read permission by opening the directory.
func canReadDir(path string) bool {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return false
	}

	_ = f.Close()

	return true
}

// canWriteDir probes write permission by creating and removing a
// temporary file inside the directory.
func canWriteDir(path string) bool {
	f, err := os.CreateTemp(path, ".vterrs-probe-*")
	if err != nil {
		return false
	}

	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)

	return true
}

// IsSubpath reports whether child lies under parent. The check is
// lexical on absolute, cleaned paths; neither path needs to exist.
func IsSubpath(child, parent string) (bool, error) {
	absChild, err := filepath.Abs(child)
	if err != nil {
		return false, vterr.Wrap(err, "resolving '"+child+"'")
	}

	absParent, err := filepath.Abs(parent)
	if err != nil {
		return false, vterr.Wrap(err, "resolving '"+parent+"'")
	}

	rel, err := filepath.Rel(absParent, absChild)
	if err != nil {
		return false, nil
	}

	if rel == "." {
		// A path is not its own subpath.
		return false, nil
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}

// RequireFile requires path to be a file (not a directory), existing
// when mustExist is set. The emphasis names the file's role in error
// messages.
func RequireFile(path, emphasis string, mustExist bool) error {
	info, err := os.Stat(path)

	if err == nil && info.IsDir() {
		return vterr.Newf(errcode.InvalidUsage,
			"supplied %s path '%s' must be a file: %w", emphasis, path, ErrIsADirectory)
	}

	if mustExist && err != nil {
		return vterr.Newf(errcode.FileNotFound,
			"%s at path '%s' does not exist: %w", emphasis, path, os.ErrNotExist)
	}

	return nil
}

// RequireDir requires path to be a directory (not a file), existing
// when mustExist is set.
func RequireDir(path, emphasis string, mustExist bool) error {
	info, err := os.Stat(path)

	if err == nil && !info.IsDir() {
		return vterr.Newf(errcode.InvalidUsage,
			"supplied %s path '%s' must be a directory: %w", emphasis, path, ErrNotADirectory)
	}

	if mustExist && err != nil {
		return vterr.Newf(errcode.DirNotFound,
			"%s at path '%s' does not exist: %w", emphasis, path, os.ErrNotExist)
	}

	return nil
}

// Open opens the file at path after RequireFile passes, wrapping any
// OS failure in a coded error.
func Open(path, emphasis string, flag int, perm os.FileMode) (*os.File, error) {
	if err := RequireFile(path, emphasis, flag&os.O_CREATE == 0); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(path, flag, perm) //nolint:gosec
	if err != nil {
		if errors.Is(err, os.ErrPermission) {
			return nil, vterr.Wrap(err, "insufficient permission for the "+emphasis+" '"+path+"'").
				WithCode(errcode.PermissionDenied)
		}

		return nil, vterr.Wrap(err, "underlying OS error opening the "+emphasis+" '"+path+"'").
			WithCode(errcode.UnderlyingCommand)
	}

	return f, nil
}

// IsGlobLike reports whether pattern looks like a POSIX glob, i.e.
// contains '*', '?' or a bracket expression.
func IsGlobLike(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[]")
}
