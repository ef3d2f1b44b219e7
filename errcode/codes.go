// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package errcode defines the process exit codes shared by Vaastav
// Technologies tools.
//
// Values follow POSIX shell conventions and sysexits.h. They are part of
// the scripting contract of every tool built on this module: existing
// codes are never renumbered, and several names intentionally share a
// value (a missing file and a missing command are the same condition to
// a shell).
package errcode

import "strconv"

// Code is a process exit code carried by errors across project
// boundaries.
type Code int

// Exit codes following Unix conventions.
const (
	// OK means everything went fine.
	OK Code = 0
	// Generic is the catch-all failure code.
	Generic Code = 1
	// InvalidUsage signals malformed command line usage.
	InvalidUsage Code = 2
	// StateAlreadyExists signals that state which was to be created
	// already exists.
	StateAlreadyExists Code = 4
	// DataFormat signals malformed input data, for example a config
	// file that does not parse (EX_DATAERR in sysexits.h).
	DataFormat Code = 65
	// ServiceUnavailable signals a required service that cannot be
	// reached or used (EX_UNAVAILABLE in sysexits.h).
	ServiceUnavailable Code = 69
	// CannotExecute signals a command that exists but cannot run,
	// typically for permission reasons.
	CannotExecute Code = 126
	// NotFound signals a command, file or directory that does not
	// exist.
	NotFound Code = 127
	// UnderlyingCommand signals a failure inside a wrapped command.
	UnderlyingCommand Code = 128
	// Interrupted signals termination by SIGINT (Ctrl-C).
	Interrupted Code = 130
)

// Aliases for codes that share a value with a broader condition.
const (
	// FileAlreadyExists: the file to be created already exists.
	FileAlreadyExists = StateAlreadyExists
	// DirAlreadyExists: the directory to be created already exists.
	DirAlreadyExists = StateAlreadyExists
	// UnstableState: the system is in a state it cannot proceed from.
	UnstableState = ServiceUnavailable
	// Uninitialised: a component was used before being initialised.
	Uninitialised = ServiceUnavailable
	// PermissionDenied: the operation was not authorised.
	PermissionDenied = CannotExecute
	// FileNotFound: a required file does not exist.
	FileNotFound = NotFound
	// DirNotFound: a required directory does not exist.
	DirNotFound = NotFound
)

// Info describes one registry entry for listing and documentation.
type Info struct {
	Code        Code
	Name        string
	Description string
	Aliases     []string
}

// registry holds one entry per distinct value, canonical name first.
var registry = []Info{
	{OK, "ok", "Everything is okay.", nil},
	{Generic, "generic", "Some generic error.", nil},
	{InvalidUsage, "invalid-usage", "Invalid command line usage.", nil},
	{StateAlreadyExists, "state-already-exists", "State that was to be created already exists.", []string{"file-already-exists", "dir-already-exists"}},
	{DataFormat, "data-format", "Data format error, for example while reading a config file.", nil},
	{ServiceUnavailable, "service-unavailable", "Required service unavailable or state unusable.", []string{"unstable-state", "uninitialised"}},
	{CannotExecute, "cannot-execute", "Command cannot be executed or operation unauthorised.", []string{"permission-denied"}},
	{NotFound, "not-found", "Command, file or directory not found.", []string{"file-not-found", "dir-not-found"}},
	{UnderlyingCommand, "underlying-command", "Underlying command execution error.", nil},
	{Interrupted, "interrupted", "Interrupt signal received.", nil},
}

// String returns the canonical name of the code, or its decimal value
// when the code is not in the registry.
func (c Code) String() string {
	for _, info := range registry {
		if info.Code == c {
			return info.Name
		}
	}

	return strconv.Itoa(int(c))
}

// Describe returns the human-readable description of the code.
// Unknown codes describe themselves as unregistered.
func (c Code) Describe() string {
	for _, info := range registry {
		if info.Code == c {
			return info.Description
		}
	}

	return "Unregistered exit code " + strconv.Itoa(int(c)) + "."
}

// Known reports whether the code is part of the registry.
func Known(c Code) bool {
	for _, info := range registry {
		if info.Code == c {
			return true
		}
	}

	return false
}

// All returns registry entries in ascending code order, one entry per
// distinct value. The returned slice is a copy.
func All() []Info {
	infos := make([]Info, len(registry))
	copy(infos, registry)

	return infos
}

// Lookup resolves a canonical name or alias to its registry entry.
func Lookup(name string) (Info, bool) {
	for _, info := range registry {
		if info.Name == name {
			return info, true
		}

		for _, alias := range info.Aliases {
			if alias == name {
				return info, true
			}
		}
	}

	return Info{}, false
}
