// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package vterr defines the error and warning types shared by Vaastav
// Technologies projects.
//
// Every failure a tool reports to its caller is an *Error: a message,
// an exit code from the errcode registry, an optional cause, and
// optional structured fields for logging. CLIs map the code to the
// process exit status; libraries wrap causes so errors.Is and errors.As
// keep working through the chain.
package vterr

import (
	"errors"
	"fmt"

	"github.com/vaastav-tech/vterrs/errcode"
)

// Sentinel errors for conditions that callers branch on with errors.Is.
var (
	// ErrUninitialised is returned when a component is used before
	// being initialised.
	ErrUninitialised = errors.New("not initialised")
	// ErrAlreadyExists is returned when state to be created already
	// exists.
	ErrAlreadyExists = errors.New("already exists")
	// ErrNotFound is returned when a required resource does not exist.
	ErrNotFound = errors.New("not found")
	// ErrPermissionDenied is returned when an operation is not
	// authorised.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrInterrupted is returned when an operation is cut short by an
	// interrupt signal.
	ErrInterrupted = errors.New("interrupted")
)

// ExitCoder is implemented by errors that carry a process exit code.
type ExitCoder interface {
	ExitCode() int
}

// Error is the failure type native to Vaastav Technologies code. It
// encapsulates any known failure raised by known code so that CLIs can
// handle it uniformly.
type Error struct {
	Message string
	Code    errcode.Code
	Cause   error
	Fields  map[string]any
}

// New creates an Error with the given exit code and message.
func New(code errcode.Code, message string) *Error {
	return &Error{
		Message: message,
		Code:    code,
	}
}

// Newf creates an Error with the given exit code and formatted message.
// The %w verb is honoured: the formatted error becomes the cause so the
// chain stays visible to errors.Is and errors.As.
func Newf(code errcode.Code, format string, args ...any) *Error {
	err := fmt.Errorf(format, args...)
	if errors.Unwrap(err) != nil {
		return &Error{
			Code:  code,
			Cause: err,
		}
	}

	return &Error{
		Message: err.Error(),
		Code:    code,
	}
}

// Wrap creates an Error around cause. The exit code is taken from the
// cause's chain when present, Generic otherwise.
func Wrap(cause error, message string) *Error {
	return &Error{
		Message: message,
		Code:    CodeOf(cause),
		Cause:   cause,
	}
}

// WithCode sets the exit code and returns the error for chaining.
func (e *Error) WithCode(code errcode.Code) *Error {
	e.Code = code

	return e
}

// WithField attaches a structured field and returns the error for
// chaining.
func (e *Error) WithField(key string, value any) *Error {
	if e.Fields == nil {
		e.Fields = make(map[string]any)
	}

	e.Fields[key] = value

	return e
}

// Error renders the message. The main message takes precedence; a bare
// cause speaks for itself; an error with neither falls back to the
// description of its code.
func (e *Error) Error() string {
	switch {
	case e.Message == "" && e.Cause != nil:
		return e.Cause.Error()
	case e.Message != "" && e.Cause == nil:
		return e.Message
	case e.Message != "" && e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	default:
		return e.Code.Describe()
	}
}

// Unwrap exposes the cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code a process should terminate with.
func (e *Error) ExitCode() int {
	return int(e.Code)
}

// Map returns a structured form of the error for structured logging.
func (e *Error) Map() map[string]any {
	m := map[string]any{
		"type":    "vterr.Error",
		"message": e.Error(),
		"code":    int(e.Code),
	}

	if e.Cause != nil {
		m["cause_type"] = fmt.Sprintf("%T", e.Cause)
		m["cause_message"] = e.Cause.Error()
	}

	for key, value := range e.Fields {
		m["field_"+key] = value
	}

	return m
}

// CodeOf extracts the exit code from anywhere in the error chain.
// Errors without a code default to Generic; nil means OK.
func CodeOf(err error) errcode.Code {
	if err == nil {
		return errcode.OK
	}

	var coder ExitCoder
	if errors.As(err, &coder) {
		return errcode.Code(coder.ExitCode())
	}

	return errcode.Generic
}
