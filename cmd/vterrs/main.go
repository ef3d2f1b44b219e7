// SPDX-FileCopyrightText: 2026 Vaastav Technologies (OPC) Private Limited
// SPDX-License-Identifier: Apache-2.0

// Package main provides the CLI entry point for vterrs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"

	"github.com/vaastav-tech/vterrs/errcode"
	"github.com/vaastav-tech/vterrs/internal/cli"
	"github.com/vaastav-tech/vterrs/vterr"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Acquire process lock to prevent concurrent vterrs instances
	// racing on the same paths.
	lockPath := filepath.Join(os.TempDir(), "vterrs.lock")
	lock := flock.New(lockPath)

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return int(errcode.UnstableState)
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another vterrs instance is already running\n")

		return int(errcode.Generic)
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewCLI()

	if err := app.Run(ctx, os.Args); err != nil {
		app.Output().RenderError(err, "vterrs")

		return int(vterr.CodeOf(err))
	}

	return int(errcode.OK)
}
