// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// iniedit is a command-line tool that tweaks individual settings in
// INI files while leaving the rest of the file untouched.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"zombiezen.com/go/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errNotFound) {
			fmt.Fprintln(os.Stderr, "iniedit:", err)
		}
		os.Exit(1)
	}
}

func initLogging(verbose bool) {
	minLevel := log.Info
	if verbose {
		minLevel = log.Debug
	}
	log.SetDefault(&log.LevelFilter{
		Min:    minLevel,
		Output: log.New(os.Stderr, "iniedit: ", log.StdFlags, nil),
	})
}
