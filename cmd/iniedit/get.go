// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourbase/iniedit/ini"
)

// errNotFound distinguishes a missing option, which exits 1 without a
// message like git config does, from real failures.
var errNotFound = errors.New("option not found")

var getCmd = &cobra.Command{
	Use:   "get FILE SECTION OPTION",
	Short: "Print the value of an option",
	Long: `Get prints the value of the first option with the given key inside the
named section. An empty SECTION argument names the lines before the
first section header. If the file or the option does not exist, get
prints nothing and exits with status 1.`,
	Example: `  iniedit get setup.ini drinks fav
  iniedit get ~/.gitconfig '' editor`,
	Args: cobra.ExactArgs(3),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	path, err := expandUser(args[0])
	if err != nil {
		return err
	}
	f, err := ini.Load(path)
	if err != nil {
		return err
	}
	value, ok := f.Lookup(args[1], args[2])
	if !ok {
		return errNotFound
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
