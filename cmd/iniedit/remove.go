// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
	"github.com/yourbase/iniedit/edit"
)

var removeCmd = &cobra.Command{
	Use:     "remove FILE SECTION [OPTION]",
	Aliases: []string{"rm"},
	Short:   "Remove an option or a whole section",
	Long: `Remove deletes the first option with the given key from the named
section. With no OPTION argument it deletes the whole section: the
header and every line under it, up to the next section header. Removing
something that is already gone is not an error; the command prints "ok"
and the file is left untouched.`,
	Example: `  iniedit remove setup.ini drinks fav
  iniedit remove setup.ini drinks`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	req, err := newRequest(args[0])
	if err != nil {
		return err
	}
	req.State = edit.StateAbsent
	req.Section = args[1]
	if len(args) == 3 {
		req.Option = args[2]
	}
	return applyAndReport(cmd, req)
}
