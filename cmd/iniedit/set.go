// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"
	"github.com/yourbase/iniedit/edit"
)

var setCmd = &cobra.Command{
	Use:   "set FILE SECTION OPTION VALUE",
	Short: "Set an option to a value",
	Long: `Set writes "OPTION = VALUE" into the named section, creating the file
and the section as needed. If the first matching option already has the
requested value the file is left untouched; otherwise its line is
replaced in place. An empty SECTION argument places the option before
the first section header.`,
	Example: `  iniedit set setup.ini drinks fav lemonade
  iniedit set --backup /etc/app.ini server port 8080`,
	Args: cobra.ExactArgs(4),
	RunE: runSet,
}

func runSet(cmd *cobra.Command, args []string) error {
	req, err := newRequest(args[0])
	if err != nil {
		return err
	}
	req.State = edit.StatePresent
	req.Section = args[1]
	req.Option = args[2]
	req.Value = args[3]
	return applyAndReport(cmd, req)
}
