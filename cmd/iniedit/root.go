// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/yourbase/iniedit/edit"
)

const version = "0.1.0"

var (
	// flags resolves option values from the command line first, then
	// from INIEDIT_* environment variables, then flag defaults.
	flags = viper.New()

	rootCmd = &cobra.Command{
		Use:   "iniedit",
		Short: "Tweak individual settings in INI files",
		Long: `iniedit adds, changes, and removes individual options in INI-style
files without managing the file as a whole: comments, blank lines, and
lines it does not recognize are preserved byte for byte. The file is
created if it does not exist, and missing sections are added.

Edits are idempotent. Setting an option to the value it already has
leaves the file untouched, and every command prints "changed" or "ok"
to say whether the file was (or, with --check, would be) rewritten.

Every flag can also be set through the environment: --backup becomes
INIEDIT_BACKUP, --check becomes INIEDIT_CHECK, and so on.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogging(flags.GetBool("verbose"))
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "print results as JSON")
	rootCmd.PersistentFlags().Bool("backup", false, "save a timestamped copy of the file before rewriting it")
	rootCmd.PersistentFlags().Bool("check", false, "report whether the file would change without writing it")
	rootCmd.PersistentFlags().String("mode", "", "octal permissions for rewritten files (default: keep existing)")

	flags.SetEnvPrefix("INIEDIT")
	flags.AutomaticEnv()
	cobra.CheckErr(flags.BindPFlags(rootCmd.PersistentFlags()))

	rootCmd.AddCommand(getCmd, setCmd, removeCmd)
}

// newRequest seeds an edit.Request for the given file argument from the
// persistent flags.
func newRequest(pathArg string) (edit.Request, error) {
	path, err := expandUser(pathArg)
	if err != nil {
		return edit.Request{}, err
	}
	req := edit.Request{
		Path:      path,
		Backup:    flags.GetBool("backup"),
		CheckMode: flags.GetBool("check"),
	}
	if modeStr := flags.GetString("mode"); modeStr != "" {
		m, err := strconv.ParseUint(modeStr, 8, 32)
		if err != nil {
			return edit.Request{}, fmt.Errorf("parse mode %q: not octal permissions", modeStr)
		}
		req.Mode = os.FileMode(m)
	}
	return req, nil
}

func applyAndReport(cmd *cobra.Command, req edit.Request) error {
	res, err := edit.Apply(cmd.Context(), req)
	if err != nil {
		return err
	}
	return report(cmd.OutOrStdout(), res)
}

func report(w io.Writer, res edit.Result) error {
	if flags.GetBool("json") {
		return json.NewEncoder(w).Encode(res)
	}
	status := "ok"
	if res.Changed {
		status = "changed"
	}
	if res.BackupPath != "" {
		_, err := fmt.Fprintf(w, "%s (backup: %s)\n", status, res.BackupPath)
		return err
	}
	_, err := fmt.Fprintln(w, status)
	return err
}

// expandUser resolves a leading "~/" against the home directory, the
// way a shell would.
func expandUser(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand %s: %w", path, err)
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
