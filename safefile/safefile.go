// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package safefile replaces files atomically and makes timestamped
// backup copies of them.
package safefile

import (
	"fmt"
	"os"
	"time"

	"github.com/google/renameio/v2"
)

// WriteFile atomically replaces the file at path with data. The data is
// written to a temporary file in the same directory and renamed into
// place, so a reader sees either the old contents or the new contents,
// never a truncated or partially written file. perm applies to the
// written file exactly, regardless of umask and of the permissions of
// any file being replaced.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	// renameio.WriteFile defaults to WithExistingPermissions, which
	// would keep a replaced file's old mode instead of perm.
	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(perm), renameio.IgnoreUmask())
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer pending.Cleanup()
	if _, err := pending.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// stampLayout names backups to the second, like
// "app.ini.2026-08-24@15:04:05~".
const stampLayout = "2006-01-02@15:04:05"

// Backup copies the file at path to a sibling named path.<timestamp>~
// and returns the copy's path. The copy keeps the original file's
// permissions. Backing up a file that does not exist is not an error:
// Backup returns an empty path and does nothing.
func Backup(path string) (string, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	name := path + "." + time.Now().Format(stampLayout) + "~"
	if err := os.WriteFile(name, data, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	// WriteFile permissions are subject to umask; fix them up.
	if err := os.Chmod(name, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("back up %s: %w", path, err)
	}
	return name, nil
}
