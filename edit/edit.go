// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package edit applies desired-state changes to INI files on disk.
//
// It layers idempotence, backups, and atomic replacement over the ini
// package: an Apply call describes the state a single option or section
// should be in, and the file is rewritten only when its contents differ
// from that state.
package edit

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yourbase/iniedit/ini"
	"github.com/yourbase/iniedit/safefile"
	"zombiezen.com/go/log"
)

// State selects whether Apply ensures presence or absence.
type State string

const (
	// StatePresent ensures the option exists with the requested value.
	StatePresent State = "present"
	// StateAbsent removes the option, or the whole section if no option
	// is named.
	StateAbsent State = "absent"
)

// ErrUnknownState is returned by Apply when a Request carries a State
// other than StatePresent, StateAbsent, or empty.
var ErrUnknownState = errors.New("unknown state")

// A Request describes the desired state of one option or section in an
// INI file.
type Request struct {
	// Path is the file to edit. The file is created if it does not
	// exist. Required.
	Path string

	// Section is the section to edit. The empty string targets the
	// null section before the first header.
	Section string

	// Option and Value name the option to set or remove. With
	// StateAbsent and no Option, the entire Section is removed.
	Option string
	Value  string

	// State is StatePresent or StateAbsent. Empty means StatePresent.
	State State

	// Backup makes a timestamped copy of the file before rewriting it.
	Backup bool

	// CheckMode reports what would change without touching the file.
	CheckMode bool

	// Mode is the permission for rewritten files. Zero means keep the
	// file's current mode, or 0644 when creating it.
	Mode os.FileMode
}

// A Result reports what Apply did.
type Result struct {
	// Path is the file that was examined or rewritten.
	Path string `json:"path"`

	// Changed reports whether the file's actual state differed from the
	// requested state. In check mode the file is left untouched even
	// when Changed is true.
	Changed bool `json:"changed"`

	// BackupPath is the timestamped copy made before a rewrite, or
	// empty if none was made.
	BackupPath string `json:"backup,omitempty"`

	// Msg is a short human-readable status.
	Msg string `json:"msg"`
}

// Apply brings one option or section of the INI file named by req into
// the requested state and reports whether the file had to change.
//
// With StatePresent, the option is written only if it is missing or has
// a different value, so repeating a call is a no-op. With StateAbsent,
// the option (or the whole section, if no option is named) is removed
// if present. A request that names no option under StatePresent, or
// neither a section nor an option under StateAbsent, changes nothing.
//
// The file is rewritten only when Changed is true and CheckMode is off.
// A canceled ctx aborts Apply before it writes anything; once the
// rewrite begins it runs to completion. If Apply returns an error the
// file keeps its previous contents, though a backup may already have
// been written.
func Apply(ctx context.Context, req Request) (Result, error) {
	res := Result{Path: req.Path}
	state := req.State
	if state == "" {
		state = StatePresent
	}
	switch {
	case req.Path == "":
		return res, errors.New("edit ini file: no path given")
	case state != StatePresent && state != StateAbsent:
		return res, fmt.Errorf("edit ini file %s: %w %q", req.Path, ErrUnknownState, string(req.State))
	case !ini.IsValidSection(req.Section):
		return res, fmt.Errorf("edit ini file %s: invalid section %q", req.Path, req.Section)
	case req.Option != "" && !ini.IsValidOption(req.Option):
		return res, fmt.Errorf("edit ini file %s: invalid option %q", req.Path, req.Option)
	case state == StatePresent && req.Option != "" && !ini.IsValidValue(req.Value):
		return res, fmt.Errorf("edit ini file %s: invalid value %q", req.Path, req.Value)
	}

	f, err := ini.Load(req.Path)
	if err != nil {
		return res, fmt.Errorf("edit ini file: %w", err)
	}

	switch state {
	case StatePresent:
		if req.Option == "" {
			log.Debugf(ctx, "%s: no option named, nothing to do", req.Path)
			break
		}
		if cur, ok := f.Lookup(req.Section, req.Option); !ok || cur != req.Value {
			f.Set(req.Section, req.Option, req.Value)
			res.Changed = true
		}
	case StateAbsent:
		switch {
		case req.Section != "" && req.Option == "":
			res.Changed = f.DeleteSection(req.Section)
		case req.Option != "":
			res.Changed = f.DeleteOption(req.Section, req.Option)
		default:
			log.Debugf(ctx, "%s: neither section nor option named, nothing to do", req.Path)
		}
	}

	if !res.Changed {
		log.Debugf(ctx, "%s: already in requested state", req.Path)
		res.Msg = "OK"
		return res, nil
	}
	if req.CheckMode {
		log.Infof(ctx, "%s: would change, left untouched (check mode)", req.Path)
		res.Msg = "OK"
		return res, nil
	}

	// Past this point the edit is committed. A late cancellation must
	// not split the backup from the rewrite that follows it.
	if err := ctx.Err(); err != nil {
		return res, fmt.Errorf("edit ini file %s: %w", req.Path, err)
	}
	ctx = context.WithoutCancel(ctx)

	if req.Backup {
		backupPath, err := safefile.Backup(req.Path)
		if err != nil {
			return res, fmt.Errorf("edit ini file: %w", err)
		}
		res.BackupPath = backupPath
		if backupPath != "" {
			log.Infof(ctx, "%s: backed up to %s", req.Path, backupPath)
		}
	}

	data, err := f.MarshalText()
	if err != nil {
		return res, fmt.Errorf("edit ini file %s: %w", req.Path, err)
	}
	if err := safefile.WriteFile(req.Path, data, writeMode(req)); err != nil {
		return res, fmt.Errorf("edit ini file: %w", err)
	}
	log.Infof(ctx, "%s: wrote %d bytes", req.Path, len(data))
	res.Msg = "OK"
	return res, nil
}

// writeMode picks the permissions for a rewrite: the requested mode,
// the file's current mode, or 0644 for new files.
func writeMode(req Request) os.FileMode {
	if req.Mode != 0 {
		return req.Mode
	}
	if info, err := os.Stat(req.Path); err == nil {
		return info.Mode().Perm()
	}
	return 0o644
}
