// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"slices"
	"strings"
	"unicode"
)

// Set sets the option to the given value in the named section. The first
// existing option line with the key is rewritten in place; otherwise a
// new line is inserted at the end of the section, after its last option
// or comment line and before the next section header. If the section
// does not exist, a header and the option are appended to the end of the
// document, separated from existing content by a blank line unless the
// document already ends with one. Passing an empty section name edits
// the null section before the first header.
//
// Set always writes the canonical form "key = value" with a trailing
// newline; it does not preserve the spacing of a line it replaces. Set
// panics if IsValidSection(section), IsValidOption(option), or
// IsValidValue(value) report false.
func (f *File) Set(section, option, value string) {
	if !IsValidSection(section) {
		panic("File.Set invalid section: " + section)
	}
	if !IsValidOption(option) {
		panic("File.Set invalid option: " + option)
	}
	if !IsValidValue(value) {
		panic("File.Set invalid value: " + value)
	}
	f.index = nil
	canonical := option + " = " + value + "\n"
	cur := ""  // current section; "" is the null section
	last := -1 // last option, comment, or header line; -1 until one is seen
	for i, line := range f.lines {
		kind, key, _ := classify(line)
		switch kind {
		case kindComment:
			last = i
		case kindSection:
			if cur == section {
				// Leaving the section without having found the option:
				// insert it after the section's last content line.
				f.insertLine(last+1, canonical)
				return
			}
			cur, last = key, i
		case kindOption:
			if cur == section && key == option {
				f.lines[i] = canonical
				return
			}
			last = i
		}
	}
	if cur == section {
		f.insertLine(last+1, canonical)
		return
	}
	f.appendSection(section, canonical)
}

// DeleteOption removes the first option line with the given key in the
// named section and reports whether such a line was found. Comments and
// blank lines in the section are left in place.
func (f *File) DeleteOption(section, option string) bool {
	f.index = nil
	cur := ""
	for i, line := range f.lines {
		switch kind, key, _ := classify(line); kind {
		case kindSection:
			cur = key
		case kindOption:
			if cur == section && key == option {
				f.lines = slices.Delete(f.lines, i, i+1)
				return true
			}
		}
	}
	return false
}

// DeleteSection removes the named section: its header line and every
// line up to the next section header or the end of the document,
// including the section's comments and blank lines. It reports whether
// the section was found. The null section has no header line and cannot
// be deleted.
func (f *File) DeleteSection(section string) bool {
	f.index = nil
	start := -1
	for i, line := range f.lines {
		kind, name, _ := classify(line)
		if kind != kindSection {
			continue
		}
		if name == section {
			start = i
		} else if start >= 0 {
			f.lines = slices.Delete(f.lines, start, i)
			return true
		}
	}
	if start >= 0 {
		f.lines = slices.Delete(f.lines, start, len(f.lines))
		return true
	}
	return false
}

// insertLine places line at index i, first terminating the preceding
// line if the document ended without a newline.
func (f *File) insertLine(i int, line string) {
	if i > 0 && !strings.HasSuffix(f.lines[i-1], "\n") {
		f.lines[i-1] += "\n"
	}
	f.lines = slices.Insert(f.lines, i, line)
}

// appendSection adds a section header and its first option line at the
// end of the document.
func (f *File) appendSection(section, line string) {
	if n := len(f.lines); n > 0 {
		if !strings.HasSuffix(f.lines[n-1], "\n") {
			f.lines[n-1] += "\n"
		}
		if kind, _, _ := classify(f.lines[n-1]); kind != kindBlank {
			f.lines = append(f.lines, "\n")
		}
	}
	f.lines = append(f.lines, "["+section+"]\n", line)
}

// IsValidSection reports whether a string can be written as a section
// name. The empty string is valid: it names the null section.
func IsValidSection(name string) bool {
	return !strings.ContainsAny(name, "]\n\r")
}

// IsValidOption reports whether a string can be written as an option key
// and read back as the same key.
func IsValidOption(key string) bool {
	if key == "" {
		return false
	}
	if key[0] == '#' || key[0] == ';' || key[0] == '[' {
		return false
	}
	return !strings.Contains(key, "=") && !strings.ContainsFunc(key, unicode.IsSpace)
}

// IsValidValue reports whether a string can be written as an option
// value without breaking the document's line structure.
func IsValidValue(value string) bool {
	return !strings.ContainsAny(value, "\n\r")
}
