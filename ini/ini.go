// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

// A File is an INI document held as a sequence of raw lines. Each line
// retains its original terminator; only the final line may lack one. The
// zero value is an empty document.
//
// A File is not safe for concurrent use: lookups build an internal index
// on demand. Callers that share a File must serialize access to it.
type File struct {
	lines []string
	index map[string][]span // lazily built; nil after any edit
}

// A span is a half-open range [start, end) of the lines in a section's
// body. The header line itself is not part of the span.
type span struct {
	start, end int
}

var (
	optionRE  = regexp.MustCompile(`^([^\s=]+)\s*=\s*(.*)`)
	sectionRE = regexp.MustCompile(`^\[([^\]]+)\]`)
)

type lineKind int

const (
	kindBlank lineKind = iota
	kindComment
	kindSection
	kindOption
	kindOther
)

// classify interprets a single stored line, ignoring surrounding
// whitespace. For a section header, key holds the section name. The order
// of the checks is significant: a line like "[a=b]" is a section header
// named "a=b", not an option.
func classify(line string) (kind lineKind, key, value string) {
	t := strings.TrimSpace(line)
	if t == "" {
		return kindBlank, "", ""
	}
	if t[0] == '#' || t[0] == ';' {
		return kindComment, "", ""
	}
	if m := sectionRE.FindStringSubmatch(t); m != nil {
		return kindSection, m[1], ""
	}
	if m := optionRE.FindStringSubmatch(t); m != nil {
		return kindOption, m[1], m[2]
	}
	return kindOther, "", ""
}

// Parse reads an INI document from r. The document is split into lines
// after each newline byte and every input byte is kept, so a File that is
// not subsequently edited serializes back to exactly the bytes read.
// Parse fails only if reading from r fails.
func Parse(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)
	f := new(File)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			f.lines = append(f.lines, line)
		}
		if err == io.EOF {
			return f, nil
		}
		if err != nil {
			return f, fmt.Errorf("parse ini file: %w", err)
		}
	}
}

// Load reads and parses the INI file at path. A missing file is not an
// error: Load returns an empty File, treating the file as one that will
// be created on the next write.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return new(File), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load ini file: %w", err)
	}
	f := new(File)
	if err := f.UnmarshalText(data); err != nil {
		return nil, fmt.Errorf("load ini file: %s: %w", path, err)
	}
	return f, nil
}

// Len returns the number of lines in the document.
func (f *File) Len() int {
	if f == nil {
		return 0
	}
	return len(f.lines)
}

// Get returns the value of the first option with the given key in the
// given section. Passing an empty section name searches the null section:
// the lines before the first section header. If the option is not
// present, Get returns the empty string.
func (f *File) Get(section, option string) string {
	v, _ := f.Lookup(section, option)
	return v
}

// Lookup returns the value of the first option with the given key in the
// given section and reports whether the option was present. This
// distinguishes an option set to the empty string from an absent option.
func (f *File) Lookup(section, option string) (value string, ok bool) {
	if f == nil {
		return "", false
	}
	if f.index == nil {
		f.buildIndex()
	}
	for _, sp := range f.index[section] {
		for _, line := range f.lines[sp.start:sp.end] {
			if kind, key, v := classify(line); kind == kindOption && key == option {
				return v, true
			}
		}
	}
	return "", false
}

// buildIndex maps each section name to the line ranges of its bodies, in
// document order. A repeated section name gets one span per occurrence,
// so lookups visit option lines in the same order a full scan would.
func (f *File) buildIndex() {
	f.index = make(map[string][]span)
	name, start := "", 0
	for i, line := range f.lines {
		if kind, header, _ := classify(line); kind == kindSection {
			f.index[name] = append(f.index[name], span{start, i})
			name, start = header, i+1
		}
	}
	f.index[name] = append(f.index[name], span{start, len(f.lines)})
}

// MarshalText serializes the document. If the File has not been edited
// since it was parsed, the result is byte for byte identical to the
// original input.
func (f *File) MarshalText() ([]byte, error) {
	if f == nil {
		return nil, nil
	}
	var buf []byte
	for _, line := range f.lines {
		buf = append(buf, line...)
	}
	return buf, nil
}

// UnmarshalText parses the INI data, replacing the contents of f.
func (f *File) UnmarshalText(data []byte) error {
	parsed, err := Parse(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*f = *parsed
	return nil
}

// WriteTo writes the document to w, implementing io.WriterTo.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if f == nil {
		return 0, nil
	}
	var n int64
	for _, line := range f.lines {
		nn, err := io.WriteString(w, line)
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
