// Copyright 2026 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini edits INI files while preserving their exact layout.

Unlike most INI libraries, this package does not parse documents into a
structured model. A File holds the raw lines of the document, and edits
rewrite only the lines they touch: comments, blank lines, indentation,
ordering, and even lines that are not valid INI survive a
read-modify-write cycle byte for byte. This makes the package suitable
for editing configuration files that are also maintained by hand or by
other tools.

# Syntax

A document is a sequence of lines. Each line is interpreted, in priority
order, as a blank line, a comment, a section header, an option, or plain
text that this package leaves alone. Interpretation ignores leading and
trailing whitespace on the line and never alters the stored bytes.

A comment line begins with a hash ('#') or a semicolon (';'). Inline
comments are not supported.

A section header is the section name in square brackets on its own line:

	[section]

Text after the closing bracket is ignored. A section extends to the next
header or the end of the document. Options before any header belong to
the null section, addressed by the empty name ("").

An option line is a key and a value separated by an equals sign ('='):

	key = value

Keys cannot contain whitespace or equals signs. The value runs to the
end of the line, so it may contain any characters, including further
equals signs. Whitespace around the key and around the value is not
significant. Lines written by this package always use the canonical form
"key = value" with a trailing newline; untouched lines keep whatever
spacing they had.

# Duplicates

Reads return the first option line with a matching key in the named
section. Documents that repeat a section name are not fully supported:
reads and DeleteOption search every occurrence in document order, Set
edits within the first occurrence, and DeleteSection removes the last
occurrence.
*/
package ini
