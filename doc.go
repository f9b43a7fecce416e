// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package pureconfig parses a minimal line-oriented configuration format into a
flat mapping from property name to string value.

Syntax

A document is UTF-8 text made of zero or more lines. Lines end with a line
feed ("\n"), a carriage return and line feed ("\r\n"), or the end of the
document. Spaces and tabs at the beginning of a line and blank lines are
ignored.

A line whose first non-blank character is a hash ('#') is a comment. Its
content is everything after the hash, including any leading whitespace:

	# The build host.

Any other line is a property: a key and a value separated by exactly one
space, an equals sign, and one space (" = "):

	hostname = dynamo
	path = "/foo/bar"

The key is everything before the first " = " on the line. Values are either
bare or quoted. A bare value runs to the end of the line, so a hash inside it
does not start a comment:

	motd = dynamo # not a comment

A quoted value starts with a double quote ('"') and ends at the next double
quote. It may span lines, may contain any byte other than a double quote, and
has no escape sequences. Only spaces and tabs may follow the closing quote on
the same line; earlier releases of this format rejected even those, so files
meant for older readers should end the line right after the quote. Bare values
must not be empty.

Outside quoted values, a carriage return is only allowed immediately before a
line feed.

Repeated keys

A key may appear more than once. The value from the last occurrence in the
document wins.

Errors

Parsing is all-or-nothing: either the whole document matches or no Config is
produced. Failures are reported as a *ParseError, which matches ErrSyntax or
ErrEncoding with errors.Is.
*/
package pureconfig
