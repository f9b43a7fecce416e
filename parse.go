// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package pureconfig

import (
	"bytes"
	"errors"
)

// ParseLines parses a document into its comment and property lines, in
// document order. Blank lines are skipped. ParseLines either matches the whole
// document or returns a *ParseError and no lines.
func ParseLines(data []byte) ([]Line, error) {
	var lines []Line
	pos := 0
	lineno := 1
	var noMatch *ParseError
	for {
		n := skipBlankLines(data[pos:])
		lineno += bytes.Count(data[pos:pos+n], []byte("\n"))
		pos += n
		if pos == len(data) {
			break
		}
		l, n, err := matchLine(data[pos:])
		if err != nil {
			if !errors.As(err, &noMatch) {
				return nil, err
			}
			noMatch.Line = lineno
			if noMatch.Kind == Encoding {
				return nil, noMatch
			}
			break
		}
		lines = append(lines, l)
		lineno += bytes.Count(data[pos:pos+n], []byte("\n"))
		pos += n
	}
	if pos < len(data) {
		if noMatch == nil {
			noMatch = &ParseError{Kind: Syntax, Line: lineno, Msg: "unexpected trailing input"}
		}
		return nil, noMatch
	}
	return lines, nil
}

// skipBlankLines returns the number of spaces, tabs, and line terminators at
// the start of b.
func skipBlankLines(b []byte) int {
	n := 0
	for n < len(b) {
		switch {
		case b[n] == ' ' || b[n] == '\t' || b[n] == '\n':
			n++
		case isLineTerminator(b[n:]):
			n += 2
		default:
			return n
		}
	}
	return n
}
