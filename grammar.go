// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package pureconfig

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// LineKind identifies the production a Line matched.
type LineKind int

// Line kinds.
const (
	KeyValue LineKind = 1 + iota
	Comment
)

// String returns the kind's name.
func (k LineKind) String() string {
	switch k {
	case KeyValue:
		return "KeyValue"
	case Comment:
		return "Comment"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// A Line is a single parsed line. Key and Value are set for KeyValue lines;
// Comment is set for Comment lines.
type Line struct {
	Kind  LineKind
	Key   string
	Value string
	// Comment is the text after the '#', including leading whitespace.
	Comment string
}

var separator = []byte(" = ")

// loneCRError reports a carriage return that does not end a line.
func loneCRError() error {
	return &ParseError{Kind: Syntax, Msg: "carriage return without line feed"}
}

// matchLine matches one line at the start of b, which must not begin with a
// blank. It returns the matched line and the number of bytes consumed,
// including the line terminator. If no production matches, n is zero and err
// is a *ParseError of kind Syntax.
func matchLine(b []byte) (_ Line, n int, err error) {
	if b[0] == '#' {
		end, next := lineEnd(b)
		content := b[1:end]
		if hasCR(content) {
			return Line{}, 0, loneCRError()
		}
		if !utf8.Valid(content) {
			return Line{}, 0, &ParseError{Kind: Encoding, Msg: "comment"}
		}
		return Line{Kind: Comment, Comment: string(content)}, next, nil
	}

	eol, _ := lineEnd(b)
	i := bytes.Index(b[:eol], separator)
	if i == -1 {
		return Line{}, 0, &ParseError{Kind: Syntax, Msg: fmt.Sprintf("could not find %q", separator)}
	}
	key := b[:i]
	if hasCR(key) {
		return Line{}, 0, loneCRError()
	}
	if !utf8.Valid(key) {
		return Line{}, 0, &ParseError{Kind: Encoding, Msg: "key"}
	}
	start := i + len(separator)
	value, vn, err := matchValue(b[start:])
	if err != nil {
		return Line{}, 0, err
	}
	if !utf8.Valid(value) {
		return Line{}, 0, &ParseError{Kind: Encoding, Msg: fmt.Sprintf("value of %q", key)}
	}
	return Line{Kind: KeyValue, Key: string(key), Value: string(value)}, start + vn, nil
}

// matchValue matches a quoted or bare value at the start of b and the rest of
// its line. It returns the value's content and the number of bytes consumed.
func matchValue(b []byte) (value []byte, n int, err error) {
	if len(b) > 0 && b[0] == '"' {
		end := bytes.IndexByte(b[1:], '"')
		if end == -1 {
			return nil, 0, &ParseError{Kind: Syntax, Msg: "unterminated quoted value"}
		}
		value = b[1 : 1+end]
		n = 2 + end
		n += countBlanks(b[n:])
		if n < len(b) && !isLineTerminator(b[n:]) {
			eol, _ := lineEnd(b[n:])
			return nil, 0, &ParseError{Kind: Syntax, Msg: fmt.Sprintf("unexpected %q after quoted value", b[n:n+eol])}
		}
		_, next := lineEnd(b[n:])
		return value, n + next, nil
	}

	end, next := lineEnd(b)
	value = bytes.TrimRight(b[:end], " \t")
	if hasCR(value) {
		return nil, 0, loneCRError()
	}
	if len(value) == 0 {
		return nil, 0, &ParseError{Kind: Syntax, Msg: "missing value"}
	}
	return value, next, nil
}

// lineEnd returns the index of the line terminator in b (or len(b) if b has
// none) and the index just past the terminator.
func lineEnd(b []byte) (end, next int) {
	i := bytes.IndexByte(b, '\n')
	if i == -1 {
		return len(b), len(b)
	}
	if i > 0 && b[i-1] == '\r' {
		return i - 1, i + 1
	}
	return i, i + 1
}

// hasCR reports whether b contains a carriage return. Outside quoted values, a
// carriage return is only allowed as part of a "\r\n" terminator.
func hasCR(b []byte) bool {
	return bytes.IndexByte(b, '\r') != -1
}

func isLineTerminator(b []byte) bool {
	return bytes.HasPrefix(b, []byte("\n")) || bytes.HasPrefix(b, []byte("\r\n"))
}

// countBlanks returns the number of spaces and tabs at the start of b.
func countBlanks(b []byte) int {
	n := 0
	for n < len(b) && (b[n] == ' ' || b[n] == '\t') {
		n++
	}
	return n
}
