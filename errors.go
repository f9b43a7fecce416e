// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package pureconfig

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

// Error kinds.
const (
	// Syntax indicates the document does not match the grammar.
	Syntax ErrorKind = 1 + iota
	// Encoding indicates a key, value, or comment is not valid UTF-8.
	Encoding
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case Syntax:
		return "Syntax"
	case Encoding:
		return "Encoding"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel errors for use with errors.Is.
var (
	ErrSyntax   = errors.New("syntax error")
	ErrEncoding = errors.New("invalid UTF-8")
)

// ParseError is the error returned for documents that cannot be parsed.
type ParseError struct {
	Kind ErrorKind
	// Line is the 1-based line number where the offending line starts.
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config: line %d: %v: %s", e.Line, e.Unwrap(), e.Msg)
}

// Unwrap returns ErrSyntax or ErrEncoding depending on e.Kind.
func (e *ParseError) Unwrap() error {
	if e.Kind == Encoding {
		return ErrEncoding
	}
	return ErrSyntax
}
