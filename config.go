// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package pureconfig

import (
	"fmt"
	"io"
	"io/ioutil"
)

// A Config is a set of properties parsed from a document. A Config is not
// modified after it is built, so it can be read by multiple concurrent
// goroutines. A nil *Config has no properties.
type Config struct {
	props map[string]string
}

// Parse parses a document into a Config.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(data []byte) (*Config, error) {
	lines, err := ParseLines(data)
	if err != nil {
		return nil, err
	}
	return FromLines(lines), nil
}

// ParseString parses a document held in a string.
func ParseString(s string) (*Config, error) {
	return Parse([]byte(s))
}

// Read reads r until EOF and parses the result.
func Read(r io.Reader) (*Config, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// FromLines builds a Config from a sequence of lines. Comments are ignored.
// If a key appears more than once, the last value wins.
func FromLines(lines []Line) *Config {
	c := &Config{props: make(map[string]string)}
	for _, l := range lines {
		if l.Kind == KeyValue {
			c.props[l.Key] = l.Value
		}
	}
	return c
}

// Get returns the value of the named property. The name must match the key
// exactly.
func (c *Config) Get(name string) (value string, ok bool) {
	if c == nil {
		return "", false
	}
	value, ok = c.props[name]
	return value, ok
}

// Value returns the value of the named property or the empty string if it is
// not set.
func (c *Config) Value(name string) string {
	v, _ := c.Get(name)
	return v
}

// Len returns the number of distinct property names in c.
func (c *Config) Len() int {
	if c == nil {
		return 0
	}
	return len(c.props)
}

// UnmarshalText parses data and replaces the properties in c.
func (c *Config) UnmarshalText(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
