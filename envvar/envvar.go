// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package envvar reads the environment variables that configure the
// pureconfig command.
package envvar

import (
	"os"
	"strconv"
)

// Get returns the value of the named environment variable, or defaultValue if
// the variable is unset or empty.
func Get(key string, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// Bool reports whether the named environment variable holds a true value as
// understood by strconv.ParseBool (1, t, T, TRUE, true, or True). Unset,
// empty, and malformed values are false.
func Bool(key string) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && b
}
