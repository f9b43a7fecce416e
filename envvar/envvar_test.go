// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package envvar

import (
	"os"
	"testing"
)

const testKey = "PURECONFIG_ENVVAR_TEST"

// setenv sets testKey for the duration of the test. A nil value unsets it.
func setenv(t *testing.T, value *string) {
	t.Helper()
	old, hadOld := os.LookupEnv(testKey)
	t.Cleanup(func() {
		if hadOld {
			os.Setenv(testKey, old)
		} else {
			os.Unsetenv(testKey)
		}
	})
	if value == nil {
		os.Unsetenv(testKey)
		return
	}
	if err := os.Setenv(testKey, *value); err != nil {
		t.Fatal(err)
	}
}

func strptr(s string) *string { return &s }

func TestGet(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  string
	}{
		{name: "Unset", value: nil, want: "pureconfig.conf"},
		{name: "Empty", value: strptr(""), want: "pureconfig.conf"},
		{name: "Set", value: strptr("/etc/build.conf"), want: "/etc/build.conf"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setenv(t, test.value)
			if got := Get(testKey, "pureconfig.conf"); got != test.want {
				t.Errorf("Get(%q, ...) = %q; want %q", testKey, got, test.want)
			}
		})
	}
}

func TestBool(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  bool
	}{
		{name: "Unset", value: nil, want: false},
		{name: "Empty", value: strptr(""), want: false},
		{name: "One", value: strptr("1"), want: true},
		{name: "True", value: strptr("true"), want: true},
		{name: "Zero", value: strptr("0"), want: false},
		{name: "Garbage", value: strptr("yes please"), want: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setenv(t, test.value)
			if got := Bool(testKey); got != test.want {
				t.Errorf("Bool(%q) = %t; want %t", testKey, got, test.want)
			}
		})
	}
}
