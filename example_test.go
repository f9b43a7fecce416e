// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package pureconfig_test

import (
	"errors"
	"fmt"

	"github.com/yourbase/pureconfig"
)

func ExampleParseString() {
	const configFile = `
		# Where the build runs.
		hostname = dynamo
		port = "5153"
		motd = builds are # great`
	cfg, err := pureconfig.ParseString(configFile)
	if err != nil {
		// handle error
	}
	fmt.Println(cfg.Value("hostname"))
	fmt.Println(cfg.Value("port"))
	fmt.Println(cfg.Value("motd"))

	// Output:
	// dynamo
	// 5153
	// builds are # great
}

func ExampleConfig_Get() {
	cfg, err := pureconfig.ParseString("a = \"1\"\na = \"2\"\n")
	if err != nil {
		// handle error
	}
	if v, ok := cfg.Get("a"); ok {
		fmt.Println("a:", v)
	}
	if _, ok := cfg.Get("b"); !ok {
		fmt.Println("b is not set")
	}

	// Output:
	// a: 2
	// b is not set
}

func ExampleParseLines() {
	lines, err := pureconfig.ParseLines([]byte("# Defaults\nhostname = dynamo\n"))
	if err != nil {
		// handle error
	}
	for _, l := range lines {
		switch l.Kind {
		case pureconfig.Comment:
			fmt.Printf("comment %q\n", l.Comment)
		case pureconfig.KeyValue:
			fmt.Printf("%s -> %s\n", l.Key, l.Value)
		}
	}

	// Output:
	// comment " Defaults"
	// hostname -> dynamo
}

func ExampleParseError() {
	_, err := pureconfig.ParseString("hostname = \"dynamo\" great\n")
	var perr *pureconfig.ParseError
	if errors.As(err, &perr) {
		fmt.Println(perr.Kind, "error on line", perr.Line)
	}
	fmt.Println(errors.Is(err, pureconfig.ErrSyntax))

	// Output:
	// Syntax error on line 1
	// true
}
