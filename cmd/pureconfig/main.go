// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// pureconfig prints property values from a configuration file.
//
// Usage:
//
//	pureconfig [-f FILE] [-wait DURATION] [-default VALUE] NAME...
//	pureconfig [-f FILE] -check
//
// FILE defaults to $PURECONFIG_FILE, or pureconfig.conf if that is unset.
// Setting $PURECONFIG_DEBUG to a true value enables debug logging.
//
// Exit codes:
//   - 0: all names were found (or, with -check, the file is valid)
//   - 1: the file could not be read or parsed, or a name is not set
//   - 2: usage error
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/yourbase/pureconfig"
	"github.com/yourbase/pureconfig/envvar"
	"github.com/yourbase/pureconfig/retry"
	"zombiezen.com/go/log"
)

const (
	fileEnv     = "PURECONFIG_FILE"
	debugEnv    = "PURECONFIG_DEBUG"
	defaultFile = "pureconfig.conf"

	usage = "usage: pureconfig [-f FILE] [-wait DURATION] [-default VALUE] NAME...\n" +
		"       pureconfig [-f FILE] -check"
)

func main() {
	log.SetDefault(newLogger(os.Stderr))
	ctx := context.Background()
	err := run(ctx, os.Stdout, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(0)
	}
	var uerr usageError
	if errors.As(err, &uerr) {
		fmt.Fprintln(os.Stderr, "pureconfig:", uerr.msg)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Errorf(ctx, "%v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer, args []string) error {
	flags := flag.NewFlagSet("pureconfig", flag.ContinueOnError)
	flags.SetOutput(ioutil.Discard)
	path := flags.String("f", envvar.Get(fileEnv, defaultFile), "path to configuration `file`")
	wait := flags.Duration("wait", 0, "keep retrying to read the file for up to this `duration`")
	check := flags.Bool("check", false, "only check that the file parses")
	defaultValue := flags.String("default", "", "`value` to print for names that are not set")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err.Error()}
	}
	names := flags.Args()
	if len(names) == 0 && !*check {
		return usageError{"no property names given"}
	}
	if len(names) > 0 && *check {
		return usageError{"-check does not take property names"}
	}
	hasDefault := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "default" {
			hasDefault = true
		}
	})

	var cfg *pureconfig.Config
	load := func(ctx context.Context) error {
		var err error
		cfg, err = loadFile(*path)
		return err
	}
	var err error
	if *wait > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, *wait)
		err = retry.Do(waitCtx, "reading "+*path, &retry.Exponential{Initial: 50 * time.Millisecond, Max: 2 * time.Second}, load)
		cancel()
	} else {
		err = load(ctx)
	}
	if err != nil {
		return err
	}
	if *check {
		log.Debugf(ctx, "%s: %d properties", *path, cfg.Len())
		return nil
	}

	values := make([]string, 0, len(names))
	var missing []string
	for _, name := range names {
		v, ok := cfg.Get(name)
		if !ok {
			if !hasDefault {
				missing = append(missing, name)
				continue
			}
			v = *defaultValue
		}
		values = append(values, v)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s: not set: %s", *path, strings.Join(missing, ", "))
	}
	for _, v := range values {
		if _, err := fmt.Fprintln(stdout, v); err != nil {
			return err
		}
	}
	return nil
}

func loadFile(path string) (*pureconfig.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := pureconfig.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

type usageError struct {
	msg string
}

func (e usageError) Error() string {
	return e.msg
}

// newLogger returns a logger that writes to w. Debug entries are written only
// if $PURECONFIG_DEBUG is true.
func newLogger(w io.Writer) log.Logger {
	min := log.Info
	if envvar.Bool(debugEnv) {
		min = log.Debug
	}
	return &log.LevelFilter{
		Min:    min,
		Output: log.New(w, "pureconfig: ", 0, nil),
	}
}
