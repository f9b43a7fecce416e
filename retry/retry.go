// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package retry provides a function for retrying an operation.
package retry

import (
	"context"
	"math"
	"time"

	"zombiezen.com/go/log"
)

// A BackoffStrategy can be called repeatedly to obtain (presumably) increasing
// durations to wait between retries.
type BackoffStrategy interface {
	Duration() time.Duration
}

const maxDuration = time.Duration(math.MaxInt64)

// Exponential is a BackoffStrategy that starts at Initial and doubles on every
// call until it reaches Max. A zero Max means no limit other than the largest
// time.Duration.
type Exponential struct {
	Initial time.Duration
	Max     time.Duration

	next time.Duration
}

// Duration returns the next wait duration.
func (e *Exponential) Duration() time.Duration {
	if e.next == 0 {
		e.next = e.Initial
	}
	d := e.next
	switch {
	case e.Max > 0 && d > e.Max/2:
		e.next = e.Max
	case d > maxDuration/2:
		e.next = maxDuration
	default:
		e.next = d * 2
	}
	return d
}

// Do calls f repeatedly, waiting between attempts, until it returns a nil
// error. If the Context is Done first, Do returns the error from the last
// attempt. f is called at least once.
//
// The operation should be a verb phrase like "reading app.conf" for logging.
func Do(ctx context.Context, operation string, strategy BackoffStrategy, f func(context.Context) error) error {
	var t *time.Timer
	for attempt := 1; ; attempt++ {
		err := f(ctx)
		if err == nil {
			return nil
		}
		d := strategy.Duration()
		if d <= 0 {
			log.Warnf(ctx, "Error %s (attempt %d, will retry): %v", operation, attempt, err)
			select {
			case <-ctx.Done():
				return err
			default:
			}
			continue
		}
		log.Warnf(ctx, "Error %s (attempt %d, will retry in %v): %v", operation, attempt, d, err)
		if t == nil {
			t = time.NewTimer(d)
			defer t.Stop()
		} else {
			t.Reset(d)
		}
		select {
		case <-t.C:
		case <-ctx.Done():
			return err
		}
	}
}
