// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package platform

import (
	"context"
	"time"

	"github.com/jpillora/backoff"
	"github.com/platinasystems/log"
)

// MaxInterval caps the backoff between attempts.
const MaxInterval = 60 * time.Second

// Retry calls f until it succeeds, the context is done or retries attempts
// beyond the first have failed.  Negative retries never give up.  Attempts
// are spaced by an exponential backoff starting at interval.
func Retry(ctx context.Context, retries int, interval time.Duration,
	f func() error) error {
	b := &backoff.Backoff{
		Min:    interval,
		Max:    MaxInterval,
		Factor: 2,
		Jitter: false,
	}
	for attempt := 1; ; attempt++ {
		err := f()
		if err == nil {
			if attempt > 1 {
				log.Print("daemon", "info", "succeeded on attempt ",
					attempt)
			}
			return nil
		}
		if retries >= 0 && attempt > retries {
			return err
		}
		d := b.Duration()
		log.Print("daemon", "warn", "attempt ", attempt, ": ", err,
			"; retry in ", d)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d):
		}
	}
}
