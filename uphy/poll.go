// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import "time"

// Poller re-evaluates a condition every Interval until it holds or Timeout
// has been spent in Delay.
type Poller struct {
	Interval time.Duration
	Timeout  time.Duration
	// Delay defaults to time.Sleep; tests replace it to run without
	// wall clock waits.
	Delay func(time.Duration)
}

var DefaultPoller = Poller{
	Interval: 5 * time.Microsecond,
	Timeout:  time.Second,
}

func (p Poller) delay(d time.Duration) {
	if d <= 0 {
		return
	}
	if p.Delay != nil {
		p.Delay(d)
	} else {
		time.Sleep(d)
	}
}

// interval is Interval, or the default if it isn't positive.
func (p Poller) interval() time.Duration {
	if p.Interval <= 0 {
		return DefaultPoller.Interval
	}
	return p.Interval
}

// Polls is the number of delays spent before Until gives up.
func (p Poller) Polls() int {
	return int(p.Timeout / p.interval())
}

// Until returns nil as soon as cond is true, or ErrTimeout once the
// budget is spent. cond is checked once more after the final delay.
func (p Poller) Until(cond func() bool) error {
	max := p.Polls()
	for i := 0; ; i++ {
		if cond() {
			return nil
		}
		if i == max {
			return ErrTimeout
		}
		p.delay(p.interval())
	}
}
