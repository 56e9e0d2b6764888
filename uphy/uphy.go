// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package uphy brings the gigabit Ethernet SerDes (UPHY) from power on
// reset to data ready.
//
// All access is through the PLU register block, the p1clk clock block and
// the fuse gateway.  PLL and lane registers are reached indirectly through
// a pair of command/status gateways in the PLU block.  Calls are
// synchronous and unlocked; callers serialize.
package uphy

import (
	"fmt"
	"time"

	"github.com/platinasystems/log"
	"github.com/platinasystems/uphy/hw"
)

type Config struct {
	Poller
	ReferenceHz    uint64
	StabilizeDelay time.Duration
	ChecksumSettle time.Duration
}

var DefaultConfig = Config{
	Poller:         DefaultPoller,
	ReferenceHz:    P1FreqReference,
	StabilizeDelay: 10 * time.Microsecond,
	ChecksumSettle: 10 * time.Microsecond,
}

type Option func(*Config)

// WithPoller replaces the poll interval and timeout; a nil Delay keeps the
// current one and a non-positive Interval is the default.
func WithPoller(p Poller) Option {
	return func(c *Config) {
		if p.Delay == nil {
			p.Delay = c.Delay
		}
		if p.Interval <= 0 {
			p.Interval = DefaultPoller.Interval
		}
		c.Poller = p
	}
}

// WithDelay replaces time.Sleep for every poll interval and settle delay.
func WithDelay(f func(time.Duration)) Option {
	return func(c *Config) { c.Delay = f }
}

func WithReferenceHz(hz uint64) Option {
	return func(c *Config) { c.ReferenceHz = hz }
}

func WithStabilizeDelay(d time.Duration) Option {
	return func(c *Config) { c.StabilizeDelay = d }
}

func WithChecksumSettle(d time.Duration) Option {
	return func(c *Config) { c.ChecksumSettle = d }
}

type Uphy struct {
	Config

	plu, clk hw.Regs
	fuse     hw.Regs
	mapFuse  func() (hw.Regs, error)
}

// New returns a sequencer over the PLU and clock register blocks.  The fuse
// gateway is mapped on first use by mapFuse.
func New(plu, clk hw.Regs, mapFuse func() (hw.Regs, error), opts ...Option) *Uphy {
	u := &Uphy{
		Config:  DefaultConfig,
		plu:     plu,
		clk:     clk,
		mapFuse: mapFuse,
	}
	for _, opt := range opts {
		opt(&u.Config)
	}
	return u
}

// Stages of Configure in order.
const (
	StageFuseMap   = "fuse map"
	StagePllInit   = "pll init"
	StagePllLock   = "pll lock"
	StageLaneReset = "lane reset"
	StageImemLoad  = "imem load"
	StageTxOpen    = "tx open"
	StageRxOpen    = "rx open"
)

// Configure brings up the UPHY unless it is already ready.  A failure is
// returned as an *Error naming the stage; later stages are not attempted.
func (u *Uphy) Configure() error {
	if _, err := u.mapFuses(); err != nil {
		log.Print("daemon", "err", "uphy: ", err)
		return stage(StageFuseMap, err)
	}
	if u.IsReady() {
		log.Print("daemon", "info", "uphy: already ready")
		return nil
	}

	u.StaticConfig()
	log.Print("daemon", "info", "uphy: p1clk ", u.PllFrequencyHz(), "Hz")

	for _, step := range []struct {
		name string
		f    func() error
	}{
		{StagePllInit, u.InitPll},
		{StagePllLock, u.LockPll},
		{StageLaneReset, func() error {
			u.LaneOutOfReset()
			return nil
		}},
		{StageImemLoad, u.LoadImem},
		{StageTxOpen, u.OpenTx},
		{StageRxOpen, u.OpenRx},
	} {
		if err := step.f(); err != nil {
			err = stage(step.name, err)
			log.Print("daemon", "err", err)
			return err
		}
		log.Print("daemon", "debug", "uphy: ", step.name, " done")
	}
	log.Print("daemon", "info", "uphy: ready")
	return nil
}

// Status is a snapshot of the PLL and lane state.
type Status struct {
	PllFsm      uint32
	PllCalValid bool
	PllEnabled  bool
	TxFsm       uint32
	RxFsm       uint32
	P1clkHz     uint64
	Ready       bool
}

// Status reads, without side effects, the current state.
func (u *Uphy) Status() Status {
	s := Status{
		PllFsm:      u.plu.Get(PllFsmCtrl),
		PllCalValid: u.plu.Get(PllCalVld)&PllCalVldMask != 0,
		PllEnabled:  u.plu.Get(PllEnable)&PllEnableMask != 0,
		TxFsm:       u.txState(),
		RxFsm:       u.rxState(),
		P1clkHz:     u.PllFrequencyHz(),
	}
	s.Ready = s.TxFsm == TxFsmDataEn && s.RxFsm == RxFsmActive
	return s
}

// Each calls f with every field of the snapshot in a stable order.
func (s Status) Each(f func(k, v string)) {
	f("pll.fsm", fmt.Sprintf("%#x", s.PllFsm))
	f("pll.cal_valid", fmt.Sprint(s.PllCalValid))
	f("pll.enabled", fmt.Sprint(s.PllEnabled))
	f("tx.fsm", fmt.Sprintf("%#x", s.TxFsm))
	f("rx.fsm", fmt.Sprintf("%#x", s.RxFsm))
	f("p1clk", fmt.Sprint(s.P1clkHz))
	f("ready", fmt.Sprint(s.Ready))
}
