// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import (
	"fmt"

	"github.com/platinasystems/log"
	"github.com/platinasystems/uphy/hw"
)

// InitPll loads the clm init package then the production fuse trim.
func (u *Uphy) InitPll() error {
	if err := u.LoadTable(Pll, ClmInit); err != nil {
		return err
	}
	return u.loadFuses()
}

func (u *Uphy) pollReg(what string, off uint, cond func(uint32) bool) error {
	err := u.Until(func() bool { return cond(u.plu.Get(off)) })
	if err != nil {
		log.Print("daemon", "debug", "polling timeout on ", what)
		return fmt.Errorf("%s: %w", what, err)
	}
	return nil
}

func (u *Uphy) pollState(what string, off uint, ps hw.Field, state uint32) error {
	return u.pollReg(what, off, func(x uint32) bool {
		return ps.Extract(x) == state
	})
}

// LockPll runs the PLL through reset, resistor calibration and
// calibration then enables it.
func (u *Uphy) LockPll() error {
	hw.SetBits(u.plu, UphyPllRst, UphyPllRstMask)
	hw.SetBits(u.plu, Pll1xCauseClrcauseBulk, Pll1xCauseClrcauseBulkMask)
	u.plu.Set(PllCal, 0)

	err := u.pollReg("pll fsm sleep", PllFsmCtrl, func(x uint32) bool {
		return x == PllFsmSleep
	})
	if err != nil {
		return err
	}
	u.delay(u.StabilizeDelay)

	hw.SetBits(u.plu, PllSleepFw, PllSleepFwMask)
	u.delay(u.StabilizeDelay)
	u.plu.Set(PllRcal, PllRcalMask)

	err = u.pollReg("pll fsm idle", PllFsmCtrl, func(x uint32) bool {
		return x == PllFsmIdle
	})
	if err != nil {
		return err
	}

	hw.ClearBits(u.plu, PllSleepFw, PllSleepFwMask)
	u.plu.Set(PllCal, PllCalMask)

	err = u.pollReg("pll cal valid", PllCalVld, func(x uint32) bool {
		return x&PllCalVldMask != 0
	})
	if err != nil {
		return err
	}

	hw.SetBits(u.plu, PllEnable, PllEnableMask)
	return nil
}

// LaneOutOfReset releases both lanes; the IMEM can't be loaded before this.
func (u *Uphy) LaneOutOfReset() {
	hw.SetBits(u.plu, LaneRst, LaneRstMask)
}
