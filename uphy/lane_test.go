// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy_test

import (
	"testing"
	"time"

	"github.com/platinasystems/uphy/internal/test"
	"github.com/platinasystems/uphy/uphy"
	"github.com/platinasystems/uphy/uphy/uphysim"
)

func TestIsReady(t *testing.T) {
	assert := test.Assert{TB: t}
	for _, x := range []struct {
		tx, rx uint32
		ready  bool
		reads  int
	}{
		{uphy.TxFsmDataEn, uphy.RxFsmActive, true, 2},
		{uphy.TxFsmDataEn, uphy.RxFsmIddq, false, 2},
		{uphy.TxFsmIddq, uphy.RxFsmActive, false, 1},
		{uphy.TxFsmIddq, uphy.RxFsmIddq, false, 1},
	} {
		phy := uphysim.New(uphysim.Knobs{})
		phy.Plu.OnRead(uphy.LaneTxFsmCtrl, func(uint32) uint32 { return x.tx })
		phy.Plu.OnRead(uphy.LaneRxFsmCtrl, func(uint32) uint32 { return x.rx })
		u := phy.Uphy()
		assert.True(u.IsReady() == x.ready)
		assert.True(len(phy.Plu.Writes()) == 0)
		assert.True(len(phy.Plu.Reads()) == x.reads)
		assert.True(len(phy.Plu.Reads(uphy.LaneTxFsmCtrl)) == 1)
	}
}

func TestIsReadyMasksState(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	phy.Plu.OnRead(uphy.LaneTxFsmCtrl, func(uint32) uint32 {
		return 0xfff0 | uphy.TxFsmDataEn
	})
	phy.Plu.OnRead(uphy.LaneRxFsmCtrl, func(uint32) uint32 {
		return 0x1230 | uphy.RxFsmActive
	})
	assert.True(phy.Uphy().IsReady())
}

func TestOpenTx(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{BusyReads: 1})
	phy.Plu.Poke(uphy.LaneTxRateId0Speed, 0xff)
	phy.Plu.Poke(uphy.LaneTxBitsSwap, 0xffff)
	u := phy.Uphy()
	assert.Nil(u.OpenTx())

	assert.True(u.Status().TxFsm == uphy.TxFsmDataEn)
	sameEntries(t, phy.Writes[uphy.Lane], uphy.DlmTxInit.Entries)

	en := phy.Plu.Peek(uphy.LaneTxDataEn)
	assert.True(en&uphy.LaneTxPeriodicCalEnMask != 0)
	assert.True(en&uphy.LaneTxDataEnMask != 0)
	assert.True(en&uphy.LaneTxIddqValMask == 0)
	assert.True(en&uphy.LaneTxRateIdMask == 0)
	assert.Uint(uint64(phy.Plu.Peek(uphy.LaneTxRateId0Speed)), 0x8c)
	// bits swap and push distance cleared, the rest kept
	assert.Uint(uint64(phy.Plu.Peek(uphy.LaneTxBitsSwap)), 0xe0fe)
	assert.True(len(phy.Plu.Writes(uphy.LaneTxCal)) == 1)
}

func TestOpenTxPowerOffTimeout(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	phy.Plu.OnRead(uphy.LaneTxFsmCtrl, func(uint32) uint32 { return 0 })
	u := phy.Uphy(uphy.WithPoller(uphy.Poller{
		Interval: 5 * time.Microsecond,
		Timeout:  10 * time.Microsecond,
	}))
	err := u.OpenTx()
	assert.Error(err, uphy.ErrTimeout)
	assert.Error(err, "tx fsm iddq: timed out")
	assert.True(len(phy.Writes[uphy.Lane]) == 0)
}

func TestOpenRx(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	phy.Plu.Poke(uphy.LaneRxSyncFifoPop, 0x13)
	phy.Plu.Poke(uphy.LaneRxEqTrain, 0xf3)
	u := phy.Uphy()
	assert.Nil(u.OpenRx())

	assert.True(u.Status().RxFsm == uphy.RxFsmActive)
	sameEntries(t, phy.Writes[uphy.Lane], uphy.DlmRxInit.Entries)

	// chicken bits and cdr reset cleared, cdr and data enabled
	assert.Uint(uint64(phy.Plu.Peek(uphy.LaneRxSyncFifoPop)), 0x60)
	assert.Uint(uint64(phy.Plu.Peek(uphy.LaneRxEqTrain)), 0xf4)
	assert.True(phy.Plu.Peek(uphy.LaneRxEqDoneTimerEn) == 0)
	assert.True(phy.Plu.Peek(uphy.LaneRxRateId) == 0)
	assert.True(len(phy.Plu.Writes(uphy.LaneRxCal)) == 1)
}

func TestOpenRxWatchdogsLeftOnTimeout(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	phy.Plu.OnRead(uphy.LaneRxFsmCtrl, func(uint32) uint32 { return 0 })
	u := phy.Uphy(uphy.WithPoller(uphy.Poller{
		Interval: 5 * time.Microsecond,
		Timeout:  10 * time.Microsecond,
	}))
	err := u.OpenRx()
	assert.Error(err, uphy.ErrTimeout)
	assert.Error(err, "rx fsm iddq: timed out")
	assert.Uint(uint64(phy.Plu.Peek(uphy.LaneRxEqDoneTimerEn)),
		uint64(uphy.LaneRxEqDoneTimerEnMask|uphy.LaneRxCalDoneTimerEnMask))
	assert.True(len(phy.Writes[uphy.Lane]) == 0)
}

func TestOpenTxDataEnableTimeout(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	phy.Plu.OnRead(uphy.LaneTxFsmCtrl, func(uint32) uint32 {
		return uphy.LaneTxFsmPs.Prep(uphy.TxFsmIddq)
	})
	u := phy.Uphy(uphy.WithPoller(uphy.Poller{
		Interval: 5 * time.Microsecond,
		Timeout:  10 * time.Microsecond,
	}))
	err := u.OpenTx()
	assert.Error(err, uphy.ErrTimeout)
	assert.Error(err, "tx fsm data enable: timed out")
	sameEntries(t, phy.Writes[uphy.Lane], uphy.DlmTxInit.Entries)
	assert.True(phy.Plu.Peek(uphy.LaneTxDataEn)&uphy.LaneTxPeriodicCalEnMask == 0)
	assert.True(len(phy.Plu.Writes(uphy.LaneTxCal)) == 1)
}

func TestOpenRxActiveTimeout(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	phy.Plu.OnRead(uphy.LaneRxFsmCtrl, func(uint32) uint32 {
		return uphy.LaneRxFsmPs.Prep(uphy.RxFsmIddq)
	})
	u := phy.Uphy(uphy.WithPoller(uphy.Poller{
		Interval: 5 * time.Microsecond,
		Timeout:  10 * time.Microsecond,
	}))
	err := u.OpenRx()
	assert.Error(err, uphy.ErrTimeout)
	assert.Error(err, "rx fsm active: timed out")
	sameEntries(t, phy.Writes[uphy.Lane], uphy.DlmRxInit.Entries)
	assert.True(len(phy.Plu.Writes(uphy.LaneRxCal)) == 1)
	assert.True(phy.Plu.Peek(uphy.PluPowerup)&uphy.PluRxPowerupMask != 0)
	assert.False(u.IsReady())
}
