// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy_test

import (
	"errors"
	"testing"
	"time"

	"github.com/platinasystems/uphy/hw"
	"github.com/platinasystems/uphy/internal/test"
	"github.com/platinasystems/uphy/uphy"
	"github.com/platinasystems/uphy/uphy/uphysim"
)

func TestConfigure(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{Fuse: uphysim.DefaultFuse, BusyReads: 2})
	u := phy.Uphy()
	assert.Nil(u.Configure())
	assert.True(u.IsReady())

	want := append([]uphy.Entry{}, uphy.ClmInit.Entries...)
	want = append(want, uphy.Entry{
		Addr: uphy.PllMgmtBgapFuseCtrl,
		Data: 0x3053,
	})
	sameEntries(t, phy.Writes[uphy.Pll], want)

	want = append(imemWrites(), uphy.DlmTxInit.Entries...)
	want = append(want, uphy.DlmRxInit.Entries...)
	sameEntries(t, phy.Writes[uphy.Lane], want)

	s := u.Status()
	assert.True(s.Ready)
	assert.True(s.PllEnabled)
	assert.True(s.PllCalValid)
	assert.True(s.PllFsm == uphy.PllFsmIdle)
	assert.True(s.P1clkHz == 200195312)
	assert.True(phy.Plu.Peek(uphy.LaneRst)&uphy.LaneRstMask != 0)
}

func TestConfigureOrder(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	assert.Nil(phy.Uphy().Configure())

	first := func(off uint) int {
		for i, op := range phy.Plu.Log {
			if op.Write && op.Off == off {
				return i
			}
		}
		t.Fatalf("no write to %#x", off)
		return -1
	}
	order := []int{
		first(uphy.UglCrBridgeDesc),
		first(uphy.PllLayout.Ctl),
		first(uphy.UphyPllRst),
		first(uphy.PllEnable),
		first(uphy.LaneRst),
		first(uphy.LaneLayout.Ctl),
		first(uphy.LaneTxCal),
		first(uphy.LaneRxCal),
	}
	for i := 1; i < len(order); i++ {
		assert.True(order[i-1] < order[i])
	}
}

func TestConfigureAlreadyReady(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{Ready: true})
	assert.Nil(phy.Uphy().Configure())
	assert.True(len(phy.Plu.Writes()) == 0)
	assert.True(len(phy.Plu.Reads()) == 2)
	assert.True(len(phy.Clk.Log) == 0)
}

func TestConfigureTwice(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	u := phy.Uphy()
	assert.Nil(u.Configure())
	phy.Plu.Reset()
	assert.Nil(u.Configure())
	assert.True(len(phy.Plu.Writes()) == 0)
}

func TestConfigurePllLockTimeout(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{StuckPll: true})
	c := new(clock)
	u := phy.Uphy(uphy.WithDelay(c.delay))
	err := u.Configure()
	assert.Error(err, uphy.ErrTimeout)
	assert.Equal(uphy.StageOf(err), uphy.StagePllLock)
	assert.Error(err, "uphy pll lock: pll fsm idle: timed out")

	var e *uphy.Error
	assert.True(errors.As(err, &e))
	assert.Equal(e.Stage, "pll lock")

	assert.True(len(phy.Plu.Writes(uphy.LaneRst)) == 0)
	assert.True(len(phy.Plu.Writes(uphy.PllEnable)) == 0)
	assert.True(len(phy.Writes[uphy.Lane]) == 0)
	// two stabilize delays then the full poll budget
	assert.True(c.total == 20*time.Microsecond+time.Second)
}

func TestConfigurePllLockTimeouts(t *testing.T) {
	assert := test.Assert{TB: t}
	for _, x := range []struct {
		reg  uint
		what string
	}{
		{uphy.PllFsmCtrl, "pll fsm sleep"},
		{uphy.PllCalVld, "pll cal valid"},
	} {
		phy := uphysim.New(uphysim.Knobs{})
		phy.Plu.OnRead(x.reg, func(uint32) uint32 { return 0 })
		u := phy.Uphy(uphy.WithPoller(uphy.Poller{
			Interval: 5 * time.Microsecond,
			Timeout:  10 * time.Microsecond,
		}))
		err := u.Configure()
		assert.Error(err, uphy.ErrTimeout)
		assert.Equal(uphy.StageOf(err), uphy.StagePllLock)
		assert.Error(err, "uphy pll lock: "+x.what+": timed out")
		assert.True(len(phy.Plu.Writes(uphy.PllEnable)) == 0)
		assert.True(len(phy.Plu.Writes(uphy.LaneRst)) == 0)
		assert.True(len(phy.Writes[uphy.Lane]) == 0)
	}
}

func TestConfigureBadChecksum(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{BadChecksum: true})
	err := phy.Uphy().Configure()
	assert.Error(err, uphy.ErrInvalidChecksum)
	assert.Equal(uphy.StageOf(err), uphy.StageImemLoad)
	assert.True(len(phy.Plu.Writes(uphy.LaneTxCal)) == 0)
}

func TestConfigureFuseUnavailable(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{})
	u := uphy.New(phy.Plu, phy.Clk, func() (hw.Regs, error) {
		return nil, errors.New("no such window")
	})
	err := u.Configure()
	assert.Error(err, uphy.ErrResourceUnavailable)
	assert.Equal(uphy.StageOf(err), uphy.StageFuseMap)
	assert.True(len(phy.Plu.Log) == 0)

	u = uphy.New(phy.Plu, phy.Clk, nil)
	assert.Error(u.Configure(), uphy.ErrResourceUnavailable)
	assert.True(len(phy.Plu.Log) == 0)
}

func TestStageOf(t *testing.T) {
	assert := test.Assert{TB: t}
	assert.Equal(uphy.StageOf(nil), "")
	assert.Equal(uphy.StageOf(uphy.ErrTimeout), "")
}

func TestStatusEach(t *testing.T) {
	assert := test.Assert{TB: t}
	u := uphysim.New(uphysim.Knobs{Ready: true}).Uphy()
	var keys, vals []string
	u.Status().Each(func(k, v string) {
		keys = append(keys, k)
		vals = append(vals, v)
	})
	assert.True(len(keys) == 7)
	assert.Equal(keys[0], "pll.fsm")
	assert.Equal(vals[0], "0x1")
	assert.Equal(keys[6], "ready")
	assert.Equal(vals[6], "true")
}
