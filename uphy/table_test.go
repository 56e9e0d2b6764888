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

func TestTables(t *testing.T) {
	assert := test.Assert{TB: t}
	for _, x := range []struct {
		tbl  uphy.Table
		n    int
		tail int
	}{
		{uphy.ClmInit, 13, 0},
		{uphy.DlmImemInit, 19, 0},
		{uphy.DlmSeqImemBmapClr, 32, 0},
		{uphy.DlmTxInit, 40, 12},
		{uphy.DlmRxInit, 120, 16},
	} {
		if x.tbl.Len() != x.n {
			t.Fatalf("%s: %d entries, expected %d",
				x.tbl.Name, x.tbl.Len(), x.n)
		}
		for _, e := range x.tbl.Entries {
			assert.True(e.Addr < 1<<11)
		}
		pad := x.tbl.Entries[x.n-x.tail:]
		for _, e := range pad {
			assert.True(e == uphy.Entry{Addr: 0x3ff})
		}
		if x.tail > 0 {
			assert.True(x.tbl.Entries[x.n-x.tail-1].Addr != 0x3ff)
		}
	}
	assert.True(len(uphy.DlmImemData) == 149)
	// imem init declares the program length
	assert.True(uphy.DlmImemInit.Entries[1] ==
		uphy.Entry{Addr: 0x39d, Data: uint16(len(uphy.DlmImemData))})
	assert.True(uphy.DlmImemData[0] == 0x02df)
	assert.True(uphy.DlmImemData[148] == 0xf021)
	assert.True(uphy.ClmInit.Entries[12] == uphy.Entry{Addr: 0x075, Data: 0xdddc})
	for i, e := range uphy.DlmSeqImemBmapClr.Entries {
		assert.True(e == uphy.Entry{Addr: 0x39e + uint16(i)})
	}
}

func TestLoadTable(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{BusyReads: 2})
	u := phy.Uphy()
	assert.Nil(u.LoadTable(uphy.Pll, uphy.ClmInit))
	assert.True(len(phy.Writes[uphy.Pll]) == uphy.ClmInit.Len())
	for i, e := range uphy.ClmInit.Entries {
		assert.True(phy.Writes[uphy.Pll][i] == e)
	}
	assert.True(len(phy.Writes[uphy.Lane]) == 0)
}

func TestLoadTableAbort(t *testing.T) {
	assert := test.Assert{TB: t}
	phy := uphysim.New(uphysim.Knobs{StuckGateway: true})
	u := phy.Uphy(uphy.WithPoller(uphy.Poller{
		Interval: 5 * time.Microsecond,
		Timeout:  20 * time.Microsecond,
	}))
	err := u.LoadTable(uphy.Lane, uphy.DlmTxInit)
	assert.Error(err, uphy.ErrTimeout)
	assert.Error(err, "dlm tx init[0]: lane gateway busy: timed out")
	assert.True(len(phy.Plu.Writes()) == 1)
}
