// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package uphysim models the UPHY register blocks well enough to run a
// complete bring up: gateways with a busy bit, the PLL calibration FSM,
// the TX and RX lane FSMs and the IMEM checksum.
package uphysim

import (
	"time"

	"github.com/platinasystems/uphy/hw"
	"github.com/platinasystems/uphy/hw/sim"
	"github.com/platinasystems/uphy/uphy"
)

const (
	// p1clk 156.25MHz * 0x5200 / 16384 = 200.2MHz
	DefaultCoreF = 0x5200
	// bg trim valid 0x3, cvb trim valid 0x5, speedo not fused
	DefaultFuse = 0x13 | 0x15<<5
)

type Knobs struct {
	// Ready starts with the PLL locked and both lanes up.
	Ready bool
	// StuckPll never leaves SLEEP after resistor calibration.
	StuckPll bool
	// BadChecksum reports run but invalid IMEM checksum status.
	BadChecksum bool
	// BusyReads is the number of gateway reads that see busy after
	// each command.
	BusyReads int
	// StuckGateway never clears busy.
	StuckGateway bool

	CoreF, CoreR, CoreOD uint32
	Fuse                 uint32
}

type Phy struct {
	Knobs
	Plu, Clk, Fuse *sim.Regs

	// Indirect register spaces.
	Mem [2]map[uint16]uint16
	// Gateway writes and read addresses in order, by target.
	Writes [2][]uphy.Entry
	Reads  [2][]uint16
	// Words streamed to the IMEM data address since write enable.
	Imem []uint16

	busy   [2]int
	pllFsm uint32
	imemWr bool
}

func New(k Knobs) *Phy {
	if k.CoreF == 0 {
		k.CoreF = DefaultCoreF
	}
	p := &Phy{
		Knobs: k,
		Plu:   sim.New(),
		Clk:   sim.New(),
		Fuse:  sim.New(),
		Mem: [2]map[uint16]uint16{
			make(map[uint16]uint16),
			make(map[uint16]uint16),
		},
	}
	p.Clk.Poke(uphy.P1clkReg1,
		uphy.P1CoreF.Prep(k.CoreF)|uphy.P1CoreR.Prep(k.CoreR))
	p.Clk.Poke(uphy.P1clkReg2, uphy.P1CoreOD.Prep(k.CoreOD))
	p.Fuse.Poke(uphy.FuseGw, k.Fuse)

	p.gateway(uphy.Pll)
	p.gateway(uphy.Lane)
	p.pll()
	p.lanes()

	if k.Ready {
		p.pllFsm = uphy.PllFsmIdle
		p.Plu.Poke(uphy.PllCalVld, uphy.PllCalVldMask)
		p.Plu.Poke(uphy.PllEnable, uphy.PllEnableMask)
		p.Plu.Poke(uphy.PluPowerup,
			uphy.PluTxPowerupMask|uphy.PluRxPowerupMask)
	}
	return p
}

// Uphy returns a sequencer over the model that never sleeps.
func (p *Phy) Uphy(opts ...uphy.Option) *uphy.Uphy {
	opts = append([]uphy.Option{
		uphy.WithDelay(func(time.Duration) {}),
	}, opts...)
	return uphy.New(p.Plu, p.Clk, p.MapFuse, opts...)
}

func (p *Phy) MapFuse() (hw.Regs, error) { return p.Fuse, nil }

func (p *Phy) gateway(t uphy.Target) {
	l := t.Layout()
	p.Plu.OnWrite(l.Ctl, func(_, cmd uint32) uint32 {
		addr := uint16(l.Addr.Extract(cmd))
		if cmd&l.Read.Mask() != 0 {
			p.Reads[t] = append(p.Reads[t], addr)
			p.Plu.Poke(l.Desc0, l.Result.Prep(uint32(p.read(t, addr))))
		} else {
			data := uint16(l.Data.Extract(cmd))
			p.Writes[t] = append(p.Writes[t], uphy.Entry{Addr: addr, Data: data})
			p.write(t, addr, data)
		}
		p.busy[t] = p.BusyReads
		return cmd &^ l.Busy.Mask()
	})
	p.Plu.OnRead(l.Ctl, func(v uint32) uint32 {
		if p.StuckGateway {
			return v | l.Busy.Mask()
		}
		if p.busy[t] > 0 {
			p.busy[t]--
			return v | l.Busy.Mask()
		}
		return v
	})
}

func (p *Phy) read(t uphy.Target, addr uint16) uint16 {
	if t == uphy.Lane && addr == uphy.LaneCsumStsAddr {
		sts := uint32(uphy.ImemCsumRunAndValid)
		if p.BadChecksum || len(p.Imem) != len(uphy.DlmImemData) {
			sts = 0x1
		}
		return uint16(uphy.ImemCsumStatus.Prep(sts))
	}
	return p.Mem[t][addr]
}

func (p *Phy) write(t uphy.Target, addr, data uint16) {
	p.Mem[t][addr] = data
	if t != uphy.Lane {
		return
	}
	switch addr {
	case uphy.LaneSeqImemCtrl:
		if data == uphy.SeqImemWrEn {
			p.imemWr = true
			p.Imem = p.Imem[:0]
		} else if data == uphy.SeqImemWrDis {
			p.imemWr = false
		}
	case uphy.LaneImemDataAddr:
		if p.imemWr {
			p.Imem = append(p.Imem, data)
		}
	}
}

func (p *Phy) pll() {
	p.Plu.OnRead(uphy.PllFsmCtrl, func(uint32) uint32 { return p.pllFsm })
	p.Plu.OnWrite(uphy.UphyPllRst, func(_, v uint32) uint32 {
		if v&uphy.UphyPllRstMask != 0 {
			p.pllFsm = uphy.PllFsmSleep
			p.Plu.Poke(uphy.PllCalVld, 0)
		}
		return v
	})
	p.Plu.OnWrite(uphy.PllRcal, func(_, v uint32) uint32 {
		if v&uphy.PllRcalMask != 0 && !p.StuckPll &&
			p.Plu.Peek(uphy.PllSleepFw)&uphy.PllSleepFwMask != 0 {
			p.pllFsm = uphy.PllFsmIdle
		}
		return v
	})
	p.Plu.OnWrite(uphy.PllCal, func(_, v uint32) uint32 {
		if v&uphy.PllCalMask != 0 && p.pllFsm == uphy.PllFsmIdle {
			p.Plu.Poke(uphy.PllCalVld, uphy.PllCalVldMask)
		}
		return v
	})
}

// Lane FSM present states follow the powerup and IDDQ controls.
func (p *Phy) lanes() {
	p.Plu.OnRead(uphy.LaneTxFsmCtrl, func(v uint32) uint32 {
		v &^= uphy.LaneTxFsmPs.Mask()
		switch {
		case p.Plu.Peek(uphy.PluPowerup)&uphy.PluTxPowerupMask != 0:
			v |= uphy.LaneTxFsmPs.Prep(uphy.TxFsmDataEn)
		case p.Plu.Peek(uphy.LaneTxDataEn)&uphy.LaneTxIddqValMask != 0:
			v |= uphy.LaneTxFsmPs.Prep(uphy.TxFsmIddq)
		}
		return v
	})
	p.Plu.OnRead(uphy.LaneRxFsmCtrl, func(v uint32) uint32 {
		v &^= uphy.LaneRxFsmPs.Mask()
		switch {
		case p.Plu.Peek(uphy.PluPowerup)&uphy.PluRxPowerupMask != 0:
			v |= uphy.LaneRxFsmPs.Prep(uphy.RxFsmActive)
		case p.Plu.Peek(uphy.LaneRxRateId)&uphy.LaneRxIddqValMask != 0:
			v |= uphy.LaneRxFsmPs.Prep(uphy.RxFsmIddq)
		}
		return v
	})
}
