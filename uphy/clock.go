// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

// ClockParameters are the p1clk PLL dividers.
type ClockParameters struct {
	CoreF  uint32
	CoreR  uint32
	CoreOD uint32
}

func (u *Uphy) ClockParameters() ClockParameters {
	reg1 := u.clk.Get(P1clkReg1)
	reg2 := u.clk.Get(P1clkReg2)
	return ClockParameters{
		CoreF:  P1CoreF.Extract(reg1),
		CoreR:  P1CoreR.Extract(reg1),
		CoreOD: P1CoreOD.Extract(reg2),
	}
}

// Hz returns the PLL output given its reference frequency:
//
//	                   CoreF / 16384
//	ref * ---------------------------------
//	        (CoreR + 1) * (CoreOD + 1)
func (p ClockParameters) Hz(ref uint64) uint64 {
	f := ref * uint64(p.CoreF) / P1ClkConst
	return f / (uint64(p.CoreR+1) * uint64(p.CoreOD+1))
}

// PllFrequencyHz returns the PLU clock (p1clk).
func (u *Uphy) PllFrequencyHz() uint64 {
	return u.ClockParameters().Hz(u.ReferenceHz)
}

// ConstFactor is the p1clk in whole MHz times 12, the base of every
// static timing value.
func (u *Uphy) ConstFactor() uint32 {
	return uint32(u.PllFrequencyHz()/1000000) * P1ClkMultFactor
}
