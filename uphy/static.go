// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import "github.com/platinasystems/uphy/hw"

// Transform derives a field value from the const factor as
// cf * Mul / Div + Add.  With Div 12, Mul is a duration in microseconds.
type Transform struct {
	Field         hw.Field
	Mul, Div, Add uint32
}

func (x Transform) Value(cf uint32) uint32 {
	div := uint64(x.Div)
	if div == 0 {
		div = 1
	}
	return uint32(uint64(cf)*uint64(x.Mul)/div) + x.Add
}

// Timing is a static configuration register and the fields derived for it.
type Timing struct {
	Name   string
	Off    uint
	Fields []Transform
	// Preserve bits outside Fields with a read-modify-write; otherwise the
	// register is written whole.
	Preserve bool
}

// Value returns the register value and the mask of the fields it sets.
func (r *Timing) Value(cf uint32) (v, mask uint32) {
	for _, x := range r.Fields {
		v |= x.Field.Prep(x.Value(cf))
		mask |= x.Field.Mask()
	}
	return
}

func (r *Timing) apply(regs hw.Regs, cf uint32) {
	v, mask := r.Value(cf)
	if r.Preserve {
		hw.Modify(regs, r.Off, v, mask)
	} else {
		regs.Set(r.Off, v)
	}
}

var all = hw.GenMask(31, 0)

func cycles(us uint32) []Transform {
	return []Transform{{Field: all, Mul: us, Div: 12}}
}

// StaticTimings are applied in order by StaticConfig.
//
// The Mul/Div/Add coefficients and field positions are reconstructed from
// the register usage of the Linux driver, not from the vendor header;
// validate them on silicon before trusting the programmed timings.
var StaticTimings = []Timing{
	{
		Name: "ugl_cr_bridge_desc",
		Off:  UglCrBridgeDesc,
		Fields: []Transform{
			{Field: hw.GenMask(7, 0), Mul: 1, Div: 120, Add: 1},   // setup
			{Field: hw.GenMask(15, 8), Mul: 1, Div: 60, Add: 1},   // pulse
			{Field: hw.GenMask(23, 16), Mul: 1, Div: 120, Add: 1}, // hold
		},
		Preserve: true,
	},

	{Name: "pll1x_fsm_default", Off: Pll1xFsmDefaultCycles, Fields: cycles(1)},
	{Name: "pll1x_fsm_sleep", Off: Pll1xFsmSleepCycles, Fields: cycles(10)},
	{Name: "pll1x_fsm_rcal_flow", Off: Pll1xFsmRcalFlowCycles, Fields: cycles(100)},
	{Name: "pll1x_fsm_cal_flow", Off: Pll1xFsmCalFlowCycles, Fields: cycles(500)},
	{
		Name:     "pll1x_fsm_lockdet_sts",
		Off:      Pll1xFsmLockdetStsCycles,
		Fields:   []Transform{{Field: hw.GenMask(15, 0), Mul: 5, Div: 12}},
		Preserve: true,
	},

	{Name: "tx_fsm_default", Off: TxFsmDefaultCycles, Fields: cycles(1)},
	{Name: "tx_fsm_sleep", Off: TxFsmSleepCycles, Fields: cycles(10)},
	{Name: "tx_fsm_powerup", Off: TxFsmPowerupCycles, Fields: cycles(20)},
	{Name: "tx_fsm_cal_flow", Off: TxFsmCalFlowCycles, Fields: cycles(200)},
	{
		Name:     "tx_fsm_cal_abort",
		Off:      TxFsmCalAbortCycles,
		Fields:   []Transform{{Field: hw.GenMask(15, 0), Mul: 5, Div: 12}},
		Preserve: true,
	},

	{Name: "rx_fsm_default", Off: RxFsmDefaultCycles, Fields: cycles(1)},
	{Name: "rx_fsm_sleep", Off: RxFsmSleepCycles, Fields: cycles(10)},
	{Name: "rx_fsm_powerup", Off: RxFsmPowerupCycles, Fields: cycles(20)},
	{Name: "rx_fsm_term", Off: RxFsmTermCycles, Fields: cycles(10)},
	{Name: "rx_fsm_cal_flow", Off: RxFsmCalFlowCycles, Fields: cycles(200)},
	{Name: "rx_fsm_cal_abort", Off: RxFsmCalAbortCycles, Fields: cycles(5)},
	{Name: "rx_fsm_eq_flow", Off: RxFsmEqFlowCycles, Fields: cycles(1000)},
	{Name: "rx_fsm_eq_abort", Off: RxFsmEqAbortCycles, Fields: cycles(5)},
	{Name: "rx_fsm_eom_flow", Off: RxFsmEomFlowCycles, Fields: cycles(500)},
	{
		Name:     "rx_fsm_cdr_lock",
		Off:      RxFsmCdrLockCycles,
		Fields:   []Transform{{Field: hw.GenMask(19, 0), Mul: 50, Div: 12}},
		Preserve: true,
	},

	{
		Name:     "periodic_flows_timer_max",
		Off:      PeriodicFlowsTimerMax,
		Fields:   []Transform{{Field: hw.GenMask(19, 0), Mul: 1000, Div: 12}},
		Preserve: true,
	},
	{
		Name:     "plltop.center.iddq_cycles",
		Off:      PllIddqCycles,
		Fields:   []Transform{{Field: hw.GenMask(15, 0), Mul: 20, Div: 12}},
		Preserve: true,
	},
	{
		Name:     "lanetop.center.iddq_cycles",
		Off:      LaneIddqCycles,
		Fields:   []Transform{{Field: hw.GenMask(15, 0), Mul: 20, Div: 12}},
		Preserve: true,
	},
	{
		Name: "lanetop.center.power_governor0",
		Off:  LanePwrGov0,
		Fields: []Transform{
			{Field: hw.GenMask(15, 0), Mul: 2, Div: 12},  // rise
			{Field: hw.GenMask(31, 16), Mul: 2, Div: 12}, // fall
		},
	},
}

// StaticConfig programs the FSM timing counters for the current p1clk.
func (u *Uphy) StaticConfig() {
	cf := u.ConstFactor()
	for i := range StaticTimings {
		StaticTimings[i].apply(u.plu, cf)
	}
}
