// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import (
	"fmt"

	"github.com/platinasystems/log"
	"github.com/platinasystems/uphy/hw"
)

// Target selects one of the two indirect register spaces.
type Target int

const (
	Pll Target = iota
	Lane
)

var targetNames = [...]string{
	Pll:  "pll",
	Lane: "lane",
}

func (t Target) String() string {
	if int(t) < len(targetNames) {
		return targetNames[t]
	}
	return fmt.Sprint("target(", int(t), ")")
}

// Layout describes where a gateway's command word and result live.
type Layout struct {
	Ctl, Desc0 uint // PLU offsets
	Addr       hw.Field
	Data       hw.Field
	Read       hw.Field
	Busy       hw.Field
	Result     hw.Field // of Desc0
}

var PllLayout = Layout{
	Ctl:    0x0000,
	Desc0:  0x0004,
	Addr:   hw.GenMask(10, 0),
	Data:   hw.GenMask(26, 11),
	Read:   hw.Bit(27),
	Busy:   hw.Bit(30),
	Result: hw.GenMask(15, 0),
}

var LaneLayout = Layout{
	Ctl:    0x0010,
	Desc0:  0x0014,
	Addr:   hw.GenMask(10, 0),
	Read:   hw.Bit(11),
	Data:   hw.GenMask(27, 12),
	Busy:   hw.Bit(31),
	Result: hw.GenMask(31, 16),
}

func (t Target) Layout() *Layout {
	if t == Pll {
		return &PllLayout
	}
	return &LaneLayout
}

// Command returns the gateway control word for the transaction.
func (l *Layout) Command(addr, data uint16, read bool) uint32 {
	cmd := l.Addr.Prep(uint32(addr)) | l.Data.Prep(uint32(data))
	if read {
		cmd |= l.Read.Mask()
	}
	return cmd
}

func (u *Uphy) idle(t Target) error {
	l := t.Layout()
	err := u.Until(func() bool {
		return u.plu.Get(l.Ctl)&l.Busy.Mask() == 0
	})
	if err != nil {
		log.Print("daemon", "debug", t, " gateway busy timeout")
		return fmt.Errorf("%s gateway busy: %w", t, err)
	}
	return nil
}

// GatewayWrite stores data at addr of the target's indirect space.
func (u *Uphy) GatewayWrite(t Target, addr, data uint16) error {
	l := t.Layout()
	u.plu.Set(l.Ctl, l.Command(addr, data, false))
	return u.idle(t)
}

// GatewayRead returns the value at addr of the target's indirect space.
func (u *Uphy) GatewayRead(t Target, addr uint16) (uint16, error) {
	l := t.Layout()
	u.plu.Set(l.Ctl, l.Command(addr, 0, true))
	if err := u.idle(t); err != nil {
		return 0, err
	}
	return uint16(l.Result.Extract(u.plu.Get(l.Desc0))), nil
}
