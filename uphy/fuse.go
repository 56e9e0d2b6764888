// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import (
	"fmt"

	"github.com/platinasystems/log"
	"github.com/platinasystems/uphy/hw"
)

// Fuses are the production trim rooms read from the fuse gateway.
type Fuses struct {
	BgTrim, CvbTrim, Speedo uint32
}

func ReadFuses(r hw.Regs) Fuses {
	x := r.Get(FuseGw)
	return Fuses{
		BgTrim:  YuBgTrimRoom.Extract(x),
		CvbTrim: YuCvbTrimRoom.Extract(x),
		Speedo:  YuSpeedoRoom.Extract(x),
	}
}

// BgapFuseCtrl packs the rooms into the PLL bandgap fuse control word.
func (f Fuses) BgapFuseCtrl() uint16 {
	valid := func(room uint32) uint32 { return YuFuseValid.Extract(room) }
	trim := func(room uint32) uint32 { return YuFuse.Extract(room) }
	v := BgapFuseCtrlBgTrimVld.Prep(valid(f.BgTrim)) |
		BgapFuseCtrlCvbTrimVld.Prep(valid(f.CvbTrim)) |
		BgapFuseCtrlSpeedoVld.Prep(valid(f.Speedo)) |
		BgapFuseCtrlBgTrim.Prep(trim(f.BgTrim)) |
		BgapFuseCtrlCvbTrim.Prep(trim(f.CvbTrim)) |
		BgapFuseCtrlSpeedo.Prep(trim(f.Speedo))
	return uint16(v)
}

func (f Fuses) String() string {
	return fmt.Sprintf("bg_trim %#x cvb_trim %#x speedo %#x",
		f.BgTrim, f.CvbTrim, f.Speedo)
}

// mapFuses acquires the fuse gateway window once.
func (u *Uphy) mapFuses() (hw.Regs, error) {
	if u.fuse != nil {
		return u.fuse, nil
	}
	if u.mapFuse == nil {
		return nil, fmt.Errorf("fuse gateway: %w", ErrResourceUnavailable)
	}
	r, err := u.mapFuse()
	if err != nil {
		return nil, fmt.Errorf("fuse gateway: %v: %w", err,
			ErrResourceUnavailable)
	}
	u.fuse = r
	return r, nil
}

func (u *Uphy) loadFuses() error {
	r, err := u.mapFuses()
	if err != nil {
		return err
	}
	f := ReadFuses(r)
	err = u.GatewayWrite(Pll, PllMgmtBgapFuseCtrl, f.BgapFuseCtrl())
	if err != nil {
		log.Print("daemon", "debug", "failed to load clm production fuses: ", err)
		return fmt.Errorf("production fuses: %w", err)
	}
	return nil
}
