// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import (
	"fmt"

	"github.com/platinasystems/log"
)

// LoadImem streams the lane sequencer program and verifies its checksum.
// On a bad checksum the sequencer bitmap is cleared, best effort, and
// ErrInvalidChecksum is returned.
func (u *Uphy) LoadImem() error {
	if err := u.LoadTable(Lane, DlmImemInit); err != nil {
		return err
	}
	// Write enable also rewinds the data address auto increment.
	if err := u.GatewayWrite(Lane, LaneSeqImemCtrl, SeqImemWrEn); err != nil {
		return fmt.Errorf("imem write enable: %w", err)
	}
	for i, w := range DlmImemData {
		if err := u.GatewayWrite(Lane, LaneImemDataAddr, w); err != nil {
			return fmt.Errorf("imem data[%d]: %w", i, err)
		}
	}
	if err := u.GatewayWrite(Lane, LaneSeqImemCtrl, SeqImemWrDis); err != nil {
		return fmt.Errorf("imem write disable: %w", err)
	}
	if err := u.GatewayWrite(Lane, LaneSeqImemCtrl, SeqImemCsumEn); err != nil {
		return fmt.Errorf("imem checksum enable: %w", err)
	}

	u.delay(u.ChecksumSettle)

	sts, err := u.GatewayRead(Lane, LaneCsumStsAddr)
	if err != nil {
		return fmt.Errorf("imem checksum status: %w", err)
	}
	csum := ImemCsumStatus.Extract(uint32(sts))

	if err := u.GatewayWrite(Lane, LaneSeqImemCtrl, SeqImemCsumDis); err != nil {
		return fmt.Errorf("imem checksum disable: %w", err)
	}

	if csum != ImemCsumRunAndValid {
		log.Print("daemon", "err", "imem checksum status ", csum,
			", clearing sequencer bitmap")
		u.clearBitmap()
		return ErrInvalidChecksum
	}
	return nil
}

func (u *Uphy) clearBitmap() {
	for _, e := range DlmSeqImemBmapClr.Entries {
		if err := u.GatewayWrite(Lane, e.Addr, e.Data); err != nil {
			log.Print("daemon", "warn", "bitmap clear ", e, ": ", err)
		}
	}
}
