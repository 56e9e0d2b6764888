// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import "github.com/platinasystems/uphy/hw"

func (u *Uphy) txPower(on bool) error {
	hw.ClearBits(u.plu, LaneTxRateId0Speed, LaneTxSleepValMask)
	if on {
		hw.ClearBits(u.plu, LaneTxDataEn, LaneTxIddqValMask)
		hw.SetBits(u.plu, PluPowerup, PluTxPowerupMask)
		return nil
	}
	hw.ClearBits(u.plu, PluPowerup, PluTxPowerupMask)
	hw.SetBits(u.plu, LaneTxDataEn, LaneTxIddqValMask)
	return u.pollState("tx fsm iddq", LaneTxFsmCtrl, LaneTxFsmPs, TxFsmIddq)
}

// OpenTx powers the TX lane down, calibrates its elastic buffer, loads the
// TX package and powers it back up into the data enable state.
func (u *Uphy) OpenTx() error {
	if err := u.txPower(false); err != nil {
		return err
	}

	hw.Modify(u.plu, LaneTxBitsSwap, TxEbBlockPushDistMaskVal,
		TxEbBlockPushDist.Mask())
	hw.SetBits(u.plu, LaneTxDataEn, LaneTxDataEnMask)
	u.plu.Set(LaneTxCal, LaneTxCalMask)
	hw.ClearBits(u.plu, LaneTxDataEn, LaneTxRateIdMask)
	hw.ClearBits(u.plu, LaneTxRateId0Speed, LaneTxRateId0SpeedMask)

	// The TX package must be in before lane power on.
	if err := u.LoadTable(Lane, DlmTxInit); err != nil {
		return err
	}
	hw.ClearBits(u.plu, LaneTxBitsSwap, LaneTxBitsSwapMask)

	if err := u.txPower(true); err != nil {
		return err
	}
	hw.ClearBits(u.plu, LaneTxBitsSwap, TxEbBlockPushDist.Mask())

	err := u.pollState("tx fsm data enable", LaneTxFsmCtrl, LaneTxFsmPs,
		TxFsmDataEn)
	if err != nil {
		return err
	}
	hw.SetBits(u.plu, LaneTxDataEn, LaneTxPeriodicCalEnMask)
	return nil
}

func (u *Uphy) rxPower(on bool) error {
	hw.ClearBits(u.plu, LaneRxRateId, LaneRxSleepValMask)
	if on {
		hw.ClearBits(u.plu, LaneRxRateId, LaneRxIddqValMask)
		hw.SetBits(u.plu, PluPowerup, PluRxPowerupMask)
		return nil
	}

	watchdogs := LaneRxEqDoneTimerEnMask | LaneRxCalDoneTimerEnMask
	hw.SetBits(u.plu, LaneRxEqDoneTimerEn, watchdogs)
	hw.ClearBits(u.plu, PluPowerup, PluRxPowerupMask)
	hw.SetBits(u.plu, LaneRxRateId, LaneRxIddqValMask)

	// On timeout the watchdogs are left enabled.
	err := u.pollState("rx fsm iddq", LaneRxFsmCtrl, LaneRxFsmPs, RxFsmIddq)
	if err != nil {
		return err
	}
	hw.ClearBits(u.plu, LaneRxEqDoneTimerEn, watchdogs)
	return nil
}

// OpenRx powers the RX lane down, loads the RX package, enables clock and
// data recovery then powers it up into the active state.
func (u *Uphy) OpenRx() error {
	if err := u.rxPower(false); err != nil {
		return err
	}

	hw.ClearBits(u.plu, LaneRxRateId, LaneRxRateIdMask)
	hw.ClearBits(u.plu, LaneRxSyncFifoPop,
		LaneRxSyncFifoPopRdyChickenMask|LaneRxDataSplitLsbVldChickenMask)
	hw.ClearBits(u.plu, LaneRxRateId, LaneRxRateId0SpeedMask)

	if err := u.LoadTable(Lane, DlmRxInit); err != nil {
		return err
	}
	u.plu.Set(LaneRxCal, LaneRxCalMask)

	hw.Modify(u.plu, LaneRxSyncFifoPop,
		LaneRxCdrEnMask|LaneRxDataEnMask,
		LaneRxCdrResetRegMask|LaneRxCdrEnMask|LaneRxDataEnMask)
	hw.Modify(u.plu, LaneRxEqTrain, LaneRxEqTrainVal,
		LaneRxEqTrainField.Mask())

	if err := u.rxPower(true); err != nil {
		return err
	}
	return u.pollState("rx fsm active", LaneRxFsmCtrl, LaneRxFsmPs,
		RxFsmActive)
}

func (u *Uphy) txState() uint32 { return LaneTxFsmPs.Extract(u.plu.Get(LaneTxFsmCtrl)) }
func (u *Uphy) rxState() uint32 { return LaneRxFsmPs.Extract(u.plu.Get(LaneRxFsmCtrl)) }

// IsReady reports whether TX is in data enable and RX is active.  It only
// reads, and skips RX once TX is found not ready.
func (u *Uphy) IsReady() bool {
	return u.txState() == TxFsmDataEn && u.rxState() == RxFsmActive
}
