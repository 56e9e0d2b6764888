// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import "github.com/platinasystems/uphy/hw"

// The offsets and masks below are reconstructed from their use by the
// Linux driver; the vendor header that defines them wasn't available.
// Check them against it before running on hardware.

// PLU register block byte offsets.
const (
	// Static configuration (timing) registers.
	UglCrBridgeDesc          uint = 0x0020
	Pll1xFsmDefaultCycles    uint = 0x0024
	Pll1xFsmSleepCycles      uint = 0x0028
	Pll1xFsmRcalFlowCycles   uint = 0x002c
	Pll1xFsmCalFlowCycles    uint = 0x0030
	Pll1xFsmLockdetStsCycles uint = 0x0034
	TxFsmDefaultCycles       uint = 0x0038
	TxFsmSleepCycles         uint = 0x003c
	TxFsmPowerupCycles       uint = 0x0040
	TxFsmCalFlowCycles       uint = 0x0044
	TxFsmCalAbortCycles      uint = 0x0048
	RxFsmDefaultCycles       uint = 0x004c
	RxFsmSleepCycles         uint = 0x0050
	RxFsmPowerupCycles       uint = 0x0054
	RxFsmTermCycles          uint = 0x0058
	RxFsmCalFlowCycles       uint = 0x005c
	RxFsmCalAbortCycles      uint = 0x0060
	RxFsmEqFlowCycles        uint = 0x0064
	RxFsmEqAbortCycles       uint = 0x0068
	RxFsmEomFlowCycles       uint = 0x006c
	RxFsmCdrLockCycles       uint = 0x0070
	PeriodicFlowsTimerMax    uint = 0x0074
	PllIddqCycles            uint = 0x0078
	LaneIddqCycles           uint = 0x007c
	LanePwrGov0              uint = 0x0080

	// plltop.center
	UphyPllRst             uint = 0x0100
	Pll1xCauseClrcauseBulk uint = 0x0104
	PllCal                 uint = 0x0108
	PllFsmCtrl             uint = 0x010c
	PllSleepFw             uint = 0x0110
	PllRcal                uint = 0x0114
	PllCalVld              uint = 0x0118
	PllEnable              uint = 0x011c
	LaneRst                uint = 0x0120

	// lanetop
	PluPowerup         uint = 0x0200
	LaneTxRateId0Speed uint = 0x0204
	LaneTxDataEn       uint = 0x0208
	LaneTxFsmCtrl      uint = 0x020c
	LaneTxBitsSwap     uint = 0x0210
	LaneTxCal          uint = 0x0214

	LaneRxRateId        uint = 0x0220
	LaneRxEqDoneTimerEn uint = 0x0224
	LaneRxFsmCtrl       uint = 0x0228
	LaneRxSyncFifoPop   uint = 0x022c
	LaneRxCal           uint = 0x0230
	LaneRxEqTrain       uint = 0x0234
)

// PLU register bits.
var (
	UphyPllRstMask             = hw.Bit(0).Mask()
	Pll1xCauseClrcauseBulkMask = hw.GenMask(7, 0).Mask()
	PllCalMask                 = hw.Bit(0).Mask()
	PllSleepFwMask             = hw.Bit(1).Mask()
	PllRcalMask                = hw.Bit(0).Mask()
	PllCalVldMask              = hw.Bit(0).Mask()
	PllEnableMask              = hw.Bit(0).Mask()
	LaneRstMask                = hw.Bit(0).Mask()

	PluTxPowerupMask = hw.Bit(0).Mask()
	PluRxPowerupMask = hw.Bit(1).Mask()

	LaneTxSleepValMask       = hw.GenMask(1, 0).Mask()
	LaneTxRateId0SpeedMask   = hw.GenMask(6, 4).Mask()
	LaneTxIddqValMask        = hw.Bit(0).Mask()
	LaneTxDataEnMask         = hw.Bit(1).Mask()
	LaneTxRateIdMask         = hw.GenMask(5, 4).Mask()
	LaneTxPeriodicCalEnMask  = hw.Bit(8).Mask()
	LaneTxBitsSwapMask       = hw.Bit(0).Mask()
	TxEbBlockPushDist        = hw.GenMask(12, 8)
	TxEbBlockPushDistMaskVal = TxEbBlockPushDist.Prep(0x3)
	LaneTxCalMask            = hw.Bit(0).Mask()

	LaneRxSleepValMask               = hw.GenMask(1, 0).Mask()
	LaneRxIddqValMask                = hw.Bit(2).Mask()
	LaneRxRateIdMask                 = hw.GenMask(5, 4).Mask()
	LaneRxRateId0SpeedMask           = hw.GenMask(10, 8).Mask()
	LaneRxEqDoneTimerEnMask          = hw.Bit(0).Mask()
	LaneRxCalDoneTimerEnMask         = hw.Bit(1).Mask()
	LaneRxSyncFifoPopRdyChickenMask  = hw.Bit(0).Mask()
	LaneRxDataSplitLsbVldChickenMask = hw.Bit(1).Mask()
	LaneRxCdrResetRegMask            = hw.Bit(4).Mask()
	LaneRxCdrEnMask                  = hw.Bit(5).Mask()
	LaneRxDataEnMask                 = hw.Bit(6).Mask()
	LaneRxCalMask                    = hw.Bit(0).Mask()
	LaneRxEqTrainField               = hw.GenMask(2, 0)
	LaneRxEqTrainVal                 = LaneRxEqTrainField.Prep(0x4)

	// Present state of the lane FSMs.
	LaneTxFsmPs = hw.GenMask(3, 0)
	LaneRxFsmPs = hw.GenMask(3, 0)
)

// Hardware FSM states.
const (
	PllFsmIdle  uint32 = 0x1
	PllFsmSleep uint32 = 0x2

	TxFsmIddq   uint32 = 0x1
	TxFsmDataEn uint32 = 0x5

	RxFsmIddq   uint32 = 0x1
	RxFsmActive uint32 = 0x6
)

// Clock block: p1clk PLL divider registers.
const (
	P1clkReg1 uint = 0x0
	P1clkReg2 uint = 0x4
)

var (
	P1CoreF  = hw.GenMask(25, 0) // of P1clkReg1
	P1CoreR  = hw.GenMask(31, 26)
	P1CoreOD = hw.GenMask(3, 0) // of P1clkReg2
)

const (
	P1FreqReference = 156250000
	P1ClkConst      = 16384
	P1ClkMultFactor = 12
)

// Fuse gateway: production trim "rooms", each a valid bit over a 4 bit
// magnitude.
const FuseGw uint = 0x0

var (
	YuBgTrimRoom  = hw.GenMask(4, 0)
	YuCvbTrimRoom = hw.GenMask(9, 5)
	YuSpeedoRoom  = hw.GenMask(14, 10)

	YuFuseValid = hw.Bit(4)
	YuFuse      = hw.GenMask(3, 0)
)

// PLL address space.
const PllMgmtBgapFuseCtrl uint16 = 0x00c

var (
	BgapFuseCtrlBgTrim     = hw.GenMask(3, 0)
	BgapFuseCtrlCvbTrim    = hw.GenMask(7, 4)
	BgapFuseCtrlSpeedo     = hw.GenMask(11, 8)
	BgapFuseCtrlBgTrimVld  = hw.Bit(12)
	BgapFuseCtrlCvbTrimVld = hw.Bit(13)
	BgapFuseCtrlSpeedoVld  = hw.Bit(14)
)

// Lane address space.
const (
	LaneSeqImemCtrl  uint16 = 0x39a
	LaneImemDataAddr uint16 = 0x39b
	LaneCsumStsAddr  uint16 = 0x3be
)

const (
	SeqImemWrEn    uint16 = 0x0001
	SeqImemWrDis   uint16 = 0x0000
	SeqImemCsumEn  uint16 = 0x0004
	SeqImemCsumDis uint16 = 0x0000
)

var ImemCsumStatus = hw.GenMask(2, 1)

const ImemCsumRunAndValid = 0x3
