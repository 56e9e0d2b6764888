// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

var ClmInit = Table{
	Name: "clm init",
	Entries: []Entry{
		{0x001, 0x0105},
		{0x008, 0x0001},
		{0x00B, 0x8420},
		{0x00E, 0x0110},
		{0x010, 0x3010},
		{0x027, 0x0104},
		{0x02F, 0x09EA},
		{0x055, 0x0008},
		{0x058, 0x0088},
		{0x072, 0x3222},
		{0x073, 0x7654},
		{0x074, 0xBA98},
		{0x075, 0xDDDC},
	},
}

var DlmImemInit = Table{
	Name: "dlm imem init",
	Entries: []Entry{
		{0x39C, 0x0000},
		{0x39D, 0x0095},
		{0x3BF, 0x9027},
		{0x39E, 0xA8F6},
		{0x39F, 0xAA10},
		{0x3A0, 0xA8D4},
		{0x3A1, 0xA7AE},
		{0x3A2, 0xA7CC},
		{0x3A3, 0x9BE4},
		{0x3A4, 0xB2D2},
		{0x3A5, 0xB1F2},
		{0x3AE, 0x7C38},
		{0x3AF, 0x7C4A},
		{0x3B0, 0x7C25},
		{0x3B1, 0x7C74},
		{0x3B2, 0x3C00},
		{0x3B3, 0x3C11},
		{0x3B4, 0x3C5D},
		{0x3B5, 0x3C5D},
	},
}

var DlmSeqImemBmapClr = Table{
	Name: "dlm imem bitmap clear",
	Entries: []Entry{
		{0x39E, 0x0000},
		{0x39F, 0x0000},
		{0x3A0, 0x0000},
		{0x3A1, 0x0000},
		{0x3A2, 0x0000},
		{0x3A3, 0x0000},
		{0x3A4, 0x0000},
		{0x3A5, 0x0000},
		{0x3A6, 0x0000},
		{0x3A7, 0x0000},
		{0x3A8, 0x0000},
		{0x3A9, 0x0000},
		{0x3AA, 0x0000},
		{0x3AB, 0x0000},
		{0x3AC, 0x0000},
		{0x3AD, 0x0000},
		{0x3AE, 0x0000},
		{0x3AF, 0x0000},
		{0x3B0, 0x0000},
		{0x3B1, 0x0000},
		{0x3B2, 0x0000},
		{0x3B3, 0x0000},
		{0x3B4, 0x0000},
		{0x3B5, 0x0000},
		{0x3B6, 0x0000},
		{0x3B7, 0x0000},
		{0x3B8, 0x0000},
		{0x3B9, 0x0000},
		{0x3BA, 0x0000},
		{0x3BB, 0x0000},
		{0x3BC, 0x0000},
		{0x3BD, 0x0000},
	},
}

var DlmTxInit = Table{
	Name: "dlm tx init",
	Entries: []Entry{
		{0x002, 0x5125},
		{0x01C, 0x0018},
		{0x01E, 0x0E00},
		{0x01F, 0xC200},
		{0x023, 0x0277},
		{0x024, 0x026B},
		{0x053, 0x0700},
		{0x059, 0x1011},
		{0x060, 0x0000},
		{0x062, 0x0135},
		{0x063, 0x0443},
		{0x064, 0x0000},
		{0x066, 0x0061},
		{0x067, 0x0042},
		{0x06A, 0x1212},
		{0x06B, 0x1515},
		{0x06C, 0x011A},
		{0x06D, 0x0132},
		{0x06E, 0x0632},
		{0x06F, 0x0643},
		{0x070, 0x0233},
		{0x071, 0x0433},
		{0x07E, 0x6A08},
		{0x08D, 0x2101},
		{0x093, 0x0015},
		{0x096, 0x7555},
		{0x0A9, 0xE754},
		{0x0AA, 0x7ED1},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
	},
}

var DlmRxInit = Table{
	Name: "dlm rx init",
	Entries: []Entry{
		{0x003, 0x5125},
		{0x01D, 0x0004},
		{0x028, 0x1000},
		{0x029, 0x1001},
		{0x02E, 0x0004},
		{0x053, 0x0700},
		{0x057, 0x5044},
		{0x05B, 0x1011},
		{0x0D2, 0x0002},
		{0x0D9, 0x0000},
		{0x0DA, 0x0000},
		{0x0DB, 0x0000},
		{0x0E2, 0x0000},
		{0x0E7, 0xBB10},
		{0x0E8, 0xBB10},
		{0x0EC, 0x0111},
		{0x0ED, 0x1C00},
		{0x0F5, 0x0000},
		{0x102, 0x0CA6},
		{0x107, 0x0020},
		{0x10C, 0x1E31},
		{0x10D, 0x1D29},
		{0x111, 0x00E7},
		{0x112, 0x5202},
		{0x117, 0x0493},
		{0x11B, 0x0148},
		{0x120, 0x23DE},
		{0x121, 0x2294},
		{0x125, 0x03FF},
		{0x126, 0x25F0},
		{0x12B, 0xC633},
		{0x136, 0x0F6A},
		{0x143, 0x0000},
		{0x148, 0x0001},
		{0x14E, 0x0000},
		{0x155, 0x2003},
		{0x15C, 0x099B},
		{0x161, 0x0088},
		{0x16B, 0x0433},
		{0x172, 0x099B},
		{0x17C, 0x045D},
		{0x17D, 0x006A},
		{0x181, 0x0000},
		{0x189, 0x1590},
		{0x18E, 0x0080},
		{0x18F, 0x90EC},
		{0x191, 0x79F8},
		{0x194, 0x000A},
		{0x195, 0x000A},
		{0x1EB, 0x0133},
		{0x1F0, 0x0030},
		{0x1F1, 0x0030},
		{0x1F5, 0x3737},
		{0x1F6, 0x3737},
		{0x1FA, 0x2C00},
		{0x1FF, 0x0516},
		{0x200, 0x0516},
		{0x204, 0x3010},
		{0x209, 0x0429},
		{0x20E, 0x0010},
		{0x213, 0x005A},
		{0x214, 0x0000},
		{0x216, 0x0000},
		{0x218, 0x0000},
		{0x225, 0x0000},
		{0x22A, 0x0000},
		{0x22B, 0x0000},
		{0x231, 0x0000},
		{0x232, 0x0000},
		{0x233, 0x0000},
		{0x245, 0x0300},
		{0x24A, 0x0000},
		{0x24F, 0xFFF3},
		{0x254, 0x0000},
		{0x259, 0x0000},
		{0x25E, 0x0000},
		{0x265, 0x0009},
		{0x267, 0x0174},
		{0x271, 0x01F0},
		{0x273, 0x0170},
		{0x275, 0x7828},
		{0x279, 0x3E3A},
		{0x27D, 0x8468},
		{0x283, 0x000C},
		{0x285, 0x7777},
		{0x288, 0x5503},
		{0x28C, 0x0030},
		{0x28E, 0xBBBB},
		{0x290, 0xBBBB},
		{0x293, 0x0021},
		{0x2FA, 0x3B40},
		{0x2FB, 0x7777},
		{0x30A, 0x8022},
		{0x319, 0x205E},
		{0x31B, 0x0000},
		{0x31D, 0x6004},
		{0x320, 0x3014},
		{0x322, 0x6004},
		{0x326, 0x6004},
		{0x32A, 0x5000},
		{0x32E, 0x5000},
		{0x332, 0x6004},
		{0x336, 0x6063},
		{0x389, 0x0310},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
		{0x3FF, 0x0000},
	},
}

// DlmImemData is the lane sequencer program, streamed word by word
// through LaneImemDataAddr.
var DlmImemData = []uint16{
	0x02DF, 0xEEC0, 0xD508, 0x022F, 0xC401, 0xD341, 0xC402, 0xD342,
	0xC403, 0xD343, 0xC404, 0xD344, 0xC417, 0xD355, 0xC418, 0xD356,
	0xF021, 0xF003, 0xE224, 0x0DA9, 0xF003, 0xE21C, 0xEEC1, 0x0D87,
	0xEEC1, 0xE806, 0xC3C5, 0xD306, 0xEEDF, 0xE806, 0xC3C6, 0xD306,
	0xF002, 0xC3C8, 0x409A, 0xF021, 0xEEE0, 0xEEC0, 0xD70D, 0xC305,
	0xD328, 0xC300, 0xD314, 0xC301, 0xD318, 0xC303, 0xD320, 0xC302,
	0xD31C, 0xC304, 0xD324, 0xC358, 0xD330, 0xC307, 0xD115, 0xF021,
	0xD70D, 0xC305, 0xD328, 0xC300, 0xD314, 0xC301, 0xD318, 0xC303,
	0xD320, 0xC302, 0xD31C, 0xC304, 0xD324, 0xC358, 0xD330, 0xC307,
	0xD115, 0xF021, 0xC70D, 0xD70F, 0xC328, 0xD305, 0xC314, 0xD300,
	0xC318, 0xD301, 0xC320, 0xD303, 0xC31C, 0xD302, 0xC324, 0xD304,
	0xC330, 0xD358, 0xC115, 0xD307, 0xF021, 0x0249, 0x0362, 0x023D,
	0xEEC1, 0x0369, 0xEEC1, 0x0CEA, 0xEEC2, 0xD701, 0x02C8, 0xC3C3,
	0xD306, 0xC3C8, 0x009A, 0xC3D1, 0xD309, 0x0C46, 0x0DE7, 0xEEC0,
	0xC3D9, 0x0DDE, 0x02D7, 0xF021, 0x1441, 0xF003, 0xC03F, 0xF704,
	0xF009, 0xE21A, 0xF002, 0x0C52, 0xE206, 0xEEC1, 0xD01A, 0x3C5D,
	0xEEC0, 0xD01A, 0x0E12, 0xEEC0, 0x13E1, 0x1441, 0xEEC1, 0xD70E,
	0xD70F, 0xEEC0, 0xD70E, 0xC458, 0x13BE, 0xEEC0, 0xF29B, 0xE20A,
	0xEEC1, 0xD01D, 0xEEC1, 0xD3FD, 0xF021,
}
