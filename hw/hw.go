// Copyright © 2016-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package hw provides memory mapped 32 bit register access.
package hw

import "fmt"

// Regs is a block of 32 bit registers addressed by byte offset.
type Regs interface {
	Get(off uint) uint32
	Set(off uint, v uint32)
}

// Modify writes v to the bits of mask, preserving the rest.
func Modify(r Regs, off uint, v, mask uint32) {
	x := r.Get(off)
	x &^= mask
	x |= v & mask
	r.Set(off, x)
}

// SetBits sets every bit of mask.
func SetBits(r Regs, off uint, mask uint32) { Modify(r, off, mask, mask) }

// ClearBits clears every bit of mask.
func ClearBits(r Regs, off uint, mask uint32) { Modify(r, off, 0, mask) }

// Field is a contiguous bit range of a register.
type Field struct {
	Shift, Width uint
}

func (f Field) Mask() uint32 {
	if f.Width >= 32 {
		return ^uint32(0) << f.Shift
	}
	return ((1 << f.Width) - 1) << f.Shift
}

// Prep positions v in the field, dropping bits beyond its width.
func (f Field) Prep(v uint32) uint32 { return (v << f.Shift) & f.Mask() }

// Extract the field from register value x.
func (f Field) Extract(x uint32) uint32 { return (x & f.Mask()) >> f.Shift }

func (f Field) String() string {
	if f.Width == 1 {
		return fmt.Sprintf("[%d]", f.Shift)
	}
	return fmt.Sprintf("[%d:%d]", f.Shift+f.Width-1, f.Shift)
}

// Bit returns a single bit field.
func Bit(n uint) Field { return Field{n, 1} }

// GenMask returns the field of bits h through l inclusive.
func GenMask(h, l uint) Field { return Field{l, h - l + 1} }
