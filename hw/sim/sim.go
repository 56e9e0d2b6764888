// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package sim provides a simulated hw.Regs block that records every
// access and may hook reads and writes of individual registers.
package sim

import "fmt"

type Op struct {
	Write bool
	Off   uint
	Val   uint32
}

func (op Op) String() string {
	if op.Write {
		return fmt.Sprintf("w %#x %#x", op.Off, op.Val)
	}
	return fmt.Sprintf("r %#x %#x", op.Off, op.Val)
}

// ReadHook returns the value seen by a read given the stored value.
type ReadHook func(stored uint32) uint32

// WriteHook returns the value to store given the previous and written values.
type WriteHook func(prev, v uint32) uint32

type Regs struct {
	vals    map[uint]uint32
	onRead  map[uint]ReadHook
	onWrite map[uint]WriteHook

	// Log of every Get and Set in order.
	Log []Op
}

func New() *Regs {
	return &Regs{
		vals:    make(map[uint]uint32),
		onRead:  make(map[uint]ReadHook),
		onWrite: make(map[uint]WriteHook),
	}
}

func (r *Regs) Get(off uint) uint32 {
	v := r.vals[off]
	if f, found := r.onRead[off]; found {
		v = f(v)
	}
	r.Log = append(r.Log, Op{Off: off, Val: v})
	return v
}

func (r *Regs) Set(off uint, v uint32) {
	r.Log = append(r.Log, Op{Write: true, Off: off, Val: v})
	if f, found := r.onWrite[off]; found {
		v = f(r.vals[off], v)
	}
	r.vals[off] = v
}

// Peek returns the stored value without hooks or logging.
func (r *Regs) Peek(off uint) uint32 { return r.vals[off] }

// Poke stores a value without hooks or logging.
func (r *Regs) Poke(off uint, v uint32) { r.vals[off] = v }

func (r *Regs) OnRead(off uint, f ReadHook)   { r.onRead[off] = f }
func (r *Regs) OnWrite(off uint, f WriteHook) { r.onWrite[off] = f }

// Writes returns the logged writes, optionally restricted to the given
// offsets.
func (r *Regs) Writes(offs ...uint) []Op { return r.filter(true, offs) }

// Reads returns the logged reads, optionally restricted to the given
// offsets.
func (r *Regs) Reads(offs ...uint) []Op { return r.filter(false, offs) }

func (r *Regs) filter(write bool, offs []uint) (l []Op) {
	for _, op := range r.Log {
		if op.Write != write {
			continue
		}
		if len(offs) == 0 {
			l = append(l, op)
			continue
		}
		for _, off := range offs {
			if op.Off == off {
				l = append(l, op)
				break
			}
		}
	}
	return
}

// Reset the log.
func (r *Regs) Reset() { r.Log = r.Log[:0] }
