// Copyright © 2016-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package hw

import (
	"fmt"
	"os"
	"sync/atomic"
	"syscall"
	"unsafe"
)

const DevMem = "/dev/mem"

// Window is a physical register range mapped from DevMem.
type Window struct {
	Name string
	Addr uintptr
	Size uint

	mem []byte
	off uint // Addr offset within the page aligned mapping
}

// Map the window; this requires CAP_SYS_RAWIO.
func (w *Window) Map() (err error) {
	if w.mem != nil {
		return nil
	}
	if w.Size == 0 {
		return fmt.Errorf("%s: zero size window", w.Name)
	}
	pgsz := uintptr(os.Getpagesize())
	base := w.Addr &^ (pgsz - 1)
	w.off = uint(w.Addr - base)
	n := (uintptr(w.off) + uintptr(w.Size) + pgsz - 1) &^ (pgsz - 1)
	f, err := os.OpenFile(DevMem, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return fmt.Errorf("%s: %w", w.Name, err)
	}
	defer f.Close()
	w.mem, err = syscall.Mmap(int(f.Fd()), int64(base), int(n),
		syscall.PROT_READ|syscall.PROT_WRITE, syscall.MAP_SHARED)
	if err != nil {
		w.mem = nil
		return fmt.Errorf("%s: mmap %#x: %s", w.Name, base, err)
	}
	return nil
}

func (w *Window) Unmap() (err error) {
	if w.mem != nil {
		err = syscall.Munmap(w.mem)
		w.mem = nil
		if err != nil {
			return fmt.Errorf("%s: munmap: %s", w.Name, err)
		}
	}
	return
}

func (w *Window) Close() error { return w.Unmap() }

func (w *Window) reg(off uint) *uint32 {
	if w.mem == nil {
		panic(fmt.Errorf("%s: not mapped", w.Name))
	}
	if off+4 > w.Size || off&3 != 0 {
		panic(fmt.Errorf("%s: bad offset %#x", w.Name, off))
	}
	return (*uint32)(unsafe.Pointer(&w.mem[w.off+off]))
}

// Atomic 32 bit loads and stores keep the compiler from merging or
// eliding device accesses.
func (w *Window) Get(off uint) uint32    { return atomic.LoadUint32(w.reg(off)) }
func (w *Window) Set(off uint, v uint32) { atomic.StoreUint32(w.reg(off), v) }

func (w *Window) String() string {
	return fmt.Sprintf("%s@%#x[%#x]", w.Name, w.Addr, w.Size)
}
