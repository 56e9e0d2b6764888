// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package platform maps the UPHY register windows named by command
// options, or builds the simulated UPHY instead.
package platform

import (
	"fmt"
	"strconv"
	"time"

	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/uphy/hw"
	"github.com/platinasystems/uphy/uphy"
	"github.com/platinasystems/uphy/uphy/uphysim"
)

const (
	PluSize  = 0x1000
	ClkSize  = 0x8
	FuseSize = 0x4
)

// Parms are the valued options understood by Parse.
var Parms = []string{"-plu", "-clk", "-fuse", "-retry", "-interval"}

// ParseArgs separates and parses Parms from args.
func ParseArgs(args []string) (*Config, []string, error) {
	parm, args := parms.New(args,
		"-plu", "-clk", "-fuse", "-retry", "-interval")
	c, err := Parse(parm)
	return c, args, err
}

type Config struct {
	Plu, Clk, Fuse uintptr
	// Retry is the number of bring up attempts beyond the first.
	Retry    int
	Interval time.Duration
	Sim      bool
}

// Parse the values of Parms.
func Parse(parm *parms.Parms) (*Config, error) {
	c := &Config{Interval: time.Second}
	for _, x := range []struct {
		name string
		p    *uintptr
	}{
		{"-plu", &c.Plu},
		{"-clk", &c.Clk},
		{"-fuse", &c.Fuse},
	} {
		s := parm.ByName[x.name]
		if len(s) == 0 {
			continue
		}
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %v", x.name, err)
		}
		*x.p = uintptr(u)
	}
	if s := parm.ByName["-retry"]; len(s) > 0 {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("-retry: %q invalid", s)
		}
		c.Retry = n
	}
	if s := parm.ByName["-interval"]; len(s) > 0 {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("-interval: %v", err)
		}
		c.Interval = d
	}
	return c, nil
}

// Device is an opened UPHY and the windows backing it.
type Device struct {
	*uphy.Uphy
	// Sim is the model behind a simulated device, otherwise nil.
	Sim *uphysim.Phy

	windows []*hw.Window
}

// Open maps the PLU and clock windows; the fuse gateway is mapped on first
// use.  With Sim the behavioural model is used instead.
func (c *Config) Open(opts ...uphy.Option) (*Device, error) {
	if c.Sim {
		phy := uphysim.New(uphysim.Knobs{Fuse: uphysim.DefaultFuse})
		return &Device{Uphy: phy.Uphy(opts...), Sim: phy}, nil
	}
	for _, x := range []struct {
		name string
		addr uintptr
	}{
		{"-plu", c.Plu},
		{"-clk", c.Clk},
		{"-fuse", c.Fuse},
	} {
		if x.addr == 0 {
			return nil, fmt.Errorf("%s: missing", x.name)
		}
	}
	d := new(Device)
	plu := &hw.Window{Name: "plu", Addr: c.Plu, Size: PluSize}
	clk := &hw.Window{Name: "clk", Addr: c.Clk, Size: ClkSize}
	for _, w := range []*hw.Window{plu, clk} {
		if err := w.Map(); err != nil {
			d.Close()
			return nil, err
		}
		d.windows = append(d.windows, w)
	}
	mapFuse := func() (hw.Regs, error) {
		w := &hw.Window{Name: "fuse", Addr: c.Fuse, Size: FuseSize}
		if err := w.Map(); err != nil {
			return nil, err
		}
		d.windows = append(d.windows, w)
		return w, nil
	}
	d.Uphy = uphy.New(plu, clk, mapFuse, opts...)
	return d, nil
}

func (d *Device) Close() error {
	var first error
	for _, w := range d.windows {
		if err := w.Close(); err != nil {
			log.Print("daemon", "warn", w, ": ", err)
			if first == nil {
				first = err
			}
		}
	}
	d.windows = nil
	return first
}
