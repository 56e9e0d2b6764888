// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package uphyctl provides the configure, ready and status commands.
package uphyctl

import (
	"context"
	"fmt"

	"github.com/platinasystems/atsock"
	"github.com/platinasystems/flags"
	"github.com/platinasystems/uphy/goes"
	"github.com/platinasystems/uphy/internal/platform"
	"github.com/platinasystems/uphy/uphy"
)

// Daemon is the atsock name of the uphyd RPC server.
const Daemon = "uphyd"

var Selection = goes.Selection{
	"configure": Configure,
	"ready":     Ready,
	"status":    Status,
}

const deviceUsage = "[-sim] [-plu ADDR] [-clk ADDR] [-fuse ADDR]"

var deviceOptions = []string{"-sim", "-plu", "-clk", "-fuse"}

func open(ctx context.Context, args []string) (*platform.Device, *platform.Config, error) {
	flag, args := flags.New(args, "-sim")
	c, args, err := platform.ParseArgs(args)
	if err != nil {
		return nil, nil, goes.ErrorfWith(ctx, "%v", err)
	}
	if len(args) > 0 {
		return nil, nil, goes.ErrorfWith(ctx, "%v: unexpected", args)
	}
	c.Sim = flag.ByName["-sim"]
	d, err := c.Open()
	if err != nil {
		return nil, nil, goes.ErrorfWith(ctx, "%v", err)
	}
	return d, c, nil
}

// Configure brings up the UPHY, retrying with backoff if asked.
func Configure(ctx context.Context, args ...string) error {
	if goes.Help(ctx, deviceUsage, " [-retry N] [-interval DURATION]") {
		return nil
	}
	if goes.Complete(ctx, append(deviceOptions, "-retry", "-interval"), args) {
		return nil
	}
	d, c, err := open(ctx, args)
	if err != nil {
		return err
	}
	defer d.Close()
	err = platform.Retry(ctx, c.Retry, c.Interval, d.Configure)
	if err != nil {
		return goes.ErrorfWith(ctx, "%w", err)
	}
	goes.OutputOf(ctx).Println("ready")
	return nil
}

// Ready prints whether both lanes are up.
func Ready(ctx context.Context, args ...string) error {
	if goes.Help(ctx, deviceUsage) {
		return nil
	}
	if goes.Complete(ctx, deviceOptions, args) {
		return nil
	}
	d, _, err := open(ctx, args)
	if err != nil {
		return err
	}
	defer d.Close()
	goes.OutputOf(ctx).Println(d.IsReady())
	return nil
}

// Status prints a snapshot of the PLL and lanes, from the daemon with -d.
func Status(ctx context.Context, args ...string) error {
	if goes.Help(ctx, "[-d | "+deviceUsage+"]") {
		return nil
	}
	if goes.Complete(ctx, append(deviceOptions, "-d"), args) {
		return nil
	}
	flag, args := flags.New(args, "-d")
	var s uphy.Status
	if flag.ByName["-d"] {
		if len(args) > 0 {
			return goes.ErrorfWith(ctx, "%v: unexpected", args)
		}
		cl, err := atsock.NewRpcClient(Daemon)
		if err != nil {
			return goes.ErrorfWith(ctx, "%v", err)
		}
		defer cl.Close()
		if err = cl.Call("Info.Status", Prog(ctx), &s); err != nil {
			return goes.ErrorfWith(ctx, "%v", err)
		}
	} else {
		d, _, err := open(ctx, args)
		if err != nil {
			return err
		}
		defer d.Close()
		s = d.Status()
	}
	Print(goes.OutputOf(ctx), s)
	return nil
}

// Prog names the caller to the daemon.
func Prog(ctx context.Context) string {
	if p := goes.PathOf(ctx); len(p) > 0 {
		return p[0]
	}
	return goes.Prog
}

// Print the status aligned for a terminal, otherwise as "uphy.KEY: VALUE"
// lines like those published to redis.
func Print(o goes.Output, s uphy.Status) {
	tty := o.IsTerminal()
	s.Each(func(k, v string) {
		if tty {
			o.Print(fmt.Sprintf("%-14s", k+":"), v, "\n")
		} else {
			o.Print("uphy.", k, ": ", v, "\n")
		}
	})
}
