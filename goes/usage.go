// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"context"
	"flag"
	"strings"
)

// Usage prints this formatted text.
//
//	usage: PATH ARGS...
//
// Where PATH is the space separated elements pushed onto the context less
// any "help" preemption.  The ARGS are printed without separation; a
// *flag.FlagSet prints its defaults and a Selection its command names.
func Usage(ctx context.Context, args ...interface{}) {
	o := OutputOf(ctx)
	var p []string
	for i, s := range PathOf(ctx) {
		if i != 1 || s != "help" {
			p = append(p, s)
		}
	}
	o.Print("usage: ", strings.Join(p, " "))
	if len(args) == 0 {
		o.Println()
		return
	}
	o.Print(" ")
	end := "\n"
	for _, v := range args {
		switch t := v.(type) {
		case *flag.FlagSet:
			end = ""
			t.SetOutput(o)
			t.PrintDefaults()
		case Selection:
			end = ""
			for _, s := range t.Keys() {
				if len(s) > 0 {
					o.Println(" ", s)
				}
			}
		default:
			o.Print(v)
		}
	}
	o.Print(end)
}

// Help prints usage if the context is preempted by "help" and reports
// whether it did.
func Help(ctx context.Context, args ...interface{}) bool {
	if Preemption(ctx) != "help" {
		return false
	}
	Usage(ctx, args...)
	return true
}
