// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"sort"
	"strings"
)

var Prog = filepath.Base(os.Args[0])

type Func = func(context.Context, ...string) error

type Selection map[string]Func

var BuiltIn = Selection{
	"build-info": func(ctx context.Context, args ...string) error {
		if bi, ok := debug.ReadBuildInfo(); ok {
			OutputOf(ctx).Print(bi)
		}
		return nil
	},
	"version": func(ctx context.Context, args ...string) error {
		v := "(devel)"
		if bi, ok := debug.ReadBuildInfo(); ok && len(bi.Main.Version) > 0 {
			v = bi.Main.Version
		}
		OutputOf(ctx).Println(v)
		return nil
	},
}

func (m Selection) Keys() []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Main runs the command named by os.Args after adding the BuiltIn
// commands that m doesn't override.
func (m Selection) Main() {
	StyleLog()
	ctx, stop := signal.NotifyContext(context.Background(),
		TerminationSignals...)
	defer stop()
	for k, v := range BuiltIn {
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	ctx = WithRoot(ctx, m)
	ctx = WithOutput(ctx, os.Stdout)
	ctx = WithPath(ctx, Prog)
	timeout := flag.Duration("timeout", 0,
		"Terminate command if incomplete by non-zero limit.")
	flag.CommandLine.Init(Prog, flag.ContinueOnError)
	flag.Usage = func() {
		Usage(ctx, "COMMAND [OPTION]...\n",
			"\n",
			flag.CommandLine,
			m)
	}
	ctx = WithUsage(ctx, flag.Usage)
	if err := flag.CommandLine.Parse(os.Args[1:]); err == flag.ErrHelp {
		return
	}
	if *timeout != 0 {
		t, cancel := context.WithTimeout(ctx, *timeout)
		defer cancel()
		ctx = t
	}
	args := flag.Args()
	ctx, args = Preempt(ctx, args)
	defer recovery()
	if err := m.Select(ctx, args...); err != nil {
		Fatal(err)
	}
}

// Select runs the command named by the first argument with the rest.
func (m Selection) Select(ctx context.Context, args ...string) error {
	if len(args) == 0 {
		switch Preemption(ctx) {
		case "complete":
			m.complete(ctx)
		case "help":
			m.usage(ctx)
		default:
			if f, found := m[""]; found {
				return f(ctx)
			}
			return ErrorfWith(ctx, "incomplete")
		}
		return nil
	}
	f, found := m[args[0]]
	if found {
		return f(WithPath(ctx, args[0]), args[1:]...)
	}
	switch Preemption(ctx) {
	case "complete":
		m.complete(ctx, args...)
	case "help":
		m.usage(ctx)
	default:
		return ErrorfWith(ctx, "%s: command not found", args[0])
	}
	return nil
}

func (m Selection) complete(ctx context.Context, args ...string) {
	o := OutputOf(ctx)
	for _, s := range CompleteStrings(m.Keys(), args) {
		o.Println(s)
	}
}

func (m Selection) usage(ctx context.Context) {
	if usage := UsageOf(ctx); usage != nil {
		usage()
	} else {
		Usage(ctx, "[COMMAND [OPTION]...]...\n", m)
	}
}

// ErrorfWith context path preface.
func ErrorfWith(ctx context.Context, format string, args ...interface{}) error {
	return fmt.Errorf(strings.Join(PathOf(ctx), " ")+": "+format, args...)
}

func recovery() {
	r := recover()
	if r == nil {
		return
	}
	sb := new(strings.Builder)
	fmt.Fprintln(sb, r)
	pcs := make([]uintptr, 64)
	if n := runtime.Callers(2, pcs); n > 0 {
		frames := runtime.CallersFrames(pcs[:n])
		for {
			f, more := frames.Next()
			if len(f.Function) == 0 {
				break
			}
			if !strings.Contains(f.File, "runtime/") {
				fmt.Fprint(sb, "    ", f.Function, "()\n")
				fmt.Fprint(sb, "        ", f.File, ":", f.Line, "\n")
			}
			if !more {
				break
			}
		}
	}
	Fatal(sb)
}
