// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import "context"

type key int

const (
	rootKey key = iota
	pathKey
	usageKey
	outputKey
)

func RootOf(ctx context.Context) Selection {
	if m, ok := ctx.Value(rootKey).(Selection); ok {
		return m
	}
	return Selection{}
}

func WithRoot(ctx context.Context, m Selection) context.Context {
	return context.WithValue(ctx, rootKey, m)
}

type path struct {
	name   string
	parent *path
}

// PathOf returns each name appended to the context, outermost first.
func PathOf(ctx context.Context) []string {
	var l []string
	p, _ := ctx.Value(pathKey).(*path)
	for ; p != nil; p = p.parent {
		l = append([]string{p.name}, l...)
	}
	return l
}

// WithPath appends name to the context path.
func WithPath(ctx context.Context, name string) context.Context {
	parent, _ := ctx.Value(pathKey).(*path)
	return context.WithValue(ctx, pathKey, &path{name, parent})
}

func UsageOf(ctx context.Context) func() {
	if f, ok := ctx.Value(usageKey).(func()); ok {
		return f
	}
	return nil
}

func WithUsage(ctx context.Context, f func()) context.Context {
	return context.WithValue(ctx, usageKey, f)
}

var preemptive = map[string]bool{
	"complete": true,
	"help":     true,
}

// Preemption returns "complete" or "help" if the context path is
// preempted by either; otherwise, this returns an empty string.
func Preemption(ctx context.Context) string {
	path := PathOf(ctx)
	if len(path) > 1 && preemptive[path[1]] {
		return path[1]
	}
	return ""
}

// Preempt moves leading "complete" and "help" arguments to the context.
func Preempt(ctx context.Context, args []string) (context.Context, []string) {
	for len(args) > 0 && preemptive[args[0]] {
		ctx = WithPath(ctx, args[0])
		args = args[1:]
	}
	return ctx, args
}
