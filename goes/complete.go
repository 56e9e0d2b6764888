// Copyright © 2015-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"context"
	"strings"
)

func LastArg(args []string) (s string) {
	if len(args) > 0 {
		s = args[len(args)-1]
	}
	return
}

// CompleteStrings returns the non-empty members of l prefixed by the last
// argument.
func CompleteStrings(l []string, args []string) (c []string) {
	arg := LastArg(args)
	for _, s := range l {
		if len(s) > 0 && strings.HasPrefix(s, arg) {
			c = append(c, s)
		}
	}
	return
}

// Complete prints the options matching the last argument if the context
// is preempted by "complete" and reports whether it did.
func Complete(ctx context.Context, options []string, args []string) bool {
	if Preemption(ctx) != "complete" {
		return false
	}
	o := OutputOf(ctx)
	for _, s := range CompleteStrings(options, args) {
		o.Println(s)
	}
	return true
}
