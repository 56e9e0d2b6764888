// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphyd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/platinasystems/uphy/goes"
	"github.com/platinasystems/uphy/internal/test"
	"github.com/platinasystems/uphy/uphy"
	"github.com/platinasystems/uphy/uphy/uphysim"
)

type pub []string

func (p *pub) Print(args ...interface{}) (int, error) {
	s := fmt.Sprint(args...)
	*p = append(*p, s)
	return len(s), nil
}

func (p *pub) Close() error { return nil }

func TestInfo(t *testing.T) {
	assert := test.Assert{TB: t}
	var p pub
	phy := uphysim.New(uphysim.Knobs{Fuse: uphysim.DefaultFuse})
	i := New(phy.Uphy(), &p)

	var ready bool
	assert.Nil(i.Ready("test", &ready))
	assert.False(ready)

	i.update()
	assert.True(len(p) == 7)
	assert.Equal(p[0][:len("uphy.pll.fsm: ")], "uphy.pll.fsm: ")
	assert.Equal(p[6], "uphy.ready: false")

	p = p[:0]
	i.update()
	assert.True(len(p) == 0)

	assert.Nil(i.configure())
	assert.Nil(i.Ready("test", &ready))
	assert.True(ready)

	var s uphy.Status
	assert.Nil(i.Status("test", &s))
	assert.True(s.Ready)
	assert.True(s.PllCalValid)

	i.update()
	assert.Match(strings.Join(p, "\n"), "(?m)^uphy.ready: true$")
}

func TestMainArgs(t *testing.T) {
	assert := test.Assert{TB: t}
	w := new(strings.Builder)
	ctx := goes.WithOutput(context.Background(), w)
	ctx = goes.WithPath(ctx, "goes-uphy")
	uctx := goes.WithPath(ctx, Name)

	assert.Error(Main(uctx, "-sim", "bogus"),
		"goes-uphy uphyd: [bogus]: unexpected")
	assert.Error(Main(uctx, "-sim", "-poll", "0s"),
		`goes-uphy uphyd: -poll: "0s" invalid`)
	assert.Error(Main(uctx, "-plu", "0x1000"),
		"goes-uphy uphyd: -clk: missing")

	hctx, _ := goes.Preempt(ctx, []string{"help"})
	assert.Nil(Main(goes.WithPath(hctx, Name)))
	assert.Equal(w.String(), "usage: goes-uphy uphyd "+usage+"\n")
}

func TestRetries(t *testing.T) {
	assert := test.Assert{TB: t}
	assert.Equal(retries(-1), "forever")
	assert.Equal(retries(3), "3")
}

func TestMainRedis(t *testing.T) {
	assert := test.Assert{TB: t}
	defer func(f func() error) { redisReady = f }(redisReady)
	defer func(f func() (Publisher, error)) { newPublisher = f }(newPublisher)
	ctx := goes.WithPath(context.Background(), "goes-uphy")
	ctx = goes.WithPath(ctx, Name)

	down := errors.New("not ready")
	redisReady = func() error { return down }
	err := Main(ctx, "-sim")
	assert.Error(err, "goes-uphy uphyd: redis: not ready")
	assert.Error(err, down)

	redisReady = func() error { return nil }
	newPublisher = func() (Publisher, error) {
		return nil, errors.New("no socket")
	}
	assert.Error(Main(ctx, "-sim"), "goes-uphy uphyd: publisher: no socket")
}
