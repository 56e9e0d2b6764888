// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphyctl

import (
	"context"
	"strings"
	"testing"

	"github.com/platinasystems/uphy/goes"
	"github.com/platinasystems/uphy/internal/test"
	"github.com/platinasystems/uphy/uphy"
)

func run(args ...string) (string, error) {
	w := new(strings.Builder)
	ctx := goes.WithOutput(context.Background(), w)
	ctx = goes.WithPath(ctx, "goes-uphy")
	ctx, args = goes.Preempt(ctx, args)
	err := Selection.Select(ctx, args...)
	return w.String(), err
}

func TestConfigure(t *testing.T) {
	assert := test.Assert{TB: t}
	out, err := run("configure", "-sim")
	assert.Nil(err)
	assert.Equal(out, "ready\n")

	out, err = run("ready", "-sim")
	assert.Nil(err)
	assert.Equal(out, "false\n")
}

func TestStatus(t *testing.T) {
	assert := test.Assert{TB: t}
	out, err := run("status", "-sim")
	assert.Nil(err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.True(len(lines) == 7)
	for _, s := range lines {
		assert.Match(s, `^uphy\.[a-z_.0-9]+: `)
	}
	assert.Equal(lines[5], "uphy.p1clk: 200195312")
	assert.Equal(lines[6], "uphy.ready: false")
}

func TestPrint(t *testing.T) {
	assert := test.Assert{TB: t}
	w := new(strings.Builder)
	ctx := goes.WithOutput(context.Background(), w)
	Print(goes.OutputOf(ctx), uphy.Status{
		PllFsm:      uphy.PllFsmIdle,
		PllCalValid: true,
		PllEnabled:  true,
		TxFsm:       uphy.TxFsmDataEn,
		RxFsm:       uphy.RxFsmActive,
		P1clkHz:     200195312,
		Ready:       true,
	})
	assert.Match(w.String(), "(?m)^uphy.pll.cal_valid: true$")
	assert.Match(w.String(), "(?m)^uphy.ready: true$")
}

func TestErrors(t *testing.T) {
	assert := test.Assert{TB: t}
	_, err := run("ready", "-sim", "extra")
	assert.Error(err, "goes-uphy ready: [extra]: unexpected")

	_, err = run("status")
	assert.Error(err, "goes-uphy status: -plu: missing")

	_, err = run("configure", "-sim", "-retry", "x")
	assert.Error(err, `goes-uphy configure: -retry: "x" invalid`)
}

func TestHelpComplete(t *testing.T) {
	assert := test.Assert{TB: t}
	out, err := run("help", "ready")
	assert.Nil(err)
	assert.Equal(out, "usage: goes-uphy ready "+deviceUsage+"\n")

	out, err = run("complete", "configure", "-r")
	assert.Nil(err)
	assert.Equal(out, "-retry\n")
}
