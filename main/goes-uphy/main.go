// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// goes-uphy configures, queries and monitors the UPHY of the GigE port.
package main

import (
	"github.com/platinasystems/uphy/cmd/uphyctl"
	"github.com/platinasystems/uphy/cmd/uphyd"
	"github.com/platinasystems/uphy/goes"
)

func Selection() goes.Selection {
	m := goes.Selection{uphyd.Name: uphyd.Main}
	for k, f := range uphyctl.Selection {
		m[k] = f
	}
	return m
}

func main() {
	Selection().Main()
}
