// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import (
	"fmt"

	"github.com/platinasystems/log"
)

// Entry is one indirect register write; Addr is 11 bits wide.
type Entry struct {
	Addr, Data uint16
}

func (e Entry) String() string {
	return fmt.Sprintf("%#03x=%#04x", e.Addr, e.Data)
}

// Table is an ordered vendor configuration package.
type Table struct {
	Name    string
	Entries []Entry
}

func (tbl Table) Len() int { return len(tbl.Entries) }

// LoadTable writes each entry in order through the target gateway, stopping
// at the first failed write.  Entries already written are left in place.
func (u *Uphy) LoadTable(t Target, tbl Table) error {
	for i, e := range tbl.Entries {
		if err := u.GatewayWrite(t, e.Addr, e.Data); err != nil {
			log.Print("daemon", "debug", "failed to load ", tbl.Name,
				" entry ", i, " ", e, ": ", err)
			return fmt.Errorf("%s[%d]: %w", tbl.Name, i, err)
		}
	}
	return nil
}
