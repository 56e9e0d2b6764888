// Copyright © 2016-2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package goes

import (
	"log"
	"os"
	"syscall"

	plog "github.com/platinasystems/log"
)

// Main cancels the command context on these.
var TerminationSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
}

func StyleLog() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Lshortfile)
	log.SetPrefix(Prog + ":")
}

// Fatal records the failure in the system log, so that it outlives a
// daemon's stderr, then prints it and exits.
func Fatal(v ...interface{}) {
	plog.Print(append([]interface{}{"daemon", "err"}, v...)...)
	log.SetFlags(0)
	log.SetPrefix(Prog + ": ")
	log.Fatal(v...)
}
