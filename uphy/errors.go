// Copyright © 2022 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

package uphy

import (
	"errors"
	"fmt"
)

var (
	ErrTimeout             = errors.New("timed out")
	ErrInvalidChecksum     = errors.New("invalid imem checksum")
	ErrResourceUnavailable = errors.New("resource unavailable")
)

// Error records the bring up stage that failed.
type Error struct {
	Stage string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("uphy %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// StageOf returns the failed stage recorded in err's chain, if any.
func StageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Stage
	}
	return ""
}

func stage(name string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Stage: name, Err: err}
}
