// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8451

import (
	"errors"
	"fmt"
)

var (
	// ErrActive is returned by the configuration setters while the device is
	// in active mode. No bus transaction took place; call Standby first.
	ErrActive = errors.New("mma8451: device is active, enter standby first")

	ErrInvalidRange        = errors.New("mma8451: invalid range")
	ErrInvalidDataRate     = errors.New("mma8451: invalid data rate")
	ErrInvalidOversampling = errors.New("mma8451: invalid oversampling mode")
)

// BusError is returned when the I²C transaction for a register access failed.
// The underlying bus error is available through errors.Unwrap.
type BusError struct {
	Op  string // "read" or "write"
	Reg Register
	Err error
}

func (e *BusError) Error() string {
	return fmt.Sprintf("mma8451: %s %s: %v", e.Op, e.Reg, e.Err)
}

func (e *BusError) Unwrap() error { return e.Err }
