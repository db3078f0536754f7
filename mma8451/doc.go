// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mma8451 controls an NXP MMA8451Q 3-axis accelerometer over I²C.
//
// The driver covers the mode, dynamic range, output data rate and
// oversampling settings. Most settings can only be changed while the device
// is in standby; the setters return ErrActive otherwise.
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/MMA8451Q.pdf
package mma8451
