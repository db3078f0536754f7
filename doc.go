// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package accel is a container for accelerometer drivers.
//
// Drivers live in their own package, for example mma8451. The
// cmd/mma8451 tool configures a device from the command line.
package accel
