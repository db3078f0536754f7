// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/GermanBionicSystems/accel/mma8451"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// status is the configuration read back from the device.
type status struct {
	Mode         mma8451.Mode
	Range        mma8451.Range
	DataRate     mma8451.DataRate
	Oversampling mma8451.Oversampling
}

// readStatus reads the live configuration from the device.
func readStatus(d *mma8451.Dev) (status, error) {
	var s status
	var err error
	if s.Mode, err = d.SyncMode(); err != nil {
		return s, err
	}
	if s.Range, err = d.Range(); err != nil {
		return s, err
	}
	if s.DataRate, err = d.DataRate(); err != nil {
		return s, err
	}
	s.Oversampling, err = d.Oversampling()
	return s, err
}

// stdout returns the writer for the report and whether it understands ANSI
// colour sequences.
func stdout() (io.Writer, bool) {
	fd := os.Stdout.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	return colorable.NewColorableStdout(), tty
}

// report prints a single line describing the device.
func report(w io.Writer, color bool, d fmt.Stringer, s status) error {
	mode := s.Mode.String()
	if color {
		c := ansiYellow
		if s.Mode == mma8451.ModeActive {
			c = ansiGreen
		}
		mode = c + mode + ansiReset
	}
	_, err := fmt.Fprintf(w, "%s: %s %s %s %s\n", d, mode, s.Range, s.DataRate, s.Oversampling)
	return err
}
