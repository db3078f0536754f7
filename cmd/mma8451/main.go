// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// mma8451 configures an MMA8451 accelerometer and prints its settings.
//
// Usage:
//
//	mma8451 [flags]
//
// Flags:
//
//	-b string             I²C bus to use
//	-a uint               I²C address (default 0x1d)
//	-profile string       YAML profile to apply before the flags
//	-range string         dynamic range: 2g, 4g or 8g
//	-rate string          output data rate in Hz
//	-oversampling string  normal, low-noise-low-power, high-resolution or low-power
//	-active               leave the device sampling (default true)
//	-v                    log every register access
//
// Examples:
//
//	# 8g, 100Hz, left in standby
//	mma8451 -range 8g -rate 100 -active=false
//
//	# Apply a profile, overriding its data rate
//	mma8451 -profile /etc/mma8451.yaml -rate 1.56
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/GermanBionicSystems/accel/mma8451"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

func mainImpl() error {
	busName := flag.String("b", "", "I²C bus to use")
	addr := flag.Uint("a", uint(mma8451.DefaultAddress), "I²C address")
	profilePath := flag.String("profile", "", "YAML profile to apply before the flags")
	rng := flag.String("range", "", "dynamic range: 2g, 4g or 8g")
	rate := flag.String("rate", "", "output data rate in Hz: 800, 400, 200, 100, 50, 12.5, 6.25 or 1.56")
	oversampling := flag.String("oversampling", "", "normal, low-noise-low-power, high-resolution or low-power")
	active := flag.Bool("active", true, "leave the device sampling")
	verbose := flag.Bool("v", false, "log every register access")
	flag.Parse()
	if flag.NArg() != 0 {
		return fmt.Errorf("unexpected argument: %v", flag.Args())
	}
	if *addr > 0x7F {
		return fmt.Errorf("invalid I²C address %#x", *addr)
	}

	p := &profile{Bus: *busName, Address: uint16(*addr)}
	if *profilePath != "" {
		var err error
		if p, err = loadProfile(*profilePath); err != nil {
			return err
		}
	}
	fromFlags := &profile{Range: *rng, DataRate: *rate, Oversampling: *oversampling}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "b":
			fromFlags.Bus = *busName
		case "a":
			fromFlags.Address = uint16(*addr)
		case "active":
			fromFlags.Active = active
		}
	})
	p.merge(fromFlags)

	opts := mma8451.DefaultOpts
	if err := p.apply(&opts); err != nil {
		return err
	}

	if _, err := host.Init(); err != nil {
		return err
	}
	b, err := i2creg.Open(p.Bus)
	if err != nil {
		return err
	}
	defer b.Close()

	w, color := stdout()
	return run(b, p.Address, &opts, *verbose, w, color)
}

// run applies opts to the device and reports the resulting state.
func run(b i2c.Bus, addr uint16, opts *mma8451.Opts, verbose bool, w io.Writer, color bool) error {
	d := mma8451.NewI2C(b, addr)
	if verbose {
		d.EnableDebug(log.Printf)
	}
	if err := d.Configure(opts); err != nil {
		return err
	}
	s, err := readStatus(d)
	if err != nil {
		return err
	}
	return report(w, color, d, s)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "mma8451: %s.\n", err)
		os.Exit(1)
	}
}
