// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/GermanBionicSystems/accel/mma8451"
	"gopkg.in/yaml.v3"
)

// profile is a device configuration stored as YAML:
//
//	bus: "1"
//	address: 0x1d
//	range: 8g
//	data_rate: 12.5
//	oversampling: high-resolution
//	active: true
//
// Empty fields keep the value already selected.
type profile struct {
	Bus          string `yaml:"bus"`
	Address      uint16 `yaml:"address"`
	Range        string `yaml:"range"`
	DataRate     string `yaml:"data_rate"`
	Oversampling string `yaml:"oversampling"`
	Active       *bool  `yaml:"active"`
}

// profileError reports a profile that could not be loaded.
type profileError struct {
	File    string
	Message string
	Cause   error
}

func (e *profileError) Error() string {
	s := e.Message
	if e.File != "" {
		s = e.File + ": " + s
	}
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *profileError) Unwrap() error { return e.Cause }

// parseProfile decodes and validates a profile.
func parseProfile(data []byte) (*profile, error) {
	var p profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &profileError{Message: "failed to parse YAML", Cause: err}
	}
	var o mma8451.Opts
	if err := p.apply(&o); err != nil {
		return nil, &profileError{Message: "invalid setting", Cause: err}
	}
	return &p, nil
}

// loadProfile reads a profile from a file.
func loadProfile(path string) (*profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &profileError{File: path, Message: "failed to read file", Cause: err}
	}
	p, err := parseProfile(data)
	if err != nil {
		if pe, ok := err.(*profileError); ok {
			pe.File = path
		}
		return nil, err
	}
	return p, nil
}

// merge overrides the fields of p that are set in o.
func (p *profile) merge(o *profile) {
	if o.Bus != "" {
		p.Bus = o.Bus
	}
	if o.Address != 0 {
		p.Address = o.Address
	}
	if o.Range != "" {
		p.Range = o.Range
	}
	if o.DataRate != "" {
		p.DataRate = o.DataRate
	}
	if o.Oversampling != "" {
		p.Oversampling = o.Oversampling
	}
	if o.Active != nil {
		p.Active = o.Active
	}
}

// apply sets the fields of o selected in the profile.
func (p *profile) apply(o *mma8451.Opts) error {
	if p.Range != "" {
		r, err := parseRange(p.Range)
		if err != nil {
			return err
		}
		o.Range = r
	}
	if p.DataRate != "" {
		r, err := parseDataRate(p.DataRate)
		if err != nil {
			return err
		}
		o.DataRate = r
	}
	if p.Oversampling != "" {
		m, err := parseOversampling(p.Oversampling)
		if err != nil {
			return err
		}
		o.Oversampling = m
	}
	if p.Active != nil {
		o.Activate = *p.Active
	}
	return nil
}

// parseRange accepts "2g", "±2g", "2" and the same for 4 and 8.
func parseRange(s string) (mma8451.Range, error) {
	v := strings.TrimPrefix(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "g"), "±")
	for _, r := range []mma8451.Range{mma8451.Range2G, mma8451.Range4G, mma8451.Range8G} {
		if v == fmt.Sprint(r.FullScale()) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown range %q, expected 2g, 4g or 8g", s)
}

// parseDataRate accepts the rate in Hz, with or without the unit.
func parseDataRate(s string) (mma8451.DataRate, error) {
	v := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "hz")
	for r := mma8451.DataRate800Hz; r <= mma8451.DataRate1_56Hz; r++ {
		if v == strings.TrimSuffix(r.String(), "Hz") {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown data rate %q, expected one of 800, 400, 200, 100, 50, 12.5, 6.25 or 1.56", s)
}

func parseOversampling(s string) (mma8451.Oversampling, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	for m := mma8451.OversamplingNormal; m <= mma8451.OversamplingLowPower; m++ {
		if v == m.String() {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown oversampling mode %q, expected normal, low-noise-low-power, high-resolution or low-power", s)
}
