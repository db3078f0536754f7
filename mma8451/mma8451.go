// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8451

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the I²C address with SA0 pulled high.
	DefaultAddress uint16 = 0x1D
	// AlternateAddress is the I²C address with SA0 tied to ground.
	AlternateAddress uint16 = 0x1C
)

// Range is the dynamic range, XYZ_DATA_CFG FS[1:0].
type Range uint8

const (
	Range2G Range = 0b00 // ±2g
	Range4G Range = 0b01 // ±4g, device default
	Range8G Range = 0b10 // ±8g
)

// FullScale returns the full scale in g, or 0 for an unknown range.
func (r Range) FullScale() int {
	switch r {
	case Range2G:
		return 2
	case Range4G:
		return 4
	case Range8G:
		return 8
	}
	return 0
}

func (r Range) String() string {
	if fs := r.FullScale(); fs != 0 {
		return fmt.Sprintf("±%dg", fs)
	}
	return fmt.Sprintf("Range(%d)", uint8(r))
}

// DataRate is the output data rate in active mode, CTRL_REG1 DR[2:0].
type DataRate uint8

const (
	DataRate800Hz  DataRate = 0b000 // device default
	DataRate400Hz  DataRate = 0b001
	DataRate200Hz  DataRate = 0b010
	DataRate100Hz  DataRate = 0b011
	DataRate50Hz   DataRate = 0b100
	DataRate12_5Hz DataRate = 0b101
	DataRate6_25Hz DataRate = 0b110
	DataRate1_56Hz DataRate = 0b111
)

var dataRates = [...]struct {
	f    physic.Frequency
	name string
}{
	DataRate800Hz:  {800 * physic.Hertz, "800Hz"},
	DataRate400Hz:  {400 * physic.Hertz, "400Hz"},
	DataRate200Hz:  {200 * physic.Hertz, "200Hz"},
	DataRate100Hz:  {100 * physic.Hertz, "100Hz"},
	DataRate50Hz:   {50 * physic.Hertz, "50Hz"},
	DataRate12_5Hz: {12500 * physic.MilliHertz, "12.5Hz"},
	DataRate6_25Hz: {6250 * physic.MilliHertz, "6.25Hz"},
	DataRate1_56Hz: {1562500 * physic.MicroHertz, "1.56Hz"},
}

// Frequency returns the sampling frequency, or 0 for an unknown data rate.
func (r DataRate) Frequency() physic.Frequency {
	if int(r) >= len(dataRates) {
		return 0
	}
	return dataRates[r].f
}

func (r DataRate) String() string {
	if int(r) >= len(dataRates) {
		return fmt.Sprintf("DataRate(%d)", uint8(r))
	}
	return dataRates[r].name
}

// Oversampling is the active mode power scheme, CTRL_REG2 MODS[1:0]. It
// trades current consumption against noise.
type Oversampling uint8

const (
	OversamplingNormal           Oversampling = 0b00
	OversamplingLowNoiseLowPower Oversampling = 0b01
	OversamplingHighResolution   Oversampling = 0b10
	OversamplingLowPower         Oversampling = 0b11
)

func (o Oversampling) String() string {
	switch o {
	case OversamplingNormal:
		return "normal"
	case OversamplingLowNoiseLowPower:
		return "low-noise-low-power"
	case OversamplingHighResolution:
		return "high-resolution"
	case OversamplingLowPower:
		return "low-power"
	}
	return fmt.Sprintf("Oversampling(%d)", uint8(o))
}

// Mode is the ACTIVE bit of CTRL_REG1.
type Mode uint8

const (
	ModeStandby Mode = 0b00
	ModeActive  Mode = 0b01
)

func (m Mode) String() string {
	if m == ModeActive {
		return "active"
	}
	return "standby"
}

// Opts holds the configuration applied by Configure.
type Opts struct {
	Range        Range
	DataRate     DataRate
	Oversampling Oversampling
	// Activate puts the device in active mode once configured.
	Activate bool
}

// DefaultOpts are the power-on values of the device, followed by activation.
var DefaultOpts = Opts{
	Range:        Range4G,
	DataRate:     DataRate800Hz,
	Oversampling: OversamplingNormal,
	Activate:     true,
}

// Dev is a handle to an MMA8451 accelerometer.
//
// The mode reported by IsActive is the last mode set through this handle; it
// is not read back from the device. If the device is reset or reconfigured by
// someone else, call SyncMode to resynchronize it.
type Dev struct {
	mu     sync.Mutex
	t      transport
	active bool
}

// NewI2C returns a handle for the device at addr on bus b. An addr of 0
// selects DefaultAddress.
//
// No I²C transaction is done: the device is assumed to be in standby mode,
// which is its power-on state.
func NewI2C(b i2c.Bus, addr uint16) *Dev {
	if addr == 0 {
		addr = DefaultAddress
	}
	return &Dev{t: newTransport(b, addr)}
}

// EnableDebug logs every register access through f.
func (d *Dev) EnableDebug(f DebugF) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if f == nil {
		f = noop
	}
	d.t.debug = f
}

func (d *Dev) String() string {
	return fmt.Sprintf("mma8451{%s}", d.t.regs.String())
}

// IsActive reports whether the device was last put in active mode.
func (d *Dev) IsActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}

// Standby clears the ACTIVE bit. Configuration registers can only be changed
// in standby.
func (d *Dev) Standby() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.standby()
}

// Activate sets the ACTIVE bit and starts sampling.
func (d *Dev) Activate() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.activate()
}

// Halt puts the device in standby. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.Standby()
}

// SyncMode reads the ACTIVE bit from the device and updates the mode
// reported by IsActive.
func (d *Dev) SyncMode() (Mode, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.t.readMaskedReg(CtrlReg1, activeMask)
	if err != nil {
		return ModeStandby, err
	}
	d.active = v != 0
	return Mode(v), nil
}

// SetRange sets the dynamic range. Returns ErrActive when the device is
// active.
func (d *Dev) SetRange(r Range) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setRange(r)
}

// SetDataRate sets the output data rate. Returns ErrActive when the device
// is active.
func (d *Dev) SetDataRate(r DataRate) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setDataRate(r)
}

// SetOversampling sets the oversampling mode used while active. Returns
// ErrActive when the device is active.
func (d *Dev) SetOversampling(o Oversampling) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setOversampling(o)
}

// Range reads the dynamic range from the device.
func (d *Dev) Range() (Range, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.t.readMaskedReg(XYZDataCfg, rangeMask)
	return Range(v), err
}

// DataRate reads the output data rate from the device.
func (d *Dev) DataRate() (DataRate, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.t.readMaskedReg(CtrlReg1, dataRateMask)
	return DataRate(v >> dataRateShift), err
}

// Oversampling reads the active oversampling mode from the device.
func (d *Dev) Oversampling() (Oversampling, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	v, err := d.t.readMaskedReg(CtrlReg2, oversamplingMask)
	return Oversampling(v), err
}

// Configure puts the device in standby, applies the range, data rate and
// oversampling mode, then activates it if requested. A nil o applies
// DefaultOpts.
func (d *Dev) Configure(o *Opts) error {
	if o == nil {
		o = &DefaultOpts
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.standby(); err != nil {
		return err
	}
	if err := d.setRange(o.Range); err != nil {
		return err
	}
	if err := d.setDataRate(o.DataRate); err != nil {
		return err
	}
	if err := d.setOversampling(o.Oversampling); err != nil {
		return err
	}
	if o.Activate {
		return d.activate()
	}
	return nil
}

//

func (d *Dev) standby() error {
	if err := d.t.writeMaskedReg(CtrlReg1, activeMask, 0); err != nil {
		return err
	}
	d.active = false
	return nil
}

func (d *Dev) activate() error {
	if err := d.t.writeMaskedReg(CtrlReg1, activeMask, byte(ModeActive)); err != nil {
		return err
	}
	d.active = true
	return nil
}

func (d *Dev) setRange(r Range) error {
	if d.active {
		return ErrActive
	}
	if r.FullScale() == 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRange, r)
	}
	return d.t.writeMaskedReg(XYZDataCfg, rangeMask, byte(r))
}

func (d *Dev) setDataRate(r DataRate) error {
	if d.active {
		return ErrActive
	}
	if int(r) >= len(dataRates) {
		return fmt.Errorf("%w: %d", ErrInvalidDataRate, r)
	}
	return d.t.writeMaskedReg(CtrlReg1, dataRateMask, byte(r)<<dataRateShift)
}

func (d *Dev) setOversampling(o Oversampling) error {
	if d.active {
		return ErrActive
	}
	if o > OversamplingLowPower {
		return fmt.Errorf("%w: %d", ErrInvalidOversampling, o)
	}
	return d.t.writeMaskedReg(CtrlReg2, oversamplingMask, byte(o))
}

var _ conn.Resource = &Dev{}
