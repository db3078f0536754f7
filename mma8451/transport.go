// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8451

import (
	"encoding/binary"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/mmr"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// transport performs single byte register accesses on the device.
type transport struct {
	regs  mmr.Dev8
	debug DebugF
}

func newTransport(b i2c.Bus, addr uint16) transport {
	return transport{
		// Multi-byte output registers are MSB first.
		regs:  mmr.Dev8{Conn: &i2c.Dev{Bus: b, Addr: addr}, Order: binary.BigEndian},
		debug: noop,
	}
}

func (t *transport) readByte(reg Register) (byte, error) {
	v, err := t.regs.ReadUint8(uint8(reg))
	if err != nil {
		t.debug("read %s failed: %v", reg, err)
		return 0, &BusError{Op: "read", Reg: reg, Err: err}
	}
	t.debug("read %s = 0x%02x", reg, v)
	return v, nil
}

func (t *transport) writeByte(reg Register, value byte) error {
	t.debug("write %s = 0x%02x", reg, value)
	if err := t.regs.WriteUint8(uint8(reg), value); err != nil {
		t.debug("write %s failed: %v", reg, err)
		return &BusError{Op: "write", Reg: reg, Err: err}
	}
	return nil
}

// writeMaskedReg replaces the bits selected by mask with the same bits of
// value, leaving the rest of the register untouched. The register is always
// read and written back, even when the value does not change.
func (t *transport) writeMaskedReg(reg Register, mask, value byte) error {
	regVal, err := t.readByte(reg)
	if err != nil {
		return err
	}
	return t.writeByte(reg, (regVal&^mask)|(value&mask))
}

func (t *transport) readMaskedReg(reg Register, mask byte) (byte, error) {
	regVal, err := t.readByte(reg)
	if err != nil {
		return 0, err
	}
	return regVal & mask, nil
}

func noop(string, ...interface{}) {}
