// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8451

import "fmt"

// Register is the address of a single byte register inside the device.
type Register uint8

const (
	Status       Register = 0x00 // Data status (or FIFO status when F_MODE > 0)
	OutXMSB      Register = 0x01 // X-Axis Data MSB
	OutXLSB      Register = 0x02 // X-Axis Data LSB
	OutYMSB      Register = 0x03 // Y-Axis Data MSB
	OutYLSB      Register = 0x04 // Y-Axis Data LSB
	OutZMSB      Register = 0x05 // Z-Axis Data MSB
	OutZLSB      Register = 0x06 // Z-Axis Data LSB
	FSetup       Register = 0x09 // FIFO setup
	TrigCfg      Register = 0x0A // FIFO triggers
	SysMod       Register = 0x0B // Current system mode
	IntSource    Register = 0x0C // Interrupt status
	WhoAmI       Register = 0x0D // Device ID, 0x1A for the MMA8451Q
	XYZDataCfg   Register = 0x0E // Dynamic range and high-pass output
	HPFilterCut  Register = 0x0F // High-pass filter cut-off
	PLStatus     Register = 0x10 // Portrait/landscape status
	PLCfg        Register = 0x11 // Portrait/landscape configuration
	PLCount      Register = 0x12 // Portrait/landscape debounce counter
	PLBfZComp    Register = 0x13 // Back/front and Z compensation
	PLThs        Register = 0x14 // Portrait/landscape threshold and hysteresis
	FFMtCfg      Register = 0x15 // Freefall/motion configuration
	FFMtSrc      Register = 0x16 // Freefall/motion source
	FFMtThs      Register = 0x17 // Freefall/motion threshold
	FFMtCount    Register = 0x18 // Freefall/motion debounce counter
	TransientCfg Register = 0x1D // Transient configuration
	TransientSrc Register = 0x1E // Transient source
	TransientThs Register = 0x1F // Transient threshold
	TransientCnt Register = 0x20 // Transient debounce counter
	PulseCfg     Register = 0x21 // Pulse (tap) configuration
	PulseSrc     Register = 0x22 // Pulse source
	PulseThsX    Register = 0x23 // X pulse threshold
	PulseThsY    Register = 0x24 // Y pulse threshold
	PulseThsZ    Register = 0x25 // Z pulse threshold
	PulseTmlt    Register = 0x26 // Pulse time window 1
	PulseLtcy    Register = 0x27 // Pulse latency
	PulseWind    Register = 0x28 // Second pulse time window
	AslpCount    Register = 0x29 // Auto-sleep inactivity counter

	// Control registers

	CtrlReg1 Register = 0x2A // Data rate, fast read and ACTIVE bit
	CtrlReg2 Register = 0x2B // Self-test, reset, sleep and active oversampling modes
	CtrlReg3 Register = 0x2C // Wake from sleep, interrupt polarity
	CtrlReg4 Register = 0x2D // Interrupt enable
	CtrlReg5 Register = 0x2E // Interrupt pin routing

	// Offset correction

	OffX Register = 0x2F // X-Axis offset
	OffY Register = 0x30 // Y-Axis offset
	OffZ Register = 0x31 // Z-Axis offset
)

// Bit fields touched by the driver.
const (
	activeMask       byte = 0x01 // CTRL_REG1 ACTIVE
	dataRateMask     byte = 0x38 // CTRL_REG1 DR[2:0]
	dataRateShift         = 3
	rangeMask        byte = 0x03 // XYZ_DATA_CFG FS[1:0]
	oversamplingMask byte = 0x03 // CTRL_REG2 MODS[1:0]
)

var registerNames = map[Register]string{
	Status:       "STATUS",
	OutXMSB:      "OUT_X_MSB",
	OutXLSB:      "OUT_X_LSB",
	OutYMSB:      "OUT_Y_MSB",
	OutYLSB:      "OUT_Y_LSB",
	OutZMSB:      "OUT_Z_MSB",
	OutZLSB:      "OUT_Z_LSB",
	FSetup:       "F_SETUP",
	TrigCfg:      "TRIG_CFG",
	SysMod:       "SYSMOD",
	IntSource:    "INT_SOURCE",
	WhoAmI:       "WHO_AM_I",
	XYZDataCfg:   "XYZ_DATA_CFG",
	HPFilterCut:  "HP_FILTER_CUTOFF",
	PLStatus:     "PL_STATUS",
	PLCfg:        "PL_CFG",
	PLCount:      "PL_COUNT",
	PLBfZComp:    "PL_BF_ZCOMP",
	PLThs:        "P_L_THS_REG",
	FFMtCfg:      "FF_MT_CFG",
	FFMtSrc:      "FF_MT_SRC",
	FFMtThs:      "FF_MT_THS",
	FFMtCount:    "FF_MT_COUNT",
	TransientCfg: "TRANSIENT_CFG",
	TransientSrc: "TRANSIENT_SRC",
	TransientThs: "TRANSIENT_THS",
	TransientCnt: "TRANSIENT_COUNT",
	PulseCfg:     "PULSE_CFG",
	PulseSrc:     "PULSE_SRC",
	PulseThsX:    "PULSE_THSX",
	PulseThsY:    "PULSE_THSY",
	PulseThsZ:    "PULSE_THSZ",
	PulseTmlt:    "PULSE_TMLT",
	PulseLtcy:    "PULSE_LTCY",
	PulseWind:    "PULSE_WIND",
	AslpCount:    "ASLP_COUNT",
	CtrlReg1:     "CTRL_REG1",
	CtrlReg2:     "CTRL_REG2",
	CtrlReg3:     "CTRL_REG3",
	CtrlReg4:     "CTRL_REG4",
	CtrlReg5:     "CTRL_REG5",
	OffX:         "OFF_X",
	OffY:         "OFF_Y",
	OffZ:         "OFF_Z",
}

// String returns the datasheet name of the register, or its address when the
// address is not part of the map.
func (r Register) String() string {
	if n, ok := registerNames[r]; ok {
		return n
	}
	return fmt.Sprintf("REG_0x%02X", uint8(r))
}
