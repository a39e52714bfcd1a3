// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

// Package tic provides a host-side driver for the Pololu Tic family of
// stepper motor controllers.
//
// The package implements the Tic command protocol over three transports
// (TTL serial, I2C, and USB vendor control transfers), the CRC-7 frame
// checksum used on the serial line, and declarative registries describing
// every command, variable, and setting the controllers expose.
//
// See the Tic user's guide at https://www.pololu.com/docs/0J71 for the
// protocol reference this package transcribes.
package tic

// USB identifiers, used to select a controller by product ID.
const (
	VendorID uint16 = 0x1FFB // Pololu

	ProductT825 uint16 = 0x00B3
	ProductT834 uint16 = 0x00B5
	ProductT500 uint16 = 0x00BD
	ProductN825 uint16 = 0x00C3
	ProductT249 uint16 = 0x00C9
	Product36v4 uint16 = 0x00CB
)

// ProductIDs lists every known controller product ID, for device
// enumeration.
var ProductIDs = []uint16{
	ProductT825,
	ProductT834,
	ProductT500,
	ProductN825,
	ProductT249,
	Product36v4,
}

// Command opcodes.
// See the command reference at https://www.pololu.com/docs/0J71/8
const (
	CmdSetTargetPosition   byte = 0xE0
	CmdSetTargetVelocity   byte = 0xE3
	CmdHaltAndSetPosition  byte = 0xEC
	CmdHaltAndHold         byte = 0x89
	CmdGoHome              byte = 0x97
	CmdResetCommandTimeout byte = 0x8C
	CmdDeenergize          byte = 0x86
	CmdEnergize            byte = 0x85
	CmdExitSafeStart       byte = 0x83
	CmdEnterSafeStart      byte = 0x8F
	CmdReset               byte = 0xB0
	CmdClearDriverError    byte = 0x8A
	CmdSetMaxSpeed         byte = 0xE6
	CmdSetStartingSpeed    byte = 0xE5
	CmdSetMaxAcceleration  byte = 0xEA
	CmdSetMaxDeceleration  byte = 0xE9
	CmdSetStepMode         byte = 0x94
	CmdSetCurrentLimit     byte = 0x91
	CmdSetDecayMode        byte = 0x92
	CmdSetAGCOption        byte = 0x98
)

// Block-read opcodes selecting the variable or setting memory window.
const (
	CmdGetVariable byte = 0xA1
	CmdGetSetting  byte = 0xA8
)

// Serial (Pololu protocol) framing.
const (
	SyncByte byte = 0xAA

	// Block reads of offsets at or above this value encode the offset as
	// offset-0x80 with bit 6 of the length byte set.
	serialExtendedOffset = 0x80
	serialExtendedLength = 0x40

	// Device numbers at or above 0x80 require the 14-bit addressing mode
	// and are split across two 7-bit address bytes.
	serialCompactDeviceLimit = 0x80
)

// CRC-7 configuration. The polynomial is the reflected form used by the
// vendor's reference implementation.
const crcPolynomial = 0x91

// USB vendor control transfer request types.
const (
	usbRequestOut = 0x40 // host to device, vendor, device recipient
	usbRequestIn  = 0xC0 // device to host, vendor, device recipient
)
