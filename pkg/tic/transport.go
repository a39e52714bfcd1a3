// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// Port is the byte channel a serial or I2C transport backend must
// provide. Read returns exactly n bytes or an error; Write transmits the
// whole buffer or fails. Implementations own any timeout policy; this
// layer never retries and reports backend errors unchanged.
type Port interface {
	Read(n int) ([]byte, error)
	Write(p []byte) error
}

// ControlPort is the backend a USB transport requires: a vendor control
// transfer primitive. The signature matches *gousb.Device.Control, so a
// gousb device handle satisfies the interface directly.
type ControlPort interface {
	Control(rType, request uint8, val, idx uint16, data []byte) (int, error)
}

// Transport frames typed operations into the byte sequences a particular
// link requires and unwraps the responses. Implementations are stateless
// between requests: every operation is at most one write followed by at
// most one read.
//
// A Transport is not safe for concurrent use. The protocol is strictly
// request-then-matching-response, so interleaving two outstanding
// requests on one session would misattribute responses. Independent
// sessions on separate devices may be used concurrently.
type Transport interface {
	// Quick writes an opcode-only command.
	Quick(code byte) error
	// Write7 writes a command carrying a 7-bit value (0-127).
	Write7(code byte, value uint8) error
	// Write32 writes a command carrying a signed 32-bit value.
	Write32(code byte, value int32) error
	// BlockRead requests length bytes starting at offset within the
	// memory window selected by code (CmdGetVariable or CmdGetSetting)
	// and returns exactly that many payload bytes.
	BlockRead(code byte, offset, length uint8) ([]byte, error)
}

// check7Bit validates a 7-bit command value before any I/O.
func check7Bit(code byte, value uint8) error {
	if value > 0x7F {
		return &EncodingError{Code: code, Value: int64(value), Msg: "value does not fit in 7 bits"}
	}
	return nil
}
