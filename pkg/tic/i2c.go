// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// I2C frames Tic commands for a two-wire register bus. Bus addressing is
// the backend's concern; requests are plain opcode+payload write
// transactions and block reads are a small read-request record followed
// by a bus read of the requested length.
type I2C struct {
	port Port
}

// NewI2C returns an I2C transport over the given bus backend.
func NewI2C(port Port) *I2C {
	return &I2C{port: port}
}

// Quick implements Transport.
func (t *I2C) Quick(code byte) error {
	return t.port.Write([]byte{code})
}

// Write7 implements Transport.
func (t *I2C) Write7(code byte, value uint8) error {
	if err := check7Bit(code, value); err != nil {
		return err
	}
	return t.port.Write([]byte{code, value})
}

// Write32 implements Transport. The value is sent as four raw
// little-endian bytes; the bus carries full 8-bit data.
func (t *I2C) Write32(code byte, value int32) error {
	v := uint32(value)
	return t.port.Write([]byte{code, byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

// BlockRead implements Transport.
func (t *I2C) BlockRead(code byte, offset, length uint8) ([]byte, error) {
	if err := t.port.Write([]byte{code, offset, length}); err != nil {
		return nil, err
	}
	buf, err := t.port.Read(int(length))
	if err != nil {
		return nil, err
	}
	if len(buf) != int(length) {
		return nil, protocolErrorf("expected to read %d bytes, got %d", length, len(buf))
	}
	return buf, nil
}
