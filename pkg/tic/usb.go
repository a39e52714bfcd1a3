// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// USB frames Tic commands as vendor-class control transfers. Commands are
// host-to-device transfers carrying the value in the wValue and wIndex
// fields; block reads are device-to-host transfers whose response buffer
// is the raw payload.
type USB struct {
	port ControlPort
}

// NewUSB returns a USB transport over the given control transfer backend.
// A *gousb.Device satisfies ControlPort directly.
func NewUSB(port ControlPort) *USB {
	return &USB{port: port}
}

// Quick implements Transport.
func (t *USB) Quick(code byte) error {
	_, err := t.port.Control(usbRequestOut, code, 0, 0, nil)
	return err
}

// Write7 implements Transport.
func (t *USB) Write7(code byte, value uint8) error {
	if err := check7Bit(code, value); err != nil {
		return err
	}
	_, err := t.port.Control(usbRequestOut, code, uint16(value), 0, nil)
	return err
}

// Write32 implements Transport. The 32-bit value is split into its low
// half in wValue and high half in wIndex.
func (t *USB) Write32(code byte, value int32) error {
	v := uint32(value)
	_, err := t.port.Control(usbRequestOut, code, uint16(v&0xFFFF), uint16(v>>16), nil)
	return err
}

// BlockRead implements Transport. The offset travels in wIndex and the
// response buffer carries the raw payload bytes.
func (t *USB) BlockRead(code byte, offset, length uint8) ([]byte, error) {
	buf := make([]byte, int(length))
	n, err := t.port.Control(usbRequestIn, code, 0, uint16(offset), buf)
	if err != nil {
		return nil, err
	}
	if n != int(length) {
		return nil, protocolErrorf("expected to read %d bytes, got %d", length, n)
	}
	return buf[:n], nil
}
