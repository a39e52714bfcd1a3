// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import (
	"errors"
	"testing"
)

func TestI2C_Quick(t *testing.T) {
	port := &scriptPort{}
	tr := NewI2C(port)

	if err := tr.Quick(CmdEnergize); err != nil {
		t.Fatalf("Quick: %v", err)
	}
	if got := port.lastWrite(); !equalBytes(got, []byte{0x85}) {
		t.Errorf("frame = % X, want 85", got)
	}
}

func TestI2C_Write7(t *testing.T) {
	port := &scriptPort{}
	tr := NewI2C(port)

	if err := tr.Write7(CmdGoHome, 1); err != nil {
		t.Fatalf("Write7: %v", err)
	}
	if got := port.lastWrite(); !equalBytes(got, []byte{0x97, 0x01}) {
		t.Errorf("frame = % X, want 97 01", got)
	}

	if err := tr.Write7(CmdGoHome, 0x90); err == nil {
		t.Error("expected EncodingError for out-of-range 7-bit value")
	}
}

func TestI2C_Write32_RawLittleEndian(t *testing.T) {
	port := &scriptPort{}
	tr := NewI2C(port)

	if err := tr.Write32(CmdSetTargetPosition, -99); err != nil {
		t.Fatalf("Write32: %v", err)
	}
	want := []byte{0xE0, 0x9D, 0xFF, 0xFF, 0xFF}
	if got := port.lastWrite(); !equalBytes(got, want) {
		t.Errorf("frame = % X, want % X", got, want)
	}
}

func TestI2C_BlockRead(t *testing.T) {
	port := &scriptPort{responses: [][]byte{{0x0A, 0x00, 0x00, 0x00}}}
	tr := NewI2C(port)

	buf, err := tr.BlockRead(CmdGetVariable, 0x22, 4)
	if err != nil {
		t.Fatalf("BlockRead: %v", err)
	}
	if got := port.lastWrite(); !equalBytes(got, []byte{0xA1, 0x22, 0x04}) {
		t.Errorf("request record = % X, want A1 22 04", got)
	}
	if got := SignedInt(buf); got != 10 {
		t.Errorf("decoded value = %d, want 10", got)
	}
}

func TestI2C_BlockRead_ShortResponse(t *testing.T) {
	port := &scriptPort{responses: [][]byte{{0x0A}}}
	tr := NewI2C(port)

	_, err := tr.BlockRead(CmdGetVariable, 0x22, 4)
	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

// The transports must agree on the semantic value; only the envelope may
// differ.
func TestTransports_SameValueDifferentEnvelope(t *testing.T) {
	var value int32 = -99

	i2cPort := &scriptPort{}
	if err := NewI2C(i2cPort).Write32(CmdSetTargetPosition, value); err != nil {
		t.Fatalf("I2C Write32: %v", err)
	}
	i2cValue := uint32(UnsignedInt(i2cPort.lastWrite()[1:5]))

	usbPort := &scriptControl{}
	if err := NewUSB(usbPort).Write32(CmdSetTargetPosition, value); err != nil {
		t.Fatalf("USB Write32: %v", err)
	}
	call := usbPort.lastCall()
	usbValue := uint32(call.val) | uint32(call.idx)<<16

	serialPort := &scriptPort{}
	if err := NewSerial(serialPort, SerialOptions{}).Write32(CmdSetTargetPosition, value); err != nil {
		t.Fatalf("serial Write32: %v", err)
	}
	frame := serialPort.lastWrite()
	msbs := frame[1]
	var serialValue uint32
	for i := 0; i < 4; i++ {
		b := uint32(frame[2+i]) | uint32(msbs)>>i&1<<7
		serialValue |= b << (8 * i)
	}

	if i2cValue != uint32(value) || usbValue != uint32(value) || serialValue != uint32(value) {
		t.Errorf("decoded values differ: i2c=%#X usb=%#X serial=%#X want %#X",
			i2cValue, usbValue, serialValue, uint32(value))
	}
}
