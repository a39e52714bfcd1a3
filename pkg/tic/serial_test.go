// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import (
	"errors"
	"fmt"
	"testing"
)

func TestSerial_QuickCompact(t *testing.T) {
	port := &scriptPort{}
	tr := NewSerial(port, SerialOptions{})

	if err := tr.Quick(CmdEnergize); err != nil {
		t.Fatalf("Quick: %v", err)
	}
	if got := port.lastWrite(); !equalBytes(got, []byte{0x85}) {
		t.Errorf("compact quick frame = % X, want 85", got)
	}
}

func TestSerial_QuickPololuProtocol(t *testing.T) {
	port := &scriptPort{}
	tr := NewSerial(port, SerialOptions{DeviceNumber: u16ptr(0x0D)})

	if err := tr.Quick(CmdEnergize); err != nil {
		t.Fatalf("Quick: %v", err)
	}
	// The opcode's most significant bit is cleared on the wire.
	want := []byte{0xAA, 0x0D, 0x05}
	if got := port.lastWrite(); !equalBytes(got, want) {
		t.Errorf("Pololu protocol frame = % X, want % X", got, want)
	}
}

func TestSerial_QuickWithCommandCRC(t *testing.T) {
	port := &scriptPort{}
	tr := NewSerial(port, SerialOptions{DeviceNumber: u16ptr(0x0D), CRCForCommands: true})

	if err := tr.Quick(CmdEnergize); err != nil {
		t.Fatalf("Quick: %v", err)
	}
	got := port.lastWrite()
	want := []byte{0xAA, 0x0D, 0x05, 0x29}
	if !equalBytes(got, want) {
		t.Errorf("frame = % X, want % X", got, want)
	}
	if crc := CRC7(got[:3]); got[3] != crc {
		t.Errorf("trailing CRC = 0x%02X, want CRC7(frame) = 0x%02X", got[3], crc)
	}
}

func TestSerial_FourteenBitDeviceNumber(t *testing.T) {
	port := &scriptPort{}
	tr := NewSerial(port, SerialOptions{DeviceNumber: u16ptr(0x1234)})

	if err := tr.Quick(CmdDeenergize); err != nil {
		t.Fatalf("Quick: %v", err)
	}
	// 0x1234 = low 7 bits 0x34, high 7 bits 0x24.
	want := []byte{0xAA, 0x34, 0x24, 0x06}
	if got := port.lastWrite(); !equalBytes(got, want) {
		t.Errorf("14-bit frame = % X, want % X", got, want)
	}
}

func TestSerial_Write7(t *testing.T) {
	port := &scriptPort{}
	tr := NewSerial(port, SerialOptions{})

	if err := tr.Write7(CmdGoHome, 1); err != nil {
		t.Fatalf("Write7: %v", err)
	}
	if got := port.lastWrite(); !equalBytes(got, []byte{0x97, 0x01}) {
		t.Errorf("7-bit frame = % X, want 97 01", got)
	}
}

func TestSerial_Write7_OutOfRange(t *testing.T) {
	port := &scriptPort{}
	tr := NewSerial(port, SerialOptions{})

	err := tr.Write7(CmdSetStepMode, 0x80)
	var encErr *EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if len(port.writes) != 0 {
		t.Error("no bytes should be written when encoding fails")
	}
}

func TestSerial_Write32_SevenBitChunking(t *testing.T) {
	tests := []struct {
		name  string
		value int32
		want  []byte
	}{
		{
			name:  "minus 99",
			value: -99,
			want:  []byte{0xE0, 0x0F, 0x1D, 0x7F, 0x7F, 0x7F},
		},
		{
			name:  "zero",
			value: 0,
			want:  []byte{0xE0, 0x00, 0x00, 0x00, 0x00, 0x00},
		},
		{
			name:  "positive with high bits",
			value: 0x12345678,
			// 0x12345678 bytes LE: 78 56 34 12; MSbs: 0,0,0,0.
			want: []byte{0xE0, 0x00, 0x78, 0x56, 0x34, 0x12},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port := &scriptPort{}
			tr := NewSerial(port, SerialOptions{})
			if err := tr.Write32(CmdSetTargetPosition, tt.value); err != nil {
				t.Fatalf("Write32: %v", err)
			}
			if got := port.lastWrite(); !equalBytes(got, tt.want) {
				t.Errorf("frame = % X, want % X", got, tt.want)
			}
		})
	}
}

func TestSerial_Write32_MSBsAlwaysClear(t *testing.T) {
	values := []int32{-1, -2147483648, 2147483647, 0x7F, 0x80, 12345678}

	for _, v := range values {
		port := &scriptPort{}
		tr := NewSerial(port, SerialOptions{})
		if err := tr.Write32(CmdSetTargetVelocity, v); err != nil {
			t.Fatalf("Write32(%d): %v", v, err)
		}
		frame := port.lastWrite()
		for i, b := range frame[1:] {
			if b > 0x7F {
				t.Errorf("value %d: data byte %d = 0x%02X has MSB set", v, i, b)
			}
		}
	}
}

func TestSerial_BlockRead(t *testing.T) {
	port := &scriptPort{responses: [][]byte{{0x00, 0x00, 0x00, 0x80}}}
	tr := NewSerial(port, SerialOptions{})

	buf, err := tr.BlockRead(CmdGetVariable, 0x22, 4)
	if err != nil {
		t.Fatalf("BlockRead: %v", err)
	}
	if got := port.lastWrite(); !equalBytes(got, []byte{0xA1, 0x22, 0x04}) {
		t.Errorf("request = % X, want A1 22 04", got)
	}
	if got := SignedInt(buf); got != -2147483648 {
		t.Errorf("decoded value = %d, want -2147483648", got)
	}
}

func TestSerial_BlockRead_ExtendedOffset(t *testing.T) {
	port := &scriptPort{responses: [][]byte{{0x05}}}
	tr := NewSerial(port, SerialOptions{})

	// Offsets >= 0x80 are rebased with bit 6 of the length byte set.
	if _, err := tr.BlockRead(CmdGetSetting, 0xF6, 1); err != nil {
		t.Fatalf("BlockRead: %v", err)
	}
	if got := port.lastWrite(); !equalBytes(got, []byte{0xA8, 0x76, 0x41}) {
		t.Errorf("request = % X, want A8 76 41", got)
	}
}

func TestSerial_BlockRead_ResponseCRC(t *testing.T) {
	payload := []byte{0x2A, 0x00}

	t.Run("valid CRC", func(t *testing.T) {
		resp := append(append([]byte(nil), payload...), CRC7(payload))
		port := &scriptPort{responses: [][]byte{resp}}
		tr := NewSerial(port, SerialOptions{CRCForResponses: true})

		buf, err := tr.BlockRead(CmdGetVariable, 0x33, 2)
		if err != nil {
			t.Fatalf("BlockRead: %v", err)
		}
		if !equalBytes(buf, payload) {
			t.Errorf("payload = % X, want % X", buf, payload)
		}
	})

	t.Run("corrupted CRC", func(t *testing.T) {
		resp := append(append([]byte(nil), payload...), CRC7(payload)^0x01)
		port := &scriptPort{responses: [][]byte{resp}}
		tr := NewSerial(port, SerialOptions{CRCForResponses: true})

		_, err := tr.BlockRead(CmdGetVariable, 0x33, 2)
		var crcErr *ChecksumError
		if !errors.As(err, &crcErr) {
			t.Fatalf("expected ChecksumError, got %v", err)
		}
	})

	t.Run("missing CRC byte", func(t *testing.T) {
		port := &scriptPort{responses: [][]byte{payload}}
		tr := NewSerial(port, SerialOptions{CRCForResponses: true})

		_, err := tr.BlockRead(CmdGetVariable, 0x33, 2)
		var protoErr *ProtocolError
		if !errors.As(err, &protoErr) {
			t.Fatalf("expected ProtocolError, got %v", err)
		}
	})
}

func TestSerial_BlockRead_ShortResponse(t *testing.T) {
	port := &scriptPort{responses: [][]byte{{0x2A, 0x00}}}
	tr := NewSerial(port, SerialOptions{})

	_, err := tr.BlockRead(CmdGetVariable, 0x22, 4)
	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
}

func TestSerial_IOErrorPropagates(t *testing.T) {
	ioErr := fmt.Errorf("port unplugged")
	port := &scriptPort{readErr: ioErr}
	tr := NewSerial(port, SerialOptions{})

	_, err := tr.BlockRead(CmdGetVariable, 0x00, 1)
	if !errors.Is(err, ioErr) {
		t.Errorf("backend error should propagate unchanged, got %v", err)
	}
}
