// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import "testing"

func TestCRC7_Empty(t *testing.T) {
	if crc := CRC7(nil); crc != 0 {
		t.Errorf("CRC of empty message should be 0, got 0x%02X", crc)
	}
}

func TestCRC7_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected byte
	}{
		{
			name:     "exit safe start opcode",
			data:     []byte{0x83},
			expected: 0x1A,
		},
		{
			name:     "single 0x01 byte",
			data:     []byte{0x01},
			expected: 0x41,
		},
		{
			name:     "framed energize command",
			data:     []byte{0xAA, 0x0D, 0x05},
			expected: 0x29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			crc := CRC7(tt.data)
			if crc != tt.expected {
				t.Errorf("CRC mismatch: expected 0x%02X, got 0x%02X", tt.expected, crc)
			}
		})
	}
}

func TestCRC7_SevenBitRange(t *testing.T) {
	// A 7-bit CRC can never set the top bit.
	for b := 0; b < 256; b++ {
		crc := CRC7([]byte{byte(b)})
		if crc > 0x7F {
			t.Fatalf("CRC7([0x%02X]) = 0x%02X exceeds 7 bits", b, crc)
		}
	}
}

func TestCRC7_Deterministic(t *testing.T) {
	data := []byte{0xAA, 0x0E, 0x60, 0x25, 0x01, 0x02}
	crc1 := CRC7(data)
	crc2 := CRC7(data)
	if crc1 != crc2 {
		t.Errorf("CRC should be deterministic: 0x%02X != 0x%02X", crc1, crc2)
	}
}
