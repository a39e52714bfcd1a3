// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import (
	"errors"
	"testing"
)

func TestBoolean(t *testing.T) {
	// Each valid bit index is true exactly when that bit is the one set.
	for set := 0; set < 32; set++ {
		buf, err := EncodeUnsigned(1<<set, 4)
		if err != nil {
			t.Fatalf("EncodeUnsigned: %v", err)
		}
		for bit := 0; bit < 32; bit++ {
			got, err := Boolean(bit, buf)
			if err != nil {
				t.Fatalf("Boolean(%d): %v", bit, err)
			}
			if want := bit == set; got != want {
				t.Errorf("Boolean(%d) with bit %d set = %v, want %v", bit, set, got, want)
			}
		}
	}
}

func TestBoolean_OutOfRange(t *testing.T) {
	if _, err := Boolean(8, []byte{0xFF}); !errors.Is(err, ErrBitIndex) {
		t.Errorf("expected ErrBitIndex for bit 8 of 1-byte buffer, got %v", err)
	}
	if _, err := Boolean(-1, []byte{0xFF}); !errors.Is(err, ErrBitIndex) {
		t.Errorf("expected ErrBitIndex for negative bit index, got %v", err)
	}
}

func TestBitRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		buf        []byte
		expected   uint32
	}{
		{name: "whole byte", start: 0, end: 8, buf: []byte{0xFF}, expected: 255},
		{name: "two bits mid-byte", start: 3, end: 5, buf: []byte{0x10}, expected: 2},
		{name: "low nibble", start: 0, end: 4, buf: []byte{0xA7}, expected: 0x7},
		{name: "across byte boundary", start: 4, end: 12, buf: []byte{0x34, 0x12}, expected: 0x23},
		{name: "full 16 bits", start: 0, end: 16, buf: []byte{0xCD, 0xAB}, expected: 0xABCD},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BitRange(tt.start, tt.end, tt.buf)
			if err != nil {
				t.Fatalf("BitRange: %v", err)
			}
			if got != tt.expected {
				t.Errorf("BitRange(%d, %d) = %d, want %d", tt.start, tt.end, got, tt.expected)
			}
		})
	}
}

func TestBitRange_Invalid(t *testing.T) {
	if _, err := BitRange(5, 5, []byte{0xFF}); !errors.Is(err, ErrBitIndex) {
		t.Errorf("expected ErrBitIndex for empty range, got %v", err)
	}
	if _, err := BitRange(0, 9, []byte{0xFF}); !errors.Is(err, ErrBitIndex) {
		t.Errorf("expected ErrBitIndex past end of buffer, got %v", err)
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	widths := []int{1, 2, 4}

	for _, w := range widths {
		bits := uint(w) * 8

		unsignedValues := []uint64{0, 1, 1<<bits - 1, 1 << (bits - 1), 0x5A}
		for _, v := range unsignedValues {
			buf, err := EncodeUnsigned(v, w)
			if err != nil {
				t.Fatalf("EncodeUnsigned(%d, %d): %v", v, w, err)
			}
			if got := UnsignedInt(buf); got != v {
				t.Errorf("width %d: UnsignedInt(EncodeUnsigned(%d)) = %d", w, v, got)
			}
		}

		signedValues := []int64{0, 1, -1, 1<<(bits-1) - 1, -(1 << (bits - 1))}
		for _, v := range signedValues {
			buf, err := EncodeSigned(v, w)
			if err != nil {
				t.Fatalf("EncodeSigned(%d, %d): %v", v, w, err)
			}
			if got := SignedInt(buf); got != v {
				t.Errorf("width %d: SignedInt(EncodeSigned(%d)) = %d", w, v, got)
			}
		}
	}
}

func TestSignedInt_KnownValues(t *testing.T) {
	tests := []struct {
		name     string
		buf      []byte
		expected int64
	}{
		{name: "int32 minimum", buf: []byte{0x00, 0x00, 0x00, 0x80}, expected: -2147483648},
		{name: "minus one", buf: []byte{0xFF, 0xFF, 0xFF, 0xFF}, expected: -1},
		{name: "minus 99", buf: []byte{0x9D, 0xFF, 0xFF, 0xFF}, expected: -99},
		{name: "int16 negative", buf: []byte{0x18, 0xFC}, expected: -1000},
		{name: "single byte", buf: []byte{0x80}, expected: -128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SignedInt(tt.buf); got != tt.expected {
				t.Errorf("SignedInt(% X) = %d, want %d", tt.buf, got, tt.expected)
			}
		})
	}
}

func TestUnsignedInt_NoSignExtension(t *testing.T) {
	// The byte pattern of -99 reads back as a large unsigned value.
	if got := UnsignedInt([]byte{0x9D, 0xFF, 0xFF, 0xFF}); got != 4294967197 {
		t.Errorf("UnsignedInt = %d, want 4294967197", got)
	}
}

func TestEncode_OutOfRange(t *testing.T) {
	if _, err := EncodeUnsigned(256, 1); err == nil {
		t.Error("expected error encoding 256 into 1 byte")
	}
	if _, err := EncodeSigned(128, 1); err == nil {
		t.Error("expected error encoding 128 into 1 signed byte")
	}
	if _, err := EncodeSigned(-129, 1); err == nil {
		t.Error("expected error encoding -129 into 1 signed byte")
	}
	if _, err := EncodeUnsigned(0, 3); err == nil {
		t.Error("expected error for unsupported width 3")
	}
}
