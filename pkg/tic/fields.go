// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import "fmt"

// Field decoding helpers. Raw buffers read from the Tic are little-endian
// byte sequences of 1, 2, or 4 bytes; bits are numbered from 0 at the
// least-significant bit of the first byte, counting upward across the
// whole buffer.

// Boolean reports whether the bit at index bit is set in buf.
// Fails with ErrBitIndex if bit falls outside the buffer.
func Boolean(bit int, buf []byte) (bool, error) {
	if bit < 0 || bit >= len(buf)*8 {
		return false, fmt.Errorf("%w: bit %d in %d-byte buffer", ErrBitIndex, bit, len(buf))
	}
	return buf[bit/8]&(1<<(bit%8)) != 0, nil
}

// BitRange extracts the bits in the half-open interval [start, end) from
// buf and right-justifies them into an unsigned integer. The interval
// must be non-empty and contained in the buffer.
func BitRange(start, end int, buf []byte) (uint32, error) {
	if start < 0 || end <= start || end > len(buf)*8 {
		return 0, fmt.Errorf("%w: bits [%d,%d) in %d-byte buffer", ErrBitIndex, start, end, len(buf))
	}
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * i)
	}
	return uint32(v >> start & (1<<(end-start) - 1)), nil
}

// UnsignedInt interprets buf as a little-endian unsigned integer.
// Buffers of 1, 2, and 4 bytes are the widths the Tic uses.
func UnsignedInt(buf []byte) uint64 {
	var v uint64
	for i, b := range buf {
		v |= uint64(b) << (8 * i)
	}
	return v
}

// SignedInt interprets buf as a little-endian two's-complement signed
// integer of len(buf) bytes.
func SignedInt(buf []byte) int64 {
	v := UnsignedInt(buf)
	bits := uint(len(buf)) * 8
	if bits < 64 && v >= 1<<(bits-1) {
		return int64(v) - 1<<bits
	}
	return int64(v)
}

// EncodeUnsigned serializes value as a little-endian unsigned integer of
// the given width (1, 2, or 4 bytes). Values outside the representable
// range are a caller error; no truncation is performed.
func EncodeUnsigned(value uint64, width int) ([]byte, error) {
	switch width {
	case 1, 2, 4:
	default:
		return nil, fmt.Errorf("tic: unsupported field width %d", width)
	}
	if width < 8 && value >= 1<<(uint(width)*8) {
		return nil, fmt.Errorf("tic: value %d does not fit in %d bytes", value, width)
	}
	buf := make([]byte, width)
	for i := range buf {
		buf[i] = byte(value >> (8 * i))
	}
	return buf, nil
}

// EncodeSigned serializes value as a little-endian two's-complement
// signed integer of the given width (1, 2, or 4 bytes). Values outside
// the representable range are a caller error; no wrapping is performed.
func EncodeSigned(value int64, width int) ([]byte, error) {
	switch width {
	case 1, 2, 4:
	default:
		return nil, fmt.Errorf("tic: unsupported field width %d", width)
	}
	bits := uint(width) * 8
	if value < -(1<<(bits-1)) || value >= 1<<(bits-1) {
		return nil, fmt.Errorf("tic: value %d does not fit in %d signed bytes", value, width)
	}
	buf := make([]byte, width)
	v := uint64(value)
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	return buf, nil
}
