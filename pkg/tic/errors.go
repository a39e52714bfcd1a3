// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import (
	"errors"
	"fmt"
)

// ErrBitIndex is returned (wrapped) when a bit index or bit range falls
// outside the raw buffer being decoded.
var ErrBitIndex = errors.New("bit index out of range")

// EncodingError reports a command value that cannot be represented in the
// requested wire format. It is detected before any I/O takes place.
type EncodingError struct {
	Code  byte
	Value int64
	Msg   string
}

// Error implements the error interface
func (e *EncodingError) Error() string {
	return fmt.Sprintf("tic: command 0x%02X: %s (value %d)", e.Code, e.Msg, e.Value)
}

// ChecksumError reports a serial response whose trailing CRC-7 byte does
// not match the checksum computed over the response payload.
type ChecksumError struct {
	Expected byte
	Received byte
}

// Error implements the error interface
func (e *ChecksumError) Error() string {
	return fmt.Sprintf("tic: response CRC mismatch: expected 0x%02X, got 0x%02X", e.Expected, e.Received)
}

// ProtocolError reports a structurally invalid response, such as a read
// that returned fewer bytes than requested. Lower-layer I/O errors are
// never converted to ProtocolError; they propagate unchanged.
type ProtocolError struct {
	Msg string
}

// Error implements the error interface
func (e *ProtocolError) Error() string {
	return "tic: " + e.Msg
}

func protocolErrorf(format string, args ...interface{}) *ProtocolError {
	return &ProtocolError{Msg: fmt.Sprintf(format, args...)}
}
