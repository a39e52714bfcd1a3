// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// SerialOptions configures a serial session.
//
// When DeviceNumber is nil the compact protocol is used: frames carry the
// opcode alone and address no particular device. When set, frames use the
// Pololu protocol: a sync byte, the device number, and the opcode with
// its most significant bit cleared. Device numbers of 0x80 and above
// require the controller's 14-bit device number setting and are split
// across two 7-bit address bytes, low bits first.
//
// The two CRC flags mirror the controller's "CRC for commands" and "CRC
// for responses" serial settings and must match the device configuration.
type SerialOptions struct {
	DeviceNumber    *uint16
	CRCForCommands  bool
	CRCForResponses bool
}

// Serial frames Tic commands for a TTL serial line.
type Serial struct {
	port Port
	opts SerialOptions
}

// NewSerial returns a serial transport over the given byte channel.
func NewSerial(port Port, opts SerialOptions) *Serial {
	return &Serial{port: port, opts: opts}
}

// frame builds the complete byte sequence for one command: addressing
// envelope, opcode, payload, and optional trailing CRC-7.
func (s *Serial) frame(code byte, payload []byte) []byte {
	var buf []byte
	if s.opts.DeviceNumber == nil {
		buf = append(buf, code)
	} else {
		n := *s.opts.DeviceNumber
		buf = append(buf, SyncByte)
		if n < serialCompactDeviceLimit {
			buf = append(buf, byte(n))
		} else {
			buf = append(buf, byte(n&0x7F), byte(n>>7&0x7F))
		}
		buf = append(buf, code&0x7F)
	}
	buf = append(buf, payload...)
	if s.opts.CRCForCommands {
		buf = append(buf, CRC7(buf))
	}
	return buf
}

// Quick implements Transport.
func (s *Serial) Quick(code byte) error {
	return s.port.Write(s.frame(code, nil))
}

// Write7 implements Transport.
func (s *Serial) Write7(code byte, value uint8) error {
	if err := check7Bit(code, value); err != nil {
		return err
	}
	return s.port.Write(s.frame(code, []byte{value}))
}

// Write32 implements Transport.
//
// Serial data bytes must have their most significant bits clear, so the
// value is sent in the vendor's 7-bit chunked form: one byte collecting
// the high bit of each value byte, then the four value bytes masked to
// seven bits, least significant first.
func (s *Serial) Write32(code byte, value int32) error {
	v := uint32(value)
	payload := []byte{
		byte(v>>7&1 | v>>14&2 | v>>21&4 | v>>28&8),
		byte(v & 0x7F),
		byte(v >> 8 & 0x7F),
		byte(v >> 16 & 0x7F),
		byte(v >> 24 & 0x7F),
	}
	return s.port.Write(s.frame(code, payload))
}

// BlockRead implements Transport.
//
// Offsets of 0x80 and above are encoded as offset-0x80 with bit 6 of the
// length byte set, per the serial command encoding rules.
func (s *Serial) BlockRead(code byte, offset, length uint8) ([]byte, error) {
	req := []byte{offset, length}
	if offset >= serialExtendedOffset {
		req = []byte{offset - serialExtendedOffset, length + serialExtendedLength}
	}
	if err := s.port.Write(s.frame(code, req)); err != nil {
		return nil, err
	}
	return s.readResponse(int(length))
}

// readResponse performs the single read for a block-read response and,
// when response CRCs are enabled, validates and strips the trailing
// checksum byte.
func (s *Serial) readResponse(length int) ([]byte, error) {
	if !s.opts.CRCForResponses {
		buf, err := s.port.Read(length)
		if err != nil {
			return nil, err
		}
		if len(buf) != length {
			return nil, protocolErrorf("expected to read %d bytes, got %d", length, len(buf))
		}
		return buf, nil
	}

	buf, err := s.port.Read(length + 1)
	if err != nil {
		return nil, err
	}
	if len(buf) != length+1 {
		return nil, protocolErrorf("expected to read %d bytes plus CRC, got %d", length, len(buf))
	}
	message := buf[:length]
	if crc := CRC7(message); crc != buf[length] {
		return nil, &ChecksumError{Expected: crc, Received: buf[length]}
	}
	return message, nil
}
