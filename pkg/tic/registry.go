// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import "sync"

// Format identifies the wire format of a command's argument.
type Format int

// Command argument formats
const (
	FormatQuick        Format = iota // opcode only, no payload
	FormatSevenBit                   // one data byte, values 0-127
	FormatThirtyTwoBit               // little-endian signed 32-bit value
)

// String returns the format's name as used in the Tic documentation.
func (f Format) String() string {
	switch f {
	case FormatQuick:
		return "quick"
	case FormatSevenBit:
		return "7-bit write"
	case FormatThirtyTwoBit:
		return "32-bit write"
	default:
		return "unknown"
	}
}

// decodeKind enumerates the closed set of decode strategies used by the
// variable and setting registries.
type decodeKind int

const (
	decodeRaw decodeKind = iota
	decodeUnsigned
	decodeSigned
	decodeBool
	decodeBits
)

// Decode describes how a raw block-read buffer is turned into a typed
// value. The strategy set is small and fixed: raw bytes, unsigned or
// signed little-endian integers, a boolean at a bit position, or a
// right-justified bit range.
type Decode struct {
	kind       decodeKind
	start, end int
}

// Raw returns a decode strategy that passes the buffer through untouched.
func Raw() Decode { return Decode{kind: decodeRaw} }

// Unsigned returns a decode strategy for little-endian unsigned integers.
func Unsigned() Decode { return Decode{kind: decodeUnsigned} }

// Signed returns a decode strategy for little-endian two's-complement
// signed integers.
func Signed() Decode { return Decode{kind: decodeSigned} }

// BoolAt returns a decode strategy reading the boolean at bit index bit.
func BoolAt(bit int) Decode { return Decode{kind: decodeBool, start: bit} }

// BitsAt returns a decode strategy extracting the bits [start, end).
func BitsAt(start, end int) Decode { return Decode{kind: decodeBits, start: start, end: end} }

// apply decodes a raw buffer according to the strategy.
func (d Decode) apply(buf []byte) (interface{}, error) {
	switch d.kind {
	case decodeUnsigned:
		return UnsignedInt(buf), nil
	case decodeSigned:
		return SignedInt(buf), nil
	case decodeBool:
		return Boolean(d.start, buf)
	case decodeBits:
		v, err := BitRange(d.start, d.end, buf)
		return v, err
	default:
		return append([]byte(nil), buf...), nil
	}
}

// Command describes one entry of the command registry: a named operation,
// its opcode, and the wire format of its argument.
type Command struct {
	Name   string
	Code   byte
	Format Format
}

// Field describes one entry of the variable or setting registry: a named
// value at a byte offset in the corresponding device memory window, the
// number of physical bytes to fetch (1, 2, or 4), and the decode strategy
// applied to the raw bytes. Several fields may share one physical offset
// and decode independent bits from the same read.
type Field struct {
	Name   string
	Offset uint8
	Length uint8
	Decode Decode
}

var (
	indexOnce     sync.Once
	commandIndex  map[string]*Command
	variableIndex map[string]*Field
	settingIndex  map[string]*Field
)

func buildIndexes() {
	commandIndex = make(map[string]*Command, len(Commands))
	for _, c := range Commands {
		commandIndex[c.Name] = c
	}
	variableIndex = make(map[string]*Field, len(Variables))
	for _, f := range Variables {
		variableIndex[f.Name] = f
	}
	settingIndex = make(map[string]*Field, len(Settings))
	for _, f := range Settings {
		settingIndex[f.Name] = f
	}
}

// CommandByName returns the command registry entry with the given name,
// or nil if no such command exists.
func CommandByName(name string) *Command {
	indexOnce.Do(buildIndexes)
	return commandIndex[name]
}

// VariableByName returns the variable registry entry with the given name,
// or nil if no such variable exists.
func VariableByName(name string) *Field {
	indexOnce.Do(buildIndexes)
	return variableIndex[name]
}

// SettingByName returns the setting registry entry with the given name,
// or nil if no such setting exists.
func SettingByName(name string) *Field {
	indexOnce.Do(buildIndexes)
	return settingIndex[name]
}
