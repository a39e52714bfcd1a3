// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import "io"

// ============================================================
// Mock transport backends
// ============================================================

// scriptPort records every write and plays back scripted read responses
// verbatim, regardless of the requested length, so tests can exercise
// short-read handling.
type scriptPort struct {
	writes    [][]byte
	responses [][]byte
	readErr   error
	writeErr  error
}

func (p *scriptPort) Write(b []byte) error {
	if p.writeErr != nil {
		return p.writeErr
	}
	p.writes = append(p.writes, append([]byte(nil), b...))
	return nil
}

func (p *scriptPort) Read(n int) ([]byte, error) {
	if p.readErr != nil {
		return nil, p.readErr
	}
	if len(p.responses) == 0 {
		return nil, io.EOF
	}
	r := p.responses[0]
	p.responses = p.responses[1:]
	return r, nil
}

func (p *scriptPort) lastWrite() []byte {
	if len(p.writes) == 0 {
		return nil
	}
	return p.writes[len(p.writes)-1]
}

// zeroPort accepts every write and answers every read with zero bytes of
// the requested length. Used for whole-registry snapshot tests.
type zeroPort struct{}

func (zeroPort) Write(b []byte) error       { return nil }
func (zeroPort) Read(n int) ([]byte, error) { return make([]byte, n), nil }

// controlCall records the header fields of one control transfer.
type controlCall struct {
	rType, request uint8
	val, idx       uint16
	length         int
}

// scriptControl records control transfers and plays back scripted
// response buffers for device-to-host requests.
type scriptControl struct {
	calls     []controlCall
	responses [][]byte
	err       error
}

func (p *scriptControl) Control(rType, request uint8, val, idx uint16, data []byte) (int, error) {
	p.calls = append(p.calls, controlCall{rType: rType, request: request, val: val, idx: idx, length: len(data)})
	if p.err != nil {
		return 0, p.err
	}
	if rType == usbRequestIn {
		if len(p.responses) == 0 {
			return 0, io.EOF
		}
		r := p.responses[0]
		p.responses = p.responses[1:]
		return copy(data, r), nil
	}
	return 0, nil
}

func (p *scriptControl) lastCall() controlCall {
	if len(p.calls) == 0 {
		return controlCall{}
	}
	return p.calls[len(p.calls)-1]
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func u16ptr(v uint16) *uint16 { return &v }
