// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// CRC7 computes the 7-bit checksum the Tic uses for serial frame
// integrity. The result is in the range 0-127 and is appended as the
// final byte of a framed command or response.
//
// The algorithm must match the vendor's reference implementation exactly;
// see "Cyclic Redundancy Check (CRC) error detection" in the Tic user's
// guide (https://www.pololu.com/docs/0J71/9).
func CRC7(message []byte) byte {
	var crc byte
	for _, b := range message {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc ^= crcPolynomial
			}
			crc >>= 1
		}
	}
	return crc
}
