// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip
//
// Ticctl - Pololu Tic stepper motor controller CLI
//
// A CLI tool for controlling and inspecting Pololu Tic stepper motor
// controllers over serial, I2C, USB, or a WebSocket serial bridge.

package main

import (
	"os"

	"github.com/jphalip/ticlib/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
