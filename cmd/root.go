// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Config file flag
	configPath string

	// Serial connection flags
	portName     string
	baudRate     int
	deviceNumber int
	crcCommands  bool
	crcResponses bool

	// I2C connection flags
	i2cBus     string
	i2cAddress int

	// USB connection flags
	useUSB     bool
	usbProduct string

	// WebSocket bridge flags
	wsURL         string
	wsUsername    string
	wsNoSSLVerify bool
)

var rootCmd = &cobra.Command{
	Use:   "ticctl",
	Short: "Pololu Tic stepper motor controller CLI",
	Long: `Ticctl - A CLI tool for controlling and inspecting Pololu Tic stepper
motor controllers.

Provides commands for sending motion commands and reading the controller's
variables and settings over any of the Tic's control interfaces.

Connection modes:
  Serial:    --port /dev/ttyACM0 [--baud 9600] [--device-number 14]
  I2C:       --i2c-bus 1 [--i2c-address 14]
  USB:       --usb [--usb-product t825]
  WebSocket: --url ws://host/path [--username user]

The WebSocket mode bridges the serial protocol over a remote serial server.
For WebSocket authentication, the password is read from the TICCTL_PASSWORD
environment variable, or prompted interactively if not set. The --password
flag is intentionally not provided to avoid leaking credentials in shell
history.

Connection settings can also come from a YAML file via --config; flags
override the file.`,
	Version: "1.0.1",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file with connection settings")

	// Serial connection flags
	rootCmd.PersistentFlags().StringVarP(&portName, "port", "p", "", "Serial port device")
	rootCmd.PersistentFlags().IntVarP(&baudRate, "baud", "b", 9600, "Baud rate (serial only)")
	rootCmd.PersistentFlags().IntVarP(&deviceNumber, "device-number", "d", -1, "Serial device number (-1 for compact protocol)")
	rootCmd.PersistentFlags().BoolVar(&crcCommands, "crc-commands", false, "Append CRC to serial commands")
	rootCmd.PersistentFlags().BoolVar(&crcResponses, "crc-responses", false, "Expect CRC on serial responses")

	// I2C connection flags
	rootCmd.PersistentFlags().StringVar(&i2cBus, "i2c-bus", "", "I2C bus name or number")
	rootCmd.PersistentFlags().IntVar(&i2cAddress, "i2c-address", 14, "I2C target address")

	// USB connection flags
	rootCmd.PersistentFlags().BoolVar(&useUSB, "usb", false, "Connect over native USB")
	rootCmd.PersistentFlags().StringVar(&usbProduct, "usb-product", "", "USB product filter (t825, t834, t500, n825, t249, 36v4)")

	// WebSocket bridge flags
	rootCmd.PersistentFlags().StringVarP(&wsURL, "url", "u", "", "WebSocket URL (ws:// or wss://)")
	rootCmd.PersistentFlags().StringVar(&wsUsername, "username", "", "Username for HTTP Basic auth")
	rootCmd.PersistentFlags().BoolVar(&wsNoSSLVerify, "no-ssl-verify", false, "Skip TLS certificate verification (wss:// only)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
