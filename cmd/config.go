// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config mirrors the connection flags so frequently used setups can live
// in a file. Flags given on the command line take precedence.
type Config struct {
	Connection ConnectionConfig `yaml:"connection"`
}

type ConnectionConfig struct {
	Serial    *SerialConfig    `yaml:"serial"`
	I2C       *I2CConfig       `yaml:"i2c"`
	USB       *USBConfig       `yaml:"usb"`
	WebSocket *WebSocketConfig `yaml:"websocket"`
}

type SerialConfig struct {
	Port         string `yaml:"port"`
	Baud         int    `yaml:"baud"`
	DeviceNumber *int   `yaml:"device_number"`
	CRCCommands  bool   `yaml:"crc_commands"`
	CRCResponses bool   `yaml:"crc_responses"`
}

type I2CConfig struct {
	Bus     string `yaml:"bus"`
	Address *int   `yaml:"address"`
}

type USBConfig struct {
	Product string `yaml:"product"`
}

type WebSocketConfig struct {
	URL         string `yaml:"url"`
	Username    string `yaml:"username"`
	NoSSLVerify bool   `yaml:"no_ssl_verify"`
}

// LoadConfig reads and validates a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %v", path, err)
	}
	return &cfg, nil
}

// Validate checks configuration correctness. It performs declarative
// validation only and MUST NOT mutate the configuration.
func (c *Config) Validate() error {
	backends := 0
	if c.Connection.Serial != nil {
		backends++
		s := c.Connection.Serial
		if s.Port == "" {
			return fmt.Errorf("serial: port is required")
		}
		if s.Baud < 0 {
			return fmt.Errorf("serial: baud must be positive, got %d", s.Baud)
		}
		if s.DeviceNumber != nil {
			if *s.DeviceNumber < 0 || *s.DeviceNumber > 0x3FFF {
				return fmt.Errorf("serial: device_number %d out of 14-bit range", *s.DeviceNumber)
			}
		}
	}
	if c.Connection.I2C != nil {
		backends++
		i := c.Connection.I2C
		if i.Bus == "" {
			return fmt.Errorf("i2c: bus is required")
		}
		if i.Address != nil {
			if *i.Address < 0 || *i.Address > 0x7F {
				return fmt.Errorf("i2c: address %d out of 7-bit range", *i.Address)
			}
		}
	}
	if c.Connection.USB != nil {
		backends++
		if p := c.Connection.USB.Product; p != "" {
			if _, err := productIDByName(p); err != nil {
				return fmt.Errorf("usb: %v", err)
			}
		}
	}
	if c.Connection.WebSocket != nil {
		backends++
		if c.Connection.WebSocket.URL == "" {
			return fmt.Errorf("websocket: url is required")
		}
	}
	if backends > 1 {
		return fmt.Errorf("only one connection backend may be configured, got %d", backends)
	}
	return nil
}

// apply copies file values into the flag variables, skipping any flag
// the user set explicitly.
func (c *Config) apply(flags *pflag.FlagSet) {
	if s := c.Connection.Serial; s != nil {
		if !flags.Changed("port") {
			portName = s.Port
		}
		if !flags.Changed("baud") && s.Baud != 0 {
			baudRate = s.Baud
		}
		if !flags.Changed("device-number") && s.DeviceNumber != nil {
			deviceNumber = *s.DeviceNumber
		}
		if !flags.Changed("crc-commands") {
			crcCommands = s.CRCCommands
		}
		if !flags.Changed("crc-responses") {
			crcResponses = s.CRCResponses
		}
	}
	if i := c.Connection.I2C; i != nil {
		if !flags.Changed("i2c-bus") {
			i2cBus = i.Bus
		}
		if !flags.Changed("i2c-address") && i.Address != nil {
			i2cAddress = *i.Address
		}
	}
	if u := c.Connection.USB; u != nil {
		if !flags.Changed("usb") {
			useUSB = true
		}
		if !flags.Changed("usb-product") {
			usbProduct = u.Product
		}
	}
	if w := c.Connection.WebSocket; w != nil {
		if !flags.Changed("url") {
			wsURL = w.URL
		}
		if !flags.Changed("username") {
			wsUsername = w.Username
		}
		if !flags.Changed("no-ssl-verify") {
			wsNoSSLVerify = w.NoSSLVerify
		}
	}
}
