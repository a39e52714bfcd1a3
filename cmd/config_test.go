// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func intp(v int) *int { return &v }

// ---- validation ----

func TestValidate_SerialOK(t *testing.T) {
	cfg := &Config{
		Connection: ConnectionConfig{
			Serial: &SerialConfig{Port: "/dev/ttyACM0", Baud: 9600, DeviceNumber: intp(14)},
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_SerialMissingPort(t *testing.T) {
	cfg := &Config{
		Connection: ConnectionConfig{
			Serial: &SerialConfig{Baud: 9600},
		},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing port")
	}
}

func TestValidate_DeviceNumberRange(t *testing.T) {
	cfg := &Config{
		Connection: ConnectionConfig{
			Serial: &SerialConfig{Port: "/dev/ttyACM0", DeviceNumber: intp(0x4000)},
		},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for 14-bit overflow")
	}
}

func TestValidate_I2CAddressRange(t *testing.T) {
	cfg := &Config{
		Connection: ConnectionConfig{
			I2C: &I2CConfig{Bus: "1", Address: intp(0x80)},
		},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for 7-bit overflow")
	}
}

func TestValidate_UnknownUSBProduct(t *testing.T) {
	cfg := &Config{
		Connection: ConnectionConfig{
			USB: &USBConfig{Product: "t999"},
		},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestValidate_MultipleBackends(t *testing.T) {
	cfg := &Config{
		Connection: ConnectionConfig{
			Serial: &SerialConfig{Port: "/dev/ttyACM0"},
			I2C:    &I2CConfig{Bus: "1"},
		},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for multiple backends")
	}
}

func TestValidate_Empty(t *testing.T) {
	cfg := &Config{}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ---- loading ----

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticctl.yaml")
	data := `connection:
  serial:
    port: /dev/ttyACM0
    baud: 115200
    device_number: 14
    crc_commands: true
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	s := cfg.Connection.Serial
	if s == nil {
		t.Fatal("serial section missing")
	}
	if s.Port != "/dev/ttyACM0" || s.Baud != 115200 || !s.CRCCommands {
		t.Errorf("serial = %+v", s)
	}
	if s.DeviceNumber == nil || *s.DeviceNumber != 14 {
		t.Errorf("device_number = %v, want 14", s.DeviceNumber)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ticctl.yaml")
	data := `connection:
  i2c:
    bus: "1"
    address: 300
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
