// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import "fmt"

// Human-readable names for the enumerated values the controller reports.
// Used by diagnostic tooling; unknown values format as "unknown (n)".

// OperationStateName returns the name of an operation_state value.
func OperationStateName(state uint8) string {
	switch state {
	case 0:
		return "reset"
	case 2:
		return "de-energized"
	case 4:
		return "soft error"
	case 6:
		return "waiting for ERR line"
	case 8:
		return "starting up"
	case 10:
		return "normal"
	default:
		return fmt.Sprintf("unknown (%d)", state)
	}
}

// errorBitNames maps error_status and errors_occurred bit positions to
// names. Bits 16 and up only ever appear in errors_occurred.
var errorBitNames = map[int]string{
	0:  "intentionally de-energized",
	1:  "motor driver error",
	2:  "low VIN",
	3:  "kill switch active",
	4:  "required input invalid",
	5:  "serial error",
	6:  "command timeout",
	7:  "safe start violation",
	8:  "ERR line high",
	16: "serial framing",
	17: "serial RX overrun",
	18: "serial format",
	19: "serial CRC",
	20: "encoder skip",
}

// ErrorNames expands an error bitmask into the names of its set bits, in
// bit order. Unknown set bits are reported by position.
func ErrorNames(mask uint32) []string {
	var names []string
	for bit := 0; bit < 32; bit++ {
		if mask&(1<<bit) == 0 {
			continue
		}
		if name, ok := errorBitNames[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, fmt.Sprintf("unknown bit %d", bit))
		}
	}
	return names
}

// PlanningModeName returns the name of a planning_mode value.
func PlanningModeName(mode uint8) string {
	switch mode {
	case 0:
		return "off"
	case 1:
		return "target position"
	case 2:
		return "target velocity"
	default:
		return fmt.Sprintf("unknown (%d)", mode)
	}
}

// StepModeName returns the name of a step_mode value.
func StepModeName(mode uint8) string {
	switch mode {
	case 0:
		return "full step"
	case 1:
		return "1/2 step"
	case 2:
		return "1/4 step"
	case 3:
		return "1/8 step"
	case 4:
		return "1/16 step"
	case 5:
		return "1/32 step"
	case 6:
		return "1/2 step 100%"
	case 7:
		return "1/64 step"
	case 8:
		return "1/128 step"
	case 9:
		return "1/256 step"
	default:
		return fmt.Sprintf("unknown (%d)", mode)
	}
}

// ControlModeName returns the name of a control_mode setting value.
func ControlModeName(mode uint8) string {
	switch mode {
	case 0:
		return "serial/I2C/USB"
	case 1:
		return "STEP/DIR"
	case 2:
		return "RC position"
	case 3:
		return "RC speed"
	case 4:
		return "analog position"
	case 5:
		return "analog speed"
	case 6:
		return "encoder position"
	case 7:
		return "encoder speed"
	default:
		return fmt.Sprintf("unknown (%d)", mode)
	}
}

// PinFunctionName returns the name of a pin function setting value.
func PinFunctionName(fn uint8) string {
	switch fn {
	case 0:
		return "default"
	case 1:
		return "user I/O"
	case 2:
		return "user input"
	case 3:
		return "pot power"
	case 4:
		return "SCL"
	case 5:
		return "SDA"
	case 6:
		return "TX"
	case 7:
		return "RX"
	case 8:
		return "RC input"
	default:
		return fmt.Sprintf("unknown (%d)", fn)
	}
}

// DecayModeName returns the name of a decay mode value on the T825 and
// T834. The 36v4 uses its own hp_decay_mode encoding.
func DecayModeName(mode uint8) string {
	switch mode {
	case 0:
		return "mixed"
	case 1:
		return "slow"
	case 2:
		return "fast"
	default:
		return fmt.Sprintf("unknown (%d)", mode)
	}
}

// InputStateName returns the name of an input_state value.
func InputStateName(state uint8) string {
	switch state {
	case 0:
		return "not ready"
	case 1:
		return "invalid"
	case 2:
		return "halt"
	case 3:
		return "target position"
	case 4:
		return "target velocity"
	default:
		return fmt.Sprintf("unknown (%d)", state)
	}
}

// DeviceResetName returns the name of a device_reset cause value.
func DeviceResetName(cause uint8) string {
	switch cause {
	case 0:
		return "power up"
	case 1:
		return "brown-out"
	case 2:
		return "external reset"
	case 4:
		return "watchdog"
	case 8:
		return "software reset"
	case 16:
		return "stack overflow"
	case 32:
		return "stack underflow"
	default:
		return fmt.Sprintf("unknown (%d)", cause)
	}
}

// ProductName returns the marketing name for a USB product ID.
func ProductName(product uint16) string {
	switch product {
	case ProductT825:
		return "Tic T825"
	case ProductT834:
		return "Tic T834"
	case ProductT500:
		return "Tic T500"
	case ProductN825:
		return "Tic N825"
	case ProductT249:
		return "Tic T249"
	case Product36v4:
		return "Tic 36v4"
	default:
		return fmt.Sprintf("unknown (0x%04X)", product)
	}
}
