// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import "fmt"

// Device is the typed, user-facing surface of the driver: one method per
// command and variable, bound to a transport session. Device holds no
// state beyond the transport reference, so independent devices on
// separate sessions are fully independent.
type Device struct {
	tr Transport

	// Settings exposes the read-only setting getters.
	Settings *SettingsReader
}

// NewDevice binds the command, variable, and setting registries to the
// given transport session.
func NewDevice(tr Transport) *Device {
	d := &Device{tr: tr}
	d.Settings = &SettingsReader{dev: d}
	return d
}

// Commands ------------------------------------------------------------

// SetTargetPosition sets the target position in microsteps.
// Only valid in serial/I2C/USB control mode with target position planning.
func (d *Device) SetTargetPosition(position int32) error {
	return d.tr.Write32(CmdSetTargetPosition, position)
}

// SetTargetVelocity sets the target velocity in microsteps per 10000 s.
func (d *Device) SetTargetVelocity(velocity int32) error {
	return d.tr.Write32(CmdSetTargetVelocity, velocity)
}

// HaltAndSetPosition stops the motor abruptly and sets the current
// position to the given value.
func (d *Device) HaltAndSetPosition(position int32) error {
	return d.tr.Write32(CmdHaltAndSetPosition, position)
}

// HaltAndHold stops the motor abruptly without violating the
// deceleration limit.
func (d *Device) HaltAndHold() error {
	return d.tr.Quick(CmdHaltAndHold)
}

// GoHome starts the homing procedure. Direction 0 homes in reverse,
// 1 homes forward.
func (d *Device) GoHome(direction uint8) error {
	return d.tr.Write7(CmdGoHome, direction)
}

// ResetCommandTimeout keeps the command timeout from elapsing; call it
// periodically when the timeout setting is nonzero.
func (d *Device) ResetCommandTimeout() error {
	return d.tr.Quick(CmdResetCommandTimeout)
}

// Deenergize disables the motor driver outputs.
func (d *Device) Deenergize() error {
	return d.tr.Quick(CmdDeenergize)
}

// Energize enables the motor driver outputs.
func (d *Device) Energize() error {
	return d.tr.Quick(CmdEnergize)
}

// ExitSafeStart clears the safe start violation error.
func (d *Device) ExitSafeStart() error {
	return d.tr.Quick(CmdExitSafeStart)
}

// EnterSafeStart puts the controller back into the safe start state.
func (d *Device) EnterSafeStart() error {
	return d.tr.Quick(CmdEnterSafeStart)
}

// Reset reloads settings and makes the controller behave as if it had
// just powered up. It does not perform a full microcontroller reset.
func (d *Device) Reset() error {
	return d.tr.Quick(CmdReset)
}

// ClearDriverError clears a latched motor driver error.
func (d *Device) ClearDriverError() error {
	return d.tr.Quick(CmdClearDriverError)
}

// SetMaxSpeed temporarily sets the speed limit in microsteps per 10000 s.
func (d *Device) SetMaxSpeed(speed uint32) error {
	return d.tr.Write32(CmdSetMaxSpeed, int32(speed))
}

// SetStartingSpeed temporarily sets the starting speed.
func (d *Device) SetStartingSpeed(speed uint32) error {
	return d.tr.Write32(CmdSetStartingSpeed, int32(speed))
}

// SetMaxAcceleration temporarily sets the acceleration limit. The device
// treats values below 100 as 100; this layer forwards raw values.
func (d *Device) SetMaxAcceleration(accel uint32) error {
	return d.tr.Write32(CmdSetMaxAcceleration, int32(accel))
}

// SetMaxDeceleration temporarily sets the deceleration limit. The device
// treats 0 as "mirror the acceleration limit"; this layer forwards raw
// values.
func (d *Device) SetMaxDeceleration(decel uint32) error {
	return d.tr.Write32(CmdSetMaxDeceleration, int32(decel))
}

// SetStepMode temporarily sets the microstepping mode.
func (d *Device) SetStepMode(mode uint8) error {
	return d.tr.Write7(CmdSetStepMode, mode)
}

// SetCurrentLimit temporarily sets the coil current limit in device
// units.
func (d *Device) SetCurrentLimit(limit uint8) error {
	return d.tr.Write7(CmdSetCurrentLimit, limit)
}

// SetDecayMode temporarily sets the decay mode. Not valid on the 36v4.
func (d *Device) SetDecayMode(mode uint8) error {
	return d.tr.Write7(CmdSetDecayMode, mode)
}

// SetAGCOption temporarily changes an AGC option. T249 only.
func (d *Device) SetAGCOption(option uint8) error {
	return d.tr.Write7(CmdSetAGCOption, option)
}

// Variable reads ------------------------------------------------------

func (d *Device) readVariable(f *Field) ([]byte, error) {
	return d.tr.BlockRead(CmdGetVariable, f.Offset, f.Length)
}

func (d *Device) varU8(f *Field) (uint8, error) {
	buf, err := d.readVariable(f)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Device) varU16(f *Field) (uint16, error) {
	buf, err := d.readVariable(f)
	if err != nil {
		return 0, err
	}
	return uint16(UnsignedInt(buf)), nil
}

func (d *Device) varU32(f *Field) (uint32, error) {
	buf, err := d.readVariable(f)
	if err != nil {
		return 0, err
	}
	return uint32(UnsignedInt(buf)), nil
}

func (d *Device) varS32(f *Field) (int32, error) {
	buf, err := d.readVariable(f)
	if err != nil {
		return 0, err
	}
	return int32(SignedInt(buf)), nil
}

// OperationState returns the controller's high-level state. See
// OperationStateName for the value meanings.
func (d *Device) OperationState() (uint8, error) { return d.varU8(varOperationState) }

// MiscFlags returns the packed miscellaneous status bits.
func (d *Device) MiscFlags() (uint8, error) { return d.varU8(varMiscFlags) }

// Energized reports whether the motor outputs are enabled (misc flag
// bit 0).
func (d *Device) Energized() (bool, error) {
	flags, err := d.readVariable(varMiscFlags)
	if err != nil {
		return false, err
	}
	return Boolean(0, flags)
}

// PositionUncertain reports whether the controller has lost track of the
// motor position (misc flag bit 1).
func (d *Device) PositionUncertain() (bool, error) {
	flags, err := d.readVariable(varMiscFlags)
	if err != nil {
		return false, err
	}
	return Boolean(1, flags)
}

// HomingActive reports whether a homing procedure is running (misc flag
// bit 4).
func (d *Device) HomingActive() (bool, error) {
	flags, err := d.readVariable(varMiscFlags)
	if err != nil {
		return false, err
	}
	return Boolean(4, flags)
}

// ErrorStatus returns the bitmask of errors currently stopping the
// motor. See ErrorNames for the bit meanings.
func (d *Device) ErrorStatus() (uint16, error) { return d.varU16(varErrorStatus) }

// ErrorsOccurred returns the bitmask of errors seen since it was last
// cleared.
func (d *Device) ErrorsOccurred() (uint32, error) { return d.varU32(varErrorsOccurred) }

// PlanningMode returns the step planning mode currently in effect.
func (d *Device) PlanningMode() (uint8, error) { return d.varU8(varPlanningMode) }

// TargetPosition returns the target position in microsteps.
func (d *Device) TargetPosition() (int32, error) { return d.varS32(varTargetPosition) }

// TargetVelocity returns the target velocity in microsteps per 10000 s.
func (d *Device) TargetVelocity() (int32, error) { return d.varS32(varTargetVelocity) }

// StartingSpeed returns the starting speed currently in effect.
func (d *Device) StartingSpeed() (uint32, error) { return d.varU32(varStartingSpeed) }

// MaxSpeed returns the speed limit currently in effect.
func (d *Device) MaxSpeed() (uint32, error) { return d.varU32(varMaxSpeed) }

// MaxDeceleration returns the deceleration limit currently in effect.
func (d *Device) MaxDeceleration() (uint32, error) { return d.varU32(varMaxDeceleration) }

// MaxAcceleration returns the acceleration limit currently in effect.
func (d *Device) MaxAcceleration() (uint32, error) { return d.varU32(varMaxAcceleration) }

// CurrentPosition returns the current position in microsteps.
func (d *Device) CurrentPosition() (int32, error) { return d.varS32(varCurrentPosition) }

// CurrentVelocity returns the current velocity in microsteps per
// 10000 s.
func (d *Device) CurrentVelocity() (int32, error) { return d.varS32(varCurrentVelocity) }

// ActingTargetPosition returns the internal target position used while
// planning velocity moves.
func (d *Device) ActingTargetPosition() (int32, error) { return d.varS32(varActingTargetPos) }

// TimeSinceLastStep returns the time since the last step, in units of
// one third of a microsecond.
func (d *Device) TimeSinceLastStep() (uint32, error) { return d.varU32(varTimeSinceLastStep) }

// DeviceReset returns the cause of the controller's last reset.
func (d *Device) DeviceReset() (uint8, error) { return d.varU8(varDeviceReset) }

// VinVoltage returns the measured VIN voltage in millivolts.
func (d *Device) VinVoltage() (uint16, error) { return d.varU16(varVinVoltage) }

// Uptime returns the time since the last reset in milliseconds.
func (d *Device) Uptime() (uint32, error) { return d.varU32(varUptime) }

// EncoderPosition returns the raw quadrature encoder count.
func (d *Device) EncoderPosition() (int32, error) { return d.varS32(varEncoderPosition) }

// RCPulse returns the measured RC pulse width in units of one twelfth of
// a microsecond.
func (d *Device) RCPulse() (uint16, error) { return d.varU16(varRCPulse) }

// AnalogReadingSCL returns the analog reading on SCL, 0-0xFFFF.
func (d *Device) AnalogReadingSCL() (uint16, error) { return d.varU16(varAnalogReadingSCL) }

// AnalogReadingSDA returns the analog reading on SDA.
func (d *Device) AnalogReadingSDA() (uint16, error) { return d.varU16(varAnalogReadingSDA) }

// AnalogReadingTX returns the analog reading on TX.
func (d *Device) AnalogReadingTX() (uint16, error) { return d.varU16(varAnalogReadingTX) }

// AnalogReadingRX returns the analog reading on RX.
func (d *Device) AnalogReadingRX() (uint16, error) { return d.varU16(varAnalogReadingRX) }

// DigitalReadings returns the packed digital readings of the control
// pins, one bit per pin.
func (d *Device) DigitalReadings() (uint8, error) { return d.varU8(varDigitalReadings) }

// PinStates returns the packed 2-bit state of each control pin.
func (d *Device) PinStates() (uint8, error) { return d.varU8(varPinStates) }

// StepMode returns the microstepping mode currently in effect.
func (d *Device) StepMode() (uint8, error) { return d.varU8(varStepMode) }

// CurrentLimit returns the coil current limit currently in effect, in
// device units.
func (d *Device) CurrentLimit() (uint8, error) { return d.varU8(varCurrentLimit) }

// DecayMode returns the decay mode currently in effect. Not valid on the
// 36v4.
func (d *Device) DecayMode() (uint8, error) { return d.varU8(varDecayMode) }

// InputState returns the state of the controller's main input.
func (d *Device) InputState() (uint8, error) { return d.varU8(varInputState) }

// InputAfterAveraging returns the main input value after averaging.
func (d *Device) InputAfterAveraging() (uint16, error) { return d.varU16(varInputAfterAveraging) }

// InputAfterHysteresis returns the main input value after hysteresis.
func (d *Device) InputAfterHysteresis() (uint16, error) { return d.varU16(varInputAfterHysteresis) }

// InputAfterScaling returns the main input value after scaling, in
// target units.
func (d *Device) InputAfterScaling() (int32, error) { return d.varS32(varInputAfterScaling) }

// LastMotorDriverError returns the cause of the last driver error.
// T249 only.
func (d *Device) LastMotorDriverError() (uint8, error) { return d.varU8(varLastMotorDriverError) }

// AGCMode returns the AGC mode currently in effect. T249 only.
func (d *Device) AGCMode() (uint8, error) { return d.varU8(varAGCMode) }

// AGCBottomCurrentLimit returns the AGC bottom current limit. T249 only.
func (d *Device) AGCBottomCurrentLimit() (uint8, error) { return d.varU8(varAGCBottomCurrentLimit) }

// AGCCurrentBoostSteps returns the AGC current boost steps. T249 only.
func (d *Device) AGCCurrentBoostSteps() (uint8, error) { return d.varU8(varAGCCurrentBoostSteps) }

// AGCFrequencyLimit returns the AGC frequency limit. T249 only.
func (d *Device) AGCFrequencyLimit() (uint8, error) { return d.varU8(varAGCFrequencyLimit) }

// LastHPDriverErrors returns the bitmask of the last high-power driver
// errors. 36v4 only.
func (d *Device) LastHPDriverErrors() (uint8, error) { return d.varU8(varLastHPDriverErrors) }

// Generic access ------------------------------------------------------

// ReadVariable reads and decodes a single variable by registry name.
func (d *Device) ReadVariable(name string) (interface{}, error) {
	f := VariableByName(name)
	if f == nil {
		return nil, fmt.Errorf("tic: unknown variable %q", name)
	}
	raw, err := d.readVariable(f)
	if err != nil {
		return nil, err
	}
	return f.Decode.apply(raw)
}

// Variables reads every entry of the variable registry and returns the
// decoded values keyed by name. Each entry is one block read; there is
// no snapshot consistency across entries.
func (d *Device) Variables() (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(Variables))
	for _, f := range Variables {
		raw, err := d.readVariable(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		v, err := f.Decode.apply(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", f.Name, err)
		}
		out[f.Name] = v
	}
	return out, nil
}
