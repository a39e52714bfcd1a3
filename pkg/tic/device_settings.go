// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

import "fmt"

// SettingsReader is the read-only view of the controller's non-volatile
// settings, reached through Device.Settings. This layer never writes
// settings; changing them requires the vendor's configuration utility.
type SettingsReader struct {
	dev *Device
}

func (s *SettingsReader) read(f *Field) ([]byte, error) {
	return s.dev.tr.BlockRead(CmdGetSetting, f.Offset, f.Length)
}

func (s *SettingsReader) u8(f *Field) (uint8, error) {
	buf, err := s.read(f)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (s *SettingsReader) u16(f *Field) (uint16, error) {
	buf, err := s.read(f)
	if err != nil {
		return 0, err
	}
	return uint16(UnsignedInt(buf)), nil
}

func (s *SettingsReader) u32(f *Field) (uint32, error) {
	buf, err := s.read(f)
	if err != nil {
		return 0, err
	}
	return uint32(UnsignedInt(buf)), nil
}

func (s *SettingsReader) s16(f *Field) (int16, error) {
	buf, err := s.read(f)
	if err != nil {
		return 0, err
	}
	return int16(SignedInt(buf)), nil
}

func (s *SettingsReader) s32(f *Field) (int32, error) {
	buf, err := s.read(f)
	if err != nil {
		return 0, err
	}
	return int32(SignedInt(buf)), nil
}

func (s *SettingsReader) boolean(f *Field) (bool, error) {
	buf, err := s.read(f)
	if err != nil {
		return false, err
	}
	return Boolean(f.Decode.start, buf)
}

func (s *SettingsReader) bits(f *Field) (uint32, error) {
	buf, err := s.read(f)
	if err != nil {
		return 0, err
	}
	return BitRange(f.Decode.start, f.Decode.end, buf)
}

// ControlMode returns the controller's control mode setting.
func (s *SettingsReader) ControlMode() (uint8, error) { return s.u8(setControlMode) }

// Miscellaneous

func (s *SettingsReader) DisableSafeStart() (bool, error)     { return s.boolean(setDisableSafeStart) }
func (s *SettingsReader) IgnoreErrLineHigh() (bool, error)    { return s.boolean(setIgnoreErrLineHigh) }
func (s *SettingsReader) AutoClearDriverError() (bool, error) { return s.boolean(setAutoClearDriverError) }
func (s *SettingsReader) NeverSleep() (bool, error)           { return s.boolean(setNeverSleep) }
func (s *SettingsReader) VinCalibration() (int16, error)      { return s.s16(setVinCalibration) }

// Soft error response

func (s *SettingsReader) SoftErrorResponse() (uint8, error) { return s.u8(setSoftErrorResponse) }
func (s *SettingsReader) SoftErrorPosition() (int32, error) { return s.s32(setSoftErrorPosition) }
func (s *SettingsReader) CurrentLimitDuringError() (uint8, error) {
	return s.u8(setCurrentLimitDuringError)
}

// Serial

// SerialBaudRate returns the raw baud rate generator value, not the baud
// rate itself.
func (s *SettingsReader) SerialBaudRate() (uint16, error) { return s.u16(setSerialBaudRate) }

func (s *SettingsReader) SerialEnableAltDeviceNumber() (bool, error) {
	return s.boolean(setSerialEnableAltDeviceNum)
}
func (s *SettingsReader) Serial14BitDeviceNumber() (bool, error) {
	return s.boolean(setSerial14BitDeviceNumber)
}
func (s *SettingsReader) SerialResponseDelay() (uint8, error)   { return s.u8(setSerialResponseDelay) }
func (s *SettingsReader) SerialCommandTimeout() (uint16, error) { return s.u16(setSerialCommandTimeout) }
func (s *SettingsReader) SerialCRCForCommands() (bool, error)   { return s.boolean(setSerialCRCForCommands) }
func (s *SettingsReader) SerialCRCForResponses() (bool, error) {
	return s.boolean(setSerialCRCForResponses)
}
func (s *SettingsReader) Serial7BitResponses() (bool, error) { return s.boolean(setSerial7BitResponses) }

// SerialDeviceNumber returns the 14-bit serial device number, combined
// from the two separately stored 7-bit halves.
func (s *SettingsReader) SerialDeviceNumber() (uint16, error) {
	return s.deviceNumber(0x07, 0x69)
}

// SerialAltDeviceNumber returns the alternative serial device number,
// combined from its two separately stored 7-bit halves.
func (s *SettingsReader) SerialAltDeviceNumber() (uint16, error) {
	return s.deviceNumber(0x6A, 0x6B)
}

// deviceNumber performs the two independent one-byte reads holding the
// low and high halves of a device number and combines them. The halves
// are not adjacent in the setting map, so this can never be a single
// block read.
func (s *SettingsReader) deviceNumber(lowerOffset, upperOffset uint8) (uint16, error) {
	lowerBuf, err := s.dev.tr.BlockRead(CmdGetSetting, lowerOffset, 1)
	if err != nil {
		return 0, err
	}
	upperBuf, err := s.dev.tr.BlockRead(CmdGetSetting, upperOffset, 1)
	if err != nil {
		return 0, err
	}
	lower, err := BitRange(0, 7, lowerBuf)
	if err != nil {
		return 0, err
	}
	upper, err := BitRange(0, 7, upperBuf)
	if err != nil {
		return 0, err
	}
	return uint16(lower&0x7F | (upper&0x7F)<<7), nil
}

// Encoder

func (s *SettingsReader) EncoderPrescaler() (uint32, error)  { return s.u32(setEncoderPrescaler) }
func (s *SettingsReader) EncoderPostscaler() (uint32, error) { return s.u32(setEncoderPostscaler) }
func (s *SettingsReader) EncoderUnlimited() (bool, error)    { return s.boolean(setEncoderUnlimited) }

// Input conditioning

func (s *SettingsReader) InputAveragingEnabled() (bool, error) {
	return s.boolean(setInputAveragingEnabled)
}
func (s *SettingsReader) InputHysteresis() (uint16, error) { return s.u16(setInputHysteresis) }

// RC and analog scaling

func (s *SettingsReader) InputInvert() (bool, error)         { return s.boolean(setInputInvert) }
func (s *SettingsReader) InputMax() (uint16, error)          { return s.u16(setInputMax) }
func (s *SettingsReader) OutputMax() (int32, error)          { return s.s32(setOutputMax) }
func (s *SettingsReader) InputNeutralMax() (uint16, error)   { return s.u16(setInputNeutralMax) }
func (s *SettingsReader) InputNeutralMin() (uint16, error)   { return s.u16(setInputNeutralMin) }
func (s *SettingsReader) InputMin() (uint16, error)          { return s.u16(setInputMin) }
func (s *SettingsReader) OutputMin() (int32, error)          { return s.s32(setOutputMin) }
func (s *SettingsReader) InputScalingDegree() (uint8, error) { return s.u8(setInputScalingDegree) }

// Pin configuration: SCL

func (s *SettingsReader) SCLConfig() (uint8, error)       { return s.u8(setSCLConfig) }
func (s *SettingsReader) SCLPinFunction() (uint8, error)  { v, err := s.bits(setSCLPinFunction); return uint8(v), err }
func (s *SettingsReader) SCLEnableAnalog() (bool, error)  { return s.boolean(setSCLEnableAnalog) }
func (s *SettingsReader) SCLEnablePullUp() (bool, error)  { return s.boolean(setSCLEnablePullUp) }
func (s *SettingsReader) SCLActiveHigh() (bool, error)    { return s.boolean(setSCLActiveHigh) }
func (s *SettingsReader) SCLKillSwitch() (bool, error)    { return s.boolean(setSCLKillSwitch) }
func (s *SettingsReader) SCLLimitSwitchForward() (bool, error) {
	return s.boolean(setSCLLimitSwitchForward)
}
func (s *SettingsReader) SCLLimitSwitchReverse() (bool, error) {
	return s.boolean(setSCLLimitSwitchReverse)
}

// Pin configuration: SDA

func (s *SettingsReader) SDAConfig() (uint8, error)      { return s.u8(setSDAConfig) }
func (s *SettingsReader) SDAPinFunction() (uint8, error) { v, err := s.bits(setSDAPinFunction); return uint8(v), err }
func (s *SettingsReader) SDAEnableAnalog() (bool, error) { return s.boolean(setSDAEnableAnalog) }
func (s *SettingsReader) SDAEnablePullUp() (bool, error) { return s.boolean(setSDAEnablePullUp) }
func (s *SettingsReader) SDAActiveHigh() (bool, error)   { return s.boolean(setSDAActiveHigh) }
func (s *SettingsReader) SDAKillSwitch() (bool, error)   { return s.boolean(setSDAKillSwitch) }
func (s *SettingsReader) SDALimitSwitchForward() (bool, error) {
	return s.boolean(setSDALimitSwitchForward)
}
func (s *SettingsReader) SDALimitSwitchReverse() (bool, error) {
	return s.boolean(setSDALimitSwitchReverse)
}

// Pin configuration: TX

func (s *SettingsReader) TXConfig() (uint8, error)      { return s.u8(setTXConfig) }
func (s *SettingsReader) TXPinFunction() (uint8, error) { v, err := s.bits(setTXPinFunction); return uint8(v), err }
func (s *SettingsReader) TXEnableAnalog() (bool, error) { return s.boolean(setTXEnableAnalog) }
func (s *SettingsReader) TXActiveHigh() (bool, error)   { return s.boolean(setTXActiveHigh) }
func (s *SettingsReader) TXKillSwitch() (bool, error)   { return s.boolean(setTXKillSwitch) }
func (s *SettingsReader) TXLimitSwitchForward() (bool, error) {
	return s.boolean(setTXLimitSwitchForward)
}
func (s *SettingsReader) TXLimitSwitchReverse() (bool, error) {
	return s.boolean(setTXLimitSwitchReverse)
}

// Pin configuration: RX

func (s *SettingsReader) RXConfig() (uint8, error)      { return s.u8(setRXConfig) }
func (s *SettingsReader) RXPinFunction() (uint8, error) { v, err := s.bits(setRXPinFunction); return uint8(v), err }
func (s *SettingsReader) RXEnableAnalog() (bool, error) { return s.boolean(setRXEnableAnalog) }
func (s *SettingsReader) RXActiveHigh() (bool, error)   { return s.boolean(setRXActiveHigh) }
func (s *SettingsReader) RXKillSwitch() (bool, error)   { return s.boolean(setRXKillSwitch) }
func (s *SettingsReader) RXLimitSwitchForward() (bool, error) {
	return s.boolean(setRXLimitSwitchForward)
}
func (s *SettingsReader) RXLimitSwitchReverse() (bool, error) {
	return s.boolean(setRXLimitSwitchReverse)
}

// Pin configuration: RC

func (s *SettingsReader) RCConfig() (uint8, error)    { return s.u8(setRCConfig) }
func (s *SettingsReader) RCActiveHigh() (bool, error) { return s.boolean(setRCActiveHigh) }
func (s *SettingsReader) RCKillSwitch() (bool, error) { return s.boolean(setRCKillSwitch) }
func (s *SettingsReader) RCLimitSwitchForward() (bool, error) {
	return s.boolean(setRCLimitSwitchForward)
}
func (s *SettingsReader) RCLimitSwitchReverse() (bool, error) {
	return s.boolean(setRCLimitSwitchReverse)
}

// Motor

func (s *SettingsReader) InvertMotorDirection() (bool, error) {
	return s.boolean(setInvertMotorDirection)
}
func (s *SettingsReader) MaxSpeed() (uint32, error)        { return s.u32(setMaxSpeed) }
func (s *SettingsReader) StartingSpeed() (uint32, error)   { return s.u32(setStartingSpeed) }
func (s *SettingsReader) MaxAcceleration() (uint32, error) { return s.u32(setMaxAcceleration) }
func (s *SettingsReader) MaxDeceleration() (uint32, error) { return s.u32(setMaxDeceleration) }
func (s *SettingsReader) StepMode() (uint8, error)         { return s.u8(setStepMode) }
func (s *SettingsReader) CurrentLimit() (uint8, error)     { return s.u8(setCurrentLimit) }
func (s *SettingsReader) DecayMode() (uint8, error)        { return s.u8(setDecayMode) }

// Homing

func (s *SettingsReader) AutoHoming() (bool, error)           { return s.boolean(setAutoHoming) }
func (s *SettingsReader) AutoHomingForward() (bool, error)    { return s.boolean(setAutoHomingForward) }
func (s *SettingsReader) HomingSpeedTowards() (uint32, error) { return s.u32(setHomingSpeedTowards) }
func (s *SettingsReader) HomingSpeedAway() (uint32, error)    { return s.u32(setHomingSpeedAway) }

// T249-only

func (s *SettingsReader) AGCMode() (uint8, error)               { return s.u8(setAGCMode) }
func (s *SettingsReader) AGCBottomCurrentLimit() (uint8, error) { return s.u8(setAGCBottomCurrentLimit) }
func (s *SettingsReader) AGCCurrentBoostSteps() (uint8, error)  { return s.u8(setAGCCurrentBoostSteps) }
func (s *SettingsReader) AGCFrequencyLimit() (uint8, error)     { return s.u8(setAGCFrequencyLimit) }

// 36v4-only

func (s *SettingsReader) HPEnableUnrestrictedCurrentLimits() (bool, error) {
	return s.boolean(setHPEnableUnrestrictedCurrentLimits)
}
func (s *SettingsReader) HPFixedOffTime() (uint8, error) { return s.u8(setHPFixedOffTime) }
func (s *SettingsReader) HPCurrentTripBlankingTime() (uint8, error) {
	return s.u8(setHPCurrentTripBlankingTime)
}
func (s *SettingsReader) HPEnableAdaptiveBlankingTime() (bool, error) {
	return s.boolean(setHPEnableAdaptiveBlankingTime)
}
func (s *SettingsReader) HPMixedDecayTransitionTime() (uint8, error) {
	return s.u8(setHPMixedDecayTransitionTime)
}
func (s *SettingsReader) HPDecayMode() (uint8, error) { return s.u8(setHPDecayMode) }

// Generic access ------------------------------------------------------

// Read reads and decodes a single setting by registry name.
func (s *SettingsReader) Read(name string) (interface{}, error) {
	f := SettingByName(name)
	if f == nil {
		return nil, fmt.Errorf("tic: unknown setting %q", name)
	}
	raw, err := s.read(f)
	if err != nil {
		return nil, err
	}
	return f.Decode.apply(raw)
}

// All reads every entry of the setting registry plus the two combined
// device numbers and returns the decoded values keyed by name.
func (s *SettingsReader) All() (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(Settings)+2)
	for _, f := range Settings {
		raw, err := s.read(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		v, err := f.Decode.apply(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", f.Name, err)
		}
		out[f.Name] = v
	}
	n, err := s.SerialDeviceNumber()
	if err != nil {
		return nil, fmt.Errorf("reading serial_device_number: %w", err)
	}
	out["serial_device_number"] = n
	n, err = s.SerialAltDeviceNumber()
	if err != nil {
		return nil, fmt.Errorf("reading serial_alt_device_number: %w", err)
	}
	out["serial_alt_device_number"] = n
	return out, nil
}
