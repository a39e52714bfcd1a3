// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// Variable descriptors, transcribed from the variable reference
// (https://www.pololu.com/docs/0J71/7). Offsets are byte offsets into the
// variable memory window read with CmdGetVariable. Each descriptor is
// referenced both by the Variables table and by the typed getter on
// Device that exposes it.
var (
	// General status
	varOperationState = &Field{Name: "operation_state", Offset: 0x00, Length: 1, Decode: Unsigned()}
	varMiscFlags      = &Field{Name: "misc_flags", Offset: 0x01, Length: 1, Decode: Raw()}
	varErrorStatus    = &Field{Name: "error_status", Offset: 0x02, Length: 2, Decode: Raw()}
	varErrorsOccurred = &Field{Name: "errors_occurred", Offset: 0x04, Length: 4, Decode: Raw()}

	// Step planning
	varPlanningMode        = &Field{Name: "planning_mode", Offset: 0x09, Length: 1, Decode: Unsigned()}
	varTargetPosition      = &Field{Name: "target_position", Offset: 0x0A, Length: 4, Decode: Signed()}
	varTargetVelocity      = &Field{Name: "target_velocity", Offset: 0x0E, Length: 4, Decode: Signed()}
	varStartingSpeed       = &Field{Name: "starting_speed", Offset: 0x12, Length: 4, Decode: Unsigned()}
	varMaxSpeed            = &Field{Name: "max_speed", Offset: 0x16, Length: 4, Decode: Unsigned()}
	varMaxDeceleration     = &Field{Name: "max_deceleration", Offset: 0x1A, Length: 4, Decode: Unsigned()}
	varMaxAcceleration     = &Field{Name: "max_acceleration", Offset: 0x1E, Length: 4, Decode: Unsigned()}
	varCurrentPosition     = &Field{Name: "current_position", Offset: 0x22, Length: 4, Decode: Signed()}
	varCurrentVelocity     = &Field{Name: "current_velocity", Offset: 0x26, Length: 4, Decode: Signed()}
	varActingTargetPos     = &Field{Name: "acting_target_position", Offset: 0x2A, Length: 4, Decode: Signed()}
	varTimeSinceLastStep   = &Field{Name: "time_since_last_step", Offset: 0x2E, Length: 4, Decode: Unsigned()}

	// Other
	varDeviceReset          = &Field{Name: "device_reset", Offset: 0x32, Length: 1, Decode: Unsigned()}
	varVinVoltage           = &Field{Name: "vin_voltage", Offset: 0x33, Length: 2, Decode: Unsigned()}
	varUptime               = &Field{Name: "uptime", Offset: 0x35, Length: 4, Decode: Unsigned()}
	varEncoderPosition      = &Field{Name: "encoder_position", Offset: 0x39, Length: 4, Decode: Signed()}
	varRCPulse              = &Field{Name: "rc_pulse", Offset: 0x3D, Length: 2, Decode: Unsigned()}
	varAnalogReadingSCL     = &Field{Name: "analog_reading_scl", Offset: 0x3F, Length: 2, Decode: Unsigned()}
	varAnalogReadingSDA     = &Field{Name: "analog_reading_sda", Offset: 0x41, Length: 2, Decode: Unsigned()}
	varAnalogReadingTX      = &Field{Name: "analog_reading_tx", Offset: 0x43, Length: 2, Decode: Unsigned()}
	varAnalogReadingRX      = &Field{Name: "analog_reading_rx", Offset: 0x45, Length: 2, Decode: Unsigned()}
	varDigitalReadings      = &Field{Name: "digital_readings", Offset: 0x47, Length: 1, Decode: Raw()}
	varPinStates            = &Field{Name: "pin_states", Offset: 0x48, Length: 1, Decode: Raw()}
	varStepMode             = &Field{Name: "step_mode", Offset: 0x49, Length: 1, Decode: Unsigned()}
	varCurrentLimit         = &Field{Name: "current_limit", Offset: 0x4A, Length: 1, Decode: Unsigned()}
	varDecayMode            = &Field{Name: "decay_mode", Offset: 0x4B, Length: 1, Decode: Unsigned()} // not valid for 36v4
	varInputState           = &Field{Name: "input_state", Offset: 0x4C, Length: 1, Decode: Unsigned()}
	varInputAfterAveraging  = &Field{Name: "input_after_averaging", Offset: 0x4D, Length: 2, Decode: Unsigned()}
	varInputAfterHysteresis = &Field{Name: "input_after_hysteresis", Offset: 0x4F, Length: 2, Decode: Unsigned()}
	varInputAfterScaling    = &Field{Name: "input_after_scaling", Offset: 0x51, Length: 4, Decode: Signed()}

	// T249-only
	varLastMotorDriverError  = &Field{Name: "last_motor_driver_error", Offset: 0x55, Length: 1, Decode: Unsigned()}
	varAGCMode               = &Field{Name: "agc_mode", Offset: 0x56, Length: 1, Decode: Unsigned()}
	varAGCBottomCurrentLimit = &Field{Name: "agc_bottom_current_limit", Offset: 0x57, Length: 1, Decode: Unsigned()}
	varAGCCurrentBoostSteps  = &Field{Name: "agc_current_boost_steps", Offset: 0x58, Length: 1, Decode: Unsigned()}
	varAGCFrequencyLimit     = &Field{Name: "agc_frequency_limit", Offset: 0x59, Length: 1, Decode: Unsigned()}

	// 36v4-only
	varLastHPDriverErrors = &Field{Name: "last_hp_driver_errors", Offset: 0xFF, Length: 1, Decode: Raw()}
)

// Variables is the variable registry. Entries are read from the device
// with a single block read each; model-conditional entries are forwarded
// to the device unvalidated.
var Variables = []*Field{
	varOperationState,
	varMiscFlags,
	varErrorStatus,
	varErrorsOccurred,
	varPlanningMode,
	varTargetPosition,
	varTargetVelocity,
	varStartingSpeed,
	varMaxSpeed,
	varMaxDeceleration,
	varMaxAcceleration,
	varCurrentPosition,
	varCurrentVelocity,
	varActingTargetPos,
	varTimeSinceLastStep,
	varDeviceReset,
	varVinVoltage,
	varUptime,
	varEncoderPosition,
	varRCPulse,
	varAnalogReadingSCL,
	varAnalogReadingSDA,
	varAnalogReadingTX,
	varAnalogReadingRX,
	varDigitalReadings,
	varPinStates,
	varStepMode,
	varCurrentLimit,
	varDecayMode,
	varInputState,
	varInputAfterAveraging,
	varInputAfterHysteresis,
	varInputAfterScaling,
	varLastMotorDriverError,
	varAGCMode,
	varAGCBottomCurrentLimit,
	varAGCCurrentBoostSteps,
	varAGCFrequencyLimit,
	varLastHPDriverErrors,
}
