// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// Setting descriptors, transcribed from the setting reference
// (https://www.pololu.com/docs/0J71/6). Offsets are byte offsets into the
// setting memory window read with CmdGetSetting. Many settings share a
// physical byte and decode independent bits from the same read.
//
// The serial device number and alternative device number span two
// non-adjacent bytes each and are exposed as combined getters on
// Settings rather than as table entries.
var (
	setControlMode = &Field{Name: "control_mode", Offset: 0x01, Length: 1, Decode: Unsigned()}

	// Miscellaneous
	setDisableSafeStart      = &Field{Name: "disable_safe_start", Offset: 0x03, Length: 1, Decode: BoolAt(0)}
	setIgnoreErrLineHigh     = &Field{Name: "ignore_err_line_high", Offset: 0x04, Length: 1, Decode: BoolAt(0)}
	setAutoClearDriverError  = &Field{Name: "auto_clear_driver_error", Offset: 0x08, Length: 1, Decode: BoolAt(0)}
	setNeverSleep            = &Field{Name: "never_sleep", Offset: 0x02, Length: 1, Decode: BoolAt(0)}
	setVinCalibration        = &Field{Name: "vin_calibration", Offset: 0x14, Length: 2, Decode: Signed()}

	// Soft error response
	setSoftErrorResponse       = &Field{Name: "soft_error_response", Offset: 0x53, Length: 1, Decode: Unsigned()}
	setSoftErrorPosition       = &Field{Name: "soft_error_position", Offset: 0x54, Length: 4, Decode: Signed()}
	setCurrentLimitDuringError = &Field{Name: "current_limit_during_error", Offset: 0x31, Length: 1, Decode: Unsigned()}

	// Serial
	setSerialBaudRate            = &Field{Name: "serial_baud_rate", Offset: 0x06, Length: 2, Decode: Unsigned()} // raw generator value, not baud
	setSerialEnableAltDeviceNum  = &Field{Name: "serial_enable_alt_device_number", Offset: 0x6A, Length: 1, Decode: BoolAt(7)}
	setSerial14BitDeviceNumber   = &Field{Name: "serial_14bit_device_number", Offset: 0x0B, Length: 1, Decode: BoolAt(3)}
	setSerialResponseDelay       = &Field{Name: "serial_response_delay", Offset: 0x5E, Length: 1, Decode: Unsigned()}
	setSerialCommandTimeout      = &Field{Name: "serial_command_timeout", Offset: 0x09, Length: 2, Decode: Unsigned()}
	setSerialCRCForCommands      = &Field{Name: "serial_crc_for_commands", Offset: 0x0B, Length: 1, Decode: BoolAt(0)}
	setSerialCRCForResponses     = &Field{Name: "serial_crc_for_responses", Offset: 0x0B, Length: 1, Decode: BoolAt(1)}
	setSerial7BitResponses       = &Field{Name: "serial_7bit_responses", Offset: 0x0B, Length: 1, Decode: BoolAt(2)}

	// Encoder
	setEncoderPrescaler  = &Field{Name: "encoder_prescaler", Offset: 0x58, Length: 4, Decode: Unsigned()}
	setEncoderPostscaler = &Field{Name: "encoder_postscaler", Offset: 0x37, Length: 4, Decode: Unsigned()}
	setEncoderUnlimited  = &Field{Name: "encoder_unlimited", Offset: 0x5C, Length: 1, Decode: BoolAt(0)}

	// Input conditioning
	setInputAveragingEnabled = &Field{Name: "input_averaging_enabled", Offset: 0x2E, Length: 1, Decode: BoolAt(0)}
	setInputHysteresis       = &Field{Name: "input_hysteresis", Offset: 0x2F, Length: 2, Decode: Unsigned()}

	// RC and analog scaling
	setInputInvert        = &Field{Name: "input_invert", Offset: 0x21, Length: 1, Decode: BoolAt(0)}
	setInputMax           = &Field{Name: "input_max", Offset: 0x28, Length: 2, Decode: Unsigned()}
	setOutputMax          = &Field{Name: "output_max", Offset: 0x32, Length: 4, Decode: Signed()}
	setInputNeutralMax    = &Field{Name: "input_neutral_max", Offset: 0x26, Length: 2, Decode: Unsigned()}
	setInputNeutralMin    = &Field{Name: "input_neutral_min", Offset: 0x24, Length: 2, Decode: Unsigned()}
	setInputMin           = &Field{Name: "input_min", Offset: 0x22, Length: 2, Decode: Unsigned()}
	setOutputMin          = &Field{Name: "output_min", Offset: 0x2A, Length: 4, Decode: Signed()}
	setInputScalingDegree = &Field{Name: "input_scaling_degree", Offset: 0x20, Length: 1, Decode: Unsigned()}

	// Pin configuration: SCL
	setSCLConfig              = &Field{Name: "scl_config", Offset: 0x3B, Length: 1, Decode: Raw()}
	setSCLPinFunction         = &Field{Name: "scl_pin_function", Offset: 0x3B, Length: 1, Decode: BitsAt(0, 4)}
	setSCLEnableAnalog        = &Field{Name: "scl_enable_analog", Offset: 0x3B, Length: 1, Decode: BoolAt(6)}
	setSCLEnablePullUp        = &Field{Name: "scl_enable_pull_up", Offset: 0x3B, Length: 1, Decode: BoolAt(7)}
	setSCLActiveHigh          = &Field{Name: "scl_active_high", Offset: 0x36, Length: 1, Decode: BoolAt(0)}
	setSCLKillSwitch          = &Field{Name: "scl_kill_switch", Offset: 0x5D, Length: 1, Decode: BoolAt(0)}
	setSCLLimitSwitchForward  = &Field{Name: "scl_limit_switch_forward", Offset: 0x5F, Length: 1, Decode: BoolAt(0)}
	setSCLLimitSwitchReverse  = &Field{Name: "scl_limit_switch_reverse", Offset: 0x60, Length: 1, Decode: BoolAt(0)}

	// Pin configuration: SDA
	setSDAConfig              = &Field{Name: "sda_config", Offset: 0x3C, Length: 1, Decode: Raw()}
	setSDAPinFunction         = &Field{Name: "sda_pin_function", Offset: 0x3C, Length: 1, Decode: BitsAt(0, 4)}
	setSDAEnableAnalog        = &Field{Name: "sda_enable_analog", Offset: 0x3C, Length: 1, Decode: BoolAt(6)}
	setSDAEnablePullUp        = &Field{Name: "sda_enable_pull_up", Offset: 0x3C, Length: 1, Decode: BoolAt(7)}
	setSDAActiveHigh          = &Field{Name: "sda_active_high", Offset: 0x36, Length: 1, Decode: BoolAt(1)}
	setSDAKillSwitch          = &Field{Name: "sda_kill_switch", Offset: 0x5D, Length: 1, Decode: BoolAt(1)}
	setSDALimitSwitchForward  = &Field{Name: "sda_limit_switch_forward", Offset: 0x5F, Length: 1, Decode: BoolAt(1)}
	setSDALimitSwitchReverse  = &Field{Name: "sda_limit_switch_reverse", Offset: 0x60, Length: 1, Decode: BoolAt(1)}

	// Pin configuration: TX
	setTXConfig             = &Field{Name: "tx_config", Offset: 0x3D, Length: 1, Decode: Raw()}
	setTXPinFunction        = &Field{Name: "tx_pin_function", Offset: 0x3D, Length: 1, Decode: BitsAt(0, 4)}
	setTXEnableAnalog       = &Field{Name: "tx_enable_analog", Offset: 0x3D, Length: 1, Decode: BoolAt(6)}
	setTXActiveHigh         = &Field{Name: "tx_active_high", Offset: 0x36, Length: 1, Decode: BoolAt(2)}
	setTXKillSwitch         = &Field{Name: "tx_kill_switch", Offset: 0x5D, Length: 1, Decode: BoolAt(2)}
	setTXLimitSwitchForward = &Field{Name: "tx_limit_switch_forward", Offset: 0x5F, Length: 1, Decode: BoolAt(2)}
	setTXLimitSwitchReverse = &Field{Name: "tx_limit_switch_reverse", Offset: 0x60, Length: 1, Decode: BoolAt(2)}

	// Pin configuration: RX
	setRXConfig             = &Field{Name: "rx_config", Offset: 0x3E, Length: 1, Decode: Raw()}
	setRXPinFunction        = &Field{Name: "rx_pin_function", Offset: 0x3E, Length: 1, Decode: BitsAt(0, 4)}
	setRXEnableAnalog       = &Field{Name: "rx_enable_analog", Offset: 0x3E, Length: 1, Decode: BoolAt(6)}
	setRXActiveHigh         = &Field{Name: "rx_active_high", Offset: 0x36, Length: 1, Decode: BoolAt(3)}
	setRXKillSwitch         = &Field{Name: "rx_kill_switch", Offset: 0x5D, Length: 1, Decode: BoolAt(3)}
	setRXLimitSwitchForward = &Field{Name: "rx_limit_switch_forward", Offset: 0x5F, Length: 1, Decode: BoolAt(3)}
	setRXLimitSwitchReverse = &Field{Name: "rx_limit_switch_reverse", Offset: 0x60, Length: 1, Decode: BoolAt(3)}

	// Pin configuration: RC
	setRCConfig             = &Field{Name: "rc_config", Offset: 0x3F, Length: 1, Decode: Raw()}
	setRCActiveHigh         = &Field{Name: "rc_active_high", Offset: 0x36, Length: 1, Decode: BoolAt(4)}
	setRCKillSwitch         = &Field{Name: "rc_kill_switch", Offset: 0x5D, Length: 1, Decode: BoolAt(4)}
	setRCLimitSwitchForward = &Field{Name: "rc_limit_switch_forward", Offset: 0x5F, Length: 1, Decode: BoolAt(4)}
	setRCLimitSwitchReverse = &Field{Name: "rc_limit_switch_reverse", Offset: 0x60, Length: 1, Decode: BoolAt(4)}

	// Motor
	setInvertMotorDirection = &Field{Name: "invert_motor_direction", Offset: 0x1B, Length: 1, Decode: BoolAt(0)}
	setMaxSpeed             = &Field{Name: "max_speed", Offset: 0x47, Length: 4, Decode: Unsigned()}
	setStartingSpeed        = &Field{Name: "starting_speed", Offset: 0x43, Length: 4, Decode: Unsigned()}
	setMaxAcceleration      = &Field{Name: "max_acceleration", Offset: 0x4F, Length: 4, Decode: Unsigned()}
	setMaxDeceleration      = &Field{Name: "max_deceleration", Offset: 0x4B, Length: 4, Decode: Unsigned()}
	setStepMode             = &Field{Name: "step_mode", Offset: 0x41, Length: 1, Decode: Unsigned()}
	setCurrentLimit         = &Field{Name: "current_limit", Offset: 0x40, Length: 1, Decode: Unsigned()}
	setDecayMode            = &Field{Name: "decay_mode", Offset: 0x42, Length: 1, Decode: Unsigned()}

	// Homing
	setAutoHoming         = &Field{Name: "auto_homing", Offset: 0x02, Length: 1, Decode: BoolAt(1)}
	setAutoHomingForward  = &Field{Name: "auto_homing_forward", Offset: 0x03, Length: 1, Decode: BoolAt(2)}
	setHomingSpeedTowards = &Field{Name: "homing_speed_towards", Offset: 0x61, Length: 4, Decode: Unsigned()}
	setHomingSpeedAway    = &Field{Name: "homing_speed_away", Offset: 0x65, Length: 4, Decode: Unsigned()}

	// T249-only
	setAGCMode               = &Field{Name: "agc_mode", Offset: 0x6C, Length: 1, Decode: Unsigned()}
	setAGCBottomCurrentLimit = &Field{Name: "agc_bottom_current_limit", Offset: 0x6D, Length: 1, Decode: Unsigned()}
	setAGCCurrentBoostSteps  = &Field{Name: "agc_current_boost_steps", Offset: 0x6E, Length: 1, Decode: Unsigned()}
	setAGCFrequencyLimit     = &Field{Name: "agc_frequency_limit", Offset: 0x6F, Length: 1, Decode: Unsigned()}

	// 36v4-only
	setHPEnableUnrestrictedCurrentLimits = &Field{Name: "hp_enable_unrestricted_current_limits", Offset: 0x6C, Length: 1, Decode: BoolAt(0)}
	setHPFixedOffTime                    = &Field{Name: "hp_fixed_off_time", Offset: 0xF6, Length: 1, Decode: Unsigned()}
	setHPCurrentTripBlankingTime         = &Field{Name: "hp_current_trip_blanking_time", Offset: 0xF8, Length: 1, Decode: Unsigned()}
	setHPEnableAdaptiveBlankingTime      = &Field{Name: "hp_enable_adaptive_blanking_time", Offset: 0xF9, Length: 1, Decode: BoolAt(0)}
	setHPMixedDecayTransitionTime        = &Field{Name: "hp_mixed_decay_transition_time", Offset: 0xFA, Length: 1, Decode: Unsigned()}
	setHPDecayMode                       = &Field{Name: "hp_decay_mode", Offset: 0xFB, Length: 1, Decode: Unsigned()}
)

// Settings is the setting registry. All entries are read-only from this
// layer; the driver never writes settings to the device.
var Settings = []*Field{
	setControlMode,
	setDisableSafeStart,
	setIgnoreErrLineHigh,
	setAutoClearDriverError,
	setNeverSleep,
	setVinCalibration,
	setSoftErrorResponse,
	setSoftErrorPosition,
	setCurrentLimitDuringError,
	setSerialBaudRate,
	setSerialEnableAltDeviceNum,
	setSerial14BitDeviceNumber,
	setSerialResponseDelay,
	setSerialCommandTimeout,
	setSerialCRCForCommands,
	setSerialCRCForResponses,
	setSerial7BitResponses,
	setEncoderPrescaler,
	setEncoderPostscaler,
	setEncoderUnlimited,
	setInputAveragingEnabled,
	setInputHysteresis,
	setInputInvert,
	setInputMax,
	setOutputMax,
	setInputNeutralMax,
	setInputNeutralMin,
	setInputMin,
	setOutputMin,
	setInputScalingDegree,
	setSCLConfig,
	setSCLPinFunction,
	setSCLEnableAnalog,
	setSCLEnablePullUp,
	setSCLActiveHigh,
	setSCLKillSwitch,
	setSCLLimitSwitchForward,
	setSCLLimitSwitchReverse,
	setSDAConfig,
	setSDAPinFunction,
	setSDAEnableAnalog,
	setSDAEnablePullUp,
	setSDAActiveHigh,
	setSDAKillSwitch,
	setSDALimitSwitchForward,
	setSDALimitSwitchReverse,
	setTXConfig,
	setTXPinFunction,
	setTXEnableAnalog,
	setTXActiveHigh,
	setTXKillSwitch,
	setTXLimitSwitchForward,
	setTXLimitSwitchReverse,
	setRXConfig,
	setRXPinFunction,
	setRXEnableAnalog,
	setRXActiveHigh,
	setRXKillSwitch,
	setRXLimitSwitchForward,
	setRXLimitSwitchReverse,
	setRCConfig,
	setRCActiveHigh,
	setRCKillSwitch,
	setRCLimitSwitchForward,
	setRCLimitSwitchReverse,
	setInvertMotorDirection,
	setMaxSpeed,
	setStartingSpeed,
	setMaxAcceleration,
	setMaxDeceleration,
	setStepMode,
	setCurrentLimit,
	setDecayMode,
	setAutoHoming,
	setAutoHomingForward,
	setHomingSpeedTowards,
	setHomingSpeedAway,
	setAGCMode,
	setAGCBottomCurrentLimit,
	setAGCCurrentBoostSteps,
	setAGCFrequencyLimit,
	setHPEnableUnrestrictedCurrentLimits,
	setHPFixedOffTime,
	setHPCurrentTripBlankingTime,
	setHPEnableAdaptiveBlankingTime,
	setHPMixedDecayTransitionTime,
	setHPDecayMode,
}
