// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package tic

// Commands is the command registry: one entry per Tic command, in the
// order of the command reference (https://www.pololu.com/docs/0J71/8).
// The table is the single source of truth consulted by every transport;
// the typed methods on Device dispatch through the same opcodes.
var Commands = []*Command{
	{Name: "set_target_position", Code: CmdSetTargetPosition, Format: FormatThirtyTwoBit},
	{Name: "set_target_velocity", Code: CmdSetTargetVelocity, Format: FormatThirtyTwoBit},
	{Name: "halt_and_set_position", Code: CmdHaltAndSetPosition, Format: FormatThirtyTwoBit},
	{Name: "halt_and_hold", Code: CmdHaltAndHold, Format: FormatQuick},
	{Name: "go_home", Code: CmdGoHome, Format: FormatSevenBit},
	{Name: "reset_command_timeout", Code: CmdResetCommandTimeout, Format: FormatQuick},
	{Name: "deenergize", Code: CmdDeenergize, Format: FormatQuick},
	{Name: "energize", Code: CmdEnergize, Format: FormatQuick},
	{Name: "exit_safe_start", Code: CmdExitSafeStart, Format: FormatQuick},
	{Name: "enter_safe_start", Code: CmdEnterSafeStart, Format: FormatQuick},
	{Name: "reset", Code: CmdReset, Format: FormatQuick},
	{Name: "clear_driver_error", Code: CmdClearDriverError, Format: FormatQuick},
	{Name: "set_max_speed", Code: CmdSetMaxSpeed, Format: FormatThirtyTwoBit},
	{Name: "set_starting_speed", Code: CmdSetStartingSpeed, Format: FormatThirtyTwoBit},
	{Name: "set_max_acceleration", Code: CmdSetMaxAcceleration, Format: FormatThirtyTwoBit},
	{Name: "set_max_deceleration", Code: CmdSetMaxDeceleration, Format: FormatThirtyTwoBit},
	{Name: "set_step_mode", Code: CmdSetStepMode, Format: FormatSevenBit},
	{Name: "set_current_limit", Code: CmdSetCurrentLimit, Format: FormatSevenBit},
	{Name: "set_decay_mode", Code: CmdSetDecayMode, Format: FormatSevenBit},
	{Name: "set_agc_option", Code: CmdSetAGCOption, Format: FormatSevenBit},
}
