// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jphalip/ticlib/pkg/tic"
)

// withDevice opens a session, runs fn against the device, and closes the
// session.
func withDevice(fn func(d *tic.Device) error) error {
	s, err := OpenSession()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s.Device)
}

// quickVerbs are the commands that carry no argument.
var quickVerbs = []struct {
	use   string
	short string
	send  func(d *tic.Device) error
}{
	{"energize", "Enable the motor driver outputs", (*tic.Device).Energize},
	{"deenergize", "Disable the motor driver outputs", (*tic.Device).Deenergize},
	{"exit-safe-start", "Clear the safe start violation error", (*tic.Device).ExitSafeStart},
	{"enter-safe-start", "Re-enter the safe start state", (*tic.Device).EnterSafeStart},
	{"halt", "Stop the motor abruptly and hold", (*tic.Device).HaltAndHold},
	{"reset", "Reload settings and restart the controller's state", (*tic.Device).Reset},
	{"clear-driver-error", "Clear a latched motor driver error", (*tic.Device).ClearDriverError},
	{"reset-command-timeout", "Keep the command timeout from elapsing", (*tic.Device).ResetCommandTimeout},
}

func init() {
	for _, v := range quickVerbs {
		send := v.send
		rootCmd.AddCommand(&cobra.Command{
			Use:   v.use,
			Short: v.short,
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withDevice(send)
			},
		})
	}
}

var positionCmd = &cobra.Command{
	Use:   "position <microsteps>",
	Short: "Set the target position",
	Long: `Set the target position in microsteps.

Only valid in serial/I2C/USB control mode. The controller must be
energized and out of safe start for the motor to move.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseInt32(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(d *tic.Device) error {
			return d.SetTargetPosition(v)
		})
	},
}

var velocityCmd = &cobra.Command{
	Use:   "velocity <microsteps per 10000s>",
	Short: "Set the target velocity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseInt32(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(d *tic.Device) error {
			return d.SetTargetVelocity(v)
		})
	},
}

var haltAndSetCmd = &cobra.Command{
	Use:   "halt-and-set-position <microsteps>",
	Short: "Stop the motor abruptly and set the current position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseInt32(args[0])
		if err != nil {
			return err
		}
		return withDevice(func(d *tic.Device) error {
			return d.HaltAndSetPosition(v)
		})
	},
}

var goHomeCmd = &cobra.Command{
	Use:   "go-home <forward|reverse>",
	Short: "Start the homing procedure",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var direction uint8
		switch args[0] {
		case "forward", "fwd":
			direction = 1
		case "reverse", "rev":
			direction = 0
		default:
			return fmt.Errorf("direction must be forward or reverse, got %q", args[0])
		}
		return withDevice(func(d *tic.Device) error {
			return d.GoHome(direction)
		})
	},
}

// sevenBitVerbs are the commands carrying a single 0-127 argument.
var sevenBitVerbs = []struct {
	use   string
	short string
	send  func(d *tic.Device, v uint8) error
}{
	{"step-mode <mode>", "Temporarily set the microstepping mode", (*tic.Device).SetStepMode},
	{"current-limit <value>", "Temporarily set the coil current limit", (*tic.Device).SetCurrentLimit},
	{"decay-mode <mode>", "Temporarily set the decay mode", (*tic.Device).SetDecayMode},
	{"agc-option <option>", "Temporarily change an AGC option (T249 only)", (*tic.Device).SetAGCOption},
}

// speedVerbs are the commands carrying an unsigned 32-bit argument.
var speedVerbs = []struct {
	use   string
	short string
	send  func(d *tic.Device, v uint32) error
}{
	{"max-speed <value>", "Temporarily set the speed limit", (*tic.Device).SetMaxSpeed},
	{"starting-speed <value>", "Temporarily set the starting speed", (*tic.Device).SetStartingSpeed},
	{"max-accel <value>", "Temporarily set the acceleration limit", (*tic.Device).SetMaxAcceleration},
	{"max-decel <value>", "Temporarily set the deceleration limit", (*tic.Device).SetMaxDeceleration},
}

func init() {
	rootCmd.AddCommand(positionCmd)
	rootCmd.AddCommand(velocityCmd)
	rootCmd.AddCommand(haltAndSetCmd)
	rootCmd.AddCommand(goHomeCmd)

	for _, v := range sevenBitVerbs {
		send := v.send
		rootCmd.AddCommand(&cobra.Command{
			Use:   v.use,
			Short: v.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.ParseUint(args[0], 10, 8)
				if err != nil {
					return fmt.Errorf("invalid value %q: %v", args[0], err)
				}
				return withDevice(func(d *tic.Device) error {
					return send(d, uint8(n))
				})
			},
		})
	}

	for _, v := range speedVerbs {
		send := v.send
		rootCmd.AddCommand(&cobra.Command{
			Use:   v.use,
			Short: v.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.ParseUint(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("invalid value %q: %v", args[0], err)
				}
				return withDevice(func(d *tic.Device) error {
					return send(d, uint32(n))
				})
			},
		})
	}
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q: %v", s, err)
	}
	return int32(v), nil
}
