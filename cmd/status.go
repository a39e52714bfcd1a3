// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jphalip/ticlib/pkg/tic"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the controller's operational status",
	Long: `Read and display the controller's current status: operation state,
errors, motion variables, and electrical readings.

Supports all connection modes.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := OpenSession()
	if err != nil {
		return err
	}
	defer s.Close()

	fmt.Printf("Connection: %s\n\n", s.Info)

	state, err := s.Device.OperationState()
	if err != nil {
		return fmt.Errorf("reading operation state: %v", err)
	}
	fmt.Printf("Operation state:    %s\n", tic.OperationStateName(state))

	energized, err := s.Device.Energized()
	if err != nil {
		return err
	}
	fmt.Printf("Energized:          %v\n", energized)

	uncertain, err := s.Device.PositionUncertain()
	if err != nil {
		return err
	}
	fmt.Printf("Position uncertain: %v\n", uncertain)

	errStatus, err := s.Device.ErrorStatus()
	if err != nil {
		return err
	}
	fmt.Printf("Errors stopping:    %s\n", errorSummary(uint32(errStatus)))

	errOccurred, err := s.Device.ErrorsOccurred()
	if err != nil {
		return err
	}
	fmt.Printf("Errors occurred:    %s\n\n", errorSummary(errOccurred))

	position, err := s.Device.CurrentPosition()
	if err != nil {
		return err
	}
	fmt.Printf("Current position:   %d\n", position)

	velocity, err := s.Device.CurrentVelocity()
	if err != nil {
		return err
	}
	fmt.Printf("Current velocity:   %d\n", velocity)

	target, err := s.Device.PlanningMode()
	if err != nil {
		return err
	}
	fmt.Printf("Planning mode:      %s\n", tic.PlanningModeName(target))

	stepMode, err := s.Device.StepMode()
	if err != nil {
		return err
	}
	fmt.Printf("Step mode:          %s\n", tic.StepModeName(stepMode))

	voltage, err := s.Device.VinVoltage()
	if err != nil {
		return err
	}
	fmt.Printf("VIN voltage:        %d mV\n", voltage)

	uptime, err := s.Device.Uptime()
	if err != nil {
		return err
	}
	fmt.Printf("Uptime:             %d ms\n", uptime)

	return nil
}

func errorSummary(mask uint32) string {
	names := tic.ErrorNames(mask)
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
