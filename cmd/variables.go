// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var variablesCmd = &cobra.Command{
	Use:   "variables [name]",
	Short: "Read the controller's variables",
	Long: `Read and display the controller's variables as YAML.

With no argument, reads the whole variable set. With a name argument,
reads that single variable. Variable names match the Tic user's guide,
lowercased with underscores (e.g. current_position, vin_voltage).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVariables,
}

func init() {
	rootCmd.AddCommand(variablesCmd)
}

func runVariables(cmd *cobra.Command, args []string) error {
	s, err := OpenSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		v, err := s.Device.ReadVariable(args[0])
		if err != nil {
			return err
		}
		return dumpYAML(map[string]interface{}{args[0]: v})
	}

	vars, err := s.Device.Variables()
	if err != nil {
		return err
	}
	return dumpYAML(vars)
}

func dumpYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	defer enc.Close()
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %v", err)
	}
	return nil
}
