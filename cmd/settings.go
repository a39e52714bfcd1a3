// SPDX-License-Identifier: BSD-2-Clause
// Copyright (c) 2021, Julien Phalip

package cmd

import (
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [name]",
	Short: "Read the controller's non-volatile settings",
	Long: `Read and display the controller's non-volatile settings as YAML.

With no argument, reads the whole setting set. With a name argument,
reads that single setting. Setting names match the Tic user's guide,
lowercased with underscores (e.g. control_mode, max_speed).

Settings are read-only here; use the vendor's configuration utility to
change them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettings,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettings(cmd *cobra.Command, args []string) error {
	s, err := OpenSession()
	if err != nil {
		return err
	}
	defer s.Close()

	if len(args) == 1 {
		v, err := s.Device.Settings.Read(args[0])
		if err != nil {
			return err
		}
		return dumpYAML(map[string]interface{}{args[0]: v})
	}

	settings, err := s.Device.Settings.All()
	if err != nil {
		return err
	}
	return dumpYAML(settings)
}
