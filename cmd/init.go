// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conveyor-sh/conveyor/deployer/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a base config file",
	Long: `Create a base config file

This file contains all the options of a Conveyor deployment,
filled in with their defaults, and can be saved to a repository.`,
	Example: `  # Save config to conveyor.config.yaml.
  conveyor-deployer init > conveyor.config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.NewDefaultConfig()
		if err != nil {
			return err
		}

		fc, err := config.Marshal(config.CurrentVersion, cfg)
		if err != nil {
			return err
		}

		fmt.Print(string(fc))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
