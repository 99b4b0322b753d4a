// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/conveyor-sh/conveyor/deployer/pkg/config"
)

var validateConfigOpts struct {
	ConfigFN string
}

// validateConfigCmd represents the validate config command
var validateConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Validate the deployment configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if validateConfigOpts.ConfigFN == "" {
			return fmt.Errorf("missing --config")
		}

		_, cfgVersion, cfg, err := loadConfig(validateConfigOpts.ConfigFN)
		if err != nil {
			return err
		}

		return runConfigValidation(cfgVersion, cfg)
	},
}

// runConfigValidation prints any validation errors and fails if there are any.
// It is silent if everything is fine.
func runConfigValidation(version string, cfg interface{}) error {
	apiVersion, err := config.LoadConfigVersion(version)
	if err != nil {
		return err
	}

	fieldErrs, err := config.Validate(apiVersion, cfg)
	if err != nil {
		return err
	}

	for _, fieldErr := range fieldErrs {
		logrus.Errorf("field %s failed validation: %s", fieldErr.Namespace(), fieldErr.Tag())
	}

	if len(fieldErrs) > 0 {
		return fmt.Errorf("configuration invalid")
	}

	return nil
}

func init() {
	validateCmd.AddCommand(validateConfigCmd)

	validateConfigCmd.PersistentFlags().StringVarP(&validateConfigOpts.ConfigFN, "config", "c", os.Getenv("CONVEYOR_DEPLOYER_CONFIG"), "path to the config file")
}
