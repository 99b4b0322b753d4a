// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/client-go/tools/clientcmd"
	"sigs.k8s.io/yaml"

	"github.com/conveyor-sh/conveyor/deployer/pkg/cluster"
	"github.com/conveyor-sh/conveyor/deployer/pkg/config"
)

var validateClusterOpts struct {
	ConfigFN string
}

// validateClusterCmd represents the validate cluster command
var validateClusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Validate the target cluster is ready for a Conveyor deployment",
	Long: `Validate the target cluster is ready for a Conveyor deployment

Runs a series of checks against the cluster pointed to by the
kubeconfig. If a config file is given, its configuration-specific
checks are run as well, such as the presence and shape of
operator-provided secrets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		checks := cluster.ClusterChecks

		if validateClusterOpts.ConfigFN != "" {
			rawCfg, cfgVersion, _, err := loadConfig(validateClusterOpts.ConfigFN)
			if err != nil {
				return err
			}

			apiVersion, err := config.LoadConfigVersion(cfgVersion)
			if err != nil {
				return err
			}

			checks = append(checks, apiVersion.ClusterValidation(rawCfg)...)
		}

		loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
		if rootOpts.Kubeconfig != "" {
			loadingRules.ExplicitPath = rootOpts.Kubeconfig
		}

		clientCfg := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
			loadingRules,
			&clientcmd.ConfigOverrides{CurrentContext: rootOpts.KubeContext},
		)

		restCfg, err := clientCfg.ClientConfig()
		if err != nil {
			return err
		}

		result, err := checks.Validate(cmd.Context(), restCfg, rootOpts.Namespace)
		if err != nil {
			return err
		}

		fc, err := yaml.Marshal(result)
		if err != nil {
			return err
		}

		fmt.Println(string(fc))

		if result.Status == cluster.ValidationStatusError {
			return fmt.Errorf("cluster validation failed")
		}

		return nil
	},
}

func init() {
	validateCmd.AddCommand(validateClusterCmd)

	validateClusterCmd.PersistentFlags().StringVarP(&validateClusterOpts.ConfigFN, "config", "c", os.Getenv("CONVEYOR_DEPLOYER_CONFIG"), "path to the config file")
}
