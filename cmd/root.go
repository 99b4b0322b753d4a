// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/conveyor-sh/conveyor/deployer/pkg/config"
	configv1 "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"
)

var rootOpts struct {
	Debug       bool
	Kubeconfig  string
	KubeContext string
	Namespace   string
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "conveyor-deployer",
	Short: "Renders and validates the Kubernetes manifests of a Conveyor deployment",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if rootOpts.Debug {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&rootOpts.Kubeconfig, "kubeconfig", "", "Path to the kubeconfig file")
	rootCmd.PersistentFlags().StringVar(&rootOpts.KubeContext, "kube-context", "", "Name of the kubeconfig context to use")
	rootCmd.PersistentFlags().StringVarP(&rootOpts.Namespace, "namespace", "n", "default", "Namespace to deploy to")
}

// loadConfig reads the config file and returns it both as the raw versioned
// interface and as the concrete current-version struct.
func loadConfig(cfgFN string) (rawCfg interface{}, cfgVersion string, cfg *configv1.Config, err error) {
	rawCfg, cfgVersion, err = config.Load(cfgFN)
	if err != nil {
		return nil, "", nil, err
	}

	cfg, ok := rawCfg.(*configv1.Config)
	if !ok {
		return nil, "", nil, config.ErrInvalidType
	}

	return rawCfg, cfgVersion, cfg, nil
}
