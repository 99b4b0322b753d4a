// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
	"github.com/conveyor-sh/conveyor/deployer/pkg/components"
	"github.com/conveyor-sh/conveyor/deployer/pkg/config/versions"
)

var renderOpts struct {
	ConfigFN       string
	Namespace      string
	ValidateConfig bool
}

//go:embed versions.yaml
var versionManifest []byte

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Renders the Kubernetes manifests required to install Conveyor",
	Example: `  # Default install.
  conveyor-deployer render

  # Install conveyor into a non-default namespace.
  conveyor-deployer render --namespace conveyor`,
	RunE: func(cmd *cobra.Command, args []string) error {
		yamls, err := renderKubernetesObjects(renderOpts.ConfigFN, renderOpts.Namespace)
		if err != nil {
			return err
		}

		for _, item := range yamls {
			fmt.Println(item)
		}

		return nil
	},
}

func loadVersionManifest() (*versions.Manifest, error) {
	var versionMF versions.Manifest
	err := yaml.Unmarshal(versionManifest, &versionMF)
	if err != nil {
		return nil, err
	}
	return &versionMF, nil
}

func renderKubernetesObjects(cfgFN string, namespace string) ([]string, error) {
	_, cfgVersion, cfg, err := loadConfig(cfgFN)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if renderOpts.ValidateConfig {
		if err = runConfigValidation(cfgVersion, cfg); err != nil {
			return nil, err
		}
	}

	versionMF, err := loadVersionManifest()
	if err != nil {
		return nil, err
	}

	ctx, err := common.NewRenderContext(*cfg, *versionMF, namespace)
	if err != nil {
		return nil, err
	}

	objs, err := common.DependencySortingRenderFunc(components.Objects)(ctx)
	if err != nil {
		return nil, err
	}

	charts, err := components.Helm(ctx)
	if err != nil {
		return nil, err
	}

	output := make([]string, 0, len(objs)+len(charts))
	for _, o := range objs {
		fc, err := yaml.Marshal(o)
		if err != nil {
			return nil, err
		}

		output = append(output, fmt.Sprintf("---\n%s", string(fc)))
	}

	for _, c := range charts {
		output = append(output, fmt.Sprintf("---\n%s", c))
	}

	return output, nil
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.PersistentFlags().StringVarP(&renderOpts.ConfigFN, "config", "c", os.Getenv("CONVEYOR_DEPLOYER_CONFIG"), "path to the config file")
	renderCmd.PersistentFlags().StringVar(&renderOpts.Namespace, "namespace", "default", "namespace to deploy to")
	renderCmd.PersistentFlags().BoolVar(&renderOpts.ValidateConfig, "validate", true, "validate the config before rendering")
}
