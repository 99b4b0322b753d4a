// Copyright (c) 2024 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package helm

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
	"github.com/conveyor-sh/conveyor/deployer/third_party/charts"

	"helm.sh/helm/v3/pkg/action"
	helmchart "helm.sh/helm/v3/pkg/chart"
	"helm.sh/helm/v3/pkg/chart/loader"
	"helm.sh/helm/v3/pkg/cli"
	"helm.sh/helm/v3/pkg/cli/values"
	"helm.sh/helm/v3/pkg/getter"
)

// ImportTemplate renders an embedded chart through the helm engine. The chart
// never touches a cluster: the install runs client-only and dry-run, and only
// the produced manifest is kept.
func ImportTemplate(chart *charts.Chart, templateCfg TemplateConfig, pkgConfig PkgConfig) common.HelmFunc {
	return func(ctx *common.RenderContext) ([]string, error) {
		helmConfig, err := pkgConfig(ctx)
		if err != nil {
			return nil, err
		}
		if helmConfig == nil || !helmConfig.Enabled {
			return nil, nil
		}

		chrt, err := loadChart(chart)
		if err != nil {
			return nil, fmt.Errorf("cannot load %s chart: %w", chart.Name, err)
		}

		valueOpts := helmConfig.Values
		if valueOpts == nil {
			valueOpts = &values.Options{}
		}
		vals, err := valueOpts.MergeValues(getter.All(cli.New()))
		if err != nil {
			return nil, fmt.Errorf("cannot merge %s chart values: %w", chart.Name, err)
		}

		namespace := ctx.Namespace
		if templateCfg.Namespace != "" {
			namespace = templateCfg.Namespace
		}

		install := action.NewInstall(&action.Configuration{})
		install.ReleaseName = ctx.ReleaseName()
		install.Namespace = namespace
		install.DryRun = true
		install.ClientOnly = true
		install.IncludeCRDs = true

		rel, err := install.Run(chrt, vals)
		if err != nil {
			return nil, fmt.Errorf("cannot template %s chart: %w", chart.Name, err)
		}

		manifest := strings.TrimSpace(rel.Manifest)
		if manifest == "" {
			return nil, nil
		}

		return []string{manifest}, nil
	}
}

func loadChart(chart *charts.Chart) (res *helmchart.Chart, err error) {
	var files []*loader.BufferedFile
	err = fs.WalkDir(chart.FS, chart.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(chart.FS, path)
		if err != nil {
			return err
		}

		files = append(files, &loader.BufferedFile{
			Name: strings.TrimPrefix(path, chart.Root+"/"),
			Data: data,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return loader.LoadFiles(files)
}
