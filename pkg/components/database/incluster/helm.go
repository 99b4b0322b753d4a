// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package incluster

import (
	"fmt"
	"sort"

	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
	"github.com/conveyor-sh/conveyor/deployer/pkg/helm"
	"github.com/conveyor-sh/conveyor/deployer/third_party/charts"

	"helm.sh/helm/v3/pkg/cli/values"
	"k8s.io/utils/pointer"
)

// chartValues builds the --set values handed to the postgresql chart. The
// identity labels ride along as commonLabels so chart-rendered objects carry
// the same label set as the natively rendered ones. Keys are sorted to keep
// the render deterministic.
func chartValues(ctx *common.RenderContext) []string {
	vals := []string{
		helm.KeyValue("auth.database", common.DatabaseName),
		helm.KeyValue("auth.existingSecret", common.DatabaseSecretName(ctx)),
	}

	labels := helm.DefaultLabels(ctx, common.InClusterDbComponent)
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals = append(vals, helm.KeyValue(fmt.Sprintf("commonLabels.%s", k), labels[k]))
	}

	return vals
}

var Helm = common.CompositeHelmFunc(
	helm.ImportTemplate(charts.PostgreSQL(), helm.TemplateConfig{}, func(ctx *common.RenderContext) (*common.HelmConfig, error) {
		return &common.HelmConfig{
			Enabled: pointer.BoolDeref(ctx.Config.Database.InCluster, false),
			Values: &values.Options{
				Values: chartValues(ctx),
			},
		}, nil
	}),
)
