// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package pgbouncer

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/common"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/pointer"
)

// pdb constrains voluntary evictions of the pooling pods. It is only emitted
// when both the component and the budget feature are enabled; in every other
// case the render output stays empty.
func pdb(ctx *common.RenderContext) ([]runtime.Object, error) {
	cfg := ctx.Config.PgBouncer
	if !pointer.BoolDeref(cfg.Enabled, false) || !cfg.PodDisruptionBudget.Enabled {
		return nil, nil
	}

	return []runtime.Object{
		common.PodDisruptionBudget(ctx, Component, cfg.PodDisruptionBudget, cfg.Labels),
	}, nil
}
