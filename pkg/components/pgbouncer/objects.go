// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package pgbouncer

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/common"

	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/pointer"
)

// Objects renders the pooling component. A disabled component renders
// nothing at all - no objects in a disabled state.
func Objects(ctx *common.RenderContext) ([]runtime.Object, error) {
	if !pointer.BoolDeref(ctx.Config.PgBouncer.Enabled, false) {
		return nil, nil
	}

	return common.CompositeRenderFunc(
		secret,
		deployment,
		service,
		networkpolicy,
		pdb,
		common.DefaultServiceAccount(Component),
	)(ctx)
}
