// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package components

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
	"github.com/conveyor-sh/conveyor/deployer/pkg/components/database"
	"github.com/conveyor-sh/conveyor/deployer/pkg/components/pgbouncer"
)

var Objects = common.CompositeRenderFunc(
	pgbouncer.Objects,
	database.Objects,
)

var Helm = common.CompositeHelmFunc(
	database.Helm,
)
