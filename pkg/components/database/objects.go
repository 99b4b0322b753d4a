// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package database

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
	"github.com/conveyor-sh/conveyor/deployer/pkg/components/database/incluster"
	dbinit "github.com/conveyor-sh/conveyor/deployer/pkg/components/database/init"
)

var Objects = common.CompositeRenderFunc(
	dbinit.Objects,
)

var Helm = common.CompositeHelmFunc(
	incluster.Helm,
)
