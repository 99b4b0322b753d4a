// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package pgbouncer

import "github.com/conveyor-sh/conveyor/deployer/pkg/common"

const (
	Component = common.PgBouncerComponent

	ContainerPort = common.PgBouncerPort
	PortName      = common.PgBouncerPortName
	ExporterPort  = common.PgBouncerExporterPort
	ExporterName  = common.PgBouncerExporterName

	pgbouncerImage = "pgbouncer"
	exporterImage  = "pgbouncer-exporter"

	iniFileName      = "pgbouncer.ini"
	userlistFileName = "userlist.txt"
	configVolume     = "pgbouncer-config"
)
