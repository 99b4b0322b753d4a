// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package common

// This file exists to break cyclic-dependency errors

const (
	AppName                   = "conveyor"
	ConveyorContainerRegistry = "docker.io/conveyorsh"

	PgBouncerComponent    = "pgbouncer"
	PgBouncerPort         = 6543
	PgBouncerPortName     = "pgbouncer"
	PgBouncerExporterPort = 9127
	PgBouncerExporterName = "metrics"
	PgBouncerConfigMount  = "/etc/pgbouncer"

	DatabaseComponent    = "database"
	DatabasePort         = 5432
	DatabaseName         = "conveyor"
	InClusterDbSecret    = "postgresql"
	InClusterDbComponent = "postgresql"

	DbInitComponent = "db-init"

	LabelTier      = "tier"
	LabelComponent = "component"
	LabelRelease   = "release"
	LabelChart     = "chart"
	LabelHeritage  = "heritage"
)
