// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package versions

type Manifest struct {
	Version    string     `json:"version"`
	Components Components `json:"components"`
}

type Versioned struct {
	Version string `json:"version"`
}

type Components struct {
	PgBouncer         Versioned `json:"pgbouncer"`
	PgBouncerExporter Versioned `json:"pgbouncerExporter"`
	DbInit            Versioned `json:"dbInit"`
}
