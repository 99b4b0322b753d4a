// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/utils/pointer"
)

func TestClusterValidation(t *testing.T) {
	tests := []struct {
		Name       string
		Config     *Config
		CheckNames []string
	}{
		{
			Name: "in-cluster database",
			Config: &Config{
				Metadata: Metadata{Name: "demo"},
				Database: Database{InCluster: pointer.Bool(true)},
			},
			CheckNames: []string{"demo-postgresql is present and valid"},
		},
		{
			Name: "external database",
			Config: &Config{
				Metadata: Metadata{Name: "demo"},
				Database: Database{
					InCluster: pointer.Bool(false),
					External: &DatabaseExternal{
						Host:     "db.example.com",
						Port:     5432,
						Database: "conveyor",
						Credentials: ObjectRef{
							Kind: ObjectRefSecret,
							Name: "db-credentials",
						},
					},
				},
			},
			CheckNames: []string{"db-credentials is present and valid"},
		},
		{
			Name: "in-cluster database with pgbouncer auth secret",
			Config: &Config{
				Metadata: Metadata{Name: "demo"},
				Database: Database{InCluster: pointer.Bool(true)},
				PgBouncer: PgBouncer{
					Enabled: pointer.Bool(true),
					Credentials: &ObjectRef{
						Kind: ObjectRefSecret,
						Name: "pgbouncer-auth",
					},
				},
			},
			CheckNames: []string{
				"demo-postgresql is present and valid",
				"pgbouncer-auth is present and valid",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			checks := version{}.ClusterValidation(test.Config)

			var names []string
			for _, c := range checks {
				names = append(names, c.Name)
			}
			require.Equal(t, test.CheckNames, names)
		})
	}
}
