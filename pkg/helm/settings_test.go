// Copyright (c) 2024 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package helm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
	configv1 "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"
	"github.com/conveyor-sh/conveyor/deployer/pkg/config/versions"
	"github.com/conveyor-sh/conveyor/deployer/pkg/helm"
)

func TestDefaultLabels(t *testing.T) {
	ctx, err := common.NewRenderContext(configv1.Config{
		Metadata: configv1.Metadata{
			Name:    "demo",
			Service: "deployer",
		},
	}, versions.Manifest{Version: "1.2.3"}, "test-namespace")
	require.NoError(t, err)

	require.Equal(t, map[string]string{
		"tier":      "conveyor",
		"component": "pgbouncer",
		"release":   "demo",
		"chart":     "conveyor-1.2.3",
		"heritage":  "deployer",
	}, helm.DefaultLabels(ctx, common.PgBouncerComponent))
}

func TestKeyValue(t *testing.T) {
	require.Equal(t, "auth.database=conveyor", helm.KeyValue("auth.database", "conveyor"))
}
