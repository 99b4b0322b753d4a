// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package incluster

import (
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/utils/pointer"

	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
	configv1 "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"
	"github.com/conveyor-sh/conveyor/deployer/pkg/config/versions"
)

func TestChartValues(t *testing.T) {
	ctx, err := common.NewRenderContext(configv1.Config{
		Metadata: configv1.Metadata{
			Name:    "demo",
			Service: "deployer",
		},
		Database: configv1.Database{InCluster: pointer.Bool(true)},
	}, versions.Manifest{Version: "1.2.3"}, "test-namespace")
	require.NoError(t, err)

	require.Equal(t, []string{
		"auth.database=conveyor",
		"auth.existingSecret=demo-postgresql",
		"commonLabels.chart=conveyor-1.2.3",
		"commonLabels.component=postgresql",
		"commonLabels.heritage=deployer",
		"commonLabels.release=demo",
		"commonLabels.tier=conveyor",
	}, chartValues(ctx))
}
