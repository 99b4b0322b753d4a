// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/utils/pointer"

	"github.com/conveyor-sh/conveyor/deployer/pkg/config"
	configv1 "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"
)

func writeConfig(t *testing.T, mod func(cfg *configv1.Config)) string {
	t.Helper()

	raw, err := config.NewDefaultConfig()
	require.NoError(t, err)

	cfg := raw.(*configv1.Config)
	cfg.Metadata.Name = "demo"
	cfg.Database.InCluster = pointer.Bool(false)
	cfg.Database.External = &configv1.DatabaseExternal{
		Host:     "db.example.com",
		Port:     5432,
		Database: "conveyor",
		Credentials: configv1.ObjectRef{
			Kind: configv1.ObjectRefSecret,
			Name: "db-credentials",
		},
	}
	if mod != nil {
		mod(cfg)
	}

	fc, err := config.Marshal(config.CurrentVersion, raw)
	require.NoError(t, err)

	fn := filepath.Join(t.TempDir(), "conveyor.config.yaml")
	require.NoError(t, os.WriteFile(fn, fc, 0644))

	return fn
}

func TestRenderKubernetesObjects(t *testing.T) {
	fn := writeConfig(t, nil)

	yamls, err := renderKubernetesObjects(fn, "test-namespace")
	require.NoError(t, err)
	require.NotEmpty(t, yamls)

	rendered := strings.Join(yamls, "\n")
	require.Contains(t, rendered, "kind: PodDisruptionBudget")
	require.Contains(t, rendered, "name: demo-pgbouncer-pdb")
	require.Contains(t, rendered, "kind: Deployment")
	require.Contains(t, rendered, "kind: Job")
}

func TestRenderPoolingDisabled(t *testing.T) {
	fn := writeConfig(t, func(cfg *configv1.Config) {
		cfg.PgBouncer.Enabled = pointer.Bool(false)
	})

	yamls, err := renderKubernetesObjects(fn, "test-namespace")
	require.NoError(t, err)

	rendered := strings.Join(yamls, "\n")
	require.NotContains(t, rendered, "pgbouncer")
}

func TestRenderBudgetDisabled(t *testing.T) {
	fn := writeConfig(t, func(cfg *configv1.Config) {
		cfg.PgBouncer.PodDisruptionBudget.Enabled = false
	})

	yamls, err := renderKubernetesObjects(fn, "test-namespace")
	require.NoError(t, err)

	rendered := strings.Join(yamls, "\n")
	require.NotContains(t, rendered, "kind: PodDisruptionBudget")
	require.Contains(t, rendered, "kind: Deployment")
}
