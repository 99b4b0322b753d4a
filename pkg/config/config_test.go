// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"k8s.io/utils/pointer"

	"github.com/conveyor-sh/conveyor/deployer/pkg/config"
	configv1 "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"
)

func TestNewDefaultConfig(t *testing.T) {
	raw, err := config.NewDefaultConfig()
	require.NoError(t, err)

	cfg, ok := raw.(*configv1.Config)
	require.True(t, ok)

	require.Equal(t, "conveyor", cfg.Metadata.Name)
	require.Equal(t, "deployer", cfg.Metadata.Service)
	require.Equal(t, configv1.LogLevelInfo, cfg.Observability.LogLevel)
	require.Equal(t, pointer.Bool(true), cfg.Database.InCluster)
	require.Equal(t, pointer.Bool(true), cfg.PgBouncer.Enabled)
	require.True(t, cfg.PgBouncer.PodDisruptionBudget.Enabled)
	require.NotNil(t, cfg.PgBouncer.PodDisruptionBudget.MinAvailable)
}

func TestLoadBytes(t *testing.T) {
	tests := []struct {
		Name      string
		Input     string
		ExpectErr bool
	}{
		{
			Name: "valid v1 config",
			Input: `apiVersion: v1
metadata:
  name: demo
repository: docker.io/conveyorsh
pgbouncer:
  maxClientConn: 200
`,
		},
		{
			Name: "unknown version",
			Input: `apiVersion: v0
metadata:
  name: demo
`,
			ExpectErr: true,
		},
		{
			Name:      "missing version",
			Input:     `metadata: {name: demo}`,
			ExpectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			raw, version, err := config.LoadBytes([]byte(test.Input))
			if test.ExpectErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Equal(t, "v1", version)

			cfg, ok := raw.(*configv1.Config)
			require.True(t, ok)
			require.Equal(t, "demo", cfg.Metadata.Name)
			require.Equal(t, int32(200), cfg.PgBouncer.MaxClientConnections)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	raw, err := config.NewDefaultConfig()
	require.NoError(t, err)

	fc, err := config.Marshal(config.CurrentVersion, raw)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(fc), "apiVersion: v1\n"))

	reloaded, version, err := config.LoadBytes(fc)
	require.NoError(t, err)
	require.Equal(t, config.CurrentVersion, version)
	require.Equal(t, raw, reloaded)
}

func TestValidate(t *testing.T) {
	version, err := config.LoadConfigVersion(config.CurrentVersion)
	require.NoError(t, err)

	t.Run("default config is valid", func(t *testing.T) {
		raw, err := config.NewDefaultConfig()
		require.NoError(t, err)

		fieldErrs, err := config.Validate(version, raw)
		require.NoError(t, err)
		require.Empty(t, fieldErrs)
	})

	t.Run("reserved environment key is rejected", func(t *testing.T) {
		raw, err := config.NewDefaultConfig()
		require.NoError(t, err)

		cfg := raw.(*configv1.Config)
		cfg.ExtraEnvironment = map[string]string{"dag_id": "override"}

		fieldErrs, err := config.Validate(version, raw)
		require.NoError(t, err)
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "task_env", fieldErrs[0].Tag())
	})

	t.Run("invalid pool mode is rejected", func(t *testing.T) {
		raw, err := config.NewDefaultConfig()
		require.NoError(t, err)

		cfg := raw.(*configv1.Config)
		cfg.PgBouncer.PoolMode = "pipelined"

		fieldErrs, err := config.Validate(version, raw)
		require.NoError(t, err)
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "pool_mode", fieldErrs[0].Tag())
	})

	t.Run("missing repository is rejected", func(t *testing.T) {
		raw, err := config.NewDefaultConfig()
		require.NoError(t, err)

		cfg := raw.(*configv1.Config)
		cfg.Repository = ""

		fieldErrs, err := config.Validate(version, raw)
		require.NoError(t, err)
		require.Len(t, fieldErrs, 1)
		require.Equal(t, "required", fieldErrs[0].Tag())
	})
}
