// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package pgbouncer

import (
	"testing"

	"github.com/stretchr/testify/require"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/pointer"

	configv1 "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"
)

func TestObjectsDisabledRendersNothing(t *testing.T) {
	ctx := newTestContext(t, func(cfg *configv1.Config) {
		cfg.PgBouncer.Enabled = pointer.Bool(false)
	})

	objs, err := Objects(ctx)
	require.NoError(t, err)
	require.Empty(t, objs)
}

func TestObjectsEnabled(t *testing.T) {
	ctx := newTestContext(t, nil)

	objs, err := Objects(ctx)
	require.NoError(t, err)

	kinds := make(map[string]int)
	for _, o := range objs {
		kinds[o.GetObjectKind().GroupVersionKind().Kind]++

		if dep, ok := o.(*appsv1.Deployment); ok {
			require.Equal(t, "docker.io/conveyorsh/pgbouncer:test", dep.Spec.Template.Spec.Containers[0].Image)
			require.Equal(t, "docker.io/conveyorsh/pgbouncer-exporter:test", dep.Spec.Template.Spec.Containers[1].Image)
		}
	}

	require.Equal(t, map[string]int{
		"Secret":              1,
		"Deployment":          1,
		"Service":             1,
		"NetworkPolicy":       1,
		"PodDisruptionBudget": 1,
		"ServiceAccount":      1,
	}, kinds)
}

func TestConfigSecret(t *testing.T) {
	ctx := newTestContext(t, func(cfg *configv1.Config) {
		cfg.PgBouncer.PoolMode = configv1.PoolModeSession
		cfg.PgBouncer.MaxClientConnections = 250
		cfg.PgBouncer.PoolSize = 30
	})

	objs, err := secret(ctx)
	require.NoError(t, err)
	require.Len(t, objs, 1)

	sec := objs[0].(*corev1.Secret)
	require.Equal(t, "demo-pgbouncer-config", sec.Name)

	ini := sec.StringData[iniFileName]
	require.Contains(t, ini, "pool_mode = session")
	require.Contains(t, ini, "max_client_conn = 250")
	require.Contains(t, ini, "default_pool_size = 30")
	require.Contains(t, ini, "listen_port = 6543")
	require.Contains(t, ini, "host=demo-postgresql.test-namespace.svc.cluster.local")
}
