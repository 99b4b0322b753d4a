// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package pgbouncer

import (
	"fmt"
	"strings"

	"github.com/conveyor-sh/conveyor/deployer/pkg/common"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

func secret(ctx *common.RenderContext) ([]runtime.Object, error) {
	cfg := ctx.Config.PgBouncer

	ini := strings.Join([]string{
		"[databases]",
		fmt.Sprintf("%s = host=%s port=%d dbname=%s",
			common.DatabaseNameFor(ctx),
			common.DatabaseHost(ctx),
			common.DatabasePortFor(ctx),
			common.DatabaseNameFor(ctx),
		),
		"",
		"[pgbouncer]",
		"listen_addr = 0.0.0.0",
		fmt.Sprintf("listen_port = %d", ContainerPort),
		"unix_socket_dir =",
		fmt.Sprintf("auth_file = %s/%s", common.PgBouncerConfigMount, userlistFileName),
		"auth_type = scram-sha-256",
		fmt.Sprintf("pool_mode = %s", cfg.PoolMode),
		fmt.Sprintf("max_client_conn = %d", cfg.MaxClientConnections),
		fmt.Sprintf("default_pool_size = %d", cfg.PoolSize),
		// extra_float_digits is sent by some client drivers and harmless
		"ignore_startup_parameters = extra_float_digits",
		"",
	}, "\n")

	return []runtime.Object{
		&corev1.Secret{
			TypeMeta: common.TypeMetaSecret,
			ObjectMeta: metav1.ObjectMeta{
				Name:      configSecretName(ctx),
				Namespace: ctx.Namespace,
				Labels: common.CustomizeLabel(ctx, Component, common.TypeMetaSecret, func() map[string]string {
					return cfg.Labels
				}),
			},
			StringData: map[string]string{
				iniFileName: ini,
			},
		},
	}, nil
}

func configSecretName(ctx *common.RenderContext) string {
	return fmt.Sprintf("%s-config", common.QualifiedName(ctx, Component))
}

// authSecretName is where the userlist.txt auth file comes from. The secret
// is operator-provided; rendering never sees credential material.
func authSecretName(ctx *common.RenderContext) string {
	if ctx.Config.PgBouncer.Credentials != nil {
		return ctx.Config.PgBouncer.Credentials.Name
	}
	return fmt.Sprintf("%s-auth", common.QualifiedName(ctx, Component))
}
