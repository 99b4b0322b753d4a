// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package pgbouncer

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/common"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
)

func service(ctx *common.RenderContext) ([]runtime.Object, error) {
	return []runtime.Object{
		&corev1.Service{
			TypeMeta: common.TypeMetaService,
			ObjectMeta: metav1.ObjectMeta{
				Name:      common.QualifiedName(ctx, Component),
				Namespace: ctx.Namespace,
				Labels: common.CustomizeLabel(ctx, Component, common.TypeMetaService, func() map[string]string {
					return ctx.Config.PgBouncer.Labels
				}),
			},
			Spec: corev1.ServiceSpec{
				Type: corev1.ServiceTypeClusterIP,
				Ports: []corev1.ServicePort{{
					Name:       PortName,
					Protocol:   *common.TCPProtocol,
					Port:       ContainerPort,
					TargetPort: intstr.FromString(PortName),
				}, {
					Name:       ExporterName,
					Protocol:   *common.TCPProtocol,
					Port:       ExporterPort,
					TargetPort: intstr.FromString(ExporterName),
				}},
				Selector: common.SelectorLabels(ctx, Component),
			},
		},
	}, nil
}
