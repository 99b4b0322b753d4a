// Copyright (c) 2024 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package pgbouncer

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/common"

	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
)

func networkpolicy(ctx *common.RenderContext) ([]runtime.Object, error) {
	return []runtime.Object{
		&networkingv1.NetworkPolicy{
			TypeMeta: common.TypeMetaNetworkPolicy,
			ObjectMeta: metav1.ObjectMeta{
				Name:      common.QualifiedName(ctx, Component),
				Namespace: ctx.Namespace,
				Labels:    common.DefaultLabels(ctx, Component),
			},
			Spec: networkingv1.NetworkPolicySpec{
				PodSelector: metav1.LabelSelector{MatchLabels: common.SelectorLabels(ctx, Component)},
				PolicyTypes: []networkingv1.PolicyType{networkingv1.PolicyTypeIngress},
				Ingress: []networkingv1.NetworkPolicyIngressRule{{
					// pooling port is open to the release's own pods only
					Ports: []networkingv1.NetworkPolicyPort{{
						Protocol: common.TCPProtocol,
						Port:     &intstr.IntOrString{IntVal: ContainerPort},
					}},
					From: []networkingv1.NetworkPolicyPeer{{
						PodSelector: &metav1.LabelSelector{
							MatchLabels: map[string]string{
								common.LabelTier:    common.AppName,
								common.LabelRelease: ctx.ReleaseName(),
							},
						},
					}},
				}, {
					Ports: []networkingv1.NetworkPolicyPort{{
						Protocol: common.TCPProtocol,
						Port:     &intstr.IntOrString{IntVal: ExporterPort},
					}},
					From: []networkingv1.NetworkPolicyPeer{{
						PodSelector: &metav1.LabelSelector{
							MatchLabels: map[string]string{
								"app": "prometheus",
							},
						},
						NamespaceSelector: &metav1.LabelSelector{},
					}},
				}},
			},
		},
	}, nil
}
