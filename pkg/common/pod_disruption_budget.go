// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package common

import (
	"fmt"

	config "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"

	policyv1 "k8s.io/api/policy/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// PodDisruptionBudget emits the budget object constraining voluntary
// evictions of a component's pods. The budget constraints are copied through
// verbatim; whether they are coherent (e.g. minAvailable vs maxUnavailable
// exclusivity) is for the API server to decide, not for the renderer.
//
// The selector is the identity triple and nothing else, so the budget matches
// exactly the component's pods.
func PodDisruptionBudget(ctx *RenderContext, component string, budget config.PodDisruptionBudget, componentLabels map[string]string) *policyv1.PodDisruptionBudget {
	return &policyv1.PodDisruptionBudget{
		TypeMeta: TypeMetaPodDisruptionBudget,
		ObjectMeta: metav1.ObjectMeta{
			Name:      fmt.Sprintf("%s-pdb", QualifiedName(ctx, component)),
			Namespace: ctx.Namespace,
			Labels: CustomizeLabel(ctx, component, TypeMetaPodDisruptionBudget, func() map[string]string {
				return componentLabels
			}),
		},
		Spec: policyv1.PodDisruptionBudgetSpec{
			MinAvailable:               budget.MinAvailable,
			MaxUnavailable:             budget.MaxUnavailable,
			UnhealthyPodEvictionPolicy: budget.UnhealthyPodEvictionPolicy,
			Selector: &metav1.LabelSelector{
				MatchLabels: SelectorLabels(ctx, component),
			},
		},
	}
}
