// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package common

import (
	"sort"

	"k8s.io/apimachinery/pkg/runtime"
)

// Kinds occurring earlier in the list get applied before those occurring
// later. Based on Helm's install order.
var sortOrder = []string{
	"Namespace",
	"NetworkPolicy",
	"ResourceQuota",
	"LimitRange",
	"PodDisruptionBudget",
	"ServiceAccount",
	"Secret",
	"ConfigMap",
	"PersistentVolume",
	"PersistentVolumeClaim",
	"ClusterRole",
	"ClusterRoleBinding",
	"Role",
	"RoleBinding",
	"Service",
	"DaemonSet",
	"Pod",
	"ReplicaSet",
	"StatefulSet",
	"Deployment",
	"HorizontalPodAutoscaler",
	"Job",
	"CronJob",
	"Ingress",
}

var kubernetesObjOrder = func() map[string]int {
	res := make(map[string]int, len(sortOrder))
	for i, kind := range sortOrder {
		res[kind] = i - len(sortOrder)
	}
	return res
}()

func DependencySortingRenderFunc(f RenderFunc) RenderFunc {
	return func(ctx *RenderContext) ([]runtime.Object, error) {
		objs, err := f(ctx)
		if err != nil {
			return nil, err
		}

		sort.SliceStable(objs, func(i, j int) bool {
			scoreI := kubernetesObjOrder[objs[i].GetObjectKind().GroupVersionKind().Kind]
			scoreJ := kubernetesObjOrder[objs[j].GetObjectKind().GroupVersionKind().Kind]

			return scoreI < scoreJ
		})

		return objs, nil
	}
}
