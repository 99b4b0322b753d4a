// Copyright (c) 2024 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package common

import (
	"sort"

	"github.com/conveyor-sh/conveyor/deployer/pkg/taskenv"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// CustomizeLabel merges the operator-supplied label sets into the fixed
// identity labels. Global labels apply first, component labels override them
// on collision, and the identity labels always win over both.
func CustomizeLabel(ctx *RenderContext, component string, typeMeta metav1.TypeMeta, existingLabels ...func() map[string]string) map[string]string {
	labels := make(map[string]string)

	for k, v := range ctx.Config.Labels {
		labels[k] = v
	}

	for _, e := range existingLabels {
		for k, v := range e() {
			labels[k] = v
		}
	}

	for k, v := range DefaultLabels(ctx, component) {
		labels[k] = v
	}

	return labels
}

func CustomizeAnnotation(ctx *RenderContext, component string, typeMeta metav1.TypeMeta, existingAnnotations ...func() map[string]string) map[string]string {
	annotations := make(map[string]string)

	for _, e := range existingAnnotations {
		for k, v := range e() {
			annotations[k] = v
		}
	}

	return annotations
}

// CustomizeEnvvar appends the config-supplied extra environment to a
// container's env. The extra environment has already been vetted against the
// reserved task-context keys at config validation time; here it only needs a
// stable order.
func CustomizeEnvvar(ctx *RenderContext, component string, existingEnvvars []corev1.EnvVar) []corev1.EnvVar {
	extra := ctx.Config.ExtraEnvironment
	if len(extra) == 0 {
		return existingEnvvars
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		if taskenv.IsReserved(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	res := existingEnvvars
	for _, k := range keys {
		res = append(res, corev1.EnvVar{Name: k, Value: extra[k]})
	}
	return res
}
