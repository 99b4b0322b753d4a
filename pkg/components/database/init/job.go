// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

// This bootstraps the platform schema once the database answers

package init

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/common"

	batchv1 "k8s.io/api/batch/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/utils/pointer"
)

const Component = common.DbInitComponent

func job(ctx *common.RenderContext) ([]runtime.Object, error) {
	objectMeta := metav1.ObjectMeta{
		Name:      common.QualifiedName(ctx, Component),
		Namespace: ctx.Namespace,
		Labels:    common.DefaultLabels(ctx, Component),
	}

	return []runtime.Object{&batchv1.Job{
		TypeMeta:   common.TypeMetaBatchJob,
		ObjectMeta: objectMeta,
		Spec: batchv1.JobSpec{
			TTLSecondsAfterFinished: pointer.Int32(60),
			BackoffLimit:            pointer.Int32(10),
			Template: corev1.PodTemplateSpec{
				ObjectMeta: objectMeta,
				Spec: corev1.PodSpec{
					RestartPolicy:      corev1.RestartPolicyOnFailure,
					ServiceAccountName: common.QualifiedName(ctx, Component),
					EnableServiceLinks: pointer.Bool(false),
					Containers: []corev1.Container{{
						Name:            Component,
						Image:           common.ImageName(ctx.Config.Repository, Component, ctx.VersionManifest.Components.DbInit.Version),
						ImagePullPolicy: corev1.PullIfNotPresent,
						Env: common.CustomizeEnvvar(ctx, Component, common.MergeEnv(
							common.DefaultEnv(&ctx.Config),
							common.DatabaseEnv(ctx),
						)),
						Args: []string{"bootstrap"},
					}},
				},
			},
		},
	}}, nil
}

func Objects(ctx *common.RenderContext) ([]runtime.Object, error) {
	return common.CompositeRenderFunc(
		job,
		common.DefaultServiceAccount(Component),
	)(ctx)
}
