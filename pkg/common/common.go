// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package common

import (
	"fmt"
	"strings"

	config "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"

	"github.com/docker/distribution/reference"
	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/pointer"
)

// DefaultLabels are the fixed identity labels every object of a component
// carries. SelectorLabels is always a subset of this set.
func DefaultLabels(ctx *RenderContext, component string) map[string]string {
	labels := SelectorLabels(ctx, component)
	labels[LabelChart] = fmt.Sprintf("%s-%s", AppName, ctx.VersionManifest.Version)
	labels[LabelHeritage] = ctx.ReleaseService()
	return labels
}

// SelectorLabels is the identity triple used to match a component's pods.
// It must never grow: a disruption budget or service selecting on it has to
// keep selecting exactly the same pods across upgrades.
func SelectorLabels(ctx *RenderContext, component string) map[string]string {
	return map[string]string{
		LabelTier:      AppName,
		LabelComponent: component,
		LabelRelease:   ctx.ReleaseName(),
	}
}

// QualifiedName derives a release-scoped object name for a component.
func QualifiedName(ctx *RenderContext, component string) string {
	return fmt.Sprintf("%s-%s", ctx.ReleaseName(), component)
}

func MergeEnv(envs ...[]corev1.EnvVar) (res []corev1.EnvVar) {
	for _, e := range envs {
		res = append(res, e...)
	}
	return
}

func DefaultEnv(cfg *config.Config) []corev1.EnvVar {
	logLevel := "info"
	if cfg.Observability.LogLevel != "" {
		logLevel = string(cfg.Observability.LogLevel)
	}

	return []corev1.EnvVar{
		{Name: "CONVEYOR_RELEASE", Value: cfg.Metadata.Name},
		{Name: "LOG_LEVEL", Value: strings.ToLower(logLevel)},
	}
}

// DatabaseHost resolves the address pgbouncer and the init job connect to,
// depending on whether the database runs in-cluster.
func DatabaseHost(ctx *RenderContext) string {
	if pointer.BoolDeref(ctx.Config.Database.InCluster, false) {
		return fmt.Sprintf("%s.%s.svc.cluster.local", QualifiedName(ctx, InClusterDbComponent), ctx.Namespace)
	}
	return ctx.Config.Database.External.Host
}

func DatabasePortFor(ctx *RenderContext) int32 {
	if pointer.BoolDeref(ctx.Config.Database.InCluster, false) {
		return DatabasePort
	}
	return ctx.Config.Database.External.Port
}

func DatabaseNameFor(ctx *RenderContext) string {
	if pointer.BoolDeref(ctx.Config.Database.InCluster, false) {
		return DatabaseName
	}
	return ctx.Config.Database.External.Database
}

func DatabaseSecretName(ctx *RenderContext) string {
	if pointer.BoolDeref(ctx.Config.Database.InCluster, false) {
		return QualifiedName(ctx, InClusterDbSecret)
	}
	return ctx.Config.Database.External.Credentials.Name
}

func DatabaseEnv(ctx *RenderContext) []corev1.EnvVar {
	obj := corev1.LocalObjectReference{Name: DatabaseSecretName(ctx)}

	return []corev1.EnvVar{{
		Name:  "DB_HOST",
		Value: DatabaseHost(ctx),
	}, {
		Name:  "DB_PORT",
		Value: fmt.Sprintf("%d", DatabasePortFor(ctx)),
	}, {
		Name:  "DB_NAME",
		Value: DatabaseNameFor(ctx),
	}, {
		Name: "DB_USERNAME",
		ValueFrom: &corev1.EnvVarSource{SecretKeyRef: &corev1.SecretKeySelector{
			LocalObjectReference: obj,
			Key:                  "username",
		}},
	}, {
		Name: "DB_PASSWORD",
		ValueFrom: &corev1.EnvVarSource{SecretKeyRef: &corev1.SecretKeySelector{
			LocalObjectReference: obj,
			Key:                  "password",
		}},
	}}
}

func ImageName(repo, name, tag string) string {
	ref := fmt.Sprintf("%s/%s:%s", strings.TrimSuffix(repo, "/"), name, tag)
	pref, err := reference.ParseNamed(ref)
	if err != nil {
		panic(fmt.Sprintf("cannot parse image ref %s: %v", ref, err))
	}
	if _, ok := pref.(reference.Tagged); !ok {
		panic(fmt.Sprintf("image ref %s has no tag: %v", ref, err))
	}

	return ref
}

func Replicas(ctx *RenderContext, component string) *int32 {
	if component == PgBouncerComponent && ctx.Config.PgBouncer.Replicas > 0 {
		return pointer.Int32(ctx.Config.PgBouncer.Replicas)
	}
	return pointer.Int32(1)
}

var (
	TCPProtocol = func() *corev1.Protocol {
		tcpProtocol := corev1.ProtocolTCP
		return &tcpProtocol
	}()
)

var DeploymentStrategy = appsv1.DeploymentStrategy{
	Type: appsv1.RollingUpdateDeploymentStrategyType,
	RollingUpdate: &appsv1.RollingUpdateDeployment{
		MaxSurge:       &intstr.IntOrString{IntVal: 1},
		MaxUnavailable: &intstr.IntOrString{IntVal: 0},
	},
}

var (
	TypeMetaConfigmap = metav1.TypeMeta{
		APIVersion: "v1",
		Kind:       "ConfigMap",
	}
	TypeMetaSecret = metav1.TypeMeta{
		APIVersion: "v1",
		Kind:       "Secret",
	}
	TypeMetaService = metav1.TypeMeta{
		APIVersion: "v1",
		Kind:       "Service",
	}
	TypeMetaServiceAccount = metav1.TypeMeta{
		APIVersion: "v1",
		Kind:       "ServiceAccount",
	}
	TypeMetaPod = metav1.TypeMeta{
		APIVersion: "v1",
		Kind:       "Pod",
	}
	TypeMetaDeployment = metav1.TypeMeta{
		APIVersion: "apps/v1",
		Kind:       "Deployment",
	}
	TypeMetaBatchJob = metav1.TypeMeta{
		APIVersion: "batch/v1",
		Kind:       "Job",
	}
	TypeMetaNetworkPolicy = metav1.TypeMeta{
		APIVersion: "networking.k8s.io/v1",
		Kind:       "NetworkPolicy",
	}
	TypeMetaPodDisruptionBudget = metav1.TypeMeta{
		APIVersion: "policy/v1",
		Kind:       "PodDisruptionBudget",
	}
)
