// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package common

import (
	config "github.com/conveyor-sh/conveyor/deployer/pkg/config/v1"
	"github.com/conveyor-sh/conveyor/deployer/pkg/config/versions"

	"helm.sh/helm/v3/pkg/cli/values"
	"k8s.io/apimachinery/pkg/runtime"
)

// RenderFunc turns the config into a set of Kubernetes runtime objects
type RenderFunc func(ctx *RenderContext) ([]runtime.Object, error)

type HelmFunc func(ctx *RenderContext) ([]string, error)

type HelmConfig struct {
	Enabled bool
	Values  *values.Options
}

func CompositeRenderFunc(f ...RenderFunc) RenderFunc {
	return func(ctx *RenderContext) ([]runtime.Object, error) {
		var res []runtime.Object
		for _, g := range f {
			objs, err := g(ctx)
			if err != nil {
				return nil, err
			}
			res = append(res, objs...)
		}
		return res, nil
	}
}

func CompositeHelmFunc(f ...HelmFunc) HelmFunc {
	return func(ctx *RenderContext) ([]string, error) {
		var res []string
		for _, g := range f {
			str, err := g(ctx)
			if err != nil {
				return nil, err
			}
			res = append(res, str...)
		}
		return res, nil
	}
}

// RenderContext carries everything a component needs to emit its objects.
// Rendering is a pure projection of this context: the same context always
// produces the same objects.
type RenderContext struct {
	VersionManifest versions.Manifest
	Config          config.Config
	Namespace       string
}

func NewRenderContext(cfg config.Config, versionManifest versions.Manifest, namespace string) (*RenderContext, error) {
	return &RenderContext{
		Config:          cfg,
		VersionManifest: versionManifest,
		Namespace:       namespace,
	}, nil
}

// ReleaseName is the identity of this deployment within the cluster. All
// release-scoped object names derive from it.
func (ctx *RenderContext) ReleaseName() string {
	return ctx.Config.Metadata.Name
}

// ReleaseService identifies what manages the release; it ends up in the
// heritage label.
func (ctx *RenderContext) ReleaseService() string {
	return ctx.Config.Metadata.Service
}
