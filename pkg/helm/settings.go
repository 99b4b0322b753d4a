// Copyright (c) 2024 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package helm

import (
	"fmt"
	"strings"

	"github.com/conveyor-sh/conveyor/deployer/pkg/common"
)

// TemplateConfig allows a chart import to deviate from the render defaults
type TemplateConfig struct {
	// Namespace overrides the render context namespace for this chart
	Namespace string
}

type PkgConfig func(ctx *common.RenderContext) (*common.HelmConfig, error)

// DefaultLabels escapes any dots in the key so the labels survive being
// passed as helm --set values
func DefaultLabels(ctx *common.RenderContext, component string) map[string]string {
	labels := map[string]string{}

	for k, v := range common.DefaultLabels(ctx, component) {
		labels[strings.Replace(k, ".", "\\.", -1)] = v
	}

	return labels
}

// KeyValue ensure that a key/value pair is correctly formatted for Values
func KeyValue(key string, value string) string {
	return fmt.Sprintf("%s=%s", key, value)
}
