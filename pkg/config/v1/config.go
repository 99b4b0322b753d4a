// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package config

import (
	"github.com/conveyor-sh/conveyor/deployer/pkg/config"

	policyv1 "k8s.io/api/policy/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/pointer"
)

func init() {
	config.AddVersion("v1", version{})
}

type version struct{}

func (v version) Factory() interface{} {
	return &Config{}
}

func (v version) Defaults(in interface{}) error {
	cfg, ok := in.(*Config)
	if !ok {
		return config.ErrInvalidType
	}

	cfg.Metadata.Name = "conveyor"
	cfg.Metadata.Service = "deployer"
	cfg.Repository = "docker.io/conveyorsh"
	cfg.Observability = Observability{
		LogLevel: LogLevelInfo,
	}
	cfg.Database.InCluster = pointer.Bool(true)
	cfg.PgBouncer.Enabled = pointer.Bool(true)
	cfg.PgBouncer.Replicas = 1
	cfg.PgBouncer.MaxClientConnections = 100
	cfg.PgBouncer.PoolSize = 20
	cfg.PgBouncer.PoolMode = PoolModeTransaction
	cfg.PgBouncer.PodDisruptionBudget = PodDisruptionBudget{
		Enabled:      true,
		MinAvailable: &intstr.IntOrString{IntVal: 1},
	}

	return nil
}

// Config defines the v1 version structure of the deployer config file
type Config struct {
	// Metadata establishes the identity of this release
	Metadata Metadata `json:"metadata"`

	Repository string `json:"repository" validate:"required,ascii"`

	Observability Observability `json:"observability"`

	// Labels are applied to every rendered object, on top of the fixed
	// identity labels
	Labels map[string]string `json:"labels,omitempty"`

	// ExtraEnvironment is passed through to rendered containers. Keys that the
	// platform reserves for task-context injection are rejected at validation.
	ExtraEnvironment map[string]string `json:"extraEnvironment,omitempty" validate:"omitempty,task_env"`

	Database Database `json:"database" validate:"required"`

	PgBouncer PgBouncer `json:"pgbouncer"`
}

type Metadata struct {
	// Name of the release; all release-scoped object names derive from it
	Name string `json:"name" validate:"required"`
	// Service identifies what manages the release - it becomes the heritage label
	Service string `json:"service"`
}

type Observability struct {
	LogLevel LogLevel `json:"logLevel" validate:"required,log_level"`
}

type Database struct {
	InCluster *bool             `json:"inCluster,omitempty"`
	External  *DatabaseExternal `json:"external,omitempty"`
}

type DatabaseExternal struct {
	Host        string    `json:"host" validate:"required"`
	Port        int32     `json:"port" validate:"required"`
	Database    string    `json:"database" validate:"required"`
	Credentials ObjectRef `json:"credentials" validate:"required"`
}

type ObjectRef struct {
	Kind ObjectRefKind `json:"kind" validate:"required,objectref_kind"`
	Name string        `json:"name" validate:"required"`
}

type ObjectRefKind string

const (
	ObjectRefSecret ObjectRefKind = "secret"
)

type PgBouncer struct {
	// Enabled controls whether the pooling component is rendered at all
	Enabled *bool `json:"enabled,omitempty"`

	Replicas int32 `json:"replicas,omitempty"`

	MaxClientConnections int32    `json:"maxClientConn,omitempty"`
	PoolSize             int32    `json:"poolSize,omitempty"`
	PoolMode             PoolMode `json:"poolMode,omitempty" validate:"omitempty,pool_mode"`

	// Credentials references a secret holding the userlist.txt auth file
	Credentials *ObjectRef `json:"credentials,omitempty"`

	// Labels are applied to the pgbouncer objects only; they take precedence
	// over the global label set on key collision
	Labels map[string]string `json:"labels,omitempty"`

	PodDisruptionBudget PodDisruptionBudget `json:"podDisruptionBudget"`
}

// PodDisruptionBudget carries the voluntary-disruption constraints for a
// component. Apart from Enabled, the fields are opaque to the renderer: they
// are re-serialized into the budget's spec without validation.
type PodDisruptionBudget struct {
	Enabled bool `json:"enabled"`

	MinAvailable               *intstr.IntOrString                      `json:"minAvailable,omitempty"`
	MaxUnavailable             *intstr.IntOrString                      `json:"maxUnavailable,omitempty"`
	UnhealthyPodEvictionPolicy *policyv1.UnhealthyPodEvictionPolicyType `json:"unhealthyPodEvictionPolicy,omitempty"`
}

type LogLevel string

const (
	LogLevelTrace   LogLevel = "trace"
	LogLevelDebug   LogLevel = "debug"
	LogLevelInfo    LogLevel = "info"
	LogLevelWarning LogLevel = "warning"
	LogLevelError   LogLevel = "error"
)

type PoolMode string

const (
	PoolModeSession     PoolMode = "session"
	PoolModeTransaction PoolMode = "transaction"
	PoolModeStatement   PoolMode = "statement"
)
