// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package config

import (
	"fmt"

	"github.com/conveyor-sh/conveyor/deployer/pkg/cluster"
	"github.com/conveyor-sh/conveyor/deployer/pkg/taskenv"

	"github.com/go-playground/validator/v10"
	"k8s.io/utils/pointer"
)

var LogLevelList = map[LogLevel]struct{}{
	LogLevelTrace:   {},
	LogLevelDebug:   {},
	LogLevelInfo:    {},
	LogLevelWarning: {},
	LogLevelError:   {},
}

var ObjectRefKindList = map[ObjectRefKind]struct{}{
	ObjectRefSecret: {},
}

var PoolModeList = map[PoolMode]struct{}{
	PoolModeSession:     {},
	PoolModeTransaction: {},
	PoolModeStatement:   {},
}

// LoadValidationFuncs load custom validation functions for this version of the config API
func (v version) LoadValidationFuncs(validate *validator.Validate) error {
	funcs := map[string]validator.Func{
		"objectref_kind": func(fl validator.FieldLevel) bool {
			_, ok := ObjectRefKindList[ObjectRefKind(fl.Field().String())]
			return ok
		},
		"log_level": func(fl validator.FieldLevel) bool {
			_, ok := LogLevelList[LogLevel(fl.Field().String())]
			return ok
		},
		"pool_mode": func(fl validator.FieldLevel) bool {
			_, ok := PoolModeList[PoolMode(fl.Field().String())]
			return ok
		},
		"task_env": func(fl validator.FieldLevel) bool {
			env, ok := fl.Field().Interface().(map[string]string)
			if !ok {
				return false
			}
			return taskenv.Validate(env) == nil
		},
	}
	for n, f := range funcs {
		err := validate.RegisterValidation(n, f)
		if err != nil {
			return err
		}
	}

	return nil
}

// ClusterValidation introduces configuration specific cluster validation checks
func (v version) ClusterValidation(rcfg interface{}) cluster.ValidationChecks {
	cfg := rcfg.(*Config)

	var res cluster.ValidationChecks

	if pointer.BoolDeref(cfg.Database.InCluster, false) {
		// the postgresql chart mounts this operator-provided secret; kept in
		// sync with common.InClusterDbSecret naming
		secretName := fmt.Sprintf("%s-postgresql", cfg.Metadata.Name)
		res = append(res, cluster.CheckSecret(secretName, cluster.CheckSecretRequiredData("username", "password")))
	}

	if cfg.Database.External != nil {
		secretName := cfg.Database.External.Credentials.Name
		res = append(res, cluster.CheckSecret(secretName, cluster.CheckSecretRequiredData("username", "password")))
	}

	if pointer.BoolDeref(cfg.PgBouncer.Enabled, false) && cfg.PgBouncer.Credentials != nil {
		res = append(res, cluster.CheckSecret(cfg.PgBouncer.Credentials.Name, cluster.CheckSecretRequiredData("userlist.txt")))
	}

	return res
}
