// Copyright (c) 2024 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

// Package taskenv implements the contract for user-supplied environment
// variables injected into task execution: a plain string-to-string
// pass-through, except for the keys the platform itself populates with
// task-context values. Those keys are reserved and cannot be overridden.
package taskenv

import (
	"fmt"
	"sort"
	"strings"
)

var reserved = map[string]struct{}{
	"dag_id":         {},
	"task_id":        {},
	"execution_date": {},
	"dag_run_id":     {},
	"dag_owner":      {},
	"dag_email":      {},
}

// IsReserved reports whether key is populated by the platform at task
// execution time.
func IsReserved(key string) bool {
	_, ok := reserved[key]
	return ok
}

// Reserved returns the reserved key names in stable order.
func Reserved() []string {
	res := make([]string, 0, len(reserved))
	for k := range reserved {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Validate checks a user-supplied environment map against the reserved keys.
// A collision is rejected rather than silently dropped so the operator learns
// about it at render time, not at task runtime.
func Validate(env map[string]string) error {
	var collisions []string
	for k := range env {
		if IsReserved(k) {
			collisions = append(collisions, k)
		}
	}
	if len(collisions) > 0 {
		sort.Strings(collisions)
		return fmt.Errorf("environment overrides reserved task-context keys: %s", strings.Join(collisions, ", "))
	}
	return nil
}

// Merge layers a user-supplied environment over a base environment. User keys
// win over base keys, except reserved keys which may only come from base.
func Merge(base, user map[string]string) (map[string]string, error) {
	if err := Validate(user); err != nil {
		return nil, err
	}

	res := make(map[string]string, len(base)+len(user))
	for k, v := range base {
		res[k] = v
	}
	for k, v := range user {
		res[k] = v
	}
	return res, nil
}
