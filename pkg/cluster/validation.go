// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cluster

import (
	"context"

	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth" // https://github.com/kubernetes/client-go/issues/242
	"k8s.io/client-go/rest"
)

type ValidationStatus string

const (
	ValidationStatusOk      ValidationStatus = "OK"
	ValidationStatusError   ValidationStatus = "ERROR"
	ValidationStatusWarning ValidationStatus = "WARNING"
)

type ValidationError struct {
	Message string           `json:"message"`
	Type    ValidationStatus `json:"type"`
}

type ValidationCheck struct {
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Check       ValidationCheckFunc `json:"-"`
}

type ValidationCheckFunc func(ctx context.Context, client kubernetes.Interface, namespace string) ([]ValidationError, error)

type ValidationItem struct {
	ValidationCheck
	Status ValidationStatus  `json:"status"`
	Errors []ValidationError `json:"errors,omitempty"` // Only populated if present
}

type ValidationResult struct {
	Status ValidationStatus `json:"status"`
	Items  []ValidationItem `json:"items"`
}

// ClusterChecks are checks against a cluster, independent of configuration
var ClusterChecks = ValidationChecks{
	{
		Name:        "Kubernetes version",
		Description: "the cluster server version satisfies " + serverVersionConstraint,
		Check:       checkServerVersion,
	},
}

// ValidationChecks are a group of validations
type ValidationChecks []ValidationCheck

func (v ValidationChecks) Len() int { return len(v) }

// Validate runs the checks
func (checks ValidationChecks) Validate(ctx context.Context, config *rest.Config, namespace string) (*ValidationResult, error) {
	results := &ValidationResult{
		Status: ValidationStatusOk,
		Items:  []ValidationItem{},
	}

	client, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, err
	}

	for _, check := range checks {
		result := ValidationItem{
			ValidationCheck: check,
			Status:          ValidationStatusOk,
			Errors:          []ValidationError{},
		}

		res, err := check.Check(ctx, client, namespace)
		if err != nil {
			return nil, err
		}
		for _, resultErr := range res {
			switch resultErr.Type {
			case ValidationStatusError:
				// Any error always changes status
				result.Status = ValidationStatusError
				results.Status = ValidationStatusError
			case ValidationStatusWarning:
				// Only put to warning if status is ok
				if result.Status == ValidationStatusOk {
					result.Status = ValidationStatusWarning
				}
				if results.Status == ValidationStatusOk {
					results.Status = ValidationStatusWarning
				}
			}

			result.Errors = append(result.Errors, resultErr)
		}

		results.Items = append(results.Items, result)
	}

	return results, nil
}
