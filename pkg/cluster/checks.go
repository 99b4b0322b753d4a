// Copyright (c) 2023 Conveyor Technologies Ltd. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package cluster

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	corev1 "k8s.io/api/core/v1"
	kerrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// policy/v1 PodDisruptionBudgets require 1.21; stay a little ahead of that
const serverVersionConstraint = ">= 1.24.0-0"

// checkServerVersion checks the cluster is running a supported Kubernetes version
func checkServerVersion(ctx context.Context, client kubernetes.Interface, _ string) ([]ValidationError, error) {
	constraint, err := semver.NewConstraint(serverVersionConstraint)
	if err != nil {
		return nil, err
	}

	info, err := client.Discovery().ServerVersion()
	if err != nil {
		return []ValidationError{{
			Message: err.Error(),
			Type:    ValidationStatusError,
		}}, nil
	}

	// Some providers suffix the git version with vendor details
	gitVersion := strings.TrimPrefix(info.GitVersion, "v")
	version, err := semver.NewVersion(gitVersion)
	if err != nil {
		// Non-semver server version - user must decide
		return []ValidationError{{
			Message: err.Error() + " server version: " + gitVersion,
			Type:    ValidationStatusWarning,
		}}, nil
	}

	if !constraint.Check(version) {
		return []ValidationError{{
			Message: fmt.Sprintf("server version %s does not satisfy %s", gitVersion, serverVersionConstraint),
			Type:    ValidationStatusError,
		}}, nil
	}

	return nil, nil
}

// CheckSecret produces a new check for an in-cluster secret
func CheckSecret(name string, validators ...SecretValidator) ValidationCheck {
	return ValidationCheck{
		Name:        name + " is present and valid",
		Description: "ensures the " + name + " secret is present and contains the required data",
		Check: func(ctx context.Context, client kubernetes.Interface, namespace string) ([]ValidationError, error) {
			secret, err := client.CoreV1().Secrets(namespace).Get(ctx, name, metav1.GetOptions{})
			if kerrors.IsNotFound(err) {
				return []ValidationError{{
					Message: "secret " + name + " not found",
					Type:    ValidationStatusError,
				}}, nil
			} else if err != nil {
				return nil, err
			}

			var res []ValidationError
			for _, v := range validators {
				vres, err := v(secret)
				if err != nil {
					return nil, err
				}
				res = append(res, vres...)
			}
			return res, nil
		},
	}
}

type SecretValidator func(s *corev1.Secret) ([]ValidationError, error)

// CheckSecretRequiredData ensures a secret contains the given data entries
func CheckSecretRequiredData(entries ...string) SecretValidator {
	return func(s *corev1.Secret) ([]ValidationError, error) {
		var res []ValidationError
		for _, entry := range entries {
			if _, ok := s.Data[entry]; !ok {
				res = append(res, ValidationError{
					Message: fmt.Sprintf("secret %s has no %s entry", s.Name, entry),
					Type:    ValidationStatusError,
				})
			}
		}
		return res, nil
	}
}
