// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
//
// Each failed rule is wrapped in the sentinel of its group
// ([ErrInvalidGeneratorConfigs], [ErrInvalidSourceConfigs],
// [ErrInvalidConsulConfigs], [ErrInvalidLogConfigs]) and all of them are
// returned joined.
func (cfg *StructuredConfig) validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("error validating config: %w", err)
	}

	// consul settings only matter for the consul source
	skipConsul := cfg.Source.Mode == SourceModeFile

	var errs []error
	for _, fe := range fieldErrs {
		sentinel := sentinelFor(fe.StructNamespace())
		if skipConsul && errors.Is(sentinel, ErrInvalidConsulConfigs) {
			continue
		}
		errs = append(errs, fmt.Errorf("%w: %s failed on '%s'", sentinel, fe.Namespace(), fe.Tag()))
	}

	return errors.Join(errs...)
}

func sentinelFor(namespace string) error {
	switch {
	case strings.HasPrefix(namespace, "StructuredConfig.Generator."):
		return ErrInvalidGeneratorConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Source."):
		return ErrInvalidSourceConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Consul."):
		return ErrInvalidConsulConfigs
	case strings.HasPrefix(namespace, "StructuredConfig.Log."):
		return ErrInvalidLogConfigs
	default:
		return ErrInvalidConfig
	}
}
