// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ChainSafe/storage-gateway/internal/log"
	"github.com/go-playground/validator/v10"
)

// Validate checks every field of the configuration and
// returns the validation errors found, if any.
func (c *Config) Validate() error {
	err := newValidator().Struct(c)
	if err != nil {
		return fmt.Errorf("validating configuration: %w", err)
	}
	return nil
}

func newValidator() *validator.Validate {
	validate := validator.New()
	for tag, fn := range map[string]validator.Func{
		"endpoint": validateEndpoint,
		"duration": validateDuration,
		"loglevel": validateLogLevel,
	} {
		err := validate.RegisterValidation(tag, fn)
		if err != nil {
			panic(err)
		}
	}
	return validate
}

func validateEndpoint(fl validator.FieldLevel) bool {
	u, err := url.Parse(fl.Field().String())
	if err != nil || u.Host == "" {
		return false
	}

	switch u.Scheme {
	case "http", "https", "ws", "wss":
		return true
	default:
		return false
	}
}

func validateDuration(fl validator.FieldLevel) bool {
	d, err := time.ParseDuration(fl.Field().String())
	return err == nil && d > 0
}

func validateLogLevel(fl validator.FieldLevel) bool {
	_, err := log.ParseLevel(fl.Field().String())
	return err == nil
}
