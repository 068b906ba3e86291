// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
	"os"
)

type settings struct {
	writer  io.Writer
	level   *Level
	context []contextKeyValues
}

type contextKeyValues struct {
	key    string
	values []string
}

func newSettings(options []Option) (settings settings) {
	for _, option := range options {
		option(&settings)
	}
	return settings
}

// mergeWith sets values for each field not already set
// from the other settings given.
func (s *settings) mergeWith(other settings) {
	if s.writer == nil {
		s.writer = other.writer
	}

	if s.level == nil && other.level != nil {
		level := *other.level
		s.level = &level
	}

	newContext := make([]contextKeyValues, 0, len(other.context)+len(s.context))
	for _, kv := range other.context {
		newContext = append(newContext, contextKeyValues{
			key:    kv.key,
			values: append([]string(nil), kv.values...),
		})
	}
	for _, kv := range s.context {
		newContext = appendContext(newContext, kv.key, kv.values...)
	}
	if len(newContext) > 0 {
		s.context = newContext
	}
}

func (s *settings) setDefaults() {
	if s.writer == nil {
		s.writer = os.Stdout
	}

	if s.level == nil {
		level := Info
		s.level = &level
	}
}

func appendContext(context []contextKeyValues, key string, values ...string) []contextKeyValues {
	for i := range context {
		if context[i].key == key {
			context[i].values = append(context[i].values, values...)
			return context
		}
	}
	return append(context, contextKeyValues{key: key, values: values})
}
