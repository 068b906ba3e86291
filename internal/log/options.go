// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"io"
)

// Option modifies the settings of a logger.
type Option func(s *settings)

// SetLevel sets the minimum level logged, Info by default.
func SetLevel(level Level) Option {
	return func(s *settings) {
		s.level = &level
	}
}

// SetWriter sets where log lines are written, os.Stdout by default.
func SetWriter(writer io.Writer) Option {
	return func(s *settings) {
		s.writer = writer
	}
}

// AddContext appends a key=value pair to every line logged.
// Values of a key given more than once are joined with commas.
func AddContext(key, value string) Option {
	return func(s *settings) {
		s.context = appendContext(s.context, key, value)
	}
}
