// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// globalLogger is the root of the package loggers.
var globalLogger = New()

// NewFromGlobal creates a child of the global logger. Packages
// use it to declare their logger with a pkg context.
func NewFromGlobal(options ...Option) *Logger {
	return globalLogger.New(options...)
}

// Patch patches the global logger and every package logger.
func Patch(options ...Option) {
	globalLogger.Patch(options...)
}
