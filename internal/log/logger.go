// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"sync"
)

// Logger writes levelled lines to its writer.
// It is safe for concurrent use, and so are its children.
type Logger struct {
	settings settings
	childs   []*Logger
	// mutex is shared by a logger and all its children,
	// which usually write to the same writer.
	mutex *sync.Mutex
}

// New creates a root logger. Loggers sharing a writer should
// be derived from the same root with the New method.
func New(options ...Option) *Logger {
	s := newSettings(options)
	s.setDefaults()

	return &Logger{
		settings: s,
		mutex:    new(sync.Mutex),
	}
}

// New creates a child logger inheriting the settings of l
// for the ones not set by the options given. Patching l
// later also patches the child.
func (l *Logger) New(options ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	s := newSettings(options)
	s.mergeWith(l.settings)
	s.setDefaults()

	child := &Logger{
		settings: s,
		mutex:    l.mutex,
	}
	l.childs = append(l.childs, child)
	return child
}
