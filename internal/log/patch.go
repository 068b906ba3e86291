// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

// Patch applies the options given to the logger and to all of its
// descendants. Settings the options do not touch are kept.
func (l *Logger) Patch(options ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.patch(options)
}

func (l *Logger) patch(options []Option) {
	patched := newSettings(options)
	patched.mergeWith(l.settings)
	l.settings = patched

	for _, child := range l.childs {
		child.patch(options)
	}
}
