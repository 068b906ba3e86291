// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParseLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s          string
		level      Level
		errWrapped error
		errMessage string
	}{
		"trace":    {s: "trace", level: Trace},
		"trce":     {s: "trce", level: Trace},
		"dbug":     {s: "DBUG", level: Debug},
		"info":     {s: "info", level: Info},
		"warn":     {s: " warn ", level: Warn},
		"eror":     {s: "eror", level: Error},
		"crit":     {s: "crit", level: Critical},
		"critical": {s: "critical", level: Critical},
		"not recognised": {
			s:          "loud",
			errWrapped: ErrLevelNotRecognised,
			errMessage: "level is not recognised: loud",
		},
		"not recognised mixed case": {
			s:          "Shout",
			errWrapped: ErrLevelNotRecognised,
			errMessage: "level is not recognised: Shout",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			level, err := ParseLevel(testCase.s)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errWrapped != nil {
				assert.EqualError(t, err, testCase.errMessage)
				return
			}
			assert.Equal(t, testCase.level, level)
		})
	}
}
