// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color" //nolint:misspell
)

// Level is the level of the logger.
type Level uint8

const (
	// Trace is the trace (trce) level.
	Trace Level = iota
	// Debug is the debug (dbug) level.
	Debug
	// Info is the info level.
	Info
	// Warn is the warn level.
	Warn
	// Error is the error (eror) level.
	Error
	// Critical is the critical (crit) level.
	Critical
)

type levelNames struct {
	name      string
	short     string
	attribute color.Attribute
}

var levels = [...]levelNames{
	Trace:    {name: "TRACE", short: "TRCE", attribute: color.FgHiCyan},
	Debug:    {name: "DEBUG", short: "DBUG", attribute: color.FgHiBlue},
	Info:     {name: "INFO", short: "INFO", attribute: color.FgCyan},
	Warn:     {name: "WARN", short: "WARN", attribute: color.FgYellow},
	Error:    {name: "ERROR", short: "EROR", attribute: color.FgHiRed},
	Critical: {name: "CRITICAL", short: "CRIT", attribute: color.FgRed},
}

func (level Level) String() string {
	if int(level) >= len(levels) {
		return "???"
	}
	return levels[level].name
}

// ColouredString returns the level name padded to 8 characters,
// coloured if the output supports it.
func (level Level) ColouredString() string {
	attribute := color.Reset
	if int(level) < len(levels) {
		attribute = levels[level].attribute
	}
	return color.New(attribute).Sprintf("%-8s", level.String())
}

// ErrLevelNotRecognised is returned by ParseLevel for unknown levels.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel parses a level name, case insensitively. Both the full
// names and their four letters forms such as dbug or eror are accepted.
func ParseLevel(s string) (level Level, err error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, names := range levels {
		if upper == names.name || upper == names.short {
			return Level(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrLevelNotRecognised, s)
}
