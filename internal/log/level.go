// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is a log severity. Higher levels are more severe.
type Level uint8

// Levels from the most to the least verbose.
const (
	Trace Level = iota
	Debug
	Info
	Warn
	Error
	Critical
)

var levelNames = [...]string{
	Trace:    "TRACE",
	Debug:    "DEBUG",
	Info:     "INFO",
	Warn:     "WARN",
	Error:    "ERROR",
	Critical: "CRITICAL",
}

var levelColours = [...]color.Attribute{
	Trace:    color.FgHiCyan,
	Debug:    color.FgHiBlue,
	Info:     color.FgCyan,
	Warn:     color.FgYellow,
	Error:    color.FgHiRed,
	Critical: color.FgRed,
}

// shortLevelNames are the four letter names also accepted by ParseLevel.
var shortLevelNames = map[string]Level{
	"TRCE": Trace,
	"DBUG": Debug,
	"EROR": Error,
	"CRIT": Critical,
}

func (level Level) valid() bool {
	return int(level) < len(levelNames)
}

func (level Level) String() string {
	if !level.valid() {
		return fmt.Sprintf("LEVEL(%d)", uint8(level))
	}
	return levelNames[level]
}

// ColouredString returns the level name left aligned on 8 columns
// and coloured for terminals.
func (level Level) ColouredString() string {
	padded := fmt.Sprintf("%-8s", level.String())
	if !level.valid() {
		return padded
	}
	return color.New(levelColours[level]).Sprint(padded)
}

// ErrLevelNotRecognised is returned by ParseLevel for an unknown level name.
var ErrLevelNotRecognised = errors.New("level is not recognised")

// ParseLevel returns the level named s, case insensitively.
func ParseLevel(s string) (Level, error) {
	upper := strings.ToUpper(s)
	for level, name := range levelNames {
		if upper == name {
			return Level(level), nil
		}
	}
	if level, ok := shortLevelNames[upper]; ok {
		return level, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrLevelNotRecognised, s)
}
