// Copyright 2026 Astryx Authors
// SPDX-License-Identifier: LGPL-3.0-only

package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Logger writes one line per call at or above its level.
// Loggers derived with New share the lock of their root and follow
// the Patch calls of their parent. It is safe for concurrent use.
type Logger struct {
	mutex    *sync.Mutex
	writer   io.Writer
	level    Level
	caller   bool
	fields   []field
	children []*Logger
}

// New creates a root logger writing to stdout at the Info level,
// unless the options say otherwise.
func New(opts ...Option) *Logger {
	l := &Logger{
		mutex:  new(sync.Mutex),
		writer: os.Stdout,
		level:  Info,
	}
	l.apply(newOptions(opts))
	return l
}

// New derives a child logger inheriting the settings and context of l.
func (l *Logger) New(opts ...Option) *Logger {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	child := &Logger{
		mutex:  l.mutex,
		writer: l.writer,
		level:  l.level,
		caller: l.caller,
		fields: append([]field(nil), l.fields...),
	}
	child.apply(newOptions(opts))
	l.children = append(l.children, child)
	return child
}

// Patch applies the options to l and all the loggers derived from it.
func (l *Logger) Patch(opts ...Option) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.patch(newOptions(opts))
}

// PatchLevel sets the level of l and all the loggers derived from it.
func (l *Logger) PatchLevel(level Level) {
	l.Patch(SetLevel(level))
}

func (l *Logger) patch(o options) {
	l.apply(o)
	for _, child := range l.children {
		child.patch(o)
	}
}

func (l *Logger) apply(o options) {
	if o.writer != nil {
		l.writer = o.writer
	}
	if o.level != nil {
		l.level = *o.level
	}
	if o.caller != nil {
		l.caller = *o.caller
	}
	for _, f := range o.fields {
		l.fields = withField(l.fields, f.key, f.value)
	}
}

// callerDepth skips write, log and the exported logging method.
const callerDepth = 3

func (l *Logger) log(level Level, message string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if level < l.level {
		return
	}
	l.write(level, message)
}

func (l *Logger) logf(level Level, format string, args []interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if level < l.level {
		return
	}
	l.write(level, fmt.Sprintf(format, args...))
}

func (l *Logger) write(level Level, message string) {
	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(level.ColouredString())
	b.WriteByte(' ')
	b.WriteString(message)

	if l.caller {
		if _, file, line, ok := runtime.Caller(callerDepth); ok {
			b.WriteString("\t" + filepath.Base(file) + ":" + strconv.Itoa(line))
		}
	}

	for i, f := range l.fields {
		if i == 0 {
			b.WriteByte('\t')
		} else {
			b.WriteByte(' ')
		}
		b.WriteString(f.key + "=" + f.value)
	}

	b.WriteByte('\n')
	_, _ = io.WriteString(l.writer, b.String())
}

// Trace logs at the TRACE level.
func (l *Logger) Trace(s string) { l.log(Trace, s) }

// Debug logs at the DEBUG level.
func (l *Logger) Debug(s string) { l.log(Debug, s) }

// Info logs at the INFO level.
func (l *Logger) Info(s string) { l.log(Info, s) }

// Warn logs at the WARN level.
func (l *Logger) Warn(s string) { l.log(Warn, s) }

// Error logs at the ERROR level.
func (l *Logger) Error(s string) { l.log(Error, s) }

// Critical logs at the CRITICAL level.
func (l *Logger) Critical(s string) { l.log(Critical, s) }

// Tracef formats and logs at the TRACE level.
func (l *Logger) Tracef(format string, args ...interface{}) { l.logf(Trace, format, args) }

// Debugf formats and logs at the DEBUG level.
func (l *Logger) Debugf(format string, args ...interface{}) { l.logf(Debug, format, args) }

// Infof formats and logs at the INFO level.
func (l *Logger) Infof(format string, args ...interface{}) { l.logf(Info, format, args) }

// Warnf formats and logs at the WARN level.
func (l *Logger) Warnf(format string, args ...interface{}) { l.logf(Warn, format, args) }

// Errorf formats and logs at the ERROR level.
func (l *Logger) Errorf(format string, args ...interface{}) { l.logf(Error, format, args) }

// Criticalf formats and logs at the CRITICAL level.
func (l *Logger) Criticalf(format string, args ...interface{}) { l.logf(Critical, format, args) }
