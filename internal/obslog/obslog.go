// Copyright 2024 The ProbeChain Authors
// This file is part of the ProbeChain.
//
// The ProbeChain is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The ProbeChain is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the ProbeChain. If not, see <http://www.gnu.org/licenses/>.

// Package obslog is the driver's structured logging surface: a thin
// key-value wrapper over zerolog so call sites read "msg", "k", v, "k2", v2
// the way the rest of this codebase's ancestry logs, without every package
// importing zerolog's event-builder API directly.
package obslog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a bound structured logger. The zero value discards everything,
// so a nil *Logger (or an omitted WithLogger option) is always safe to call.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger writing human-readable console output to w.
func New(w io.Writer) *Logger {
	z := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	return &Logger{z: z}
}

// Default returns a Logger writing to os.Stderr.
func Default() *Logger { return New(os.Stderr) }

// Nop returns a Logger that discards everything.
func Nop() *Logger { return &Logger{z: zerolog.Nop()} }

func (l *Logger) event(level zerolog.Level, msg string, kv []any) {
	if l == nil {
		return
	}
	ev := l.z.WithLevel(level)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}

// Debug logs msg with alternating key/value pairs at debug level.
func (l *Logger) Debug(msg string, kv ...any) { l.event(zerolog.DebugLevel, msg, kv) }

// Info logs msg with alternating key/value pairs at info level.
func (l *Logger) Info(msg string, kv ...any) { l.event(zerolog.InfoLevel, msg, kv) }

// Warn logs msg with alternating key/value pairs at warn level.
func (l *Logger) Warn(msg string, kv ...any) { l.event(zerolog.WarnLevel, msg, kv) }

// Error logs msg with alternating key/value pairs at error level.
func (l *Logger) Error(msg string, kv ...any) { l.event(zerolog.ErrorLevel, msg, kv) }
