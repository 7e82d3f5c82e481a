/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package logger provides the structured logging used by the shell core's
// ambient diagnostics: expansion tracing, terminal-substrate failures, and
// recoverable pipeline errors. It wraps github.com/sirupsen/logrus behind a
// small interface so the editor, history, expand and glob packages never
// import logrus directly.
package logger

import (
	"io"

	loglvl "github.com/sabouaram/goshell/logger/level"
)

// Logger is the minimal structured-logging surface this module needs.
// It intentionally drops the teacher's hook/syslog/gorm/hclog integrations:
// an input-editing core has no server-side log shipping to do.
type Logger interface {
	// SetLevel changes the minimal level of message that is emitted.
	SetLevel(lvl loglvl.Level)
	// GetLevel returns the minimal level of message that is emitted.
	GetLevel() loglvl.Level

	// SetOutput redirects where formatted entries are written.
	SetOutput(w io.Writer)

	// SetFields merges the given key/value pairs into every subsequent entry.
	SetFields(fields map[string]interface{})

	Debug(message string, fields map[string]interface{})
	Info(message string, fields map[string]interface{})
	Warning(message string, fields map[string]interface{})
	Error(message string, fields map[string]interface{})

	// CheckError logs err at lvlKO if non-nil, or at lvlOK (when not NilLevel)
	// otherwise, and returns whether err was nil.
	CheckError(lvlKO, lvlOK loglvl.Level, message string, err error) bool
}

// New returns a Logger at InfoLevel writing to w. A nil w discards output.
func New(w io.Writer) Logger {
	return newLogrusLogger(w)
}
