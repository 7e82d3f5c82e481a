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

package logger

import (
	"io"
	"sync"

	loglvl "github.com/sabouaram/goshell/logger/level"
	"github.com/sirupsen/logrus"
)

type logrusLogger struct {
	mu  sync.RWMutex
	log *logrus.Logger
	lvl loglvl.Level
	fld map[string]interface{}
}

func newLogrusLogger(w io.Writer) Logger {
	if w == nil {
		w = io.Discard
	}

	l := &logrusLogger{
		log: logrus.New(),
		lvl: loglvl.InfoLevel,
		fld: make(map[string]interface{}),
	}

	l.log.SetOutput(w)
	l.log.SetLevel(loglvl.InfoLevel.Logrus())

	return l
}

func (o *logrusLogger) SetLevel(lvl loglvl.Level) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.lvl = lvl
	o.log.SetLevel(lvl.Logrus())
}

func (o *logrusLogger) GetLevel() loglvl.Level {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.lvl
}

func (o *logrusLogger) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	o.log.SetOutput(w)
}

func (o *logrusLogger) SetFields(fields map[string]interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if fields == nil {
		fields = make(map[string]interface{})
	}

	o.fld = fields
}

func (o *logrusLogger) entry(fields map[string]interface{}) *logrus.Entry {
	o.mu.RLock()
	defer o.mu.RUnlock()

	merged := make(logrus.Fields, len(o.fld)+len(fields))

	for k, v := range o.fld {
		merged[k] = v
	}

	for k, v := range fields {
		merged[k] = v
	}

	return o.log.WithFields(merged)
}

func (o *logrusLogger) Debug(message string, fields map[string]interface{}) {
	o.entry(fields).Debug(message)
}

func (o *logrusLogger) Info(message string, fields map[string]interface{}) {
	o.entry(fields).Info(message)
}

func (o *logrusLogger) Warning(message string, fields map[string]interface{}) {
	o.entry(fields).Warning(message)
}

func (o *logrusLogger) Error(message string, fields map[string]interface{}) {
	o.entry(fields).Error(message)
}

// CheckError logs at lvlKO with the error attached when err is non-nil. When
// err is nil it logs at lvlOK instead, unless lvlOK is NilLevel, in which case
// the success case is silent - mirroring Level.Logrus() mapping NilLevel to a
// threshold no entry can ever reach.
func (o *logrusLogger) CheckError(lvlKO, lvlOK loglvl.Level, message string, err error) bool {
	if err != nil {
		o.logAt(lvlKO, message, map[string]interface{}{"error": err.Error()})
		return false
	}

	if lvlOK == loglvl.NilLevel {
		return true
	}

	o.logAt(lvlOK, message, nil)
	return true
}

func (o *logrusLogger) logAt(lvl loglvl.Level, message string, fields map[string]interface{}) {
	ent := o.entry(fields)

	switch lvl {
	case loglvl.PanicLevel:
		ent.Panic(message)
	case loglvl.FatalLevel:
		ent.Fatal(message)
	case loglvl.ErrorLevel:
		ent.Error(message)
	case loglvl.WarnLevel:
		ent.Warning(message)
	case loglvl.InfoLevel:
		ent.Info(message)
	case loglvl.DebugLevel:
		ent.Debug(message)
	default:
		// NilLevel or anything unrecognized: drop silently.
	}
}
