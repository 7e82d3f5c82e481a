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

package term

import (
	liblib "github.com/sabouaram/goshell/atomic"
)

// Signal is the process-wide pending-signal cell's value space: none, or
// one of the two signals the editor's input loop cares about.
type Signal uint8

const (
	SignalNone Signal = iota
	SignalInterrupt
	SignalTerminate
)

// signalState holds the two atomic cells described in the data model:
// pending_signal and winsize_dirty. Handlers only ever store to these; the
// editor polls them between reads. Both are swap-and-clear on poll so a
// signal observed once is not observed twice.
type signalState struct {
	pending liblib.Value[Signal]
	winsize liblib.Value[bool]
	stop    chan struct{}
}

func newSignalState() *signalState {
	s := &signalState{
		pending: liblib.NewValueDefault[Signal](SignalNone, SignalNone),
		winsize: liblib.NewValueDefault[bool](false, false),
		stop:    make(chan struct{}),
	}

	return s
}

// InstallSignalHandlers installs async-safe handlers that only write to the
// atomic signal cells: SIGINT and SIGTERM set pending_signal, SIGWINCH sets
// winsize_dirty. There is no teardown; the handlers live for the process
// lifetime, matching the data model's "Signal state (process-wide)."
// Calling it more than once on the same Terminal is a no-op.
func (t *Terminal) InstallSignalHandlers() {
	t.sigOnce.Do(func() {
		t.sig = newSignalState()
		t.sig.watch()
	})
}

// PollSignal atomically reads and clears the pending signal cell.
func (t *Terminal) PollSignal() Signal {
	if t.sig == nil {
		return SignalNone
	}

	return t.sig.pending.Swap(SignalNone)
}

// PollWinsizeDirty atomically reads and clears the winsize_dirty cell.
func (t *Terminal) PollWinsizeDirty() bool {
	if t.sig == nil {
		return false
	}

	return t.sig.winsize.Swap(false)
}
