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

// Package term is the terminal-control substrate: raw-mode toggle, signal
// watch, screen geometry and an ANSI sequence builder. Everything above
// this layer (the line editor, the expansion pipeline) is blind to whether
// it is running on Unix or Windows; the platform split lives entirely here.
package term

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sabouaram/goshell/errs"
)

// Terminal wraps one file descriptor pair (input for reading bytes,
// output for writing redraws) with raw-mode state and signal polling.
// The zero value is not usable; construct with New.
type Terminal struct {
	in  *os.File
	out *os.File

	mu      sync.Mutex
	raw     bool
	saved   rawState
	sig     *signalState
	sigOnce sync.Once
}

// New returns a Terminal reading from in and writing redraws to out. Either
// may be nil, defaulting to os.Stdin / os.Stdout.
func New(in, out *os.File) *Terminal {
	if in == nil {
		in = os.Stdin
	}

	if out == nil {
		out = os.Stdout
	}

	return &Terminal{in: in, out: out}
}

// IsTerminal reports whether the input file descriptor is a TTY.
func (t *Terminal) IsTerminal() bool {
	return isatty.IsTerminal(t.in.Fd()) || isatty.IsCygwinTerminal(t.in.Fd())
}

// EnableRaw puts the input descriptor into raw mode: canonical input, echo,
// signal generation (INTR/QUIT/SUSP) and flow control are disabled, output
// post-processing is disabled, character size is set to 8 bits, and reads
// are given a short timeout so a read on the input never blocks longer than about
// 100ms. EnableRaw is idempotent; a second call while already raw is a
// no-op that returns nil.
func (t *Terminal) EnableRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.raw {
		return nil
	}

	if !t.IsTerminal() {
		return errs.TerminalNotAvailable.Error()
	}

	saved, err := enableRaw(t.in.Fd())
	if err != nil {
		return errs.TerminalNotAvailable.Error(err)
	}

	t.saved = saved
	t.raw = true
	return nil
}

// DisableRaw restores the attributes captured by the most recent EnableRaw.
// Disabling without a prior successful enable is a no-op and never corrupts
// terminal state; DisableRaw is safe to call from a deferred recovery path.
func (t *Terminal) DisableRaw() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.raw {
		return nil
	}

	t.raw = false
	return restoreRaw(t.in.Fd(), t.saved)
}

// IsRaw reports whether the terminal is currently in raw mode.
func (t *Terminal) IsRaw() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.raw
}

// WindowSize returns the current terminal geometry. It fails with
// errs.TerminalNotAvailable if the output descriptor is not a TTY.
func (t *Terminal) WindowSize() (rows, cols int, err error) {
	if !isatty.IsTerminal(t.out.Fd()) && !isatty.IsCygwinTerminal(t.out.Fd()) {
		return 0, 0, errs.TerminalNotAvailable.Error()
	}

	return windowSize(t.out.Fd())
}
