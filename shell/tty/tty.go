/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
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

// Package tty saves and restores the controlling terminal's cooked-mode
// state around a shell session, independent of the term package's raw-mode
// substrate: it exists so a SIGINT/SIGTERM arriving mid-session (or a
// deferred cleanup on normal exit) can always put the terminal back the
// way it found it, even from a code path that never touches term.Terminal
// directly.
package tty

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	xterm "golang.org/x/term"
)

// ErrorNotTTY is the sentinel for "this descriptor is not a terminal".
var ErrorNotTTY = errors.New("not a terminal")

// ErrorTTYFailed is the sentinel for a failed terminal-state query on a
// descriptor that is otherwise a terminal.
var ErrorTTYFailed = errors.New("failed to get terminal state")

// ErrorDevTTYFail is the sentinel for a failed fallback open of /dev/tty
// when the supplied input is not itself a terminal.
var ErrorDevTTYFail = errors.New("failed to open /dev/tty")

// TTYSaver captures a terminal's state at construction time and restores
// it on demand.
type TTYSaver interface {
	// IsTerminal reports whether the underlying descriptor is a TTY.
	IsTerminal() bool

	// Restore puts the terminal back to the state captured at
	// construction. On a non-terminal it returns nil, after a best-effort
	// restore of the /dev/tty fallback when New captured one.
	Restore() error

	// Signal blocks until SIGINT or SIGTERM arrives, if signal handling
	// was requested at construction; otherwise it returns immediately.
	Signal() error
}

type ttySaver struct {
	mu     sync.Mutex
	fd     int
	isTerm bool
	state  *xterm.State

	// devTTY, when non-nil, is a fallback descriptor onto the session's
	// controlling terminal captured at construction because fd itself
	// was not a terminal. Restore uses it as a last resort; IsTerminal
	// never consults it; IsTerminal always answers for fd exactly,
	// matching the descriptor the caller handed in.
	devTTY       *xterm.State
	devTTYFd     int
	handleSignal bool
}

// New builds a TTYSaver over in (nil defaults to os.Stdin). IsTerminal
// always reflects in's own descriptor. When in is not a terminal, New
// additionally tries to capture the session's controlling terminal via
// /dev/tty so Restore still has something to put back on exit; failure
// to do so is swallowed, since a TTYSaver over a non-terminal is always
// valid: Restore returns nil and Signal depends only on handleSignal.
// A reader that is not an *os.File has no descriptor and is never a
// terminal.
func New(in io.Reader, handleSignal bool) (TTYSaver, error) {
	if in == nil {
		in = os.Stdin
	}

	s := &ttySaver{fd: -1, handleSignal: handleSignal}

	if f, ok := in.(*os.File); ok {
		s.fd = int(f.Fd())
	}

	state, isTerm, err := probe(s.fd)
	s.isTerm = isTerm
	s.state = state

	if err != nil {
		if dev, devErr := openControllingTTY(); devErr == nil {
			if devState, devIsTerm, devProbeErr := probe(int(dev.Fd())); devProbeErr == nil && devIsTerm {
				s.devTTYFd = int(dev.Fd())
				s.devTTY = devState
			}
		}
	}

	return s, nil
}

func probe(fd int) (*xterm.State, bool, error) {
	if !xterm.IsTerminal(fd) {
		return nil, false, ErrorNotTTY
	}

	state, err := xterm.GetState(fd)
	if err != nil {
		return nil, true, ErrorTTYFailed
	}

	return state, true, nil
}

// openControllingTTY opens /dev/tty directly, the fallback used when the
// caller's stdin has been redirected but a real controlling terminal
// still exists to restore on exit.
func openControllingTTY() (*os.File, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, ErrorDevTTYFail
	}
	return f, nil
}

func (s *ttySaver) IsTerminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isTerm
}

func (s *ttySaver) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isTerm && s.state != nil {
		return xterm.Restore(s.fd, s.state)
	}

	if s.devTTY != nil {
		// Best-effort fallback restore; the original descriptor was
		// never a terminal so there is nothing meaningful to report to
		// the caller if this also fails.
		_ = xterm.Restore(s.devTTYFd, s.devTTY)
	}

	return nil
}

func (s *ttySaver) Signal() error {
	if !s.handleSignal {
		return nil
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(ch)

	<-ch
	return nil
}

// Restore calls s.Restore(), tolerating a nil s and swallowing any
// restore error: it is meant for deferred best-effort cleanup where the
// caller has nothing useful to do with a failure.
func Restore(s TTYSaver) {
	if s == nil {
		return
	}
	_ = s.Restore()
}

// SignalHandler registers for SIGINT and SIGTERM and spawns a goroutine
// that, once one of them arrives, restores the terminal through
// s.Restore() and terminates the process. It returns immediately; a nil
// s is a safe no-op.
func SignalHandler(s TTYSaver) {
	if s == nil {
		return
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-ch
		_ = s.Restore()
		os.Exit(1)
	}()
}
