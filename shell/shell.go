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

// Package shell is the top-level command registry and dispatcher: a
// namespace-prefixed map of command.Command, plus the TTYSaver a session
// uses to restore cooked mode on exit.
package shell

import (
	"fmt"
	"io"
	"sync"

	"github.com/sabouaram/goshell/shell/command"
	"github.com/sabouaram/goshell/shell/tty"
)

// Shell registers and dispatches named commands, optionally namespaced
// with a prefix (e.g. "sys:").
type Shell interface {
	// Add registers one or more commands under prefix+cmd.Name(). A nil
	// command is skipped. Adding a name that already exists replaces it.
	Add(prefix string, cmds ...command.Command)

	// Get looks up a command by its fully prefixed name.
	Get(name string) (command.Command, bool)

	// Desc returns a command's description, or "" if it is not registered.
	Desc(name string) string

	// Walk calls fn for every registered command, in no particular
	// order, stopping early if fn returns false. A nil fn is a no-op.
	Walk(fn func(name string, item command.Command) bool)

	// Run looks up args[0] and invokes it with args[1:], writing
	// "Invalid command" to err if it is not registered.
	Run(out, err io.Writer, args []string)
}

type shell struct {
	mu   sync.RWMutex
	cmds map[string]command.Command
	tty  tty.TTYSaver
}

// New builds an empty Shell. ttySaver may be nil; the shell never calls
// any of its methods itself, it only carries it for callers (a REPL
// loop, a signal handler) that need to restore terminal state.
func New(ttySaver tty.TTYSaver) Shell {
	return &shell{
		cmds: make(map[string]command.Command),
		tty:  ttySaver,
	}
}

func (s *shell) Add(prefix string, cmds ...command.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range cmds {
		if c == nil {
			continue
		}
		s.cmds[prefix+c.Name()] = c
	}
}

func (s *shell) Get(name string) (command.Command, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cmds[name]
	return c, ok
}

func (s *shell) Desc(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cmds[name]
	if !ok {
		return ""
	}
	return c.Describe()
}

func (s *shell) Walk(fn func(name string, item command.Command) bool) {
	if fn == nil {
		return
	}

	s.mu.RLock()
	items := make(map[string]command.Command, len(s.cmds))
	for name, c := range s.cmds {
		items[name] = c
	}
	s.mu.RUnlock()

	for name, c := range items {
		if !fn(name, c) {
			return
		}
	}
}

func (s *shell) Run(out, err io.Writer, args []string) {
	if len(args) == 0 {
		return
	}

	c, ok := s.Get(args[0])
	if !ok {
		if err != nil {
			fmt.Fprintf(err, "Invalid command: %s", args[0])
		}
		return
	}

	c.Run(out, err, args[1:])
}
