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

// Package command is a single builtin or user-registered shell command: a
// name, a one-line description for completion/help listings, and the
// function that runs when the command is invoked.
package command

import "io"

// FuncCommand is a command's body. args is the word-split, fully expanded
// argument vector with args[0] excluded (the command name itself is
// carried separately, on the Command).
type FuncCommand func(out, err io.Writer, args []string)

// CommandInfo is the read-only projection of a Command used for listing
// and completion, without exposing Run.
type CommandInfo interface {
	Name() string
	Describe() string
}

// Command is a runnable, named shell command.
type Command interface {
	CommandInfo
	Run(out, err io.Writer, args []string)
}

// command is the immutable Command implementation: every field is set
// once at New and never mutated, so Name/Describe/Run need no locking to
// be safe for concurrent use.
type command struct {
	name string
	desc string
	fn   FuncCommand
}

// New builds a Command. A nil fn is valid; Run becomes a no-op.
func New(name, describe string, fn FuncCommand) Command {
	return &command{name: name, desc: describe, fn: fn}
}

// Info builds a name/description pair with no attached behavior, for
// listing commands that are described but not directly invocable (e.g.
// completion entries proxying to an external binary).
func Info(name, describe string) CommandInfo {
	return &command{name: name, desc: describe}
}

func (c *command) Name() string {
	return c.name
}

func (c *command) Describe() string {
	return c.desc
}

func (c *command) Run(out, err io.Writer, args []string) {
	if c.fn == nil {
		return
	}
	c.fn(out, err, args)
}
