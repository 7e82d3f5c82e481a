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

package expand

import (
	"os"
	"strconv"
	"strings"
)

// Context is the read-only record threaded through one expansion pass:
// the environment, the last exit code, the running PID, positional
// parameters (including $0) and the last background PID. It holds no
// history store: history expansion runs before this stage.
type Context struct {
	Env          map[string]string
	LastExitCode int
	PID          int
	LastBgPID    int
	Positional   []string // Positional[0] is $0.
}

// NewContextFromEnviron builds a Context from the process environment via
// os.Environ, splitting "KEY=VALUE" pairs.
func NewContextFromEnviron(shellName string, args []string) Context {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}

	positional := append([]string{shellName}, args...)

	return Context{
		Env:        env,
		PID:        os.Getpid(),
		Positional: positional,
	}
}

func (c Context) positional(n int) string {
	if n < 0 || n >= len(c.Positional) {
		return ""
	}
	return c.Positional[n]
}

func (c Context) specialVar(name string) (string, bool) {
	switch name {
	case "?":
		return strconv.Itoa(c.LastExitCode), true
	case "$":
		return strconv.Itoa(c.PID), true
	case "!":
		return strconv.Itoa(c.LastBgPID), true
	case "#":
		n := len(c.Positional) - 1
		if n < 0 {
			n = 0
		}
		return strconv.Itoa(n), true
	case "*", "@":
		if len(c.Positional) <= 1 {
			return "", true
		}
		return strings.Join(c.Positional[1:], " "), true
	}

	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return c.positional(int(name[0] - '0')), true
	}

	return "", false
}
