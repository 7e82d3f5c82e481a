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
	"os/exec"
	"os/user"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/sabouaram/goshell/errs"
)

// MaxVariableBuffer is the intermediate-buffer limit for a single
// variable-expansion pass over one word.
const MaxVariableBuffer = 4096

// MaxCommandSubstOutput caps captured stdout from $(...).
const MaxCommandSubstOutput = 1 << 20 // 1 MiB

// Variable runs tilde, then variable ($VAR, ${VAR}, ${VAR:-default}, the
// special parameters) and command-substitution ($(cmd)) expansion over
// word, honouring quote suppression: single quotes suppress everything
// here, double quotes suppress nothing here (glob/brace are the caller's
// concern, not this stage's). Returns an error wrapping
// errs.ExpansionTooLong if the result would exceed MaxVariableBuffer.
func Variable(word string, ctx Context) (string, error) {
	var out strings.Builder
	inSingle := false

	atTildePosition := func(pos int) bool {
		return pos == 0 || word[pos-1] == ':' || word[pos-1] == '='
	}

	i := 0
	for i < len(word) {
		c := word[i]

		switch {
		case c == '\'':
			inSingle = !inSingle
			out.WriteByte(c)
			i++
		case c == '\\' && !inSingle && i+1 < len(word) && word[i+1] == '$':
			out.WriteByte('\\')
			out.WriteByte('$')
			i += 2
		case c == '$' && !inSingle:
			repl, n := expandDollar(word[i:], ctx)
			out.WriteString(repl)
			i += n
		case c == '~' && !inSingle && atTildePosition(i):
			home, n, ok := expandTildeAt(word, i, ctx)
			if ok {
				out.WriteString(home)
				i += n
			} else {
				out.WriteByte(c)
				i++
			}
		default:
			out.WriteByte(c)
			i++
		}

		if out.Len() > MaxVariableBuffer {
			return word, errs.ExpansionTooLong.Error()
		}
	}

	return out.String(), nil
}

// expandDollar parses one "$..." reference at the start of s and returns
// its substitution plus bytes consumed. Unrecognised forms are left
// unchanged (one byte consumed).
func expandDollar(s string, ctx Context) (string, int) {
	if len(s) < 2 {
		return string(s), len(s)
	}

	// ${...}
	if s[1] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 0 {
			return "$", 1
		}
		inner := s[2:end]
		return expandBraced(inner, ctx), end + 1
	}

	// $(cmd)
	if s[1] == '(' {
		depth := 1
		j := 2
		for j < len(s) && depth > 0 {
			switch s[j] {
			case '(':
				depth++
			case ')':
				depth--
			}
			j++
		}
		if depth != 0 {
			return "$", 1
		}
		cmd := s[2 : j-1]
		return runCommandSubst(cmd), j
	}

	if v, ok := ctx.specialVar(string(s[1])); ok {
		return v, 2
	}

	// $VAR : longest run of [A-Za-z0-9_] not starting with a digit.
	j := 1
	for j < len(s) && isVarNameByte(s[j]) {
		j++
	}
	if j == 1 {
		return "$", 1
	}
	name := s[1:j]
	return ctx.Env[name], j
}

func expandBraced(inner string, ctx Context) string {
	if idx := strings.Index(inner, ":-"); idx >= 0 {
		name, def := inner[:idx], inner[idx+2:]
		if v, ok := ctx.specialVar(name); ok && v != "" {
			return v
		}
		if v, defined := ctx.Env[name]; defined && v != "" {
			return v
		}
		return def
	}

	if v, ok := ctx.specialVar(inner); ok {
		return v
	}
	return ctx.Env[inner]
}

func isVarNameByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// expandTildeAt expands the "~" or "~user" reference starting at position
// i in word, returning the replacement, bytes consumed, and whether the
// reference resolved at all ("~user" for an unknown user is left
// literal). "~" alone or "~/..." resolves via HOME.
func expandTildeAt(word string, i int, ctx Context) (string, int, bool) {
	j := i + 1
	for j < len(word) && word[j] != '/' && word[j] != ':' {
		j++
	}
	name := word[i+1 : j]

	home, ok := resolveHome(name, ctx)
	if !ok {
		return "", 0, false
	}
	return home, j - i, true
}

func resolveHome(name string, ctx Context) (string, bool) {
	if name == "" {
		if h, defined := ctx.Env["HOME"]; defined && h != "" {
			return h, true
		}
		h, err := homedir.Dir()
		if err != nil {
			return "", false
		}
		return h, true
	}

	u, err := user.Lookup(name)
	if err != nil {
		return "", false
	}
	return u.HomeDir, true
}

// runCommandSubst executes cmd via the system shell, capturing stdout
// (capped at MaxCommandSubstOutput) and trimming trailing newlines.
// Failure yields the empty string, matching source behaviour.
func runCommandSubst(cmd string) string {
	name, flag := shellPath()
	c := exec.Command(name, flag, cmd)
	out, err := c.Output()
	if err != nil {
		return ""
	}

	if len(out) > MaxCommandSubstOutput {
		out = out[:MaxCommandSubstOutput]
	}

	return strings.TrimRight(string(out), "\n")
}
