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

package history

import (
	"strconv"
	"strings"
)

// Context carries the caller-supplied "current partial line" used by
// "!#"; when absent, "!#" expands to the empty string.
type Context struct {
	// CurrentLine is the partial line typed so far, for "!#". Left
	// empty when the caller has none to offer.
	CurrentLine string
}

// Expand rewrites every history-expansion operator found in line against
// the ring r, using ctx for "!#". It reports whether any substitution
// occurred. Expansion is suppressed inside single quotes; double quotes do
// not suppress it. A backslash immediately before "!" suppresses that one
// occurrence and is itself consumed.
func (r *Ring) Expand(line string, ctx Context) (string, bool) {
	var out strings.Builder
	changed := false

	inSingle := false
	i := 0
	for i < len(line) {
		c := line[i]

		switch {
		case c == '\'' && !inSingle:
			inSingle = true
			out.WriteByte(c)
			i++
		case c == '\'' && inSingle:
			inSingle = false
			out.WriteByte(c)
			i++
		case c == '\\' && i+1 < len(line) && line[i+1] == '!' && !inSingle:
			out.WriteByte('!')
			i += 2
		case c == '!' && !inSingle:
			repl, n, ok := r.expandBang(line[i:], ctx)
			if ok {
				out.WriteString(repl)
				changed = true
				i += n
			} else {
				out.WriteByte(c)
				i++
			}
		case c == '^' && i == 0 && !inSingle:
			repl, n, ok := r.expandCaret(line[i:])
			if ok {
				out.WriteString(repl)
				changed = true
				i += n
			} else {
				out.WriteByte(c)
				i++
			}
		default:
			out.WriteByte(c)
			i++
		}
	}

	return out.String(), changed
}

// expandCaret handles "^old^new[^]" quick-substitution on the previous
// command. It only applies at the start of the line.
func (r *Ring) expandCaret(s string) (string, int, bool) {
	if len(s) == 0 || s[0] != '^' {
		return "", 0, false
	}

	rest := s[1:]
	mid := strings.IndexByte(rest, '^')
	if mid < 0 {
		return "", 0, false
	}
	oldStr := rest[:mid]
	rest2 := rest[mid+1:]

	end := len(rest2)
	if t := strings.IndexByte(rest2, '^'); t >= 0 {
		end = t
	}
	newStr := rest2[:end]

	consumed := 1 + mid + 1 + end
	if end < len(rest2) {
		consumed++
	}

	prev, ok := r.GetOffset(1)
	if !ok || oldStr == "" {
		return "", 0, false
	}

	idx := strings.Index(prev, oldStr)
	if idx < 0 {
		return "", 0, false
	}

	return prev[:idx] + newStr + prev[idx+len(oldStr):], consumed, true
}

// expandBang parses one "!..." reference at the start of s, returning the
// replacement text, how many bytes of s it consumed, and whether a
// reference was recognised at all.
func (r *Ring) expandBang(s string, ctx Context) (string, int, bool) {
	if len(s) == 0 || s[0] != '!' {
		return "", 0, false
	}

	// !# : current partial line.
	if len(s) >= 2 && s[1] == '#' {
		return r.applyDesignator(ctx.CurrentLine, s, 2)
	}

	// !! : previous command.
	if len(s) >= 2 && s[1] == '!' {
		cmd, ok := r.GetOffset(1)
		if !ok {
			return "", 0, false
		}
		return r.applyDesignator(cmd, s, 2)
	}

	// !-k : k-th from newest.
	if len(s) >= 2 && s[1] == '-' {
		j := 2
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j == 2 {
			return "", 0, false
		}
		k, _ := strconv.Atoi(s[2:j])
		cmd, ok := r.GetOffset(k)
		if !ok {
			return "", 0, false
		}
		return r.applyDesignator(cmd, s, j)
	}

	// !N : absolute command number.
	if len(s) >= 2 && isDigit(s[1]) {
		j := 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		n, _ := strconv.Atoi(s[1:j])
		cmd, ok := r.GetByNumber(n)
		if !ok {
			return "", 0, false
		}
		return r.applyDesignator(cmd, s, j)
	}

	// !?str[?] : most recent command containing str.
	if len(s) >= 2 && s[1] == '?' {
		j := 2
		for j < len(s) && s[j] != '?' {
			j++
		}
		str := s[2:j]
		consumed := j
		if j < len(s) && s[j] == '?' {
			consumed = j + 1
		}
		cmd, ok := r.FindBySubstring(str)
		if !ok || str == "" {
			return "", 0, false
		}
		return r.applyDesignator(cmd, s, consumed)
	}

	// !$ : last word of previous command.
	if len(s) >= 2 && s[1] == '$' {
		cmd, ok := r.GetOffset(1)
		if !ok {
			return "", 0, false
		}
		words := SplitWords(cmd)
		if len(words) == 0 {
			return "", 0, false
		}
		return words[len(words)-1], 2, true
	}

	// !* : all arguments of previous command.
	if len(s) >= 2 && s[1] == '*' {
		cmd, ok := r.GetOffset(1)
		if !ok {
			return "", 0, false
		}
		words := SplitWords(cmd)
		if len(words) <= 1 {
			return "", 2, true
		}
		return strings.Join(words[1:], " "), 2, true
	}

	// !str : most recent command whose leading word starts with str.
	j := 1
	for j < len(s) && isWordChar(s[j]) {
		j++
	}
	if j == 1 {
		return "", 0, false
	}
	str := s[1:j]
	cmd, ok := r.FindByPrefix(str)
	if !ok {
		return "", 0, false
	}
	return r.applyDesignator(cmd, s, j)
}

// applyDesignator looks for a trailing ":designator" immediately after
// the consumed prefix of s and applies it to cmd, returning the final
// replacement text and total bytes consumed from s.
func (r *Ring) applyDesignator(cmd, s string, consumed int) (string, int, bool) {
	if consumed >= len(s) || s[consumed] != ':' {
		return cmd, consumed, true
	}

	rest := s[consumed+1:]
	words := SplitWords(cmd)

	j := 0
	for j < len(rest) && isDesignatorChar(rest[j]) {
		j++
	}
	if j == 0 {
		return cmd, consumed, true
	}

	sel := rest[:j]
	text, ok := selectWords(words, sel)
	if !ok {
		return cmd, consumed, true
	}

	return text, consumed + 1 + j, true
}

func selectWords(words []string, sel string) (string, bool) {
	switch sel {
	case "$":
		if len(words) == 0 {
			return "", false
		}
		return words[len(words)-1], true
	case "^":
		if len(words) < 2 {
			return "", false
		}
		return words[1], true
	case "*":
		if len(words) < 2 {
			return "", true
		}
		return strings.Join(words[1:], " "), true
	}

	if dash := strings.IndexByte(sel, '-'); dash >= 0 {
		loStr, hiStr := sel[:dash], sel[dash+1:]
		lo, err := strconv.Atoi(loStr)
		if err != nil {
			return "", false
		}
		hi := len(words) - 1
		if hiStr != "$" {
			hi, err = strconv.Atoi(hiStr)
			if err != nil {
				return "", false
			}
		}
		if lo < 0 || hi >= len(words) || lo > hi {
			return "", false
		}
		return strings.Join(words[lo:hi+1], " "), true
	}

	n, err := strconv.Atoi(sel)
	if err != nil || n < 0 || n >= len(words) {
		return "", false
	}
	return words[n], true
}

func isDigit(b byte) bool    { return b >= '0' && b <= '9' }
func isWordChar(b byte) bool { return b != ' ' && b != '\t' && b != '!' && b != ':' }

func isDesignatorChar(b byte) bool {
	return isDigit(b) || b == '$' || b == '^' || b == '*' || b == '-'
}

// SplitWords splits s into whitespace-separated words, treating
// single- and double-quoted spans as atomic (quotes are kept as part of
// the word, matching shell word-splitting of a history line).
func SplitWords(s string) []string {
	var words []string
	var cur strings.Builder
	inSingle, inDouble := false, false

	flush := func() {
		if cur.Len() > 0 {
			words = append(words, cur.String())
			cur.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
			cur.WriteByte(c)
		case c == '"' && !inSingle:
			inDouble = !inDouble
			cur.WriteByte(c)
		case (c == ' ' || c == '\t') && !inSingle && !inDouble:
			flush()
		default:
			cur.WriteByte(c)
		}
	}
	flush()

	return words
}
