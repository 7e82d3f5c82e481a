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

// Package globexp is the L3 glob engine: filename pattern matching with
// POSIX bracket classes, extglob operators, alternation, file-type
// qualifiers, exclusions and an optional per-cwd LRU result cache.
package globexp

import "strings"

// Qualifier restricts a glob match to a file type via a trailing "(X)".
type Qualifier byte

const (
	QualifierNone       Qualifier = 0
	QualifierFile       Qualifier = '.'
	QualifierSymlink    Qualifier = '@'
	QualifierDirectory  Qualifier = '/'
	QualifierExecutable Qualifier = '*'
)

// Pattern is a decomposed basename glob pattern.
type Pattern struct {
	Base      string
	Exclusion string
	HasExcl   bool
	Qualifier Qualifier
}

// HasMeta reports whether s contains any glob metacharacter not escaped
// by a preceding backslash.
func HasMeta(s string) bool {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '*', '?', '[', '~', '(', '|':
			return true
		}
	}
	return false
}

// Parse decomposes a basename pattern into base/exclusion/qualifier.
func Parse(s string) Pattern {
	p := Pattern{Base: s}

	if q, rest, ok := stripQualifier(p.Base); ok {
		p.Qualifier = q
		p.Base = rest
	}

	if base, excl, ok := splitExclusion(p.Base); ok {
		p.Base = base
		p.Exclusion = excl
		p.HasExcl = true
	}

	return p
}

// stripQualifier recognises a trailing "(X)" where X is one of ".@/*"
// and the parenthesised group is the entire suffix.
func stripQualifier(s string) (Qualifier, string, bool) {
	if len(s) < 3 || s[len(s)-1] != ')' || s[len(s)-3] != '(' {
		return QualifierNone, s, false
	}
	c := s[len(s)-2]
	switch c {
	case '.', '@', '/', '*':
		return Qualifier(c), s[:len(s)-3], true
	}
	return QualifierNone, s, false
}

// splitExclusion splits on a top-level "~" (not inside brackets or
// parens) into base and exclusion pattern.
func splitExclusion(s string) (base, excl string, ok bool) {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			if depth > 0 {
				depth--
			}
		case '~':
			if depth == 0 {
				return s[:i], s[i+1:], true
			}
		}
	}
	return s, "", false
}

// splitDirBase splits a full pattern into its directory component and
// basename pattern, matching filepath.Split but without touching the
// filesystem.
func splitDirBase(pattern string) (dir, base string) {
	if i := strings.LastIndexByte(pattern, '/'); i >= 0 {
		return pattern[:i+1], pattern[i+1:]
	}
	return "", pattern
}
