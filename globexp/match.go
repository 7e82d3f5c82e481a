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

package globexp

import "strings"

// MaxExtglobDepth caps extglob recursion so adversarial patterns like
// nested "!(!(!(...)))" cannot cause unbounded recursion.
const MaxExtglobDepth = 64

// Match reports whether name matches the glob pattern. Supports "*", "?",
// bracket classes with POSIX named classes, top-level alternation
// "(a|b|c)" and extglob "?() *() +() @() !()".
func Match(pattern, name string) bool {
	return matchAt(pattern, name, 0)
}

func matchAt(pattern, name string, depth int) bool {
	if depth > MaxExtglobDepth {
		return false
	}
	return matchRec(pattern, name, depth)
}

// matchRec matches pattern against the entirety of name via backtracking
// recursion on "*".
func matchRec(pattern, name string, depth int) bool {
	for len(pattern) > 0 {
		if tok, rest, ok := parseExtglob(pattern); ok {
			return matchExtglob(tok, rest, name, depth)
		}

		switch pattern[0] {
		case '*':
			rest := pattern[1:]
			for i := 0; i <= len(name); i++ {
				if matchRec(rest, name[i:], depth) {
					return true
				}
			}
			return false

		case '?':
			if len(name) == 0 {
				return false
			}
			pattern = pattern[1:]
			name = name[1:]

		case '[':
			cls, rest, ok := parseBracket(pattern)
			if !ok {
				if len(name) == 0 || name[0] != '[' {
					return false
				}
				pattern = pattern[1:]
				name = name[1:]
				continue
			}
			if len(name) == 0 || !cls.matches(name[0]) {
				return false
			}
			pattern = rest
			name = name[1:]

		case '(':
			alts, rest, ok := parseAlternation(pattern)
			if !ok {
				if len(name) == 0 || name[0] != '(' {
					return false
				}
				pattern = pattern[1:]
				name = name[1:]
				continue
			}
			for _, alt := range alts {
				if tryConsume(alt, rest, name, depth) {
					return true
				}
			}
			return false

		case '\\':
			if len(pattern) >= 2 {
				if len(name) == 0 || name[0] != pattern[1] {
					return false
				}
				pattern = pattern[2:]
				name = name[1:]
			} else {
				if len(name) == 0 || name[0] != '\\' {
					return false
				}
				pattern = pattern[1:]
				name = name[1:]
			}

		default:
			if len(name) == 0 || name[0] != pattern[0] {
				return false
			}
			pattern = pattern[1:]
			name = name[1:]
		}
	}

	return len(name) == 0
}

type extglobKind byte

const (
	extZeroOrOne  extglobKind = '?'
	extZeroOrMore extglobKind = '*'
	extOneOrMore  extglobKind = '+'
	extExactlyOne extglobKind = '@'
	extNegate     extglobKind = '!'
)

type extglobToken struct {
	kind  extglobKind
	alts  []string
}

// parseExtglob recognises a leading "K(alt1|alt2|...)" extglob operator,
// returning the token and the remainder of the pattern after the closing
// paren.
func parseExtglob(pattern string) (extglobToken, string, bool) {
	if len(pattern) < 2 {
		return extglobToken{}, pattern, false
	}

	switch pattern[0] {
	case '?', '*', '+', '@', '!':
	default:
		return extglobToken{}, pattern, false
	}
	if pattern[1] != '(' {
		return extglobToken{}, pattern, false
	}

	depth := 1
	i := 2
	for i < len(pattern) && depth > 0 {
		switch pattern[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		i++
	}
	if depth != 0 {
		return extglobToken{}, pattern, false
	}

	inner := pattern[2 : i-1]
	return extglobToken{kind: extglobKind(pattern[0]), alts: splitTopLevelAlt(inner)}, pattern[i:], true
}

// parseAlternation recognises a leading "(a|b|c)" group with no extglob
// prefix character, returning its alternatives and the remainder of the
// pattern after the closing paren.
func parseAlternation(pattern string) ([]string, string, bool) {
	if len(pattern) == 0 || pattern[0] != '(' {
		return nil, pattern, false
	}

	depth := 1
	i := 1
	for i < len(pattern) && depth > 0 {
		switch pattern[i] {
		case '(':
			depth++
		case ')':
			depth--
		}
		i++
	}
	if depth != 0 {
		return nil, pattern, false
	}

	inner := pattern[1 : i-1]
	return splitTopLevelAlt(inner), pattern[i:], true
}

// splitTopLevelAlt splits s on "|" that is not nested inside another
// paren group.
func splitTopLevelAlt(s string) []string {
	depth := 0
	start := 0
	var parts []string
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '|':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func matchExtglob(tok extglobToken, rest, name string, depth int) bool {
	switch tok.kind {
	case extZeroOrOne:
		if matchRec(rest, name, depth) {
			return true
		}
		for _, alt := range tok.alts {
			if tryConsume(alt, rest, name, depth) {
				return true
			}
		}
		return false

	case extExactlyOne:
		for _, alt := range tok.alts {
			if tryConsume(alt, rest, name, depth) {
				return true
			}
		}
		return false

	case extZeroOrMore:
		if matchRec(rest, name, depth) {
			return true
		}
		return matchRepeat(tok.alts, rest, name, depth, 0)

	case extOneOrMore:
		return matchRepeat(tok.alts, rest, name, depth, 1)

	case extNegate:
		for i := 0; i <= len(name); i++ {
			matchesAny := false
			for _, alt := range tok.alts {
				if matchAt(alt, name[:i], depth+1) {
					matchesAny = true
					break
				}
			}
			if !matchesAny && matchRec(rest, name[i:], depth) {
				return true
			}
		}
		return false
	}
	return false
}

// tryConsume attempts to match alt against a prefix of name, then rest
// against what remains.
func tryConsume(alt, rest, name string, depth int) bool {
	for i := 0; i <= len(name); i++ {
		if matchAt(alt, name[:i], depth+1) && matchRec(rest, name[i:], depth) {
			return true
		}
	}
	return false
}

// matchRepeat tries zero-or-more (minRepeats=0) or one-or-more
// (minRepeats=1) repetitions of any alternative, each time trying to
// finish with rest.
func matchRepeat(alts []string, rest, name string, depth, minRepeats int) bool {
	var try func(remaining string, repeats int) bool
	try = func(remaining string, repeats int) bool {
		if repeats >= minRepeats && matchRec(rest, remaining, depth) {
			return true
		}
		for _, alt := range alts {
			for i := 1; i <= len(remaining); i++ {
				if matchAt(alt, remaining[:i], depth+1) && try(remaining[i:], repeats+1) {
					return true
				}
			}
		}
		return false
	}
	return try(name, 0)
}

type bracketClass struct {
	negate bool
	ranges [][2]byte
	chars  map[byte]bool
	named  []string
}

func (b bracketClass) matches(c byte) bool {
	m := b.chars[c]
	if !m {
		for _, r := range b.ranges {
			if c >= r[0] && c <= r[1] {
				m = true
				break
			}
		}
	}
	if !m {
		for _, name := range b.named {
			if matchesNamedClass(name, c) {
				m = true
				break
			}
		}
	}
	if b.negate {
		return !m
	}
	return m
}

func matchesNamedClass(name string, c byte) bool {
	switch name {
	case "alpha":
		return isAlpha(c)
	case "digit":
		return c >= '0' && c <= '9'
	case "alnum":
		return isAlpha(c) || (c >= '0' && c <= '9')
	case "space":
		return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
	case "upper":
		return c >= 'A' && c <= 'Z'
	case "lower":
		return c >= 'a' && c <= 'z'
	case "punct":
		return strings.IndexByte("!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~", c) >= 0
	case "xdigit":
		return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
	case "blank":
		return c == ' ' || c == '\t'
	case "cntrl":
		return c < 0x20 || c == 0x7f
	case "graph":
		return c > 0x20 && c < 0x7f
	case "print":
		return c >= 0x20 && c < 0x7f
	}
	return false
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// parseBracket parses a leading "[...]" bracket expression, returning the
// class and the remainder of the pattern.
func parseBracket(pattern string) (bracketClass, string, bool) {
	if len(pattern) == 0 || pattern[0] != '[' {
		return bracketClass{}, pattern, false
	}

	end := findBracketEnd(pattern)
	if end < 0 {
		return bracketClass{}, pattern, false
	}

	body := pattern[1:end]
	cls := bracketClass{chars: map[byte]bool{}}

	if len(body) > 0 && (body[0] == '!' || body[0] == '^') {
		cls.negate = true
		body = body[1:]
	}

	i := 0
	for i < len(body) {
		if strings.HasPrefix(body[i:], "[:") {
			if j := strings.Index(body[i:], ":]"); j >= 0 {
				name := body[i+2 : i+j]
				cls.named = append(cls.named, name)
				i += j + 2
				continue
			}
		}

		if i+2 < len(body) && body[i+1] == '-' && body[i+2] != ']' {
			cls.ranges = append(cls.ranges, [2]byte{body[i], body[i+2]})
			i += 3
			continue
		}

		cls.chars[body[i]] = true
		i++
	}

	return cls, pattern[end+1:], true
}

func findBracketEnd(pattern string) int {
	i := 1
	if i < len(pattern) && (pattern[i] == '!' || pattern[i] == '^') {
		i++
	}
	if i < len(pattern) && pattern[i] == ']' {
		i++
	}
	for i < len(pattern) {
		if strings.HasPrefix(pattern[i:], "[:") {
			if j := strings.Index(pattern[i+2:], ":]"); j >= 0 {
				i += 2 + j + 2
				continue
			}
		}
		if pattern[i] == ']' {
			return i
		}
		i++
	}
	return -1
}
