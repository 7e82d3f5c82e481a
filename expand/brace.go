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

// Package expand implements the non-history, non-glob stages of the
// expansion pipeline: brace expansion (sequences and lists) followed by
// variable, tilde and command substitution.
package expand

import (
	"strconv"
	"strings"
)

// MaxNumericSequence caps a "{m..n}" numeric sequence's entry count.
const MaxNumericSequence = 1000

// MaxCharSequence caps a "{c..d}" character sequence's entry count.
const MaxCharSequence = 52

// Brace finds the outermost balanced brace pair in s and expands it,
// recursing into any braces the expansion itself produces. If s contains
// no "{...}", the result is the singleton []string{s}; this never returns
// an empty list.
func Brace(s string) []string {
	open, close, ok := findOutermostBrace(s)
	if !ok {
		return []string{s}
	}

	prefix := s[:open]
	content := s[open+1 : close]
	suffix := s[close+1:]

	items, ok := expandBraceContent(content)
	if !ok {
		// Not a recognised sequence or list: braces are literal.
		rest := Brace(suffix)
		out := make([]string, 0, len(rest))
		for _, r := range rest {
			out = append(out, prefix+"{"+content+"}"+r)
		}
		return out
	}

	var out []string
	for _, item := range items {
		for _, r := range Brace(suffix) {
			combined := prefix + item + r
			out = append(out, Brace(combined)...)
		}
	}

	if len(out) == 0 {
		return []string{s}
	}
	return out
}

// findOutermostBrace locates the first top-level "{" and its matching
// "}" using depth counting, so nested braces are included in content.
func findOutermostBrace(s string) (open, close int, ok bool) {
	open = strings.IndexByte(s, '{')
	if open < 0 {
		return 0, 0, false
	}

	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return open, i, true
			}
		}
	}

	return 0, 0, false
}

// expandBraceContent expands the interior of one brace pair: a sequence
// if it contains a top-level ".." and no nested brace, a comma list if it
// has a top-level comma, or "not recognised" otherwise.
func expandBraceContent(content string) ([]string, bool) {
	if !strings.Contains(content, "{") {
		if items, ok := expandSequence(content); ok {
			return items, true
		}
	}

	if items, ok := splitTopLevelComma(content); ok {
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, Brace(item)...)
		}
		return out, true
	}

	return nil, false
}

// splitTopLevelComma splits content on commas that are not nested inside
// another brace pair. Returns ok=false if there is no top-level comma.
func splitTopLevelComma(content string) ([]string, bool) {
	depth := 0
	start := 0
	var parts []string

	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, content[start:i])
				start = i + 1
			}
		}
	}

	if len(parts) == 0 {
		return nil, false
	}
	parts = append(parts, content[start:])
	return parts, true
}

// expandSequence handles "{start..end[..step]}" where both bounds are
// integers or both are single characters.
func expandSequence(content string) ([]string, bool) {
	parts := strings.Split(content, "..")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, false
	}

	startStr, endStr := parts[0], parts[1]
	stepStr := ""
	if len(parts) == 3 {
		stepStr = parts[2]
	}

	if n, ok := numericSequence(startStr, endStr, stepStr); ok {
		return n, true
	}
	if c, ok := charSequence(startStr, endStr, stepStr); ok {
		return c, true
	}
	return nil, false
}

func numericSequence(startStr, endStr, stepStr string) ([]string, bool) {
	start, err := strconv.Atoi(startStr)
	if err != nil {
		return nil, false
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return nil, false
	}

	step := 1
	if stepStr != "" {
		s, err := strconv.Atoi(stepStr)
		if err != nil || s == 0 {
			return nil, false
		}
		step = s
		if step < 0 {
			step = -step
		}
	}

	dir := 1
	if end < start {
		dir = -1
	}
	step *= dir

	width := 0
	if hasLeadingZeroWidth(startStr) {
		width = len(strings.TrimPrefix(startStr, "-"))
	}
	if w := hasLeadingZeroWidth(endStr); w {
		if wl := len(strings.TrimPrefix(endStr, "-")); wl > width {
			width = wl
		}
	}

	var out []string
	for v := start; (dir > 0 && v <= end) || (dir < 0 && v >= end); v += step {
		out = append(out, padInt(v, width))
		if len(out) > MaxNumericSequence {
			return nil, false
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func hasLeadingZeroWidth(s string) bool {
	s = strings.TrimPrefix(s, "-")
	return len(s) > 1 && s[0] == '0'
}

func padInt(v, width int) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	if neg {
		s = "-" + s
	}
	return s
}

func charSequence(startStr, endStr, stepStr string) ([]string, bool) {
	if len(startStr) != 1 || len(endStr) != 1 {
		return nil, false
	}
	start, end := rune(startStr[0]), rune(endStr[0])

	step := 1
	if stepStr != "" {
		s, err := strconv.Atoi(stepStr)
		if err != nil || s == 0 {
			return nil, false
		}
		step = s
		if step < 0 {
			step = -step
		}
	}

	dir := 1
	if end < start {
		dir = -1
	}
	step *= dir

	var out []string
	for v := start; (dir > 0 && v <= end) || (dir < 0 && v >= end); v += rune(step) {
		out = append(out, string(v))
		if len(out) > MaxCharSequence {
			return nil, false
		}
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}
