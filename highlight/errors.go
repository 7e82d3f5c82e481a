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

package highlight

// Diagnostic is one reported syntax problem in an edit-buffer line.
type Diagnostic struct {
	Position int
	Length   int
	Message  string
}

// Errors scans line for unmatched quotes, unmatched brackets/parens/
// braces, and a trailing "|" or "&" not preceded by an escaping
// backslash. It is a pure function over the buffer text; the editor passes
// its result to Render, which underlines the flagged spans in red. The
// messages themselves are not displayed.
func Errors(line string) []Diagnostic {
	var out []Diagnostic

	out = append(out, checkQuotes(line)...)
	out = append(out, checkBrackets(line)...)
	out = append(out, checkTrailingOperator(line)...)

	return out
}

func checkQuotes(line string) []Diagnostic {
	var out []Diagnostic

	for _, quote := range []byte{'\'', '"'} {
		openAt := -1
		for i := 0; i < len(line); i++ {
			if line[i] == '\\' && quote == '"' {
				i++
				continue
			}
			if line[i] == quote {
				if openAt < 0 {
					openAt = i
				} else {
					openAt = -1
				}
			}
		}
		if openAt >= 0 {
			name := "single"
			if quote == '"' {
				name = "double"
			}
			out = append(out, Diagnostic{Position: openAt, Length: 1, Message: "unmatched " + name + " quote"})
		}
	}

	return out
}

var bracketPairs = map[byte]byte{'(': ')', '[': ']', '{': '}'}
var bracketNames = map[byte]string{'(': "parenthesis", '[': "bracket", '{': "brace"}

func checkBrackets(line string) []Diagnostic {
	var out []Diagnostic
	var stack []int
	inSingle, inDouble := false, false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\'' && !inDouble:
			inSingle = !inSingle
		case c == '"' && !inSingle:
			inDouble = !inDouble
		case inSingle || inDouble:
			// quoted content does not participate in bracket matching.
		case bracketPairs[c] != 0:
			stack = append(stack, i)
		case c == ')' || c == ']' || c == '}':
			if len(stack) == 0 || bracketPairs[line[stack[len(stack)-1]]] != c {
				out = append(out, Diagnostic{Position: i, Length: 1, Message: "unmatched closing " + closerName(c)})
			} else {
				stack = stack[:len(stack)-1]
			}
		}
	}

	for _, pos := range stack {
		out = append(out, Diagnostic{
			Position: pos,
			Length:   1,
			Message:  "unmatched opening " + bracketNames[line[pos]],
		})
	}

	return out
}

func closerName(c byte) string {
	switch c {
	case ')':
		return "parenthesis"
	case ']':
		return "bracket"
	case '}':
		return "brace"
	}
	return "bracket"
}

func checkTrailingOperator(line string) []Diagnostic {
	trimmed := line
	for len(trimmed) > 0 && (trimmed[len(trimmed)-1] == ' ' || trimmed[len(trimmed)-1] == '\t') {
		trimmed = trimmed[:len(trimmed)-1]
	}
	if len(trimmed) == 0 {
		return nil
	}

	last := trimmed[len(trimmed)-1]
	if last != '|' && last != '&' {
		return nil
	}

	if len(trimmed) >= 2 && trimmed[len(trimmed)-2] == '\\' {
		return nil
	}

	return []Diagnostic{{
		Position: len(trimmed) - 1,
		Length:   1,
		Message:  "incomplete command after operator",
	}}
}
