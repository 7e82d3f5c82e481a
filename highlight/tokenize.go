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

// Package highlight is the L4 syntax highlighter and error detector: it
// tokenizes the line editor's edit buffer for SGR colorization and scans
// it for unmatched quotes/brackets and trailing operators, purely for
// display — neither feeds back into expansion or execution.
package highlight

// TokenClass names the syntactic category a Token belongs to, used to
// pick its SGR color.
type TokenClass int

const (
	ClassPlain TokenClass = iota
	ClassCommand
	ClassFlag
	ClassVariable
	ClassString
	ClassComment
)

// Token is one colorizable span of the edit buffer.
type Token struct {
	Class TokenClass
	Start int
	End   int
	Text  string
}

// Tokenize scans line into colorizable spans: the first word as
// command/keyword, "-"-leading words as flags, "$"-prefixed words as
// variables, quote-to-quote spans as strings, and "#" to end of line as
// a comment.
func Tokenize(line string) []Token {
	var tokens []Token
	i := 0
	firstWord := true

	for i < len(line) {
		c := line[i]

		switch {
		case c == ' ' || c == '\t':
			i++
			continue

		case c == '#':
			tokens = append(tokens, Token{Class: ClassComment, Start: i, End: len(line), Text: line[i:]})
			return tokens

		case c == '\'' || c == '"':
			end := findClosingQuote(line, i, c)
			tokens = append(tokens, Token{Class: ClassString, Start: i, End: end, Text: line[i:end]})
			i = end
			firstWord = false

		case c == '$':
			end := wordEnd(line, i)
			tokens = append(tokens, Token{Class: ClassVariable, Start: i, End: end, Text: line[i:end]})
			i = end
			firstWord = false

		case c == '-' && !firstWord:
			end := wordEnd(line, i)
			tokens = append(tokens, Token{Class: ClassFlag, Start: i, End: end, Text: line[i:end]})
			i = end

		default:
			end := wordEnd(line, i)
			word := line[i:end]
			class := ClassPlain
			if firstWord {
				class = ClassCommand
			}
			tokens = append(tokens, Token{Class: class, Start: i, End: end, Text: word})
			i = end
			firstWord = false
		}
	}

	return tokens
}

// findClosingQuote returns the index just past the matching close quote,
// or len(line) if the quote is unmatched (error detection handles
// reporting that separately).
func findClosingQuote(line string, start int, quote byte) int {
	for i := start + 1; i < len(line); i++ {
		if line[i] == quote {
			return i + 1
		}
	}
	return len(line)
}

func wordEnd(line string, start int) int {
	i := start + 1
	for i < len(line) && line[i] != ' ' && line[i] != '\t' {
		i++
	}
	return i
}
