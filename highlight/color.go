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

import (
	"sort"

	"github.com/fatih/color"
)

// classColor maps a TokenClass to the fatih/color attributes the console
// package's SetColor/GetColor machinery already knows how to apply.
func classColor(c TokenClass) *color.Color {
	switch c {
	case ClassCommand:
		return color.New(color.FgGreen, color.Bold)
	case ClassFlag:
		return color.New(color.FgCyan)
	case ClassVariable:
		return color.New(color.FgMagenta)
	case ClassString:
		return color.New(color.FgYellow)
	case ClassComment:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.Reset)
	}
}

// errorColor overrides a token class color for byte ranges flagged by
// Errors: underlined red, matching spec's "additional underlined-red SGR
// that overrides the regular token colour".
var errorColor = color.New(color.FgRed, color.Underline)

// Render colorizes line, applying errs (as returned by Errors) as an
// override on top of the regular per-token coloring.
func Render(line string, errs []Diagnostic) string {
	tokens := Tokenize(line)

	flagged := make([]bool, len(line)+1)
	for _, d := range errs {
		for i := d.Position; i < d.Position+d.Length && i < len(flagged); i++ {
			flagged[i] = true
		}
	}

	var out []byte
	last := 0

	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Start < tokens[j].Start })

	for _, t := range tokens {
		if t.Start > last {
			out = append(out, line[last:t.Start]...)
		}

		if spanFlagged(flagged, t.Start, t.End) {
			out = append(out, errorColor.Sprint(t.Text)...)
		} else {
			out = append(out, classColor(t.Class).Sprint(t.Text)...)
		}

		last = t.End
	}

	if last < len(line) {
		out = append(out, line[last:]...)
	}

	return string(out)
}

func spanFlagged(flagged []bool, start, end int) bool {
	for i := start; i < end && i < len(flagged); i++ {
		if flagged[i] {
			return true
		}
	}
	return false
}
