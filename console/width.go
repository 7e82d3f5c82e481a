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

package console

import "github.com/mattn/go-runewidth"

// DisplayWidth returns the number of terminal columns str will occupy.
// PadLeft/PadRight/PadCenter count runes, which is correct for alignment of
// plain text but wrong for redraw math once wide glyphs (CJK, emoji) are in
// play; callers doing cursor arithmetic against a real terminal should use
// this instead of utf8.RuneCountInString.
func DisplayWidth(str string) int {
	return runewidth.StringWidth(str)
}

// Truncate shortens str to at most width display columns, never splitting a
// multi-column glyph in half.
func Truncate(str string, width int) string {
	return runewidth.Truncate(str, width, "")
}
