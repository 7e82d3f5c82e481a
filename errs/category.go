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

// Package errs holds the error categories shared across the terminal
// substrate, the line editor and the expansion pipeline. It follows the
// same registered-code-with-message pattern as console, so a
// bare CodeError value alone names the category without unwrapping a
// parent chain.
package errs

import "github.com/sabouaram/goshell/errors"

const (
	// Interrupted is returned by the line editor when the user presses
	// Ctrl+C mid-edit. The terminal is restored to cooked mode before
	// this is raised.
	Interrupted errors.CodeError = iota + errors.MinPkgErrs

	// TerminalNotAvailable is returned by raw-mode toggling or a
	// window-size query when stdin/stdout is not a TTY.
	TerminalNotAvailable

	// ExpansionTooLong is returned when a single expansion step exceeds
	// its intermediate-buffer limit; the offending word is left
	// unexpanded by the caller.
	ExpansionTooLong

	// InvalidPattern is the category for a malformed glob or
	// history-search pattern. No code in this module returns it; the glob
	// matcher treats a bracket or group it cannot parse as literal text.
	InvalidPattern

	// IO wraps the write error that stops bio.Writer.Flush before its
	// buffer is drained; the read side does not use it.
	IO
)

func init() {
	errors.RegisterIdFctMessage(Interrupted, getMessage)
}

func getMessage(code errors.CodeError) (message string) {
	switch code {
	case Interrupted:
		return "interrupted by user"
	case TerminalNotAvailable:
		return "terminal not available"
	case ExpansionTooLong:
		return "expansion exceeded its buffer limit"
	case InvalidPattern:
		return "invalid pattern"
	case IO:
		return "i/o error"
	}

	return ""
}
