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

package term_test

import (
	"github.com/sabouaram/goshell/term"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ANSI builder", func() {
	It("builds cursor motion sequences", func() {
		Expect(term.NewANSI().CursorUp(3).String()).To(Equal("\x1b[3A"))
		Expect(term.NewANSI().CursorTo(5, 10).String()).To(Equal("\x1b[5;10H"))
	})

	It("builds basic and bright foreground SGR", func() {
		Expect(term.NewANSI().FgBasic(2, false).String()).To(Equal("\x1b[32m"))
		Expect(term.NewANSI().FgBasic(2, true).String()).To(Equal("\x1b[92m"))
	})

	It("builds 256-color and RGB sequences", func() {
		Expect(term.NewANSI().Fg256(208).String()).To(Equal("\x1b[38;5;208m"))
		Expect(term.NewANSI().BgRGB(1, 2, 3).String()).To(Equal("\x1b[48;2;1;2;3m"))
	})

	It("builds erase, cursor visibility and alt-screen toggles", func() {
		Expect(term.NewANSI().EraseLine(2).String()).To(Equal("\x1b[2K"))
		Expect(term.NewANSI().CursorHide().String()).To(Equal("\x1b[?25l"))
		Expect(term.NewANSI().AltScreen(true).String()).To(Equal("\x1b[?1049h"))
		Expect(term.NewANSI().MouseTracking(false).String()).To(Equal("\x1b[?1000l"))
	})

	It("chains calls and accumulates bytes", func() {
		out := term.NewANSI().Reset().Bold(true).FgBasic(1, false).String()
		Expect(out).To(Equal("\x1b[0m\x1b[1m\x1b[31m"))
	})

	It("Clear empties the builder for reuse", func() {
		a := term.NewANSI().Reset()
		a.Clear()
		Expect(a.String()).To(BeEmpty())
	})
})
