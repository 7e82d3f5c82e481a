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
	"os"

	"github.com/sabouaram/goshell/term"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Terminal", func() {
	Describe("New", func() {
		It("defaults to os.Stdin/os.Stdout when given nil", func() {
			tr := term.New(nil, nil)
			Expect(tr).ToNot(BeNil())
		})
	})

	Describe("IsTerminal", func() {
		It("returns false for a non-tty file", func() {
			f, err := os.CreateTemp("", "term-test-*.txt")
			Expect(err).ToNot(HaveOccurred())
			defer func() {
				_ = f.Close()
				_ = os.Remove(f.Name())
			}()

			tr := term.New(f, f)
			Expect(tr.IsTerminal()).To(BeFalse())
		})
	})

	Describe("EnableRaw/DisableRaw symmetry", func() {
		It("fails on a non-tty and leaves DisableRaw a no-op", func() {
			f, err := os.CreateTemp("", "term-test-*.txt")
			Expect(err).ToNot(HaveOccurred())
			defer func() {
				_ = f.Close()
				_ = os.Remove(f.Name())
			}()

			tr := term.New(f, f)

			Expect(tr.EnableRaw()).To(HaveOccurred())
			Expect(tr.DisableRaw()).ToNot(HaveOccurred())
			Expect(tr.IsRaw()).To(BeFalse())
		})

		It("disabling without a prior enable is a no-op", func() {
			tr := term.New(os.Stdin, os.Stdout)
			Expect(tr.DisableRaw()).ToNot(HaveOccurred())
		})
	})

	Describe("WindowSize", func() {
		It("fails with TerminalNotAvailable on a non-tty output", func() {
			f, err := os.CreateTemp("", "term-test-*.txt")
			Expect(err).ToNot(HaveOccurred())
			defer func() {
				_ = f.Close()
				_ = os.Remove(f.Name())
			}()

			tr := term.New(f, f)
			_, _, err = tr.WindowSize()
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("signal polling", func() {
		It("reports SignalNone before any signal arrives", func() {
			tr := term.New(os.Stdin, os.Stdout)
			tr.InstallSignalHandlers()
			Expect(tr.PollSignal()).To(Equal(term.SignalNone))
		})

		It("reports no dirty winsize before a resize", func() {
			tr := term.New(os.Stdin, os.Stdout)
			tr.InstallSignalHandlers()
			Expect(tr.PollWinsizeDirty()).To(BeFalse())
		})

		It("is safe to poll before InstallSignalHandlers is called", func() {
			tr := term.New(os.Stdin, os.Stdout)
			Expect(tr.PollSignal()).To(Equal(term.SignalNone))
			Expect(tr.PollWinsizeDirty()).To(BeFalse())
		})
	})
})
