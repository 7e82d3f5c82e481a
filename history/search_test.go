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

package history_test

import (
	"github.com/sabouaram/goshell/history"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("RankedSearch", func() {
	It("returns nil for an empty query", func() {
		r := history.New(10)
		r.Push("echo hello")
		Expect(r.RankedSearch("", 5)).To(BeEmpty())
	})

	It("ranks an exact match above a substring match", func() {
		r := history.New(10)
		r.Push("git status")
		r.Push("git")

		matches := r.RankedSearch("git", 5)
		Expect(matches).ToNot(BeEmpty())
		Expect(matches[0].Command).To(Equal("git"))
	})

	It("ranks a prefix match above a plain substring match", func() {
		r := history.New(10)
		r.Push("xx git")
		r.Push("git status")

		matches := r.RankedSearch("git", 5)
		Expect(matches).ToNot(BeEmpty())
		Expect(matches[0].Command).To(Equal("git status"))
	})

	It("is case-insensitive", func() {
		r := history.New(10)
		r.Push("ECHO HELLO")

		matches := r.RankedSearch("echo", 5)
		Expect(matches).ToNot(BeEmpty())
		Expect(matches[0].Command).To(Equal("ECHO HELLO"))
	})

	It("caps results at k", func() {
		r := history.New(10)
		for i := 0; i < 5; i++ {
			r.Push("git " + string(rune('a'+i)))
		}

		matches := r.RankedSearch("git", 2)
		Expect(matches).To(HaveLen(2))
	})

	It("excludes commands that do not fuzzy-match the query at all", func() {
		r := history.New(10)
		r.Push("totally unrelated")

		matches := r.RankedSearch("zzz", 5)
		Expect(matches).To(BeEmpty())
	})
})
