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

package bio_test

import (
	"bytes"
	"errors"

	"github.com/sabouaram/goshell/bio"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// shortWriter writes at most max bytes per call, simulating a partial write.
type shortWriter struct {
	buf bytes.Buffer
	max int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if w.max > 0 && len(p) > w.max {
		p = p[:w.max]
	}
	return w.buf.Write(p)
}

// failingWriter always fails after writing n bytes.
type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	return w.n, w.err
}

var _ = Describe("Writer", func() {
	Describe("Write", func() {
		It("buffers below WriteBufferSize without touching the underlying writer", func() {
			var buf bytes.Buffer
			w := bio.NewWriter(&buf)

			n, err := w.Write([]byte("hello"))
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(5))
			Expect(buf.Len()).To(Equal(0))
		})

		It("flushes automatically once the buffer would overflow", func() {
			var buf bytes.Buffer
			w := bio.NewWriter(&buf)

			big := bytes.Repeat([]byte("a"), bio.WriteBufferSize+100)
			n, err := w.Write(big)
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(len(big)))
			Expect(buf.Len()).To(Equal(len(big) - 100))
		})

		It("WriteString delegates to Write", func() {
			var buf bytes.Buffer
			w := bio.NewWriter(&buf)

			n, err := w.WriteString("abc")
			Expect(err).ToNot(HaveOccurred())
			Expect(n).To(Equal(3))
			Expect(w.Flush()).ToNot(HaveOccurred())
			Expect(buf.String()).To(Equal("abc"))
		})
	})

	Describe("Flush", func() {
		It("is a no-op on an empty buffer", func() {
			var buf bytes.Buffer
			w := bio.NewWriter(&buf)
			Expect(w.Flush()).ToNot(HaveOccurred())
			Expect(buf.Len()).To(Equal(0))
		})

		It("retries short writes until the buffer is drained", func() {
			sw := &shortWriter{max: 3}
			w := bio.NewWriter(sw)

			_, err := w.Write([]byte("abcdefgh"))
			Expect(err).ToNot(HaveOccurred())
			Expect(w.Flush()).ToNot(HaveOccurred())
			Expect(sw.buf.String()).To(Equal("abcdefgh"))
		})

		It("wraps an unrecoverable write error", func() {
			fw := &failingWriter{n: 0, err: errors.New("broken pipe")}
			w := bio.NewWriter(fw)

			_, _ = w.Write([]byte("data"))
			err := w.Flush()
			Expect(err).To(HaveOccurred())
		})

		It("reports an error when a flush fails after a partial write", func() {
			fw := &failingWriter{n: 2, err: errors.New("broken pipe")}
			w := bio.NewWriter(fw)

			_, _ = w.Write([]byte("data"))
			err := w.Flush()
			Expect(err).To(HaveOccurred())
		})
	})
})
