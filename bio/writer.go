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

package bio

import (
	"io"

	"github.com/sabouaram/goshell/errs"
)

// WriteBufferSize is the size of the write-behind buffer, chosen to
// amortise the cost of escape-sequence-heavy redraws.
const WriteBufferSize = 8192

// Writer batches writes and flushes once WriteBufferSize is reached or
// Flush is called explicitly. Short writes are retried until the whole
// buffer is drained or a non-retryable error occurs.
type Writer struct {
	w   io.Writer
	buf []byte
}

// NewWriter wraps w with an 8KiB write-behind buffer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, buf: make([]byte, 0, WriteBufferSize)}
}

// Write appends p to the buffer, flushing as needed to keep the buffer at
// or under WriteBufferSize.
func (w *Writer) Write(p []byte) (int, error) {
	n := len(p)

	for len(p) > 0 {
		room := WriteBufferSize - len(w.buf)
		if room <= 0 {
			if err := w.Flush(); err != nil {
				return n - len(p), err
			}
			room = WriteBufferSize
		}

		chunk := p
		if len(chunk) > room {
			chunk = chunk[:room]
		}

		w.buf = append(w.buf, chunk...)
		p = p[len(chunk):]
	}

	return n, nil
}

// WriteString is a convenience wrapper around Write.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Flush writes any buffered bytes to the underlying writer, retrying short
// writes until the buffer is drained.
func (w *Writer) Flush() error {
	if len(w.buf) == 0 {
		return nil
	}

	buf := w.buf
	for len(buf) > 0 {
		n, err := w.w.Write(buf)
		if n > 0 {
			buf = buf[n:]
		}

		if err != nil {
			w.buf = append(w.buf[:0], buf...)
			return errs.IO.Error(err)
		}
	}

	w.buf = w.buf[:0]
	return nil
}
