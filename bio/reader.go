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

// Package bio is the buffered I/O layer (L1): line- and byte-oriented
// buffered reads and writes over stdio, with EOF-as-nil semantics and short
// writes retried to completion.
package bio

import (
	"errors"
	"io"
	"strings"
)

// ReadBufferSize is the size of the read-ahead buffer over standard input.
const ReadBufferSize = 8192

// Reader is a buffered byte reader tailored to the raw-mode read loop: a
// short-timeout read that returns no bytes is reported as "no data", not
// as an error or EOF, so the editor can poll signals and retry.
type Reader struct {
	r        io.Reader
	buf      []byte
	pos, end int
}

// NewReader wraps r with an 8KiB read-ahead buffer.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, buf: make([]byte, ReadBufferSize)}
}

func (r *Reader) fill() error {
	n, err := r.r.Read(r.buf)
	r.pos, r.end = 0, n

	if n > 0 {
		return nil
	}

	return err
}

// ReadByte reads the next byte. ok is false with a nil error when the
// underlying reader returned zero bytes without error (the raw-mode
// short-timeout case, i.e. "no data yet"); err is io.EOF at end of input.
func (r *Reader) ReadByte() (b byte, ok bool, err error) {
	if r.pos >= r.end {
		if err = r.fill(); err != nil {
			if errors.Is(err, io.EOF) {
				return 0, false, io.EOF
			}
			return 0, false, err
		}

		if r.end == 0 {
			return 0, false, nil
		}
	}

	b = r.buf[r.pos]
	r.pos++
	return b, true, nil
}

// ReadLine reads bytes up to and including a newline, in cooked-mode
// fallback paths where the caller is not driving a raw-mode byte loop. It
// strips a trailing "\r\n" or "\n". At end of input a partial line is
// returned with a nil error; io.EOF is returned only when no bytes were read.
func (r *Reader) ReadLine() (string, error) {
	var sb strings.Builder

	for {
		b, ok, err := r.ReadByte()
		if err != nil {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}

		if !ok {
			continue
		}

		if b == '\n' {
			s := sb.String()
			return strings.TrimSuffix(s, "\r"), nil
		}

		sb.WriteByte(b)
	}
}
