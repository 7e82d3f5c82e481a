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

// Package editor is the L2 line editor: prompt display, an in-place edit
// buffer with cursor/length invariants, history navigation, and
// programmable Tab completion, built directly on term.Terminal,
// term.ANSI and bio.Reader/Writer.
package editor

// MinBufferCapacity is the minimum edit-buffer capacity.
const MinBufferCapacity = 4096

// buffer is the in-progress line: a byte slice with cursor and length
// indices satisfying 0 <= cursor <= length <= capacity.
type buffer struct {
	data     []byte
	cursor   int
	length   int
}

func newBuffer(capacity int) *buffer {
	if capacity < MinBufferCapacity {
		capacity = MinBufferCapacity
	}
	return &buffer{data: make([]byte, capacity)}
}

func (b *buffer) String() string {
	return string(b.data[:b.length])
}

func (b *buffer) reset() {
	b.cursor = 0
	b.length = 0
}

func (b *buffer) setString(s string) {
	n := copy(b.data, s)
	b.length = n
	b.cursor = n
}

// insert inserts s at the cursor, shifting the tail right. Silently
// truncates at capacity rather than growing, since the buffer is a fixed
// allocation per spec's data model.
func (b *buffer) insert(s string) {
	room := len(b.data) - b.length
	if room <= 0 {
		return
	}
	if len(s) > room {
		s = s[:room]
	}

	copy(b.data[b.cursor+len(s):b.length+len(s)], b.data[b.cursor:b.length])
	copy(b.data[b.cursor:b.cursor+len(s)], s)

	b.length += len(s)
	b.cursor += len(s)
}

// deleteAt removes the byte at the cursor (the "delete" direction, as
// opposed to backspace which removes the byte before it).
func (b *buffer) deleteAt() bool {
	if b.cursor >= b.length {
		return false
	}
	copy(b.data[b.cursor:b.length-1], b.data[b.cursor+1:b.length])
	b.length--
	return true
}

// backspace removes the byte immediately before the cursor.
func (b *buffer) backspace() bool {
	if b.cursor == 0 {
		return false
	}
	copy(b.data[b.cursor-1:b.length-1], b.data[b.cursor:b.length])
	b.length--
	b.cursor--
	return true
}

func (b *buffer) moveStart() { b.cursor = 0 }
func (b *buffer) moveEnd()   { b.cursor = b.length }

func (b *buffer) moveLeft() bool {
	if b.cursor == 0 {
		return false
	}
	b.cursor--
	return true
}

func (b *buffer) moveRight() bool {
	if b.cursor >= b.length {
		return false
	}
	b.cursor++
	return true
}

// killToEnd deletes from the cursor to the end of the line, as Ctrl+K.
func (b *buffer) killToEnd() {
	b.length = b.cursor
}

// killToStart deletes from the start of the line to the cursor, as
// Ctrl+U.
func (b *buffer) killToStart() {
	copy(b.data[0:b.length-b.cursor], b.data[b.cursor:b.length])
	b.length -= b.cursor
	b.cursor = 0
}

// deleteWordBack deletes the word before the cursor, as Ctrl+W: skip
// trailing spaces, then delete non-space characters. Only ASCII space is
// treated as a separator.
func (b *buffer) deleteWordBack() {
	end := b.cursor
	start := end

	for start > 0 && b.data[start-1] == ' ' {
		start--
	}
	for start > 0 && b.data[start-1] != ' ' {
		start--
	}

	copy(b.data[start:b.length-(end-start)], b.data[end:b.length])
	b.length -= end - start
	b.cursor = start
}

// wordStart returns the index of the start of the word under (or just
// before) the cursor, for Tab completion's prefix resolution.
func (b *buffer) wordStart() int {
	i := b.cursor
	for i > 0 && b.data[i-1] != ' ' {
		i--
	}
	return i
}
