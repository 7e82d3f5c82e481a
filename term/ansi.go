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

package term

import (
	"strconv"
	"strings"
)

const csi = "\x1b["

// ANSI is a growable byte builder for CSI/SGR sequences. It owns no
// terminal state and performs no I/O; callers write its Bytes()/String()
// to whichever descriptor they hold.
type ANSI struct {
	b strings.Builder
}

// NewANSI returns an empty builder.
func NewANSI() *ANSI {
	return &ANSI{}
}

func (a *ANSI) write(s string) *ANSI {
	a.b.WriteString(s)
	return a
}

func (a *ANSI) csiN(n int, final byte) *ANSI {
	a.b.WriteString(csi)
	a.b.WriteString(strconv.Itoa(n))
	a.b.WriteByte(final)
	return a
}

// Reset appends SGR reset (0m).
func (a *ANSI) Reset() *ANSI { return a.write(csi + "0m") }

// Bold appends bold on/off.
func (a *ANSI) Bold(on bool) *ANSI {
	if on {
		return a.write(csi + "1m")
	}
	return a.write(csi + "22m")
}

// FgBasic appends a basic foreground color, n in 0..7; bright selects the
// 9n variant.
func (a *ANSI) FgBasic(n int, bright bool) *ANSI {
	base := 30
	if bright {
		base = 90
	}
	return a.csiN(base+clamp7(n), 'm')
}

// BgBasic appends a basic background color, n in 0..7; bright selects the
// 10n variant.
func (a *ANSI) BgBasic(n int, bright bool) *ANSI {
	base := 40
	if bright {
		base = 100
	}
	return a.csiN(base+clamp7(n), 'm')
}

func clamp7(n int) int {
	if n < 0 {
		return 0
	}
	if n > 7 {
		return 7
	}
	return n
}

// Fg256 appends a 256-color foreground (38;5;N m).
func (a *ANSI) Fg256(n int) *ANSI {
	return a.write(csi + "38;5;" + strconv.Itoa(n) + "m")
}

// Bg256 appends a 256-color background (48;5;N m).
func (a *ANSI) Bg256(n int) *ANSI {
	return a.write(csi + "48;5;" + strconv.Itoa(n) + "m")
}

// FgRGB appends a 24-bit foreground (38;2;R;G;B m).
func (a *ANSI) FgRGB(r, g, b int) *ANSI {
	return a.write(csi + "38;2;" + join3(r, g, b) + "m")
}

// BgRGB appends a 24-bit background (48;2;R;G;B m).
func (a *ANSI) BgRGB(r, g, b int) *ANSI {
	return a.write(csi + "48;2;" + join3(r, g, b) + "m")
}

func join3(r, g, b int) string {
	return strconv.Itoa(r) + ";" + strconv.Itoa(g) + ";" + strconv.Itoa(b)
}

// CursorUp/Down/Forward/Back append the A/B/C/D cursor-motion sequences.
func (a *ANSI) CursorUp(n int) *ANSI      { return a.csiN(n, 'A') }
func (a *ANSI) CursorDown(n int) *ANSI    { return a.csiN(n, 'B') }
func (a *ANSI) CursorForward(n int) *ANSI { return a.csiN(n, 'C') }
func (a *ANSI) CursorBack(n int) *ANSI    { return a.csiN(n, 'D') }

// CursorTo appends an absolute cursor move to row, col (1-indexed).
func (a *ANSI) CursorTo(row, col int) *ANSI {
	return a.write(csi + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H")
}

// SaveCursor / RestoreCursor append the s/u sequences.
func (a *ANSI) SaveCursor() *ANSI    { return a.write(csi + "s") }
func (a *ANSI) RestoreCursor() *ANSI { return a.write(csi + "u") }

// EraseScreen mode: 0 below, 1 above, 2 all.
func (a *ANSI) EraseScreen(mode int) *ANSI { return a.csiN(mode, 'J') }

// EraseLine mode: 0 right, 1 left, 2 all.
func (a *ANSI) EraseLine(mode int) *ANSI { return a.csiN(mode, 'K') }

// CursorHide / CursorShow append the ?25 l/h sequences.
func (a *ANSI) CursorHide() *ANSI { return a.write(csi + "?25l") }
func (a *ANSI) CursorShow() *ANSI { return a.write(csi + "?25h") }

// AltScreen toggles the ?1049 alternate-screen buffer.
func (a *ANSI) AltScreen(on bool) *ANSI {
	if on {
		return a.write(csi + "?1049h")
	}
	return a.write(csi + "?1049l")
}

// MouseTracking toggles the ?1000 basic mouse-tracking mode.
func (a *ANSI) MouseTracking(on bool) *ANSI {
	if on {
		return a.write(csi + "?1000h")
	}
	return a.write(csi + "?1000l")
}

// QueryCursorPosition appends the 6n device-status-report request; the
// reply arrives asynchronously on stdin as CSI row;col R.
func (a *ANSI) QueryCursorPosition() *ANSI { return a.write(csi + "6n") }

// Bytes returns the accumulated sequence.
func (a *ANSI) Bytes() []byte { return []byte(a.b.String()) }

// String returns the accumulated sequence.
func (a *ANSI) String() string { return a.b.String() }

// Clear empties the builder's buffer. It is not named Reset, to avoid
// colliding with the SGR Reset() above: call Clear to reuse a builder
// across redraws.
func (a *ANSI) Clear() {
	a.b.Reset()
}
