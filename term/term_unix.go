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

//go:build !windows

package term

import (
	"golang.org/x/sys/unix"
)

// rawState on Unix is simply the termios snapshot taken before raw mode
// was enabled.
type rawState struct {
	termios unix.Termios
}

// enableRaw clears ICANON/ECHO/ISIG/IEXTEN, IXON, ICRNL/BRKINT/INPCK/ISTRIP
// and OPOST, sets 8-bit chars
// and tunes VMIN/VTIME so a read returns within ~100ms even with no bytes
// available. It returns the pre-existing termios so restoreRaw can put it
// back exactly.
func enableRaw(fd uintptr) (rawState, error) {
	orig, err := unix.IoctlGetTermios(int(fd), ioctlGetTermios)
	if err != nil {
		return rawState{}, err
	}

	raw := *orig

	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1

	if err = unix.IoctlSetTermios(int(fd), ioctlSetTermios, &raw); err != nil {
		return rawState{}, err
	}

	return rawState{termios: *orig}, nil
}

func restoreRaw(fd uintptr, saved rawState) error {
	return unix.IoctlSetTermios(int(fd), ioctlSetTermios, &saved.termios)
}

func windowSize(fd uintptr) (rows, cols int, err error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}

	return int(ws.Row), int(ws.Col), nil
}
