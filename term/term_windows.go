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

//go:build windows

package term

import (
	"golang.org/x/sys/windows"
)

// rawState on Windows is the console mode word read before raw mode was
// applied.
type rawState struct {
	mode uint32
}

func enableRaw(fd uintptr) (rawState, error) {
	h := windows.Handle(fd)

	var orig uint32
	if err := windows.GetConsoleMode(h, &orig); err != nil {
		return rawState{}, err
	}

	mode := orig
	mode &^= windows.ENABLE_LINE_INPUT | windows.ENABLE_ECHO_INPUT | windows.ENABLE_PROCESSED_INPUT
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_INPUT

	if err := windows.SetConsoleMode(h, mode); err != nil {
		return rawState{}, err
	}

	var outMode uint32
	if err := windows.GetConsoleMode(windows.Handle(windows.Stdout), &outMode); err == nil {
		_ = windows.SetConsoleMode(windows.Handle(windows.Stdout), outMode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING)
	}

	return rawState{mode: orig}, nil
}

func restoreRaw(fd uintptr, saved rawState) error {
	return windows.SetConsoleMode(windows.Handle(fd), saved.mode)
}

func windowSize(fd uintptr) (rows, cols int, err error) {
	var info windows.ConsoleScreenBufferInfo
	if err = windows.GetConsoleScreenBufferInfo(windows.Handle(fd), &info); err != nil {
		return 0, 0, err
	}

	cols = int(info.Window.Right-info.Window.Left) + 1
	rows = int(info.Window.Bottom-info.Window.Top) + 1
	return rows, cols, nil
}
