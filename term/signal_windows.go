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
	"os"
	"os/signal"

	"golang.org/x/sys/windows"
)

// watch installs the Windows equivalents named in §6: CTRL_C and
// CTRL_BREAK map to the interrupt/terminate cell. There is no console
// resize event on this platform equivalent to SIGWINCH, so winsize_dirty
// is left for callers to set by polling GetConsoleScreenBufferInfo
// themselves if they need live-resize redraws on Windows.
func (s *signalState) watch() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt, windows.SIGBREAK)

	go func() {
		for {
			select {
			case sig := <-ch:
				if sig == windows.SIGBREAK {
					s.pending.Store(SignalTerminate)
				} else {
					s.pending.Store(SignalInterrupt)
				}
			case <-s.stop:
				signal.Stop(ch)
				return
			}
		}
	}()
}
