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
	"os"
	"os/signal"
	"syscall"
)

// watch registers the three Unix signals named in §6, SIGINT, SIGTERM and
// SIGWINCH, through os/signal. os/signal installs every handler with
// SA_RESTART, so none of the three interrupts a blocked read; in raw mode
// a read still returns within the VTIME timeout of about 100ms.
func (s *signalState) watch() {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, syscall.SIGINT, syscall.SIGTERM)

	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)

	go func() {
		for {
			select {
			case sig := <-interrupt:
				if sig == syscall.SIGTERM {
					s.pending.Store(SignalTerminate)
				} else {
					s.pending.Store(SignalInterrupt)
				}
			case <-winch:
				s.winsize.Store(true)
			case <-s.stop:
				signal.Stop(interrupt)
				signal.Stop(winch)
				return
			}
		}
	}()
}
