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

package editor

import (
	"errors"
	"io"
	"os"

	"github.com/sabouaram/goshell/bio"
	"github.com/sabouaram/goshell/errs"
	"github.com/sabouaram/goshell/highlight"
	"github.com/sabouaram/goshell/history"
	"github.com/sabouaram/goshell/term"
)

// ErrInterrupted is returned by ReadLine when Ctrl+C is pressed or a
// pending SIGINT is observed; it carries the errs.Interrupted code.
var ErrInterrupted error = errs.Interrupted.Error()

const (
	ctrlC = 0x03
	ctrlD = 0x04
	ctrlA = 0x01
	ctrlE = 0x05
	ctrlB = 0x02
	ctrlF = 0x06
	ctrlK = 0x0B
	ctrlU = 0x15
	ctrlW = 0x17
	ctrlR = 0x12
	tab   = 0x09
	bs    = 0x7F
	bs2   = 0x08
	cr    = 0x0D
	lf    = 0x0A
	esc   = 0x1B
)

// Editor is the raw-mode line editor: prompt display, edit buffer,
// history navigation and Tab completion, layered over a term.Terminal
// and buffered bio I/O.
type Editor struct {
	term    *term.Terminal
	in      *bio.Reader
	out     *bio.Writer
	ansi    *term.ANSI
	history *history.Ring
	complete Completer

	buf    *buffer
	prompt string
	comp   completionState
}

// Config bundles an Editor's dependencies.
type Config struct {
	In, Out    *os.File
	History    *history.Ring
	Completer  Completer
	BufferSize int
}

// New builds an Editor. A nil History gets a fresh ring at
// history.DefaultCapacity.
func New(cfg Config) *Editor {
	h := cfg.History
	if h == nil {
		h = history.New(history.DefaultCapacity)
	}
	return &Editor{
		term:     term.New(cfg.In, cfg.Out),
		in:       bio.NewReader(cfg.In),
		out:      bio.NewWriter(cfg.Out),
		ansi:     term.NewANSI(),
		history:  h,
		complete: cfg.Completer,
		buf:      newBuffer(cfg.BufferSize),
	}
}

// ReadLine displays prompt, enables raw mode for the duration of the
// read, and returns the accepted line. Returns io.EOF on Ctrl+D with an
// empty buffer, and ErrInterrupted on Ctrl+C, discarding any partial line.
func (e *Editor) ReadLine(prompt string) (string, error) {
	e.prompt = prompt
	e.buf.reset()

	if e.term.IsTerminal() {
		if err := e.term.EnableRaw(); err != nil {
			return "", err
		}
		e.term.InstallSignalHandlers()
		defer e.term.DisableRaw()
	}

	e.redrawFull()

	var histCursor int
	var savedLine string
	var savingLive bool
	var search *searchState

	for {
		if e.term.PollSignal() == term.SignalInterrupt {
			e.buf.reset()
			e.writeString("^C\r\n")
			return "", ErrInterrupted
		}

		b, ok, err := e.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && e.buf.length == 0 {
				return "", io.EOF
			}
			if errors.Is(err, io.EOF) {
				return e.buf.String(), nil
			}
			return "", err
		}
		if !ok {
			continue
		}

		if search != nil {
			var done bool
			search, done = e.stepSearch(search, b)
			if done {
				continue
			}
			continue
		}

		// Any key other than Tab ends the current completion cycle.
		if b != tab {
			e.comp.reset()
		}

		switch b {
		case cr, lf:
			line := e.buf.String()
			e.writeString("\r\n")
			e.history.Push(line)
			return line, nil

		case ctrlC:
			e.buf.reset()
			e.writeString("^C\r\n")
			return "", ErrInterrupted

		case ctrlD:
			if e.buf.length == 0 {
				e.writeString("\r\n")
				return "", io.EOF
			}
			e.buf.deleteAt()
			e.redrawLine()

		case ctrlA:
			e.buf.moveStart()
			e.redrawLine()
		case ctrlE:
			e.buf.moveEnd()
			e.redrawLine()
		case ctrlB:
			e.buf.moveLeft()
			e.redrawLine()
		case ctrlF:
			e.buf.moveRight()
			e.redrawLine()
		case ctrlK:
			e.buf.killToEnd()
			e.redrawLine()
		case ctrlU:
			e.buf.killToStart()
			e.redrawLine()
		case ctrlW:
			e.buf.deleteWordBack()
			e.redrawLine()

		case ctrlR:
			search = newSearchState(e.history, e.buf.String())
			e.renderSearch(search)

		case tab:
			e.handleTab()

		case bs, bs2:
			e.buf.backspace()
			e.redrawLine()

		case esc:
			e.handleEscape(&histCursor, &savedLine, &savingLive)

		default:
			if b >= 0x20 && b < 0x7F {
				e.buf.insert(string(b))
				e.redrawLine()
			}
		}
	}
}

func (e *Editor) writeString(s string) {
	e.out.WriteString(s)
	e.out.Flush()
}

// handleEscape consumes the two-or-three-byte CSI sequences the spec's
// keybinding table maps to arrows, Home/End and Delete. A bare ESC with
// no following bytes is swallowed.
func (e *Editor) handleEscape(histCursor *int, savedLine *string, savingLive *bool) {
	b1, ok, _ := e.in.ReadByte()
	if !ok || b1 != '[' {
		return
	}
	b2, ok, _ := e.in.ReadByte()
	if !ok {
		return
	}

	switch b2 {
	case 'A': // up: older history
		e.historyUp(histCursor, savedLine, savingLive)
	case 'B': // down: newer history
		e.historyDown(histCursor, savedLine, savingLive)
	case 'C':
		e.buf.moveRight()
		e.redrawLine()
	case 'D':
		e.buf.moveLeft()
		e.redrawLine()
	case 'H':
		e.buf.moveStart()
		e.redrawLine()
	case 'F':
		e.buf.moveEnd()
		e.redrawLine()
	case '3':
		if b3, ok, _ := e.in.ReadByte(); ok && b3 == '~' {
			e.buf.deleteAt()
			e.redrawLine()
		}
	}
}

func (e *Editor) historyUp(histCursor *int, savedLine *string, savingLive *bool) {
	if !*savingLive {
		*savedLine = e.buf.String()
		*savingLive = true
	}
	next := *histCursor + 1
	cmd, ok := e.history.GetOffset(next)
	if !ok {
		return
	}
	*histCursor = next
	e.buf.setString(cmd)
	e.redrawFull()
}

func (e *Editor) historyDown(histCursor *int, savedLine *string, savingLive *bool) {
	if *histCursor <= 0 {
		return
	}
	*histCursor--
	if *histCursor == 0 {
		e.buf.setString(*savedLine)
		*savingLive = false
	} else {
		cmd, ok := e.history.GetOffset(*histCursor)
		if ok {
			e.buf.setString(cmd)
		}
	}
	e.redrawFull()
}

// handleTab resolves the word under the cursor via the Completer. A
// single match splices in and appends a trailing space; multiple
// matches splice in the first candidate and print the full candidate
// list below the line. A repeated Tab at the same splice point cycles
// through the remaining candidates in order.
func (e *Editor) handleTab() {
	if e.complete == nil {
		return
	}

	// A second consecutive Tab at the same splice point cycles through
	// the candidates gathered on the first Tab instead of re-resolving.
	if e.comp.active && e.buf.cursor == e.comp.wordEnd {
		e.comp.index = (e.comp.index + 1) % len(e.comp.candidates)
		next := e.comp.candidates[e.comp.index]
		e.spliceWord(e.comp.wordStart, e.comp.wordEnd, next)
		e.comp.wordEnd = e.comp.wordStart + len(next)
		e.redrawFull()
		return
	}

	start := e.buf.wordStart()
	end := e.buf.cursor
	line := e.buf.String()

	candidates := e.complete(line, start, end)
	e.comp.reset()

	switch len(candidates) {
	case 0:
		return
	case 1:
		replacement := candidates[0] + " "
		e.spliceWord(start, end, replacement)
		e.redrawFull()
	default:
		first := candidates[0]
		e.spliceWord(start, end, first)
		end = start + len(first)

		e.comp.active = true
		e.comp.candidates = candidates
		e.comp.index = 0
		e.comp.wordStart = start
		e.comp.wordEnd = end
		e.redrawFull()
		e.printCandidates(candidates)
		e.redrawFull()
	}
}

func (e *Editor) spliceWord(start, end int, replacement string) {
	e.buf.cursor = end
	for e.buf.cursor > start {
		e.buf.backspace()
	}
	e.buf.insert(replacement)
}

func (e *Editor) printCandidates(items []string) {
	e.writeString("\r\n")
	for i, it := range items {
		if i > 0 {
			e.writeString("  ")
		}
		e.writeString(it)
	}
	e.writeString("\r\n")
}

// redrawFull repaints the prompt and the full buffer, then positions the
// cursor. Used after any edit that can change the line length.
func (e *Editor) redrawFull() {
	e.ansi.Clear()
	e.ansi.EraseLine(0)
	e.out.WriteString("\r" + e.ansi.String())

	line := e.buf.String()
	diags := highlight.Errors(line)
	e.out.WriteString(e.prompt)
	e.out.WriteString(highlight.Render(line, diags))

	e.moveCursorToBufferPosition(len(line))
	e.out.Flush()
}

// redrawLine is the repaint used after single-character edits and cursor
// moves. It delegates to redrawFull, so the prompt and the whole line are
// rewritten; no tail-only partial repaint is done.
func (e *Editor) redrawLine() {
	e.redrawFull()
}

func (e *Editor) moveCursorToBufferPosition(lineLen int) {
	e.ansi.Clear()
	back := lineLen - e.buf.cursor
	if back > 0 {
		e.ansi.CursorBack(back)
	}
	e.out.WriteString(e.ansi.String())
}
