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

import "github.com/sabouaram/goshell/history"

// searchState drives the Ctrl+R incremental reverse-search mode: a
// supplemented feature built directly on history.RankedSearch, re-run on
// every keystroke against the ring.
type searchState struct {
	ring     *history.Ring
	query    []byte
	original string
	match    string
	rank     int
}

func newSearchState(ring *history.Ring, original string) *searchState {
	s := &searchState{ring: ring, original: original}
	s.refresh()
	return s
}

func (s *searchState) refresh() {
	matches := s.ring.RankedSearch(string(s.query), s.rank+1)
	if len(matches) == 0 || s.rank >= len(matches) {
		s.match = ""
		return
	}
	s.match = matches[s.rank].Command
}

// stepSearch feeds one raw byte into the reverse-search prompt. Returns
// the (possibly nil, meaning "exit search mode") next state and whether
// the caller should treat the byte as consumed without further
// dispatch.
func (e *Editor) stepSearch(s *searchState, b byte) (*searchState, bool) {
	switch b {
	case cr, lf:
		if s.match != "" {
			e.buf.setString(s.match)
		}
		e.redrawFull()
		return nil, true

	case esc:
		e.buf.setString(s.original)
		e.redrawFull()
		return nil, true

	case ctrlC:
		e.buf.setString(s.original)
		e.redrawFull()
		return nil, true

	case ctrlR:
		s.rank++
		s.refresh()
		e.renderSearch(s)
		return s, true

	case bs, bs2:
		if len(s.query) > 0 {
			s.query = s.query[:len(s.query)-1]
			s.rank = 0
			s.refresh()
		}
		e.renderSearch(s)
		return s, true

	default:
		if b >= 0x20 && b < 0x7F {
			s.query = append(s.query, b)
			s.rank = 0
			s.refresh()
		}
		e.renderSearch(s)
		return s, true
	}
}

func (e *Editor) renderSearch(s *searchState) {
	e.ansi.Clear()
	e.ansi.EraseLine(0)
	e.out.WriteString("\r" + e.ansi.String())

	e.out.WriteString("(reverse-i-search)`")
	e.out.WriteString(string(s.query))
	e.out.WriteString("': ")
	e.out.WriteString(s.match)
	e.out.Flush()
}
