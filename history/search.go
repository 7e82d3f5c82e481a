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

package history

import (
	"sort"
	"strings"
)

// Match is one ranked search result.
type Match struct {
	Number  int
	Command string
	Score   float64
}

// RankedSearch scores every resident command against query and returns up
// to k candidates, highest score first. Comparison is case-insensitive.
// Feeds the editor's Ctrl+R incremental search.
func (r *Ring) RankedSearch(query string, k int) []Match {
	if query == "" || k <= 0 {
		return nil
	}

	r.mu.RLock()
	n := len(r.entries)
	snapshot := make([]entry, n)
	copy(snapshot, r.entries)
	r.mu.RUnlock()

	q := strings.ToLower(query)
	matches := make([]Match, 0, n)

	for i, e := range snapshot {
		cmd := strings.ToLower(e.cmd)
		score, ok := scoreMatch(q, cmd)
		if !ok {
			continue
		}

		// recency: newest (highest index) scores up to 15, oldest 0.
		recency := 0.0
		if n > 1 {
			recency = float64(i) / float64(n-1) * 15.0
		} else if n == 1 {
			recency = 15.0
		}
		score += recency

		lengthBonus := float64(len(q)) / float64(len(cmd)) * 5.0
		if lengthBonus > 5.0 {
			lengthBonus = 5.0
		}
		score += lengthBonus

		matches = append(matches, Match{Number: e.number, Command: e.cmd, Score: score})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > k {
		matches = matches[:k]
	}
	return matches
}

// scoreMatch returns the base+position score for cmd against query q, and
// whether cmd matches at all (exact, prefix, substring, or fuzzy).
func scoreMatch(q, cmd string) (float64, bool) {
	switch {
	case q == cmd:
		return 100, true
	case strings.HasPrefix(cmd, q):
		return 80 + positionBonus(0, len(cmd)), true
	}

	if idx := strings.Index(cmd, q); idx >= 0 {
		return 60 + positionBonus(idx, len(cmd)), true
	}

	if fz, ok := fuzzyScore(q, cmd); ok {
		return 20 + fz*30, true
	}

	return 0, false
}

// positionBonus rewards an earlier match position; capped at 20 so it
// never outweighs the base-category gap between exact/prefix/substring.
func positionBonus(idx, length int) float64 {
	if length == 0 {
		return 0
	}
	b := (1.0 - float64(idx)/float64(length)) * 20.0
	if b < 0 {
		return 0
	}
	return b
}

// fuzzyScore implements the subsequence fuzzy metric: 0.6 weight on the
// longest run of consecutive matched characters relative to pattern
// length, 0.4 weight on one minus the (capped) total gap between matched
// characters relative to target length.
func fuzzyScore(pattern, target string) (float64, bool) {
	if len(pattern) == 0 || len(target) == 0 {
		return 0, false
	}

	pi := 0
	maxConsecutive, consecutive := 0, 0
	gaps := 0
	lastMatch := -1

	for ti := 0; ti < len(target) && pi < len(pattern); ti++ {
		if target[ti] == pattern[pi] {
			if lastMatch >= 0 {
				gaps += ti - lastMatch - 1
			}
			lastMatch = ti
			consecutive++
			if consecutive > maxConsecutive {
				maxConsecutive = consecutive
			}
			pi++
		} else {
			consecutive = 0
		}
	}

	if pi < len(pattern) {
		return 0, false
	}

	if gaps > len(target) {
		gaps = len(target)
	}

	consecutiveTerm := float64(maxConsecutive) / float64(len(pattern))
	gapTerm := 1.0 - float64(gaps)/float64(len(target))

	return 0.6*consecutiveTerm + 0.4*gapTerm, true
}
