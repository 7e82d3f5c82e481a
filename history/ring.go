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

// Package history is the L3 history store and expander: a fixed-capacity
// ring of past command lines addressable by absolute number or offset from
// newest, plus the "!"-family expansion operators and a ranked fuzzy
// search used by incremental search.
package history

import "sync"

// DefaultCapacity is the recommended ring size.
const DefaultCapacity = 1000

// entry pairs a command string with the absolute number it was assigned
// on insertion; numbers are monotonic and never reused even after the
// ring wraps and the slot holding them is overwritten.
type entry struct {
	number int
	cmd    string
}

// Ring is a fixed-capacity, insertion-ordered store of past command
// lines. The zero value is not usable; construct with New.
type Ring struct {
	mu      sync.RWMutex
	cap     int
	entries []entry
	nextNum int
}

// New creates a Ring of the given capacity. A non-positive capacity is
// replaced with DefaultCapacity.
func New(capacity int) *Ring {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ring{
		cap:     capacity,
		entries: make([]entry, 0, capacity),
		nextNum: 1,
	}
}

// Push appends cmd, dropping the oldest entry once at capacity.
// Duplicate-adjacent entries (identical to the most recently pushed
// command) are collapsed: the ring is left unchanged and no new number is
// assigned.
func (r *Ring) Push(cmd string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if n := len(r.entries); n > 0 && r.entries[n-1].cmd == cmd {
		return
	}

	if len(r.entries) >= r.cap {
		r.entries = r.entries[1:]
	}

	r.entries = append(r.entries, entry{number: r.nextNum, cmd: cmd})
	r.nextNum++
}

// Len returns the number of entries currently stored.
func (r *Ring) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// GetByNumber returns the command with the given 1-indexed absolute
// number, if it is still resident in the ring.
func (r *Ring) GetByNumber(n int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.number == n {
			return e.cmd, true
		}
	}
	return "", false
}

// GetOffset returns the entry k steps back from the newest: k=1 is the
// most recent command ("!!"), k=2 the one before it, and so on. A
// non-positive k returns false.
func (r *Ring) GetOffset(k int) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if k <= 0 {
		return "", false
	}

	idx := len(r.entries) - k
	if idx < 0 || idx >= len(r.entries) {
		return "", false
	}
	return r.entries[idx].cmd, true
}

// FindByPrefix returns the most recent command whose leading word starts
// with prefix.
func (r *Ring) FindByPrefix(prefix string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.entries) - 1; i >= 0; i-- {
		leading := r.entries[i].cmd
		if sp := indexSpace(leading); sp >= 0 {
			leading = leading[:sp]
		}
		if hasPrefix(leading, prefix) {
			return r.entries[i].cmd, true
		}
	}
	return "", false
}

// FindBySubstring returns the most recent command containing substr.
func (r *Ring) FindBySubstring(substr string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := len(r.entries) - 1; i >= 0; i-- {
		if containsString(r.entries[i].cmd, substr) {
			return r.entries[i].cmd, true
		}
	}
	return "", false
}

// Walk iterates entries from oldest to newest, calling fn with the
// absolute number and command of each.
func (r *Ring) Walk(fn func(number int, cmd string)) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		fn(e.number, e.cmd)
	}
}

// Snapshot returns a copy of all resident commands, oldest first.
func (r *Ring) Snapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.cmd
	}
	return out
}

func indexSpace(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' {
			return i
		}
	}
	return -1
}

func hasPrefix(s, prefix string) bool {
	if len(prefix) > len(s) {
		return false
	}
	return s[:len(prefix)] == prefix
}

func containsString(s, substr string) bool {
	if len(substr) == 0 {
		return true
	}
	if len(substr) > len(s) {
		return false
	}
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
