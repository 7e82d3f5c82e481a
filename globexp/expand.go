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

package globexp

import (
	"os"
	"path/filepath"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
)

// MaxMatches caps the number of filesystem entries a single Expand call
// returns, guarding against pathological patterns on huge directories.
const MaxMatches = 256

// Expander expands glob patterns against the filesystem, optionally
// caching results per cwd+pattern. The zero value has caching disabled.
type Expander struct {
	cache *lru.Cache[string, []string]
}

// NewExpander builds an Expander with an LRU cache of the given size. A
// non-positive size disables caching.
func NewExpander(cacheSize int) *Expander {
	if cacheSize <= 0 {
		return &Expander{}
	}
	c, err := lru.New[string, []string](cacheSize)
	if err != nil {
		return &Expander{}
	}
	return &Expander{cache: c}
}

// InvalidateCwd drops every cached entry for cwd. Callers invoke this on
// every directory-changing command dispatch.
func (e *Expander) InvalidateCwd(cwd string) {
	if e.cache == nil {
		return
	}
	prefix := cwd + "\x00"
	for _, key := range e.cache.Keys() {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			e.cache.Remove(key)
		}
	}
}

// Expand expands pattern against the filesystem rooted at cwd. If
// pattern contains no glob metacharacter, or it matches nothing, the
// literal pattern is returned unchanged (standard shell fallback
// behaviour).
func (e *Expander) Expand(pattern, cwd string) []string {
	if !HasMeta(pattern) {
		return []string{pattern}
	}

	key := cwd + "\x00" + pattern
	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}

	result := e.expandUncached(pattern, cwd)

	if e.cache != nil {
		e.cache.Add(key, result)
	}
	return result
}

func (e *Expander) expandUncached(pattern, cwd string) []string {
	dirPart, basePattern := splitDirBase(pattern)

	dir := dirPart
	if dir == "" {
		dir = "."
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cwd, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{pattern}
	}

	p := Parse(basePattern)

	var names []string
	for _, ent := range entries {
		name := ent.Name()

		if !Match(p.Base, name) {
			continue
		}
		if p.HasExcl && Match(p.Exclusion, name) {
			continue
		}
		if p.Qualifier != QualifierNone && !qualifies(dir, ent, p.Qualifier) {
			continue
		}

		names = append(names, name)
		if len(names) >= MaxMatches {
			break
		}
	}

	if len(names) == 0 {
		return []string{pattern}
	}

	sort.Strings(names)

	out := make([]string, len(names))
	for i, name := range names {
		out[i] = dirPart + name
	}
	return out
}

func qualifies(dir string, ent os.DirEntry, q Qualifier) bool {
	switch q {
	case QualifierDirectory:
		return ent.IsDir()
	case QualifierFile:
		return !ent.IsDir()
	case QualifierSymlink:
		info, err := os.Lstat(filepath.Join(dir, ent.Name()))
		if err != nil {
			return false
		}
		return info.Mode()&os.ModeSymlink != 0
	case QualifierExecutable:
		info, err := ent.Info()
		if err != nil {
			return false
		}
		return !ent.IsDir() && info.Mode()&0111 != 0
	}
	return true
}
