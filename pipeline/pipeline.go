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

// Package pipeline chains the two expansion stages a typed line goes
// through before dispatch: history expansion runs first and can rewrite
// the whole line (!!, !42, ^old^new), then each resulting word is run
// through brace, tilde, variable and glob expansion in turn.
package pipeline

import (
	"github.com/sabouaram/goshell/errors/pool"
	"github.com/sabouaram/goshell/expand"
	"github.com/sabouaram/goshell/globexp"
	"github.com/sabouaram/goshell/history"
	liblog "github.com/sabouaram/goshell/logger"
)

// Pipeline bundles the stores and expanders one expansion pass needs.
type Pipeline struct {
	History *history.Ring
	Glob    *globexp.Expander
	Log     liblog.Logger
}

// New builds a Pipeline. A nil log gets a discarding logger.
func New(h *history.Ring, g *globexp.Expander, log liblog.Logger) *Pipeline {
	if log == nil {
		log = liblog.New(nil)
	}
	return &Pipeline{History: h, Glob: g, Log: log}
}

// Expand runs line through history expansion, then word-splits the
// result and runs brace, variable/tilde and glob expansion over each
// word, returning the final argument vector. Every word is expanded
// even if an earlier one fails; all failures are collected and
// returned together as a single error.
func (p *Pipeline) Expand(line string, ctx expand.Context, cwd string) ([]string, error) {
	expanded, changed := p.History.Expand(line, history.Context{CurrentLine: line})
	if changed {
		p.Log.Debug("history expansion rewrote line", map[string]interface{}{"line": expanded})
	}

	failures := pool.New()

	var out []string
	for _, word := range history.SplitWords(expanded) {
		words, err := p.expandWord(word, ctx, cwd)
		if err != nil {
			p.Log.Warning("word expansion failed", map[string]interface{}{"word": word, "error": err.Error()})
			failures.Add(err)
			continue
		}
		out = append(out, words...)
	}

	if err := failures.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

// expandWord applies brace expansion (which can fan one word into many),
// then variable/tilde/command substitution and glob expansion to each
// resulting piece.
func (p *Pipeline) expandWord(word string, ctx expand.Context, cwd string) ([]string, error) {
	pieces := expand.Brace(word)

	var out []string
	for _, piece := range pieces {
		varExpanded, err := expand.Variable(piece, ctx)
		if err != nil {
			return nil, err
		}

		globbed := p.Glob.Expand(varExpanded, cwd)
		out = append(out, globbed...)
	}
	return out, nil
}

// InvalidateCwd notifies the glob cache that cwd's contents may have
// changed, to be called after any directory-changing dispatch.
func (p *Pipeline) InvalidateCwd(cwd string) {
	p.Glob.InvalidateCwd(cwd)
}
