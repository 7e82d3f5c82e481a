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

// Command goshell is the REPL entrypoint: it wires the raw-mode line
// editor, the history/brace/variable/glob expansion pipeline and the
// command registry together behind a cobra root command.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sabouaram/goshell/console"
	"github.com/sabouaram/goshell/editor"
	"github.com/sabouaram/goshell/expand"
	"github.com/sabouaram/goshell/globexp"
	"github.com/sabouaram/goshell/history"
	liblog "github.com/sabouaram/goshell/logger"
	loglvl "github.com/sabouaram/goshell/logger/level"
	"github.com/sabouaram/goshell/pipeline"
	"github.com/sabouaram/goshell/shell"
	"github.com/sabouaram/goshell/shell/command"
	"github.com/sabouaram/goshell/shell/tty"

	fcolor "github.com/fatih/color"
	libcbr "github.com/sabouaram/goshell/cobra"
	spfcbr "github.com/spf13/cobra"
)

const globCacheSize = 256

func main() {
	root := &spfcbr.Command{
		Use:   "goshell",
		Short: "An interactive shell with history, completion and expansion",
		Run: func(cmd *spfcbr.Command, args []string) {
			os.Exit(runREPL())
		},
	}

	log := liblog.New(os.Stderr)
	log.SetLevel(loglvl.ErrorLevel)

	libcbr.AddCommandCompletion(root, "goshell", log)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runREPL() int {
	console.SetColor(console.ColorPrint, int(fcolor.FgCyan))
	console.ColorPrint.Println(console.PadCenter(" goshell ", 40, "="))

	log := liblog.New(os.Stderr)

	ttySaver, err := tty.New(os.Stdin, true)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	tty.SignalHandler(ttySaver)
	defer tty.Restore(ttySaver)

	hist := history.New(history.DefaultCapacity)
	globExp := globexp.NewExpander(globCacheSize)
	pipe := pipeline.New(hist, globExp, log)

	sh := builtinShell()

	ed := editor.New(editor.Config{
		In:      os.Stdin,
		Out:     os.Stdout,
		History: hist,
		Completer: func(line string, wordStart, wordEnd int) []string {
			return completeCommandName(sh, line[wordStart:wordEnd])
		},
	})

	cwd, _ := os.Getwd()
	ctx := expand.NewContextFromEnviron("goshell", os.Args[1:])

	for {
		line, err := ed.ReadLine("$ ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return 0
			}
			if errors.Is(err, editor.ErrInterrupted) {
				continue
			}
			fmt.Fprintln(os.Stderr, err)
			return 1
		}

		if line == "" {
			continue
		}

		args, err := pipe.Expand(line, ctx, cwd)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if len(args) == 0 {
			continue
		}

		sh.Run(os.Stdout, os.Stderr, args)

		if args[0] == "cd" {
			if newCwd, err := os.Getwd(); err == nil {
				pipe.InvalidateCwd(cwd)
				cwd = newCwd
			}
		}
	}
}

// builtinShell registers the handful of commands a standalone REPL needs
// to be useful on its own: exit/quit, help listing and cd (glob caching
// is invalidated by the caller after cd runs).
func builtinShell() shell.Shell {
	sh := shell.New(nil)

	sh.Add("", command.New("exit", "Exit the shell", func(out, err io.Writer, args []string) {
		os.Exit(0)
	}))
	sh.Add("", command.New("quit", "Exit the shell", func(out, err io.Writer, args []string) {
		os.Exit(0)
	}))
	sh.Add("", command.New("cd", "Change the working directory", func(out, errw io.Writer, args []string) {
		dir := os.Getenv("HOME")
		if len(args) > 0 {
			dir = args[0]
		}
		if err := os.Chdir(dir); err != nil {
			fmt.Fprintln(errw, err)
		}
	}))
	sh.Add("", command.New("help", "List available commands", func(out, err io.Writer, args []string) {
		sh.Walk(func(name string, item command.Command) bool {
			fmt.Fprintf(out, "%-16s %s\n", name, item.Describe())
			return true
		})
	}))

	return sh
}

func completeCommandName(sh shell.Shell, prefix string) []string {
	var matches []string
	sh.Walk(func(name string, item command.Command) bool {
		if len(name) >= len(prefix) && name[:len(prefix)] == prefix {
			matches = append(matches, name)
		}
		return true
	})
	return matches
}
