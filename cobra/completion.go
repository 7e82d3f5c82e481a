/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
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
 *
 */

package cobra

import (
	"os"
	"path/filepath"
	"strings"

	liblog "github.com/sabouaram/goshell/logger"
	loglvl "github.com/sabouaram/goshell/logger/level"
	spfcbr "github.com/spf13/cobra"
)

// AddCommandCompletion registers a "completion" subcommand on root that
// generates a shell completion script for bash, zsh, fish or powershell.
// Errors are routed through log instead of returned, matching how the rest
// of the generated command tree reports failures.
func AddCommandCompletion(root *spfcbr.Command, pkg string, log liblog.Logger) {
	desc := "This command will create a completion shell script for simplify the use of this app.\n" +
		"To do this," +
		"\n\t 1- generate a completion script for your shell, like this : " +
		"\n\t\t" + pkg + " completion bash /etc/bash_completion.d/" + pkg +
		"\n\n 2- enable completion into your shell" +
		"\n\t\t example to bash, you need to install the package `bash-completion`" +
		"\n\n 3- enable completion into your shell profile" +
		"\n\t\t example to bash, you need to uncomment the completion section into your /home/<user>/.bashrc" +
		"\n\n"

	cmd := &spfcbr.Command{
		Use:     "completion <Bash|Zsh|PowerShell|Fish> <Completion File to be write>",
		Example: "completion bash /etc/bash_completion.d/" + pkg,
		Short:   "Generate a completion scripts for bash, zsh, fish or powershell",
		Long:    desc,
		Run: func(cmd *spfcbr.Command, args []string) {
			var file string

			if len(args) < 1 {
				log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "missing args", cmd.Usage())
				os.Exit(1)
			} else if len(args) >= 2 {
				file = filepath.Clean(args[1])
				log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "create file path", os.MkdirAll(filepath.Dir(file), 0755))
			}

			switch strings.ToLower(args[0]) {
			case "bash":
				if file == "" {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating bash completion", root.GenBashCompletionV2(os.Stdout, true))
				} else {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating bash completion", root.GenBashCompletionFileV2(file, true))
				}
			case "fish":
				if file == "" {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating fish completion", root.GenFishCompletion(os.Stdout, true))
				} else {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating fish completion", root.GenFishCompletionFile(file, true))
				}
			case "powershell":
				if file == "" {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating powershell completion", root.GenPowerShellCompletionWithDesc(os.Stdout))
				} else {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating powershell completion", root.GenPowerShellCompletionFileWithDesc(file))
				}
			case "zsh":
				if file == "" {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating zsh completion", root.GenZshCompletion(os.Stdout))
				} else {
					log.CheckError(loglvl.ErrorLevel, loglvl.NilLevel, "generating zsh completion", root.GenZshCompletionFile(file))
				}
			default:
				log.Error("unknown completion shell", map[string]interface{}{"shell": args[0]})
				os.Exit(1)
			}
		},
	}

	root.AddCommand(cmd)
}
