/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/actinide-lang/actinide/scm"
	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"
	units "github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"
	"github.com/google/btree"
	"github.com/google/uuid"
)

const newprompt = "\033[32m>\033[0m "
const contprompt = "\033[32m.\033[0m "
const resultprompt = "\033[31m=\033[0m "

func main() {
	watchDir := flag.String("watch", "", "re-run any file in DIR when it is written or created")
	scriptFile := flag.String("run", "", "evaluate each form in FILE as its own top-level program, print the last result and exit")
	flag.Parse()

	session := scm.NewSession()
	sessionID := uuid.New()

	if *scriptFile != "" {
		runFile(session, *scriptFile)
		return
	}

	if *watchDir != "" {
		watchAndRepl(session, *watchDir, sessionID)
		return
	}

	repl(session, sessionID)
}

func runFile(session *scm.Session, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "error:", r)
			os.Exit(1)
		}
	}()
	result := session.Run(string(data))
	fmt.Println(scm.Write(result))
}

func watchAndRepl(session *scm.Session, dir string, sessionID uuid.UUID) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, "watch:", err)
		onexit.Exit(1)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintln(os.Stderr, "watch:", err)
		onexit.Exit(1)
	}
	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					reloadFile(session, ev.Name)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintln(os.Stderr, "watch error:", err)
			}
		}
	}()
	repl(session, sessionID)
}

func reloadFile(session *scm.Session, name string) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "reload error in", name, ":", r)
		}
	}()
	data, err := os.ReadFile(name)
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stderr, "reloading", name)
	session.Run(string(data))
}

// repl runs an anti-panic read-eval-print loop: a read error that only got
// as far as an unclosed list keeps accumulating input across lines instead
// of aborting, so multi-line forms type naturally at the prompt.
func repl(session *scm.Session, sessionID uuid.UUID) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:            newprompt,
		HistoryFile:       ".actinide-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	onexit.Register(func() {
		fmt.Fprintln(os.Stderr, "\nsession", sessionID, "closed")
	})
	defer onexit.Exit(0)

	fmt.Printf("actinide %s — type (help) for a list of built-ins, :env/:stats to inspect the session\n", sessionID)

	oldline := ""
	for {
		line, err := l.Readline()
		line = oldline + line
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			oldline = ""
			l.SetPrompt(newprompt)
			continue
		} else if err == io.EOF {
			break
		} else if err != nil {
			panic(err)
		}
		if line == "" {
			continue
		}

		if oldline == "" && handleMetaCommand(line) {
			continue
		}

		func() {
			defer func() {
				if r := recover(); r != nil {
					if scmErr, ok := r.(scm.Error); ok && scmErr.Kind == scm.ReadError && scmErr.Message == "expecting matching )" {
						oldline = line + "\n"
						l.SetPrompt(contprompt)
						return
					}
					fmt.Println("panic:", r, string(debug.Stack()))
					oldline = ""
					l.SetPrompt(newprompt)
				}
			}()
			var b bytes.Buffer
			result := session.Eval(session.Read(line))
			b.WriteString(scm.Write(result))
			fmt.Print(resultprompt)
			fmt.Println(b.String())
			oldline = ""
			l.SetPrompt(newprompt)
		}()
	}
}

// handleMetaCommand handles the REPL-only `:` commands; it never touches
// the language's own evaluator. Returns true if line was a meta command.
func handleMetaCommand(line string) bool {
	switch line {
	case ":env":
		printSortedNames(builtinNames())
		return true
	case ":stats":
		printStats()
		return true
	}
	return false
}

// printSortedNames orders names with a google/btree ordered set before
// printing, giving a stable, alphabetic :env listing regardless of the
// built-in registry's internal map iteration order.
func printSortedNames(names []string) {
	tr := btree.NewG(32, func(a, b string) bool { return a < b })
	for _, n := range names {
		tr.ReplaceOrInsert(n)
	}
	tr.Ascend(func(n string) bool {
		fmt.Println(" ", n)
		return true
	})
}

func builtinNames() []string {
	var names []string
	scm.Help(func(line string) {
		if len(line) > 2 && line[0] == ' ' && line[1] == ' ' {
			names = append(names, line)
		}
	}, "")
	return names
}

func printStats() {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	fmt.Println("heap in use:", units.HumanSize(float64(mem.HeapInuse)))
	fmt.Println("total allocated:", units.HumanSize(float64(mem.TotalAlloc)))
}
