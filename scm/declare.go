/*
Copyright (C) 2023  Carl-Philip Hänsch

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
package scm

import (
	"fmt"
	"strings"
)

// Declaration documents and registers one built-in procedure: its calling
// convention for (help ...), and the Go function it binds.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int // -1 means unbounded
	Params       []DeclarationParameter
	Fn           BuiltinFunc
}

type DeclarationParameter struct {
	Name string
	Type string // any | boolean | integer | decimal | string | symbol | cons | vector | procedure | port
	Desc string
}

var declarations = make(map[string]*Declaration)

// Declare registers def and binds its Fn into env under def.Name. Called
// once per built-in when a session's root environment is built.
func Declare(env *Env, syms *SymbolTable, def *Declaration) {
	declarations[def.Name] = def
	arityChecked := def.Fn
	if def.Fn != nil {
		min, max := def.MinParameter, def.MaxParameter
		arityChecked = func(args []Value) []Value {
			if len(args) < min || (max >= 0 && len(args) > max) {
				panic(arityError(def.Name + ": wrong number of arguments"))
			}
			return def.Fn(args)
		}
		env.Define(syms.Intern(def.Name), newBuiltinProc(def.Name, arityChecked))
	}
}

// Help prints the built-in registry, or details for a single function name,
// to w, matching the (help ...) REPL convention.
func Help(w func(string), fn string) {
	if fn == "" {
		w("Available functions:")
		w("")
		names := make([]string, 0, len(declarations))
		for name := range declarations {
			names = append(names, name)
		}
		for _, name := range names {
			def := declarations[name]
			w("  " + name + ": " + strings.Split(def.Desc, "\n")[0])
		}
		w("")
		w(`get further information with (help "functionname")`)
		return
	}
	def, ok := declarations[fn]
	if !ok {
		panic(domainError("function not found: " + fn))
	}
	w("Help for: " + def.Name)
	w("===")
	w("")
	w(def.Desc)
	w("")
	w(fmt.Sprintf("Allowed number of parameters: %d-%d", def.MinParameter, def.MaxParameter))
	w("")
	for _, p := range def.Params {
		w(" - " + p.Name + " (" + p.Type + "): " + p.Desc)
	}
}
