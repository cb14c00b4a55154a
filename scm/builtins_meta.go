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

// registerMetaBuiltins wires the reflective operations that need the
// session's own expander and top-level environment rather than just their
// arguments: eval and expand both re-enter the session's own pipeline, and
// apply lets a procedure be called with an already-built argument list.
func registerMetaBuiltins(env *Env, syms *SymbolTable, ex *Expander) {
	Declare(env, syms, &Declaration{
		Name: "expand", MinParameter: 1, MaxParameter: 1,
		Desc: "Macro-expands a form to a fixed point without evaluating it.",
		Fn: func(args []Value) []Value {
			return []Value{ex.Expand(args[0])}
		},
	})
	Declare(env, syms, &Declaration{
		Name: "eval", MinParameter: 1, MaxParameter: 1,
		Desc: "Expands and evaluates a form in the top-level environment.",
		Fn: func(args []Value) []Value {
			expanded := ex.Expand(args[0])
			return []Value{Eval(expanded, env)}
		},
	})
	Declare(env, syms, &Declaration{
		Name: "apply", MinParameter: 1, MaxParameter: -1,
		Desc: "Calls a procedure, appending the elements of its final argument (a list) to the preceding arguments.",
		Fn: func(args []Value) []Value {
			if len(args) < 1 {
				panic(arityError("apply: expected a procedure"))
			}
			proc := args[0]
			var callArgs []Value
			if len(args) > 1 {
				callArgs = append(callArgs, args[1:len(args)-1]...)
				callArgs = append(callArgs, ListToSlice(args[len(args)-1])...)
			}
			return Apply(proc, callArgs)
		},
	})
	Declare(env, syms, &Declaration{
		Name: "help", MinParameter: 0, MaxParameter: 1,
		Desc: "Returns the built-in registry, or details for a single function name, as a string.",
		Fn: func(args []Value) []Value {
			name := ""
			if len(args) == 1 {
				if args[0].Kind() != KindString {
					panic(typeError("help: expected a string"))
				}
				name = args[0].AsString()
			}
			var lines []string
			Help(func(line string) { lines = append(lines, line) }, name)
			out := ""
			for i, l := range lines {
				if i > 0 {
					out += "\n"
				}
				out += l
			}
			return []Value{String(out)}
		},
	})
}
