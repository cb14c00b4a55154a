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

// and, or and not are ordinary built-ins, not special forms: every argument
// is already evaluated by the time these run, so they cannot short-circuit.
// They return canonical #t/#f rather than the last operand.
func builtinAnd(args []Value) []Value {
	for _, a := range args {
		if !a.Truthy() {
			return []Value{False}
		}
	}
	return []Value{True}
}

func builtinOr(args []Value) []Value {
	for _, a := range args {
		if a.Truthy() {
			return []Value{True}
		}
	}
	return []Value{False}
}

func builtinNot(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("not: expected exactly 1 argument"))
	}
	return []Value{Bool(!args[0].Truthy())}
}

func registerLogicBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, &Declaration{Name: "and", Desc: "Reports whether every argument is truthy. Evaluates all arguments; does not short-circuit.", MinParameter: 0, MaxParameter: -1, Fn: builtinAnd})
	Declare(env, syms, &Declaration{Name: "or", Desc: "Reports whether any argument is truthy. Evaluates all arguments; does not short-circuit.", MinParameter: 0, MaxParameter: -1, Fn: builtinOr})
	Declare(env, syms, &Declaration{Name: "not", Desc: "Negates a single truthy/falsy value.", MinParameter: 1, MaxParameter: 1, Fn: builtinNot})
}
