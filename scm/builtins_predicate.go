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

func predicate(name string, test func(Value) bool) *Declaration {
	return &Declaration{
		Name: name, MinParameter: 1, MaxParameter: 1,
		Desc: name + " reports whether its argument is of the matching kind.",
		Fn: func(args []Value) []Value {
			return []Value{Bool(test(args[0]))}
		},
	}
}

func registerPredicateBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, predicate("boolean?", func(v Value) bool { return v.Kind() == KindBool }))
	// cons? also reports true for nil: nil is the empty list,
	// the degenerate case of a cons chain, not a distinct non-pair kind here.
	Declare(env, syms, predicate("cons?", func(v Value) bool { return v.Kind() == KindCons || v.Kind() == KindNil }))
	Declare(env, syms, predicate("decimal?", func(v Value) bool { return v.Kind() == KindDecimal }))
	Declare(env, syms, predicate("integer?", func(v Value) bool { return v.Kind() == KindInt }))
	Declare(env, syms, predicate("list?", func(v Value) bool { return IsProperList(v) }))
	Declare(env, syms, predicate("nil?", func(v Value) bool { return v.Kind() == KindNil }))
	Declare(env, syms, predicate("procedure?", func(v Value) bool { return v.Kind() == KindProc }))
	Declare(env, syms, predicate("string?", func(v Value) bool { return v.Kind() == KindString }))
	Declare(env, syms, predicate("symbol?", func(v Value) bool { return v.Kind() == KindSymbol }))
	Declare(env, syms, predicate("vector?", func(v Value) bool { return v.Kind() == KindVector }))
	Declare(env, syms, predicate("port?", func(v Value) bool { return v.Kind() == KindPort }))
}
