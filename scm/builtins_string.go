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

import "strings"

// concat accepts strings exclusively; use `string` first to render a
// non-string value.
func builtinConcat(args []Value) []Value {
	var b strings.Builder
	for _, a := range args {
		if a.Kind() != KindString {
			panic(typeError("concat: expected a string"))
		}
		b.WriteString(a.AsString())
	}
	return []Value{String(b.String())}
}

func registerStringBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, &Declaration{Name: "concat", Desc: "Concatenates strings.", MinParameter: 0, MaxParameter: -1, Fn: builtinConcat})
}
