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

func builtinVector(args []Value) []Value {
	items := make([]Value, len(args))
	copy(items, args)
	return []Value{VectorOf(items)}
}

func vectorIndex(v Value, idx Value, who string) int {
	if v.Kind() != KindVector {
		panic(typeError(who + ": expected a vector"))
	}
	if idx.Kind() != KindInt {
		panic(typeError(who + ": expected an integer index"))
	}
	i := int(idx.AsBigInt().Int64())
	items := v.AsVector().Items
	if i < 0 || i >= len(items) {
		panic(domainError(who + ": index out of range"))
	}
	return i
}

// vector-add appends in place, returning the same vector value so callers
// can chain or ignore the result.
func builtinVectorAdd(args []Value) []Value {
	if len(args) != 2 {
		panic(arityError("vector-add: expected exactly 2 arguments"))
	}
	if args[0].Kind() != KindVector {
		panic(typeError("vector-add: expected a vector"))
	}
	vec := args[0].AsVector()
	vec.Items = append(vec.Items, args[1])
	return []Value{args[0]}
}

func builtinVectorGet(args []Value) []Value {
	if len(args) != 2 {
		panic(arityError("vector-get: expected exactly 2 arguments"))
	}
	i := vectorIndex(args[0], args[1], "vector-get")
	return []Value{args[0].AsVector().Items[i]}
}

func builtinVectorSet(args []Value) []Value {
	if len(args) != 3 {
		panic(arityError("vector-set: expected exactly 3 arguments"))
	}
	i := vectorIndex(args[0], args[1], "vector-set")
	args[0].AsVector().Items[i] = args[2]
	return []Value{args[0]}
}

func builtinVectorLength(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("vector-length: expected exactly 1 argument"))
	}
	if args[0].Kind() != KindVector {
		panic(typeError("vector-length: expected a vector"))
	}
	return []Value{Int(int64(len(args[0].AsVector().Items)))}
}

func registerVectorBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, &Declaration{Name: "vector", Desc: "Builds a vector from its arguments.", MinParameter: 0, MaxParameter: -1, Fn: builtinVector})
	Declare(env, syms, &Declaration{Name: "vector-add", Desc: "Appends a value to a vector in place.", MinParameter: 2, MaxParameter: 2, Fn: builtinVectorAdd})
	Declare(env, syms, &Declaration{Name: "vector-get", Desc: "Returns the element at a zero-based index.", MinParameter: 2, MaxParameter: 2, Fn: builtinVectorGet})
	Declare(env, syms, &Declaration{Name: "vector-set", Desc: "Replaces the element at a zero-based index in place.", MinParameter: 3, MaxParameter: 3, Fn: builtinVectorSet})
	Declare(env, syms, &Declaration{Name: "vector-length", Desc: "Returns the number of elements in a vector.", MinParameter: 1, MaxParameter: 1, Fn: builtinVectorLength})
}
