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

func builtinCons(args []Value) []Value {
	if len(args) != 2 {
		panic(arityError("cons: expected exactly 2 arguments"))
	}
	return []Value{ConsPair(args[0], args[1])}
}

func builtinHead(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("head: expected exactly 1 argument"))
	}
	if args[0].Kind() != KindCons {
		panic(typeError("head: expected a cons"))
	}
	return []Value{args[0].AsCons().Head}
}

func builtinTail(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("tail: expected exactly 1 argument"))
	}
	if args[0].Kind() != KindCons {
		panic(typeError("tail: expected a cons"))
	}
	return []Value{args[0].AsCons().Tail}
}

// uncons returns the head and tail of a cons as two values, for callers
// that want both without two separate calls.
func builtinUncons(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("uncons: expected exactly 1 argument"))
	}
	if args[0].Kind() != KindCons {
		panic(typeError("uncons: expected a cons"))
	}
	c := args[0].AsCons()
	return []Value{c.Head, c.Tail}
}

func builtinList(args []Value) []Value {
	return []Value{List(args...)}
}

func builtinAppend(args []Value) []Value {
	if len(args) == 0 {
		return []Value{Nil}
	}
	var items []Value
	for i, a := range args[:len(args)-1] {
		if !IsProperList(a) {
			panic(typeError("append: argument " + itoaHelper(i) + " is not a proper list"))
		}
		items = append(items, ListToSlice(a)...)
	}
	last := args[len(args)-1]
	result := last
	for i := len(items) - 1; i >= 0; i-- {
		result = ConsPair(items[i], result)
	}
	return []Value{result}
}

func itoaHelper(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// length dispatches across lists, strings and vectors (shared with
// builtins_string.go / builtins_vector.go's declarations of the same name
// is avoided by registering it once here).
func builtinLength(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("length: expected exactly 1 argument"))
	}
	switch args[0].Kind() {
	case KindNil:
		return []Value{Int(0)}
	case KindCons:
		return []Value{Int(int64(ListLen(args[0])))}
	case KindString:
		return []Value{Int(int64(len([]rune(args[0].AsString()))))}
	case KindVector:
		return []Value{Int(int64(len(args[0].AsVector().Items)))}
	default:
		panic(typeError("length: expected a list, string or vector"))
	}
}

func builtinMap(args []Value) []Value {
	if len(args) < 2 {
		panic(arityError("map: expected a procedure and at least 1 list"))
	}
	proc := args[0]
	lists := make([][]Value, len(args)-1)
	n := -1
	for i, l := range args[1:] {
		lists[i] = ListToSlice(l)
		if n == -1 || len(lists[i]) < n {
			n = len(lists[i])
		}
	}
	out := make([]Value, n)
	for i := 0; i < n; i++ {
		callArgs := make([]Value, len(lists))
		for j := range lists {
			callArgs[j] = lists[j][i]
		}
		results := Apply(proc, callArgs)
		if len(results) != 1 {
			panic(arityError("map: procedure must return exactly one value"))
		}
		out[i] = results[0]
	}
	return []Value{List(out...)}
}

func builtinFilter(args []Value) []Value {
	if len(args) != 2 {
		panic(arityError("filter: expected a procedure and a list"))
	}
	proc := args[0]
	items := ListToSlice(args[1])
	var out []Value
	for _, it := range items {
		results := Apply(proc, []Value{it})
		if len(results) != 1 {
			panic(arityError("filter: procedure must return exactly one value"))
		}
		if results[0].Truthy() {
			out = append(out, it)
		}
	}
	return []Value{List(out...)}
}

// reduce is a left fold seeded by the list's own first element: a
// singleton list returns that element untouched, and an empty list has no
// seed to return, so it is a domain error rather than silently falling
// back to some identity value.
func builtinReduce(args []Value) []Value {
	if len(args) != 2 {
		panic(arityError("reduce: expected a procedure and a list"))
	}
	proc := args[0]
	items := ListToSlice(args[1])
	if len(items) == 0 {
		panic(domainError("reduce: empty list"))
	}
	acc := items[0]
	for _, it := range items[1:] {
		results := Apply(proc, []Value{acc, it})
		if len(results) != 1 {
			panic(arityError("reduce: procedure must return exactly one value"))
		}
		acc = results[0]
	}
	return []Value{acc}
}

func registerListBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, &Declaration{Name: "cons", Desc: "Builds a pair from two values.", MinParameter: 2, MaxParameter: 2, Fn: builtinCons})
	Declare(env, syms, &Declaration{Name: "head", Desc: "Returns the first element of a pair.", MinParameter: 1, MaxParameter: 1, Fn: builtinHead})
	Declare(env, syms, &Declaration{Name: "tail", Desc: "Returns the second element of a pair.", MinParameter: 1, MaxParameter: 1, Fn: builtinTail})
	Declare(env, syms, &Declaration{Name: "uncons", Desc: "Returns the head and tail of a pair as two values.", MinParameter: 1, MaxParameter: 1, Fn: builtinUncons})
	Declare(env, syms, &Declaration{Name: "list", Desc: "Builds a proper list from its arguments.", MinParameter: 0, MaxParameter: -1, Fn: builtinList})
	Declare(env, syms, &Declaration{Name: "append", Desc: "Concatenates lists; the final argument is used as-is for its tail.", MinParameter: 0, MaxParameter: -1, Fn: builtinAppend})
	Declare(env, syms, &Declaration{Name: "length", Desc: "Returns the number of elements in a list, string or vector.", MinParameter: 1, MaxParameter: 1, Fn: builtinLength})
	Declare(env, syms, &Declaration{Name: "map", Desc: "Applies a procedure across one or more lists in parallel, stopping at the shortest.", MinParameter: 2, MaxParameter: -1, Fn: builtinMap})
	Declare(env, syms, &Declaration{Name: "filter", Desc: "Keeps the elements of a list for which a predicate is truthy.", MinParameter: 2, MaxParameter: 2, Fn: builtinFilter})
	Declare(env, syms, &Declaration{Name: "reduce", Desc: "Left-folds a procedure over a list, seeded by the list's first element.", MinParameter: 2, MaxParameter: 2, Fn: builtinReduce})
}
