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
	"math/big"

	"github.com/shopspring/decimal"
)

func builtinToInteger(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("integer: expected exactly 1 argument"))
	}
	switch args[0].Kind() {
	case KindInt:
		return []Value{args[0]}
	case KindDecimal:
		return []Value{BigInt(args[0].AsDecimal().Truncate(0).BigInt())}
	case KindString:
		bi := new(big.Int)
		if _, ok := bi.SetString(args[0].AsString(), 10); !ok {
			panic(domainError("integer: not a valid integer literal: " + args[0].AsString()))
		}
		return []Value{BigInt(bi)}
	default:
		panic(typeError("integer: cannot convert this value"))
	}
}

func builtinToDecimal(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("decimal: expected exactly 1 argument"))
	}
	switch args[0].Kind() {
	case KindDecimal:
		return []Value{args[0]}
	case KindInt:
		return []Value{Decimal(decimal.NewFromBigInt(args[0].AsBigInt(), 0))}
	case KindString:
		v, ok := DecimalFromString(args[0].AsString())
		if !ok {
			panic(domainError("decimal: not a valid decimal literal: " + args[0].AsString()))
		}
		return []Value{v}
	default:
		panic(typeError("decimal: cannot convert this value"))
	}
}

func builtinToString(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("string: expected exactly 1 argument"))
	}
	return []Value{String(Display(args[0]))}
}

func builtinDisplay(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("display: expected exactly 1 argument"))
	}
	return []Value{String(Display(args[0]))}
}

func builtinListToVector(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("list-to-vector: expected exactly 1 argument"))
	}
	return []Value{VectorOf(ListToSlice(args[0]))}
}

func builtinVectorToList(args []Value) []Value {
	if len(args) != 1 {
		panic(arityError("vector-to-list: expected exactly 1 argument"))
	}
	if args[0].Kind() != KindVector {
		panic(typeError("vector-to-list: expected a vector"))
	}
	items := args[0].AsVector().Items
	cp := make([]Value, len(items))
	copy(cp, items)
	return []Value{List(cp...)}
}

func registerConvertBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, &Declaration{Name: "integer", Desc: "Converts a decimal (truncating) or a base-10 string to an integer.", MinParameter: 1, MaxParameter: 1, Fn: builtinToInteger})
	Declare(env, syms, &Declaration{Name: "decimal", Desc: "Converts an integer or a string to a decimal.", MinParameter: 1, MaxParameter: 1, Fn: builtinToDecimal})
	Declare(env, syms, &Declaration{Name: "string", Desc: "Renders any value the way display would, as a string.", MinParameter: 1, MaxParameter: 1, Fn: builtinToString})
	Declare(env, syms, &Declaration{Name: "symbol", Desc: "Interns a string as a symbol.", MinParameter: 1, MaxParameter: 1, Fn: func(args []Value) []Value {
		if args[0].Kind() != KindString {
			panic(typeError("symbol: expected a string"))
		}
		return []Value{syms.SymbolValue(args[0].AsString())}
	}})
	Declare(env, syms, &Declaration{Name: "display", Desc: "Renders any value as a string in read-back-able form (strings quoted and escaped).", MinParameter: 1, MaxParameter: 1, Fn: builtinDisplay})
	Declare(env, syms, &Declaration{Name: "list-to-vector", Desc: "Copies a list's elements into a new vector.", MinParameter: 1, MaxParameter: 1, Fn: builtinListToVector})
	Declare(env, syms, &Declaration{Name: "vector-to-list", Desc: "Copies a vector's elements into a new list.", MinParameter: 1, MaxParameter: 1, Fn: builtinVectorToList})
}
