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

import "math/big"

// anyDecimal reports whether any operand forces the whole computation to
// Decimal.
func anyDecimal(args []Value) bool {
	for _, a := range args {
		if a.Kind() == KindDecimal {
			return true
		}
	}
	return false
}

func requireNumber(v Value, who string) {
	if v.Kind() != KindInt && v.Kind() != KindDecimal {
		panic(typeError(who + ": expected a number"))
	}
}

func builtinAdd(args []Value) []Value {
	for _, a := range args {
		requireNumber(a, "+")
	}
	if anyDecimal(args) {
		sum := toDecimal(Int(0))
		for _, a := range args {
			sum = sum.Add(toDecimal(a))
		}
		return []Value{Decimal(sum)}
	}
	sum := big.NewInt(0)
	for _, a := range args {
		sum.Add(sum, a.AsBigInt())
	}
	return []Value{BigInt(sum)}
}

func builtinSub(args []Value) []Value {
	if len(args) == 0 {
		panic(arityError("-: expected at least 1 argument"))
	}
	for _, a := range args {
		requireNumber(a, "-")
	}
	if len(args) == 1 {
		if args[0].Kind() == KindDecimal {
			return []Value{NegateDecimal(args[0])}
		}
		return builtinSub([]Value{Int(0), args[0]})
	}
	if anyDecimal(args) {
		acc := toDecimal(args[0])
		for _, a := range args[1:] {
			acc = acc.Sub(toDecimal(a))
		}
		return []Value{Decimal(acc)}
	}
	acc := new(big.Int).Set(args[0].AsBigInt())
	for _, a := range args[1:] {
		acc.Sub(acc, a.AsBigInt())
	}
	return []Value{BigInt(acc)}
}

func builtinMul(args []Value) []Value {
	for _, a := range args {
		requireNumber(a, "*")
	}
	if anyDecimal(args) {
		acc := toDecimal(Int(1))
		for _, a := range args {
			acc = acc.Mul(toDecimal(a))
		}
		return []Value{Decimal(acc)}
	}
	acc := big.NewInt(1)
	for _, a := range args {
		acc.Mul(acc, a.AsBigInt())
	}
	return []Value{BigInt(acc)}
}

// builtinDiv: a Decimal operand makes the whole division go through
// shopspring/decimal's DivRound, rounded to 28 decimal places; pure integer
// division (even when it does not come out even) stays integer and floors
// toward negative infinity rather than the Euclidean convention big.Int's
// own Div/DivMod implement.
func builtinDiv(args []Value) []Value {
	if len(args) < 2 {
		panic(arityError("/: expected at least 2 arguments"))
	}
	for _, a := range args {
		requireNumber(a, "/")
	}
	if anyDecimal(args) {
		acc := toDecimal(args[0])
		for _, a := range args[1:] {
			d := toDecimal(a)
			if d.IsZero() {
				panic(domainError("/: division by zero"))
			}
			acc = acc.DivRound(d, 28)
		}
		return []Value{Decimal(acc)}
	}
	acc := new(big.Int).Set(args[0].AsBigInt())
	for _, a := range args[1:] {
		divisor := a.AsBigInt()
		if divisor.Sign() == 0 {
			panic(domainError("/: division by zero"))
		}
		acc = floorDivInt(acc, divisor)
	}
	return []Value{BigInt(acc)}
}

// floorDivInt divides a by b rounding the quotient toward negative
// infinity, unlike big.Int's own Div/DivMod, which round toward negative
// infinity only for a positive divisor (Euclidean semantics for negative
// divisors differ from floor semantics).
func floorDivInt(a, b *big.Int) *big.Int {
	q := new(big.Int)
	r := new(big.Int)
	q.QuoRem(a, b, r)
	if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
		q.Sub(q, big.NewInt(1))
	}
	return q
}

func chainCompare(args []Value, who string, ok func(cmp int) bool) []Value {
	if len(args) < 2 {
		panic(arityError(who + ": expected at least 2 arguments"))
	}
	for _, a := range args {
		requireNumber(a, who)
	}
	for i := 0; i+1 < len(args); i++ {
		if !ok(numericCompare(args[i], args[i+1])) {
			return []Value{False}
		}
	}
	return []Value{True}
}

// builtinNumEq implements `=` as general structural/value equality, not
// just numeric comparison: it chains Equal across all arguments, so
// numbers, strings, symbols, cons cells and vectors are all valid operands.
func builtinNumEq(args []Value) []Value {
	if len(args) < 2 {
		panic(arityError("=: expected at least 2 arguments"))
	}
	for i := 0; i+1 < len(args); i++ {
		if !Equal(args[i], args[i+1]) {
			return []Value{False}
		}
	}
	return []Value{True}
}
func builtinNumNe(args []Value) []Value {
	if len(args) != 2 {
		panic(arityError("!=: expected exactly 2 arguments"))
	}
	return []Value{Bool(!Equal(args[0], args[1]))}
}
func builtinLt(args []Value) []Value    { return chainCompare(args, "<", func(c int) bool { return c < 0 }) }
func builtinLe(args []Value) []Value    { return chainCompare(args, "<=", func(c int) bool { return c <= 0 }) }
func builtinGt(args []Value) []Value    { return chainCompare(args, ">", func(c int) bool { return c > 0 }) }
func builtinGe(args []Value) []Value    { return chainCompare(args, ">=", func(c int) bool { return c >= 0 }) }

func registerArithBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, &Declaration{Name: "+", Desc: "Sums its arguments. Any Decimal operand promotes the result to Decimal.", MinParameter: 0, MaxParameter: -1, Fn: builtinAdd})
	Declare(env, syms, &Declaration{Name: "-", Desc: "Subtracts arguments left to right; negates a single argument.", MinParameter: 1, MaxParameter: -1, Fn: builtinSub})
	Declare(env, syms, &Declaration{Name: "*", Desc: "Multiplies its arguments.", MinParameter: 0, MaxParameter: -1, Fn: builtinMul})
	Declare(env, syms, &Declaration{Name: "/", Desc: "Divides arguments left to right. Integer division floors toward negative infinity; any Decimal operand switches to decimal division.", MinParameter: 2, MaxParameter: -1, Fn: builtinDiv})
	Declare(env, syms, &Declaration{Name: "=", Desc: "Reports whether all arguments are equal: numbers by magnitude, strings by text, symbols by identity, lists and vectors element-wise.", MinParameter: 2, MaxParameter: -1, Fn: builtinNumEq})
	Declare(env, syms, &Declaration{Name: "!=", Desc: "Reports whether two values are not equal in the sense of =.", MinParameter: 2, MaxParameter: 2, Fn: builtinNumNe})
	Declare(env, syms, &Declaration{Name: "<", Desc: "Reports whether arguments are strictly increasing.", MinParameter: 2, MaxParameter: -1, Fn: builtinLt})
	Declare(env, syms, &Declaration{Name: "<=", Desc: "Reports whether arguments are non-decreasing.", MinParameter: 2, MaxParameter: -1, Fn: builtinLe})
	Declare(env, syms, &Declaration{Name: ">", Desc: "Reports whether arguments are strictly decreasing.", MinParameter: 2, MaxParameter: -1, Fn: builtinGt})
	Declare(env, syms, &Declaration{Name: ">=", Desc: "Reports whether arguments are non-increasing.", MinParameter: 2, MaxParameter: -1, Fn: builtinGe})
}
