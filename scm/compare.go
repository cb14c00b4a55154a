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

// Equal implements `=`: structural/value equality. Numbers
// compare by magnitude across Int/Decimal (an Int and a Decimal of the same
// magnitude are equal), strings by text, symbols by identity (interning
// already makes text equality and identity equality coincide), cons cells
// and vectors element-wise, procedures and ports by identity.
func Equal(a, b Value) bool {
	if a.Kind() == KindInt || a.Kind() == KindDecimal {
		if b.Kind() != KindInt && b.Kind() != KindDecimal {
			return false
		}
		return numericEqual(a, b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindBool:
		return a.AsBool() == b.AsBool()
	case KindString:
		return a.AsString() == b.AsString()
	case KindSymbol:
		return a.AsSymbol() == b.AsSymbol()
	case KindCons:
		return Equal(a.AsCons().Head, b.AsCons().Head) && Equal(a.AsCons().Tail, b.AsCons().Tail)
	case KindVector:
		av, bv := a.AsVector().Items, b.AsVector().Items
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case KindPort:
		return a.AsPort() == b.AsPort()
	case KindProc:
		return a.AsProc() == b.AsProc()
	default:
		return false
	}
}

func numericEqual(a, b Value) bool {
	return numericCompare(a, b) == 0
}

// numericCompare returns -1/0/1 comparing a and b numerically, promoting an
// Int operand to Decimal whenever the other operand is a Decimal.
func numericCompare(a, b Value) int {
	if a.Kind() == KindInt && b.Kind() == KindInt {
		return a.AsBigInt().Cmp(b.AsBigInt())
	}
	ad := toDecimal(a)
	bd := toDecimal(b)
	return ad.Cmp(bd)
}

// Identical implements `eq?`. Symbols, ports and procedures compare by
// pointer identity; nil and booleans are session-wide singletons so
// identity and value coincide. Int, Cons and Vector have no singleton
// representation for a given value, so eq? on freshly constructed instances
// of those kinds is false even when = would hold — the same instance (e.g.
// re-evaluating the same symbol binding) is still eq? to itself since Value
// copies carry the same underlying pointer. String and Decimal are never
// eq?, not even to the same instance.
func Identical(a, b Value) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindNil:
		return true
	case KindBool:
		return a.AsBool() == b.AsBool()
	case KindSymbol:
		return a.AsSymbol() == b.AsSymbol()
	case KindPort:
		return a.AsPort() == b.AsPort()
	case KindProc:
		return a.AsProc() == b.AsProc()
	case KindCons:
		return a.AsCons() == b.AsCons()
	case KindVector:
		return a.AsVector() == b.AsVector()
	case KindInt:
		return a.AsBigInt() == b.AsBigInt()
	case KindString, KindDecimal:
		return false
	default:
		return false
	}
}
