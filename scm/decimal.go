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
	"strings"

	"github.com/shopspring/decimal"
)

// decVal wraps shopspring/decimal.Decimal with the one bit that library
// cannot represent on its own: a negative zero. decimal.Decimal stores its
// coefficient as a math/big.Int, and big.Int has no negative-zero state, so
// `-0.0` and `0.0` would otherwise collapse to the same value on parse.
// `-0.0` and `0.0` must compare `=`-equal but remain `eq?`-distinct, so the
// sign bit travels alongside the magnitude.
type decVal struct {
	D       decimal.Decimal
	NegZero bool
}

// Decimal wraps a shopspring/decimal.Decimal as a Value. Division (see
// builtinDiv) uses the library's DivRound rounded to 28 decimal places.
func Decimal(d decimal.Decimal) Value {
	return Value{kind: KindDecimal, data: decVal{D: d}}
}

func (v Value) AsDecimal() decimal.Decimal {
	if v.kind != KindDecimal {
		panic(typeError("expected decimal"))
	}
	return v.data.(decVal).D
}

// IsNegativeZero reports whether this decimal was read (or computed) as a
// negative zero. `=` treats it as equal to zero; `eq?`/reader round-trip
// does not.
func (v Value) IsNegativeZero() bool {
	if v.kind != KindDecimal {
		return false
	}
	dv := v.data.(decVal)
	return dv.NegZero && dv.D.IsZero()
}

// DecimalFromString parses a decimal literal per the reader's grammar:
// optional leading '-', optional integer part, '.', optional fractional
// part, optional exponent. Underscores have already been stripped by the
// caller.
func DecimalFromString(s string) (Value, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Value{}, false
	}
	neg := strings.HasPrefix(s, "-") && d.IsZero()
	return Value{kind: KindDecimal, data: decVal{D: d, NegZero: neg}}, true
}

// toDecimal promotes v (Int or Decimal) to a decimal.Decimal for mixed-kind
// arithmetic and comparison.
func toDecimal(v Value) decimal.Decimal {
	if v.Kind() == KindDecimal {
		return v.AsDecimal()
	}
	return decimal.NewFromBigInt(v.AsBigInt(), 0)
}

// NegateDecimal mirrors (- 0 x) for decimals, preserving negative-zero
// tracking so `(= x (- 0 x))` still reports x as zero when appropriate.
func NegateDecimal(v Value) Value {
	dv := v.AsDecimal()
	neg := !v.IsNegativeZero()
	if !dv.IsZero() {
		neg = dv.Sign() > 0
	}
	return Value{kind: KindDecimal, data: decVal{D: dv.Neg(), NegZero: neg && dv.IsZero()}}
}
