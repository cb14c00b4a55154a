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

import "testing"

func TestTruthyFalsiness(t *testing.T) {
	falsy := []Value{False, Nil, Int(0), String(""), VectorOf(nil)}
	for _, v := range falsy {
		if v.Truthy() {
			t.Errorf("expected %v to be falsy", Write(v))
		}
	}
	truthy := []Value{True, Int(1), Int(-1), String("x"), VectorOf([]Value{Int(1)}), List(Int(1))}
	for _, v := range truthy {
		if !v.Truthy() {
			t.Errorf("expected %v to be truthy", Write(v))
		}
	}
}

func TestNegativeZeroIsFalsy(t *testing.T) {
	v, ok := DecimalFromString("-0.0")
	if !ok {
		t.Fatal("expected -0.0 to parse")
	}
	if v.Truthy() {
		t.Error("negative zero decimal should be falsy")
	}
	if !v.IsNegativeZero() {
		t.Error("expected IsNegativeZero to report true")
	}
}

func TestNegateDecimalPreservesNegativeZeroSign(t *testing.T) {
	zero, ok := DecimalFromString("0.0")
	if !ok {
		t.Fatal("expected 0.0 to parse")
	}
	negated := NegateDecimal(zero)
	if !negated.IsNegativeZero() {
		t.Error("expected negating 0.0 to produce a negative zero")
	}

	negZero, ok := DecimalFromString("-0.0")
	if !ok {
		t.Fatal("expected -0.0 to parse")
	}
	backToPositive := NegateDecimal(negZero)
	if backToPositive.IsNegativeZero() {
		t.Error("expected negating -0.0 to produce a positive zero")
	}
}

func TestListRoundTrip(t *testing.T) {
	items := []Value{Int(1), Int(2), Int(3)}
	l := List(items...)
	if !IsProperList(l) {
		t.Fatal("expected proper list")
	}
	back := ListToSlice(l)
	if len(back) != 3 {
		t.Fatalf("expected 3 items, got %d", len(back))
	}
	if ListLen(l) != 3 {
		t.Errorf("expected length 3, got %d", ListLen(l))
	}
}

func TestImproperListIsNotProperList(t *testing.T) {
	improper := ConsPair(Int(1), Int(2))
	if IsProperList(improper) {
		t.Error("expected an improper list to not be a proper list")
	}
}
