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

func readOne(t *testing.T, syms *SymbolTable, src string) Value {
	t.Helper()
	rd := NewReader(NewStringPort(src), syms)
	return rd.ReadForm()
}

func TestReadAtoms(t *testing.T) {
	syms := NewSymbolTable()
	if v := readOne(t, syms, "42"); v.Kind() != KindInt || v.AsBigInt().Int64() != 42 {
		t.Errorf("expected integer 42, got %s", Write(v))
	}
	if v := readOne(t, syms, "-7"); v.AsBigInt().Int64() != -7 {
		t.Errorf("expected -7, got %s", Write(v))
	}
	if v := readOne(t, syms, "3.14"); v.Kind() != KindDecimal {
		t.Errorf("expected a decimal, got %s", Write(v))
	}
	if v := readOne(t, syms, "1e1"); v.Kind() != KindDecimal {
		t.Errorf("expected 1e1 to read as a decimal, got %s", Write(v))
	}
	if v := readOne(t, syms, "#t"); v.Kind() != KindBool || !v.AsBool() {
		t.Errorf("expected #t")
	}
	if v := readOne(t, syms, `"hi\"there"`); v.AsString() != `hi"there` {
		t.Errorf("expected escaped string, got %q", v.AsString())
	}
	if v := readOne(t, syms, "foo"); v.Kind() != KindSymbol || v.AsSymbol().Text != "foo" {
		t.Errorf("expected symbol foo")
	}
}

func TestReadList(t *testing.T) {
	syms := NewSymbolTable()
	v := readOne(t, syms, "(1 2 3)")
	if !IsProperList(v) || ListLen(v) != 3 {
		t.Fatalf("expected a 3-element proper list, got %s", Write(v))
	}
}

func TestReadDottedPair(t *testing.T) {
	syms := NewSymbolTable()
	v := readOne(t, syms, "(1 . 2)")
	if IsProperList(v) {
		t.Fatal("expected an improper list")
	}
	c := v.AsCons()
	if c.Head.AsBigInt().Int64() != 1 || c.Tail.AsBigInt().Int64() != 2 {
		t.Fatalf("expected (1 . 2), got %s", Write(v))
	}
}

func TestReadQuoteShorthand(t *testing.T) {
	syms := NewSymbolTable()
	v := readOne(t, syms, "'x")
	items := ListToSlice(v)
	if len(items) != 2 || items[0].AsSymbol().Text != "quote" || items[1].AsSymbol().Text != "x" {
		t.Fatalf("expected (quote x), got %s", Write(v))
	}

	qq := readOne(t, syms, "`(a ,b ,@c)")
	if qq.AsCons().Head.AsSymbol().Text != "quasiquote" {
		t.Fatalf("expected quasiquote form, got %s", Write(qq))
	}
}

func TestReadEOFAtTopLevel(t *testing.T) {
	syms := NewSymbolTable()
	v := readOne(t, syms, "   ")
	if !syms.IsEOF(v) {
		t.Fatal("expected EOF symbol for exhausted top-level input")
	}
}

func TestReadUnbalancedParenErrors(t *testing.T) {
	syms := NewSymbolTable()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a read error panic")
		}
		e, ok := r.(Error)
		if !ok || e.Kind != ReadError {
			t.Fatalf("expected a ReadError, got %v", r)
		}
	}()
	readOne(t, syms, "(1 2 3")
}

func TestDisplayWriteRoundTrip(t *testing.T) {
	syms := NewSymbolTable()
	forms := []string{"42", "-7", `"hi"`, "foo", "(1 2 3)", "(1 . 2)"}
	for _, src := range forms {
		v := readOne(t, syms, src)
		rendered := Display(v)
		back := readOne(t, syms, rendered)
		if !Equal(v, back) {
			t.Errorf("round trip failed for %q: rendered %q, reread %q", src, rendered, Write(back))
		}
	}
}
