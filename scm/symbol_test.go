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

func TestInterningIsIdempotent(t *testing.T) {
	syms := NewSymbolTable()
	a := syms.Intern("hello")
	b := syms.Intern("hello")
	if a != b {
		t.Fatal("expected two interns of the same text to be pointer-equal")
	}
}

func TestEOFIsNeverInterned(t *testing.T) {
	syms := NewSymbolTable()
	eof := syms.EOF()
	if syms.IsEOF(syms.SymbolValue("#[eof]")) {
		t.Fatal("interning the literal eof text must not alias the real EOF symbol")
	}
	if !syms.IsEOF(eof) {
		t.Fatal("EOF() must report as EOF")
	}
}
