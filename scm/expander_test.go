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

func expandSrc(s *Session, src string) Value {
	return s.Expand(s.Read(src))
}

func TestQuoteDoesNotDescendDuringExpansion(t *testing.T) {
	s := NewSession()
	s.MacroBind("boom", newBuiltinProc("boom", func(args []Value) []Value {
		panic(domainError("macro applied inside a quoted form"))
	}))
	v := expandSrc(s, "'(boom 1 2)")
	if Write(v) != "(quote (boom 1 2))" {
		t.Fatalf("expected quote to protect its body from expansion, got %s", Write(v))
	}
}

func TestDefineSugarRewritesToLambda(t *testing.T) {
	s := NewSession()
	v := expandSrc(s, "(define (add a b) (+ a b))")
	items := ListToSlice(v)
	if len(items) != 3 || items[0].AsSymbol().Text != "define" {
		t.Fatalf("expected (define add (lambda ...)), got %s", Write(v))
	}
	if items[1].AsSymbol().Text != "add" {
		t.Fatalf("expected name add, got %s", Write(items[1]))
	}
	lambdaForm := ListToSlice(items[2])
	if lambdaForm[0].AsSymbol().Text != "lambda" {
		t.Fatalf("expected a lambda form, got %s", Write(items[2]))
	}
}

func TestDefineMacroInstallsAtTopLevel(t *testing.T) {
	s := NewSession()
	expandSrc(s, "(define-macro (twice x) (list 'begin x x))")
	if _, found := s.macros.Lookup(s.syms.Intern("twice")); !found {
		t.Fatal("expected define-macro at top level to install into the macro table")
	}
}

func TestDefineMacroInsideLambdaDoesNotInstallAtExpansionTime(t *testing.T) {
	s := NewSession()
	// A define-macro nested in a lambda body must not affect macro lookups
	// performed while expanding the very form that contains it.
	expandSrc(s, "(lambda () (define-macro (inner x) x) 1)")
	if _, found := s.macros.Lookup(s.syms.Intern("inner")); found {
		t.Fatal("expected a nested define-macro to not install during expansion")
	}
}

func TestTopLevelMacroExpandsInsideLambdaBody(t *testing.T) {
	s := NewSession()
	s.Eval(s.Read("(define-macro (inc x) (list '+ x 1))"))
	s.Eval(s.Read("(define (f n) (inc n))"))
	result := s.Eval(s.Read("(f 5)"))
	if Write(result) != "6" {
		t.Fatalf("expected a macro used inside a lambda body to expand at definition time, got %s", Write(result))
	}
}

func TestMacroExpansionRunsToFixedPoint(t *testing.T) {
	s := NewSession()
	expandSrc(s, "(define-macro (unless-zero n then) `(if (= ,n 0) 'skip ,then))")
	v := s.Eval(s.Read("(unless-zero 5 'ran)"))
	if Write(v) != "ran" {
		t.Fatalf("expected ran, got %s", Write(v))
	}
	v = s.Eval(s.Read("(unless-zero 0 'ran)"))
	if Write(v) != "skip" {
		t.Fatalf("expected skip, got %s", Write(v))
	}
}

func TestQuasiquoteLoweringWithUnquoteSplicing(t *testing.T) {
	s := NewSession()
	v := s.Eval(s.Read("(begin (define xs (list 2 3)) `(1 ,@xs 4))"))
	if Write(v) != "(1 2 3 4)" {
		t.Fatalf("expected (1 2 3 4), got %s", Write(v))
	}
}

func TestQuasiquoteWithoutUnquotesEqualsItsLiteralForm(t *testing.T) {
	s := NewSession()
	literal := s.Read("(a b c)")
	quoted := s.Eval(s.Read("`(a b c)"))
	if !Equal(literal, quoted) {
		t.Fatalf("expected %s, got %s", Write(literal), Write(quoted))
	}
}

func TestUnquoteOutsideQuasiquoteIsAnError(t *testing.T) {
	s := NewSession()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected an expansion error")
		}
		e, ok := r.(Error)
		if !ok || e.Kind != ExpansionError {
			t.Fatalf("expected an ExpansionError, got %v", r)
		}
	}()
	expandSrc(s, "(unquote x)")
}

func TestExpansionDepthCapCatchesNonTerminatingMacro(t *testing.T) {
	s := NewSession(WithMacroDepthLimit(8))
	expandSrc(s, "(define-macro (loopy x) `(loopy ,x))")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected an expansion error for a non-terminating macro")
		}
		e, ok := r.(Error)
		if !ok || e.Kind != ExpansionError {
			t.Fatalf("expected an ExpansionError, got %v", r)
		}
	}()
	expandSrc(s, "(loopy 1)")
}
