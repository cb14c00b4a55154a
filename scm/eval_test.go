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

func evalSrc(s *Session, src string) Value {
	return s.Eval(s.Read(src))
}

func TestBeginEvaluatesAllFormsReturnsLast(t *testing.T) {
	s := NewSession()
	v := evalSrc(s, "(begin 1 2 3)")
	if Write(v) != "3" {
		t.Fatalf("expected 3, got %s", Write(v))
	}
}

func TestEmptyBeginIsNil(t *testing.T) {
	s := NewSession()
	v := evalSrc(s, "(begin)")
	if v.Kind() != KindNil {
		t.Fatalf("expected nil, got %s", Write(v))
	}
}

func TestIfWithoutElseBranchIsNilWhenFalse(t *testing.T) {
	s := NewSession()
	v := evalSrc(s, "(if #f 1)")
	if v.Kind() != KindNil {
		t.Fatalf("expected nil, got %s", Write(v))
	}
}

func TestIfArityErrorsOnTooManyBranches(t *testing.T) {
	s := NewSession()
	defer func() {
		r := recover()
		e, ok := r.(Error)
		if !ok || e.Kind != ArityError {
			t.Fatalf("expected an ArityError, got %v", r)
		}
	}()
	evalSrc(s, "(if #t 1 2 3)")
}

func TestQuoteArityErrorsOnMissingArgument(t *testing.T) {
	s := NewSession()
	defer func() {
		r := recover()
		e, ok := r.(Error)
		if !ok || e.Kind != ArityError {
			t.Fatalf("expected an ArityError, got %v", r)
		}
	}()
	evalSrc(s, "(quote)")
}

func TestEvalRejectsMultipleValuesWhereOneIsExpected(t *testing.T) {
	s := NewSession()
	defer func() {
		r := recover()
		e, ok := r.(Error)
		if !ok || e.Kind != ArityError {
			t.Fatalf("expected an ArityError, got %v", r)
		}
	}()
	// (values 1 2) alone, not spliced into an argument list, must produce
	// exactly one value to satisfy Eval's single-value contract.
	Eval(s.Read("(values 1 2)"), s.env)
}

func TestClosureCapturesDefiningEnvironmentNotCallSite(t *testing.T) {
	s := NewSession()
	evalSrc(s, "(define x 10)")
	evalSrc(s, "(define (get-x) x)")
	v := evalSrc(s, "((lambda (x) (get-x)) 999)")
	if Write(v) != "10" {
		t.Fatalf("expected the closure's captured x (10), got %s", Write(v))
	}
}

func TestTailCallInIfBranchDoesNotGrowGoStack(t *testing.T) {
	s := NewSession()
	evalSrc(s, "(define (count-down n) (if (= n 0) 'done (count-down (- n 1))))")
	v := evalSrc(s, "(count-down 500000)")
	if Write(v) != "done" {
		t.Fatalf("expected done, got %s", Write(v))
	}
}

func TestApplyRunsUserProcedureDirectly(t *testing.T) {
	s := NewSession()
	evalSrc(s, "(define (add1 n) (+ n 1))")
	proc := s.Get("add1")
	results := Apply(proc, []Value{Int(41)})
	if len(results) != 1 || Write(results[0]) != "42" {
		t.Fatalf("expected 42, got %v", results)
	}
}

func TestUnboundSymbolPanics(t *testing.T) {
	s := NewSession()
	defer func() {
		r := recover()
		e, ok := r.(Error)
		if !ok || e.Kind != UnboundSymbol {
			t.Fatalf("expected an UnboundSymbol error, got %v", r)
		}
	}()
	evalSrc(s, "totally-undefined-name")
}

func TestApplyingNonProcedureIsATypeError(t *testing.T) {
	s := NewSession()
	defer func() {
		r := recover()
		e, ok := r.(Error)
		if !ok || e.Kind != TypeError {
			t.Fatalf("expected a TypeError, got %v", r)
		}
	}()
	evalSrc(s, "(1 2 3)")
}
