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

func TestArithmeticAndDefine(t *testing.T) {
	s := NewSession()
	if v := s.Run("(+ 1 2 3)"); Write(v) != "6" {
		t.Fatalf("expected 6, got %s", Write(v))
	}
	v := s.Run("(begin (define x 5) (lambda () x) ((lambda () x)))")
	if Write(v) != "5" {
		t.Fatalf("expected 5, got %s", Write(v))
	}
}

func TestUnaryMinusPreservesNegativeZeroSign(t *testing.T) {
	s := NewSession()
	v := s.Run("(- 0.0)")
	if !v.IsNegativeZero() {
		t.Fatalf("expected (- 0.0) to produce a negative zero, got %s", Write(v))
	}
	v = s.Run("(- -0.0)")
	if v.IsNegativeZero() {
		t.Fatalf("expected (- -0.0) to produce a positive zero, got %s", Write(v))
	}
}

func TestIfTruthiness(t *testing.T) {
	s := NewSession()
	if v := s.Run("(if (= 0 0) 'yes 'no)"); Write(v) != "yes" {
		t.Fatalf("expected yes, got %s", Write(v))
	}
	if v := s.Run(`(if "" 'yes 'no)`); Write(v) != "no" {
		t.Fatalf("expected no (empty string is falsy), got %s", Write(v))
	}
}

func TestDefineMacroLetOne(t *testing.T) {
	s := NewSession()
	s.Run("(define-macro (let-one b body) `((lambda (,(head b)) ,body) ,(head (tail b))))")
	v := s.Run("(let-one (x 1) (+ x 2))")
	if Write(v) != "3" {
		t.Fatalf("expected 3, got %s", Write(v))
	}
}

func TestTailRecursiveFactorialDoesNotOverflowStack(t *testing.T) {
	s := NewSession()
	s.Run("(define (fact n a) (if (= n 1) a (fact (- n 1) (* n a))))")
	v := s.Run("(fact 1000 1)")
	if v.Kind() != KindInt {
		t.Fatalf("expected an integer result, got %s", Write(v))
	}
}

func TestNonTailRecursionHitsRecursionLimit(t *testing.T) {
	s := NewSession(WithStackBudget(200))
	s.Run("(define (sum n) (if (= n 0) 0 (+ n (sum (- n 1)))))")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a recursion-depth panic for deep non-tail recursion")
		}
		e, ok := r.(Error)
		if !ok || e.Kind != RecursionError {
			t.Fatalf("expected a RecursionError, got %v", r)
		}
	}()
	s.Run("(sum 100000)")
}

func TestValuesSpliceIntoArguments(t *testing.T) {
	s := NewSession()
	if v := s.Run("(= (values 53 53))"); Write(v) != "#t" {
		t.Fatalf("expected #t, got %s", Write(v))
	}
	if v := s.Run("(+ (values 1 2) 3)"); Write(v) != "6" {
		t.Fatalf("expected 6, got %s", Write(v))
	}
}

func TestQuasiquoteWithNoUnquotesRoundTrips(t *testing.T) {
	s := NewSession()
	v := s.Run("`(1 2 3)")
	want := s.Read("(1 2 3)")
	if !Equal(v, want) {
		t.Fatalf("expected %s, got %s", Write(want), Write(v))
	}
}

func TestMapFilterReduce(t *testing.T) {
	s := NewSession()
	s.Bind("double", s.Get("+")) // sanity: Get returns a usable procedure value
	v := s.Run("(map (lambda (x) (* x 2)) (list 1 2 3))")
	if Write(v) != "(2 4 6)" {
		t.Fatalf("expected (2 4 6), got %s", Write(v))
	}
	v = s.Run("(filter (lambda (x) (> x 1)) (list 1 2 3))")
	if Write(v) != "(2 3)" {
		t.Fatalf("expected (2 3), got %s", Write(v))
	}
	v = s.Run("(reduce (lambda (a b) (+ a b)) (list 1 2 3 4))")
	if Write(v) != "10" {
		t.Fatalf("expected 10, got %s", Write(v))
	}
}

func TestPortsReadBackForms(t *testing.T) {
	s := NewSession()
	v := s.Run(`(read (string-to-input-port "(1 2 3)"))`)
	if Write(v) != "(1 2 3)" {
		t.Fatalf("expected (1 2 3), got %s", Write(v))
	}
}

func TestVectorListLengthCorrespondence(t *testing.T) {
	s := NewSession()
	v := s.Run("(length (vector-to-list (list-to-vector (list 1 2 3 4 5))))")
	if Write(v) != "5" {
		t.Fatalf("expected 5, got %s", Write(v))
	}
}

func TestSandboxHasNoFilesystemBuiltin(t *testing.T) {
	s := NewSession()
	for _, name := range []string{"open-file", "read-file", "exec", "socket"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected %s to be unbound", name)
				}
			}()
			s.Get(name)
		}()
	}
}
