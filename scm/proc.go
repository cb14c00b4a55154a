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

import "strconv"

// BuiltinFunc is the uniform calling convention of every built-in: a
// sequence of values in, a sequence of values out. No built-in may reach
// outside the value model (no filesystem, network, or process access);
// that invariant is enforced by code review of this package, not by the
// type system.
type BuiltinFunc func(args []Value) []Value

// Proc is the Procedure variant: either a user procedure (Formals/Body/Env
// set, Builtin nil) captured by `lambda`, or a built-in procedure
// (Name and Builtin set, everything else zero).
type Proc struct {
	Name    string
	Formals Value // list, improper list, or bare symbol
	Body    Value
	Env     *Env
	Builtin BuiltinFunc
}

func (p *Proc) IsBuiltin() bool { return p.Builtin != nil }

func newBuiltinProc(name string, fn BuiltinFunc) Value {
	return Value{kind: KindProc, data: &Proc{Name: name, Builtin: fn}}
}

func newUserProc(formals, body Value, env *Env) Value {
	return Value{kind: KindProc, data: &Proc{Formals: formals, Body: body, Env: env}}
}

// BindFormals binds an evaluated argument sequence against p's formals:
// list formals require an exact count, improper formals bind the prefix
// and collect the remainder as a list, and a bare-symbol formal binds the
// whole sequence as a list. Returns the frame to evaluate the body in.
func BindFormals(p *Proc, args []Value) *Env {
	env := p.Env.Extend()
	bindFormalsInto(env, p.Formals, args, p.Name)
	return env
}

func bindFormalsInto(env *Env, formals Value, args []Value, name string) {
	switch formals.Kind() {
	case KindSymbol:
		env.Define(formals.AsSymbol(), List(args...))
		return
	case KindNil:
		if len(args) != 0 {
			panic(arityError(procLabel(name) + ": expected 0 arguments, got " + strconv.Itoa(len(args))))
		}
		return
	case KindCons:
		i := 0
		cur := formals
		for {
			if cur.Kind() == KindCons {
				c := cur.AsCons()
				if i >= len(args) {
					panic(arityError(procLabel(name) + ": too few arguments"))
				}
				env.Define(c.Head.AsSymbol(), args[i])
				i++
				cur = c.Tail
				continue
			}
			break
		}
		switch cur.Kind() {
		case KindNil:
			if i != len(args) {
				panic(arityError(procLabel(name) + ": expected " + strconv.Itoa(i) + " arguments, got " + strconv.Itoa(len(args))))
			}
		case KindSymbol:
			env.Define(cur.AsSymbol(), List(args[i:]...))
		default:
			panic(typeError("malformed formals"))
		}
		return
	default:
		panic(typeError("malformed formals"))
	}
}

func procLabel(name string) string {
	if name == "" {
		return "procedure"
	}
	return name
}

