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

// Eval evaluates an already-expanded form and returns its single value,
// panicking an arityError if it produced (or required) more than one. Most
// callers want Eval; EvalMulti is for the few positions that allow
// multiple values to flow (the immediate subject of `values` itself, and
// argument-list splicing).
func Eval(form Value, env *Env) Value {
	vs := EvalMulti(form, env)
	if len(vs) != 1 {
		panic(arityError("expected a single value in this context"))
	}
	return vs[0]
}

// enterNonTail guards a non-tail recursive step (an Eval/EvalMulti call made
// from within evalStep, rather than the trampoline loop reusing the current
// frame). It panics a RecursionError once the session's stack budget is
// exceeded, and returns the leave func to call via defer.
func enterNonTail(env *Env) func() {
	b := env.stack
	if b == nil {
		return func() {}
	}
	b.depth++
	if b.depth > b.limit {
		b.depth--
		panic(recursionError("maximum recursion depth exceeded"))
	}
	return func() { b.depth-- }
}

// tailCall carries a pending (body, env) step for the trampoline instead of
// recursing on the host stack, so tail-recursive Actinide procedures run in
// bounded Go stack depth.
type tailCall struct {
	form Value
	env  *Env
}

// EvalMulti evaluates form in env to completion, trampolining through tail
// positions: begin's last form, if's chosen branch, and a user procedure's
// body are all re-entered by looping here rather than by recursive calls.
// Non-tail positions (operator and argument subforms, non-tail body forms)
// recurse on the host stack via evalStep.
func EvalMulti(form Value, env *Env) []Value {
	defer enterNonTail(env)()
	for {
		result, next := evalStep(form, env)
		if next == nil {
			return result
		}
		form, env = next.form, next.env
	}
}

// evalStep evaluates one step. When the step lands on a tail position it
// returns (nil, *tailCall) for the trampoline to continue; otherwise it
// returns the final value sequence and a nil tailCall.
func evalStep(form Value, env *Env) ([]Value, *tailCall) {
	switch form.Kind() {
	case KindSymbol:
		return []Value{env.Lookup(form.AsSymbol())}, nil
	case KindCons:
		return evalList(form, env)
	default:
		// self-evaluating: nil, bool, int, decimal, string, vector, port, proc
		return []Value{form}, nil
	}
}

func evalList(form Value, env *Env) ([]Value, *tailCall) {
	c := form.AsCons()
	if c.Head.Kind() == KindSymbol {
		switch c.Head.AsSymbol().Text {
		case "quote":
			args := ListToSlice(form)
			if len(args) != 2 {
				panic(arityError("quote requires exactly one argument"))
			}
			return []Value{args[1]}, nil
		case "begin":
			return evalBegin(ListToSlice(form)[1:], env)
		case "if":
			return evalIf(ListToSlice(form), env)
		case "lambda":
			items := ListToSlice(form)
			body := List(append([]Value{SymbolIn(env, "begin")}, items[2:]...)...)
			return []Value{newUserProc(items[1], body, env)}, nil
		case "define":
			items := ListToSlice(form)
			if len(items) != 3 {
				panic(arityError("define requires a name and a value"))
			}
			v := Eval(items[2], env)
			env.Define(items[1].AsSymbol(), v)
			return []Value{items[1]}, nil
		case "define-macro":
			// The expander already installed the transformer at expansion
			// time for top-level forms and left it quoted here, so this arm
			// rebinds that same procedure; for the nested-in-a-lambda-body
			// case the expander left untouched, this arm is what installs
			// it into env's session macro table.
			items := ListToSlice(form)
			v := Eval(items[2], env)
			macrosFor(env).Define(items[1].AsSymbol(), v)
			return []Value{items[1]}, nil
		case "values":
			args := ListToSlice(form)[1:]
			out := make([]Value, len(args))
			for i, a := range args {
				out[i] = Eval(a, env)
			}
			return out, nil
		}
	}
	return evalApplication(form, env)
}

func evalBegin(forms []Value, env *Env) ([]Value, *tailCall) {
	if len(forms) == 0 {
		return []Value{Nil}, nil
	}
	for _, f := range forms[:len(forms)-1] {
		Eval(f, env)
	}
	return nil, &tailCall{form: forms[len(forms)-1], env: env}
}

func evalIf(items []Value, env *Env) ([]Value, *tailCall) {
	if len(items) < 3 || len(items) > 4 {
		panic(arityError("if requires a condition, a then-branch, and an optional else-branch"))
	}
	cond := Eval(items[1], env)
	if cond.Truthy() {
		return nil, &tailCall{form: items[2], env: env}
	}
	if len(items) == 4 {
		return nil, &tailCall{form: items[3], env: env}
	}
	return []Value{Nil}, nil
}

// evalApplication evaluates the operator and argument subforms (left to
// right, non-tail), splices any multi-valued argument subform into the
// sequence, then applies. A user-procedure application lands in tail
// position; a built-in call is not trampolined since it is an opaque Go
// call and always returns immediately.
func evalApplication(form Value, env *Env) ([]Value, *tailCall) {
	items := ListToSlice(form)
	opVal := Eval(items[0], env)
	var args []Value
	for _, a := range items[1:] {
		args = append(args, EvalMulti(a, env)...)
	}
	if opVal.Kind() != KindProc {
		panic(typeError("cannot apply a non-procedure value"))
	}
	p := opVal.AsProc()
	if p.IsBuiltin() {
		return p.Builtin(args), nil
	}
	bodyEnv := BindFormals(p, args)
	return nil, &tailCall{form: p.Body, env: bodyEnv}
}

// Apply invokes a procedure value from Go code (builtins, the expander's
// macro-transformer step, and host bindings) with an already-evaluated
// argument sequence. A user procedure always runs in the frame captured
// when it was created, never the caller's frame, so Apply needs no env
// argument of its own.
func Apply(proc Value, args []Value) []Value {
	if proc.Kind() != KindProc {
		panic(typeError("cannot apply a non-procedure value"))
	}
	p := proc.AsProc()
	if p.IsBuiltin() {
		return p.Builtin(args)
	}
	bodyEnv := BindFormals(p, args)
	return EvalMulti(p.Body, bodyEnv)
}

// SymbolIn interns name using the symbol table reachable from env's session.
// The evaluator only ever needs this to rebuild a `(begin ...)` wrapper
// around a lambda's body forms; eval.go is its only caller.
func SymbolIn(env *Env, name string) Value {
	return env.symbolTable().SymbolValue(name)
}
