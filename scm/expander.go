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

// maxExpansionDepth is a simple depth cap to catch macro transformers that
// never reach a fixed point.
const maxExpansionDepth = 512

// Expander rewrites forms to remove macro applications and
// quasiquote/unquote/unquote-splicing nodes before evaluation. It holds the
// macro table it consults and the value environment transformers run
// against (non-hygienically: no renaming of bound variables).
type Expander struct {
	syms   *SymbolTable
	macros *MacroTable
	topEnv *Env
	// topLevel is true only while expanding the forms the host handed to
	// Session directly; define-macro only installs a transformer visible to
	// THIS expansion when found there, never inside a nested lambda body.
	topLevel bool
	maxDepth int
}

func NewExpander(syms *SymbolTable, macros *MacroTable, topEnv *Env) *Expander {
	return &Expander{syms: syms, macros: macros, topEnv: topEnv, maxDepth: maxExpansionDepth}
}

func (ex *Expander) sym(name string) *Symbol { return ex.syms.Intern(name) }

// Expand runs the expander to a fixed point on a top-level form.
func (ex *Expander) Expand(form Value) Value {
	saved := ex.topLevel
	ex.topLevel = true
	defer func() { ex.topLevel = saved }()
	return ex.expand(form, 0)
}

func (ex *Expander) expand(form Value, depth int) Value {
	if depth > ex.maxDepth {
		panic(expansionError("macro expansion did not reach a fixed point"))
	}
	switch form.Kind() {
	case KindNil, KindBool, KindInt, KindDecimal, KindString, KindSymbol, KindVector, KindPort, KindProc:
		return form
	case KindCons:
		return ex.expandList(form, depth)
	default:
		return form
	}
}

func (ex *Expander) headSymbol(form Value) (*Symbol, bool) {
	c := form.AsCons()
	if c.Head.Kind() != KindSymbol {
		return nil, false
	}
	return c.Head.AsSymbol(), true
}

func (ex *Expander) expandList(form Value, depth int) Value {
	head, ok := ex.headSymbol(form)
	if ok {
		switch head.Text {
		case "quote":
			return form
		case "quasiquote":
			args := ListToSlice(form)
			if len(args) != 2 {
				panic(expansionError("quasiquote expects exactly one argument"))
			}
			lowered := ex.expandQuasiquote(args[1], 1)
			return ex.expand(lowered, depth+1)
		case "unquote", "unquote-splicing":
			panic(expansionError(head.Text + " outside of quasiquote"))
		case "lambda":
			return ex.expandLambda(form, depth)
		case "define":
			return ex.expandDefine(form, depth)
		case "define-macro":
			return ex.expandDefineMacro(form, depth)
		}
		if transformer, found := ex.macros.Lookup(head); found {
			args := ListToSlice(form)[1:]
			expanded := ex.applyTransformer(transformer, args)
			return ex.expand(expanded, depth+1)
		}
	}
	return ex.expandEachSubform(form, depth)
}

func (ex *Expander) applyTransformer(transformer Value, args []Value) Value {
	results := Apply(transformer, args)
	if len(results) != 1 {
		panic(expansionError("macro transformer must return exactly one value"))
	}
	result := results[0]
	if !isForm(result) {
		panic(expansionError("macro transformer returned a non-form value"))
	}
	return result
}

func isForm(v Value) bool {
	switch v.Kind() {
	case KindNil, KindBool, KindInt, KindDecimal, KindString, KindSymbol, KindCons, KindVector:
		return true
	default:
		return false
	}
}

func (ex *Expander) expandEachSubform(form Value, depth int) Value {
	items := ListToSliceImproper(form)
	out := make([]Value, len(items.proper))
	for i, it := range items.proper {
		out[i] = ex.expand(it, depth+1)
	}
	result := items.tail
	if items.tail.Kind() != KindNil {
		result = ex.expand(items.tail, depth+1)
	}
	for i := len(out) - 1; i >= 0; i-- {
		result = ConsPair(out[i], result)
	}
	return result
}

// improperList is items collected walking a (possibly improper) cons chain.
type improperList struct {
	proper []Value
	tail   Value
}

func ListToSliceImproper(v Value) improperList {
	var out []Value
	for v.Kind() == KindCons {
		c := v.AsCons()
		out = append(out, c.Head)
		v = c.Tail
	}
	return improperList{proper: out, tail: v}
}

// (lambda formals body...) : formals stays literal, each body form expands;
// define sugar nested in the body is rewritten along the way.
func (ex *Expander) expandLambda(form Value, depth int) Value {
	items := ListToSlice(form)
	if len(items) < 3 {
		panic(expansionError("lambda requires formals and at least one body form"))
	}
	formals := items[1]
	body := make([]Value, len(items)-2)
	// A nested lambda body is no longer "top level" for define-macro's
	// installation step; ordinary macro application is unaffected and still
	// runs at any nesting depth.
	savedTop := ex.topLevel
	ex.topLevel = false
	for i, b := range items[2:] {
		body[i] = ex.expand(b, depth+1)
	}
	ex.topLevel = savedTop
	return List(append([]Value{ex.sym("lambda"), formals}, body...)...)
}

// (define (name . formals) body...) => (define name (lambda formals (begin body...)))
// (define name value) => expand value.
func (ex *Expander) expandDefine(form Value, depth int) Value {
	items := ListToSlice(form)
	if len(items) < 3 {
		panic(expansionError("define requires a name and a value"))
	}
	if items[1].Kind() == KindCons {
		c := items[1].AsCons()
		name := c.Head
		formals := c.Tail
		body := items[2:]
		lambdaForm := List(append([]Value{ex.sym("lambda"), formals, List(append([]Value{ex.sym("begin")}, body...)...)})...)
		rewritten := List(ex.sym("define"), name, lambdaForm)
		return ex.expand(rewritten, depth+1)
	}
	if len(items) != 3 {
		panic(expansionError("define requires exactly one value"))
	}
	return List(ex.sym("define"), items[1], ex.expand(items[2], depth+1))
}

// define-macro sugar matches define's; the right-hand side is evaluated
// NOW, at expansion time, in the top-level value environment, to obtain the
// transformer. It only installs into the macro table when found at the top
// level of the program currently being expanded: a define-macro nested
// inside a lambda body is rewritten into a runtime define-macro call
// instead, with no effect on this expansion pass.
func (ex *Expander) expandDefineMacro(form Value, depth int) Value {
	items := ListToSlice(form)
	if len(items) < 3 {
		panic(expansionError("define-macro requires a name and a value"))
	}
	var name Value
	var valueForm Value
	if items[1].Kind() == KindCons {
		c := items[1].AsCons()
		name = c.Head
		formals := c.Tail
		body := items[2:]
		valueForm = List(append([]Value{ex.sym("lambda"), formals, List(append([]Value{ex.sym("begin")}, body...)...)})...)
	} else {
		if len(items) != 3 {
			panic(expansionError("define-macro requires exactly one value"))
		}
		name = items[1]
		valueForm = items[2]
	}
	if !ex.topLevel {
		// Rewrite to a runtime call so evaluation still installs the macro,
		// but this expansion pass never sees it.
		return List(ex.sym("define-macro"), name, ex.expand(valueForm, depth+1))
	}
	expandedValue := ex.expand(valueForm, depth+1)
	transformer := Eval(expandedValue, ex.topEnv)
	ex.macros.Define(name.AsSymbol(), transformer)
	return List(ex.sym("define-macro"), name, List(ex.sym("quote"), transformer))
}

// expandQuasiquote lowers `x to constructor calls (cons/append/quote).
// depth is passed through unchanged: nested quasiquotes are not tracked, so
// every unquote/unquote-splicing inside x, however deeply nested, is lowered
// as part of this outermost quasiquote.
func (ex *Expander) expandQuasiquote(form Value, depth int) Value {
	switch form.Kind() {
	case KindCons:
		c := form.AsCons()
		if sym, ok := ex.headSymbol(form); ok && sym.Text == "unquote" {
			args := ListToSlice(form)
			if len(args) != 2 {
				panic(expansionError("unquote expects exactly one argument"))
			}
			return args[1]
		}
		if sym, ok := ex.headSymbol(form); ok && sym.Text == "unquote-splicing" {
			panic(expansionError("unquote-splicing used outside of list context"))
		}
		if headSym, ok := ex.headSymbol(ConsPair(c.Head, Nil)); ok && headSym.Text == "unquote-splicing" {
			// unreachable: kept for symmetry, real check is below on c.Head
			_ = headSym
		}
		if c.Head.Kind() == KindCons {
			if hs, ok := ex.headSymbol(c.Head); ok && hs.Text == "unquote-splicing" {
				spliceArgs := ListToSlice(c.Head)
				if len(spliceArgs) != 2 {
					panic(expansionError("unquote-splicing expects exactly one argument"))
				}
				return List(ex.sym("append"), spliceArgs[1], ex.expandQuasiquote(c.Tail, depth))
			}
		}
		return List(ex.sym("cons"), ex.expandQuasiquote(c.Head, depth), ex.expandQuasiquote(c.Tail, depth))
	case KindNil:
		return List(ex.sym("quote"), Nil)
	default:
		return List(ex.sym("quote"), form)
	}
}
