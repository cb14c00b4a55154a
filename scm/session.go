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

// Session is the embedding façade: one symbol table, one top-level value
// environment and one top-level macro table, never shared across
// sessions. Every exported entry point a host program needs — reading,
// expanding, evaluating, running a whole program, and binding host values
// and functions in — hangs off this type.
type Session struct {
	syms     *SymbolTable
	env      *Env
	macros   *MacroTable
	expander *Expander
}

// Option configures a Session at construction time.
type Option func(*sessionConfig)

type sessionConfig struct {
	stackBudget int
	macroDepth  int
}

// WithStackBudget caps the non-tail Go-stack recursion depth the evaluator
// allows before raising a RecursionError. The default is generous enough
// for any reasonable non-tail recursive program.
func WithStackBudget(n int) Option {
	return func(c *sessionConfig) { c.stackBudget = n }
}

// WithMacroDepthLimit caps how many re-expansion rounds the expander will
// run before concluding a macro transformer never reaches a fixed point.
func WithMacroDepthLimit(n int) Option {
	return func(c *sessionConfig) { c.macroDepth = n }
}

// NewSession builds a session with the full built-in registry installed.
func NewSession(opts ...Option) *Session {
	cfg := sessionConfig{stackBudget: defaultStackBudget, macroDepth: maxExpansionDepth}
	for _, o := range opts {
		o(&cfg)
	}

	syms := NewSymbolTable()
	macros := NewMacroTable(nil)
	env := NewRootEnvWithBudget(syms, macros, cfg.stackBudget)

	s := &Session{syms: syms, env: env, macros: macros}
	s.expander = NewExpander(syms, macros, env)
	s.expander.maxDepth = cfg.macroDepth

	registerArithBuiltins(env, syms)
	registerLogicBuiltins(env, syms)
	registerPredicateBuiltins(env, syms)
	registerListBuiltins(env, syms)
	registerConvertBuiltins(env, syms)
	registerVectorBuiltins(env, syms)
	registerStringBuiltins(env, syms)
	registerPortBuiltins(env, syms)
	registerMetaBuiltins(env, syms, s.expander)
	env.Define(syms.Intern("nil"), Nil)
	return s
}

// Read parses exactly one form from source text, returning the session's
// end-of-file symbol once source is exhausted. Each call reads from a
// fresh port over the given text; callers that need to read many forms
// from one stream should construct a Port themselves via NewStringPort and
// drive a Reader directly.
func (s *Session) Read(source string) Value {
	rd := NewReader(NewStringPort(source), s.syms)
	return rd.ReadForm()
}

// Expand macro-expands a single already-read form to a fixed point without
// evaluating it.
func (s *Session) Expand(form Value) Value {
	return s.expander.Expand(form)
}

// Eval expands and evaluates a single form in the session's top-level
// environment, returning its one value.
func (s *Session) Eval(form Value) Value {
	return Eval(s.expander.Expand(form), s.env)
}

// Run reads every form out of source and evaluates each one as its own
// independent top-level program — matching the REPL's one-form-per-program
// model. Returns the value of the last form, or the end-of-file symbol if
// source held no forms.
func (s *Session) Run(source string) Value {
	port := NewStringPort(source)
	rd := NewReader(port, s.syms)
	result := s.syms.EOF()
	for {
		form := rd.ReadForm()
		if s.syms.IsEOF(form) {
			return result
		}
		result = s.Eval(form)
	}
}

// Symbols exposes the session's interner, e.g. so a host can build forms by
// hand with List/ConsPair instead of parsing text.
func (s *Session) Symbols() *SymbolTable { return s.syms }

// Bind installs a host value directly under name in the top-level
// environment.
func (s *Session) Bind(name string, v Value) {
	s.env.Define(s.syms.Intern(name), v)
}

// MacroBind installs transformer as name's macro transformer, as if a
// top-level (define-macro name transformer) had been expanded.
func (s *Session) MacroBind(name string, transformer Value) {
	s.macros.Define(s.syms.Intern(name), transformer)
}

// Get looks up name in the top-level environment and returns it, typically
// a Proc value a host wants to Apply directly.
func (s *Session) Get(name string) Value {
	return s.env.Lookup(s.syms.Intern(name))
}
