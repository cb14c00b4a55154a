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

// registerPortBuiltins wires the only way to construct a Port value
// (string-to-input-port) plus the peek/read operations over it. Every
// closure here touches nothing but the Port/Value/Reader types — no
// built-in in this file, or anywhere else in the package, performs
// filesystem, network or process I/O.
func registerPortBuiltins(env *Env, syms *SymbolTable) {
	Declare(env, syms, &Declaration{
		Name: "string-to-input-port", MinParameter: 1, MaxParameter: 1,
		Desc: "Wraps a string as an input port positioned at its first character.",
		Fn: func(args []Value) []Value {
			if args[0].Kind() != KindString {
				panic(typeError("string-to-input-port: expected a string"))
			}
			return []Value{NewPort(NewStringPort(args[0].AsString()))}
		},
	})
	Declare(env, syms, &Declaration{
		Name: "peek-port", MinParameter: 1, MaxParameter: 2,
		Desc: "Returns up to n characters ahead of a port without consuming them (n defaults to 1).",
		Fn: func(args []Value) []Value {
			p := requirePort(args[0], "peek-port")
			n := 1
			if len(args) == 2 {
				n = int(args[1].AsBigInt().Int64())
			}
			return []Value{String(p.Peek(n))}
		},
	})
	Declare(env, syms, &Declaration{
		Name: "read-port", MinParameter: 1, MaxParameter: 1,
		Desc: "Consumes and returns the next single character of a port as a string, or an empty string at end of stream.",
		Fn: func(args []Value) []Value {
			p := requirePort(args[0], "read-port")
			r, ok := p.Next()
			if !ok {
				return []Value{String("")}
			}
			return []Value{String(string(r))}
		},
	})
	Declare(env, syms, &Declaration{
		Name: "read-port-fully", MinParameter: 1, MaxParameter: 1,
		Desc: "Consumes and returns every remaining character of a port.",
		Fn: func(args []Value) []Value {
			p := requirePort(args[0], "read-port-fully")
			return []Value{String(p.ReadRemaining())}
		},
	})
	Declare(env, syms, &Declaration{
		Name: "read", MinParameter: 1, MaxParameter: 1,
		Desc: "Reads and returns one S-expression from a port, or the end-of-file symbol once the port is exhausted.",
		Fn: func(args []Value) []Value {
			p := requirePort(args[0], "read")
			rd := NewReader(p, syms)
			return []Value{rd.ReadForm()}
		},
	})
}

func requirePort(v Value, who string) *Port {
	if v.Kind() != KindPort {
		panic(typeError(who + ": expected a port"))
	}
	return v.AsPort()
}
