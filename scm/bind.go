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

import (
	"math/big"
	"reflect"

	"github.com/shopspring/decimal"
)

// BindFunc adapts an ordinary Go function to a built-in procedure and binds
// it under name. fn's parameters and results are each converted against
// Value with valueToGo/goToValue; its arguments are always a fixed Go-typed
// parameter list, not a variadic Value slice — use Bind directly with a
// hand-written BuiltinFunc value for that lower-level shape.
//
// Three result shapes are accepted, mirroring the three ways a Go function
// meaningfully returns data to a script:
//
//   - no results: the call returns no values
//   - exactly one result: the call returns that one value
//   - more than one result: the call returns them as that many values,
//     which the evaluator happily splices into an argument list or an
//     assignment via `values`
func (s *Session) BindFunc(name string, fn any) {
	s.Bind(name, newBuiltinProc(name, adaptGoFunc(name, fn)))
}

func adaptGoFunc(name string, fn any) BuiltinFunc {
	rv := reflect.ValueOf(fn)
	rt := rv.Type()
	if rt.Kind() != reflect.Func {
		panic(typeError(name + ": BindFunc requires a function"))
	}
	if rt.IsVariadic() {
		panic(typeError(name + ": BindFunc does not support variadic Go functions"))
	}
	numIn := rt.NumIn()
	return func(args []Value) []Value {
		if len(args) != numIn {
			panic(arityError(name + ": expected " + itoaHelper(numIn) + " arguments"))
		}
		in := make([]reflect.Value, numIn)
		for i := 0; i < numIn; i++ {
			in[i] = valueToGo(args[i], rt.In(i), name)
		}
		out := rv.Call(in)
		results := make([]Value, len(out))
		for i, o := range out {
			results[i] = goToValue(o)
		}
		return results
	}
}

// valueToGo converts a script Value into the Go type a bound function's
// parameter expects.
func valueToGo(v Value, t reflect.Type, who string) reflect.Value {
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(v.AsString())
	case reflect.Bool:
		return reflect.ValueOf(v.AsBool())
	case reflect.Int, reflect.Int64:
		i := v.AsBigInt().Int64()
		return reflect.ValueOf(i).Convert(t)
	case reflect.Float64:
		f, _ := toDecimal(v).Float64()
		return reflect.ValueOf(f)
	default:
		switch {
		case t == reflect.TypeOf(Value{}):
			return reflect.ValueOf(v)
		case t == reflect.TypeOf((*big.Int)(nil)):
			return reflect.ValueOf(v.AsBigInt())
		case t == reflect.TypeOf(decimal.Decimal{}):
			return reflect.ValueOf(toDecimal(v))
		case t == reflect.TypeOf([]Value(nil)):
			return reflect.ValueOf(ListToSlice(v))
		default:
			panic(typeError(who + ": unsupported bound parameter type " + t.String()))
		}
	}
}

// goToValue converts one Go return value from a bound function back into a
// script Value.
func goToValue(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String())
	case reflect.Bool:
		return Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int())
	case reflect.Float32, reflect.Float64:
		d := decimal.NewFromFloat(rv.Float())
		return Decimal(d)
	default:
		if rv.Kind() == reflect.Interface && rv.IsNil() {
			return Nil
		}
		switch v := rv.Interface().(type) {
		case Value:
			return v
		case *big.Int:
			return BigInt(v)
		case decimal.Decimal:
			return Decimal(v)
		case []Value:
			return List(v...)
		case error:
			if v == nil {
				return Nil
			}
			panic(domainError(v.Error()))
		default:
			panic(typeError("unsupported bound return type " + rv.Type().String()))
		}
	}
}
