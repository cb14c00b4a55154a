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
	"strings"
)

// Display renders v the way the `display` built-in does: in read-back-able
// form, with strings quoted and escaped. This is the form the reader
// round-trip property is checked against.
func Display(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true)
	return b.String()
}

// Write renders v the way a machine-readable `write` would: strings quoted
// and escaped.
func Write(v Value) string {
	var b strings.Builder
	writeValue(&b, v, true)
	return b.String()
}

func writeValue(b *strings.Builder, v Value, quoteStrings bool) {
	switch v.Kind() {
	case KindNil:
		b.WriteString("()")
	case KindBool:
		if v.AsBool() {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case KindInt:
		b.WriteString(v.AsBigInt().String())
	case KindDecimal:
		if v.IsNegativeZero() {
			b.WriteString("-0")
		} else {
			b.WriteString(v.AsDecimal().String())
		}
	case KindString:
		if quoteStrings {
			b.WriteByte('"')
			for _, r := range v.AsString() {
				switch r {
				case '"':
					b.WriteString(`\"`)
				case '\\':
					b.WriteString(`\\`)
				default:
					b.WriteRune(r)
				}
			}
			b.WriteByte('"')
		} else {
			b.WriteString(v.AsString())
		}
	case KindSymbol:
		b.WriteString(v.AsSymbol().Text)
	case KindCons:
		writeList(b, v, quoteStrings)
	case KindVector:
		b.WriteString("#(")
		items := v.AsVector().Items
		for i, it := range items {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeValue(b, it, quoteStrings)
		}
		b.WriteByte(')')
	case KindPort:
		b.WriteString("#<port>")
	case KindProc:
		p := v.AsProc()
		if p.IsBuiltin() {
			b.WriteString("#<builtin " + p.Name + ">")
		} else {
			b.WriteString("#<procedure>")
		}
	default:
		b.WriteString("#<unknown>")
	}
}

func writeList(b *strings.Builder, v Value, quoteStrings bool) {
	b.WriteByte('(')
	first := true
	for {
		if v.Kind() == KindCons {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			c := v.AsCons()
			writeValue(b, c.Head, quoteStrings)
			v = c.Tail
			continue
		}
		break
	}
	if v.Kind() != KindNil {
		b.WriteString(" . ")
		writeValue(b, v, quoteStrings)
	}
	b.WriteByte(')')
}
