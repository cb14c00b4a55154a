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

// MacroTable mirrors Env's frame-chain structure but is a distinct
// namespace: it is never consulted by Eval, only by the Expander. A
// symbol bound as a macro and the same symbol bound as a value are
// entirely independent.
type MacroTable struct {
	transformers map[*Symbol]Value
	outer        *MacroTable
}

func NewMacroTable(outer *MacroTable) *MacroTable {
	return &MacroTable{transformers: make(map[*Symbol]Value), outer: outer}
}

func (m *MacroTable) Lookup(sym *Symbol) (Value, bool) {
	for t := m; t != nil; t = t.outer {
		if v, ok := t.transformers[sym]; ok {
			return v, true
		}
	}
	return Value{}, false
}

func (m *MacroTable) Define(sym *Symbol, transformer Value) {
	m.transformers[sym] = transformer
}
