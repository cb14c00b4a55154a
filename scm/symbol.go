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

// Symbol is an interned identifier. Two Values wrapping the same *Symbol
// pointer are the same symbol; text is carried only for display/debugging.
type Symbol struct {
	Text string
}

// SymbolTable is a session-scoped interner: intern(text) is idempotent and
// two interns of the same text return the identical *Symbol.
type SymbolTable struct {
	entries map[string]*Symbol
	eof     *Symbol
}

func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		entries: make(map[string]*Symbol),
		// The end-of-file marker is generated once per session and is never
		// reachable through Intern, so it is a genuinely uninterned symbol
		// while still being, structurally, an ordinary Symbol value.
		eof: &Symbol{Text: "#[eof]"},
	}
}

func (t *SymbolTable) Intern(text string) *Symbol {
	if s, ok := t.entries[text]; ok {
		return s
	}
	s := &Symbol{Text: text}
	t.entries[text] = s
	return s
}

func (t *SymbolTable) SymbolValue(text string) Value {
	return Value{kind: KindSymbol, data: t.Intern(text)}
}

func (t *SymbolTable) EOF() Value {
	return Value{kind: KindSymbol, data: t.eof}
}

func (t *SymbolTable) IsEOF(v Value) bool {
	return v.kind == KindSymbol && v.data.(*Symbol) == t.eof
}
