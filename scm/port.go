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

// Port is an opaque input source yielding a lazy character sequence. The
// core exposes exactly one way to create one, string-to-input-port, which
// keeps the language from reaching outside its own value model.
type Port struct {
	runes []rune
	pos   int
}

func NewStringPort(s string) *Port {
	return &Port{runes: []rune(s)}
}

// Peek returns up to n runes ahead without consuming them.
func (p *Port) Peek(n int) string {
	end := p.pos + n
	if end > len(p.runes) {
		end = len(p.runes)
	}
	return string(p.runes[p.pos:end])
}

// Next consumes and returns the next rune, ok=false at end of stream.
func (p *Port) Next() (rune, bool) {
	if p.pos >= len(p.runes) {
		return 0, false
	}
	r := p.runes[p.pos]
	p.pos++
	return r, true
}

// ReadRemaining consumes and returns every rune left in the port.
func (p *Port) ReadRemaining() string {
	s := string(p.runes[p.pos:])
	p.pos = len(p.runes)
	return s
}

func (p *Port) AtEOF() bool { return p.pos >= len(p.runes) }

func NewPort(p *Port) Value {
	return Value{kind: KindPort, data: p}
}
