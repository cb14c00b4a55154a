/*
Copyright (C) 2023  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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
	"regexp"
	"strings"
)

// Reader is a pull parser over a Port: ReadForm consumes one
// token of lookahead at a time rather than tokenizing the whole input up
// front, pulling tokens lazily from the Port instead of building a token
// slice up front.
type Reader struct {
	port   *Port
	syms   *SymbolTable
	lookBuf *token
}

func NewReader(port *Port, syms *SymbolTable) *Reader {
	return &Reader{port: port, syms: syms}
}

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokDot
	tokQuote
	tokQuasiquote
	tokUnquote
	tokUnquoteSplicing
	tokAtom
)

type token struct {
	kind tokenKind
	val  Value
}

var integerRe = regexp.MustCompile(`^-?[0-9_]*[0-9][0-9_]*$`)
var decimalRe = regexp.MustCompile(`^-?[0-9_]*\.?[0-9_]*([eE][+-]?[0-9_]+)?$`)

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

func isDelimiter(r rune) bool {
	switch r {
	case '(', ')', '\'', '`', ',', '"':
		return true
	}
	return isWhitespace(r)
}

// skipAtmosphere consumes whitespace and ;-comments (to end of line).
func (rd *Reader) skipAtmosphere() {
	for {
		r, ok := peekRune(rd.port)
		if !ok {
			return
		}
		if isWhitespace(r) {
			rd.port.Next()
			continue
		}
		if r == ';' {
			for {
				r, ok := rd.port.Next()
				if !ok || r == '\n' {
					break
				}
			}
			continue
		}
		return
	}
}

func peekRune(p *Port) (rune, bool) {
	s := p.Peek(1)
	if s == "" {
		return 0, false
	}
	return []rune(s)[0], true
}

func (rd *Reader) peekToken() token {
	if rd.lookBuf == nil {
		t := rd.lexToken()
		rd.lookBuf = &t
	}
	return *rd.lookBuf
}

func (rd *Reader) nextToken() token {
	t := rd.peekToken()
	rd.lookBuf = nil
	return t
}

func (rd *Reader) lexToken() token {
	rd.skipAtmosphere()
	r, ok := peekRune(rd.port)
	if !ok {
		return token{kind: tokEOF}
	}
	switch r {
	case '(':
		rd.port.Next()
		return token{kind: tokLParen}
	case ')':
		rd.port.Next()
		return token{kind: tokRParen}
	case '\'':
		rd.port.Next()
		return token{kind: tokQuote}
	case '`':
		rd.port.Next()
		return token{kind: tokQuasiquote}
	case ',':
		rd.port.Next()
		if r2, ok := peekRune(rd.port); ok && r2 == '@' {
			rd.port.Next()
			return token{kind: tokUnquoteSplicing}
		}
		return token{kind: tokUnquote}
	case '"':
		return token{kind: tokAtom, val: rd.lexString()}
	default:
		return rd.lexWord()
	}
}

func (rd *Reader) lexString() Value {
	rd.port.Next() // consume opening quote
	var b strings.Builder
	for {
		r, ok := rd.port.Next()
		if !ok {
			panic(readError("unterminated string"))
		}
		if r == '"' {
			break
		}
		if r == '\\' {
			e, ok := rd.port.Next()
			if !ok {
				panic(readError("unterminated string"))
			}
			switch e {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				panic(readError("unknown string escape: \\" + string(e)))
			}
			continue
		}
		b.WriteRune(r)
	}
	return String(b.String())
}

func (rd *Reader) lexWord() token {
	var b strings.Builder
	for {
		r, ok := peekRune(rd.port)
		if !ok || isDelimiter(r) {
			break
		}
		rd.port.Next()
		b.WriteRune(r)
	}
	word := b.String()
	if word == "" {
		panic(readError("unexpected character"))
	}
	if word == "." {
		return token{kind: tokDot}
	}
	if word == "#t" {
		return token{kind: tokAtom, val: True}
	}
	if word == "#f" {
		return token{kind: tokAtom, val: False}
	}
	if v, ok := classifyNumber(word); ok {
		return token{kind: tokAtom, val: v}
	}
	return token{kind: tokAtom, val: rd.syms.SymbolValue(word)}
}

func classifyNumber(word string) (Value, bool) {
	if !strings.ContainsAny(word, "0123456789") {
		return Value{}, false
	}
	if integerRe.MatchString(word) {
		cleaned := strings.ReplaceAll(word, "_", "")
		bi := new(big.Int)
		if _, ok := bi.SetString(cleaned, 10); !ok {
			return Value{}, false
		}
		return BigInt(bi), true
	}
	if decimalRe.MatchString(word) && strings.ContainsAny(word, ".eE") {
		cleaned := strings.ReplaceAll(word, "_", "")
		if v, ok := DecimalFromString(cleaned); ok {
			return v, true
		}
	}
	return Value{}, false
}

// ReadForm reads and returns a single form. At top level, exhausting the
// input yields the session's end-of-file symbol with no error; encountering
// end-of-input while inside a list is a read error.
func (rd *Reader) ReadForm() Value {
	t := rd.nextToken()
	return rd.readFormFromToken(t, false)
}

func (rd *Reader) readFormFromToken(t token, insideList bool) Value {
	switch t.kind {
	case tokEOF:
		if insideList {
			panic(readError("unexpected end of input inside list"))
		}
		return rd.syms.EOF()
	case tokLParen:
		return rd.readList()
	case tokRParen:
		panic(readError("unexpected )"))
	case tokDot:
		panic(readError("unexpected . outside of list context"))
	case tokQuote:
		return List(rd.syms.SymbolValue("quote"), rd.readRequiredForm())
	case tokQuasiquote:
		return List(rd.syms.SymbolValue("quasiquote"), rd.readRequiredForm())
	case tokUnquote:
		return List(rd.syms.SymbolValue("unquote"), rd.readRequiredForm())
	case tokUnquoteSplicing:
		return List(rd.syms.SymbolValue("unquote-splicing"), rd.readRequiredForm())
	case tokAtom:
		return t.val
	default:
		panic(readError("internal: unknown token"))
	}
}

func (rd *Reader) readRequiredForm() Value {
	t := rd.nextToken()
	if t.kind == tokEOF {
		panic(readError("unexpected end of input"))
	}
	return rd.readFormFromToken(t, true)
}

// readList reads forms after a consumed '(' until the matching ')',
// honoring a single '.' between the head forms and a final tail form.
func (rd *Reader) readList() Value {
	var items []Value
	for {
		t := rd.peekToken()
		if t.kind == tokRParen {
			rd.nextToken()
			return List(items...)
		}
		if t.kind == tokEOF {
			panic(readError("expecting matching )"))
		}
		if t.kind == tokDot {
			if len(items) == 0 {
				panic(readError("unexpected . at start of list"))
			}
			rd.nextToken()
			tail := rd.readRequiredForm()
			closeTok := rd.nextToken()
			if closeTok.kind != tokRParen {
				panic(readError("expected ) after dotted tail"))
			}
			result := tail
			for i := len(items) - 1; i >= 0; i-- {
				result = ConsPair(items[i], result)
			}
			return result
		}
		items = append(items, rd.readFormFromToken(rd.nextToken(), true))
	}
}
