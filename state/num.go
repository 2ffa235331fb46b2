// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package state

import (
	"github.com/db47h/tslex"
	"github.com/db47h/tslex/token"
)

// A numberLexer lexes numbers.
//
type numberLexer struct {
	tok token.Kind // token kind for numeric literals
}

// base describes a number base: its digit alphabet and whether a trailing 'b'
// ends the literal.
//
type base struct {
	isDigit  func(r rune) bool
	trailing rune
}

var (
	base2  = base{isDigit: func(r rune) bool { return r == '0' || r == '1' }}
	base8  = base{isDigit: func(r rune) bool { return r >= '0' && r <= '7' }}
	base10 = base{isDigit: isDecimal, trailing: 'b'}
	base16 = base{isDigit: func(r rune) bool {
		return isDecimal(r) || r >= 'a' && r <= 'f' || r >= 'A' && r <= 'F'
	}}
)

func isDecimal(r rune) bool { return r >= '0' && r <= '9' }

// IsTerminator returns true if r ends a numeric literal: whitespace, ';' or
// EOF.
//
func IsTerminator(r rune) bool {
	return r == tslex.EOF || r == ';' || tslex.IsTrivia(r)
}

// Number returns a tslex.StateFn that lexes numeric literals starting with
// '0'. The form is determined by the rune following the leading '0':
//
//	0b101, 0B1   binary
//	0o17, 0O7    octal
//	0x1f, 0XA    hexadecimal
//	0101, 0101b  decimal digits, a trailing 'b' ends the literal
//	0            any other rune or EOF: a single '0' literal
//
// Prefixed forms require at least one digit after the prefix. Digits are then
// consumed until whitespace, ';' or EOF. Any other rune outside of the digit
// alphabet is reported as a tslex.InvalidNumber error at the column of that
// rune; the rune is consumed and lexing resumes after it.
//
// The emitted token's lexeme and value both span the whole literal, prefix
// included.
//
// The StateFn will panic on invalid input. i.e. callers must make sure that
// the input starts with '0':
//
//	switch s.Next() {
//	case '0':
//		return state.Number(tokNumber)
//	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
//		// not supported
//	}
//
func Number(tok token.Kind) tslex.StateFn {
	l := &numberLexer{tok: tok}
	return l.stateNumber
}

// stateNumber is the main entry point for numbers.
//
func (l *numberLexer) stateNumber(s *tslex.State) tslex.StateFn {
	if s.Current() != '0' {
		panic("not a number")
	}
	switch r := s.Peek(); r {
	case 'b', 'B':
		s.Next()
		return l.statePrefixed(base2)
	case 'o', 'O':
		s.Next()
		return l.statePrefixed(base8)
	case 'x', 'X':
		s.Next()
		return l.statePrefixed(base16)
	default:
		if isDecimal(r) {
			return l.stateDigits(base10)
		}
	}
	l.emit(s)
	return nil
}

// statePrefixed requires one digit right after a base prefix.
//
func (l *numberLexer) statePrefixed(b base) tslex.StateFn {
	return func(s *tslex.State) tslex.StateFn {
		if !b.isDigit(s.Peek()) {
			invalidNumber(s)
			return nil
		}
		s.Next()
		return l.stateDigits(b)
	}
}

// stateDigits consumes digits in base b up to a terminator.
//
func (l *numberLexer) stateDigits(b base) tslex.StateFn {
	return func(s *tslex.State) tslex.StateFn {
		for {
			r := s.Peek()
			switch {
			case b.isDigit(r):
				s.Next()
			case IsTerminator(r):
				l.emit(s)
				return nil
			case b.trailing != 0 && r == b.trailing:
				s.Next()
				l.emit(s)
				return nil
			default:
				invalidNumber(s)
				return nil
			}
		}
	}
}

func (l *numberLexer) emit(s *tslex.State) {
	sp := s.TokenSpan()
	s.Emit(l.tok, sp, sp)
}

// invalidNumber emits an InvalidNumber error at the next rune and consumes it
// unless it is a terminator.
//
func invalidNumber(s *tslex.State) {
	line, col := s.Line(), s.Column()
	if !IsTerminator(s.Peek()) {
		s.Next()
	}
	s.EmitError(tslex.InvalidNumber, line, col)
}
