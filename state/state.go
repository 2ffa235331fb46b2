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

// Package state provides state functions for lexing comments and numeric
// literals.
//
// State functions in this package expect that the first character that is
// part of the lexed entity has already been read by State.Next. For example:
//
//	switch r := s.Next(); r {
//	case '/':
//		if p := s.Peek(); p == '/' || p == '*' {
//			// do not read the second character here
//			return comment
//		}
//	case '0':
//		return number
//	}
//
// All functions are constructors that take at least a token kind as argument
// and return stateless closures. They panic when entered with input that
// cannot start the lexed entity.
//
package state

import (
	"github.com/db47h/tslex"
	"github.com/db47h/tslex/token"
)

// Comment returns a StateFn that lexes comments:
//
//	// single line comment, emitted as tokLine
//	/* block comment, emitted as tokBlock */
//	/** documentation comment, emitted as tokDoc */
//
// When entering the StateFn, the leading '/' has already been read and the
// next rune must be either '/' or '*'.
//
// Single line comments end right before the next newline or at EOF. The
// lexeme of the emitted token excludes the comment delimiters, including the
// extra '*' of documentation comments. "/**/" is an empty block comment.
//
// A block comment that is not closed before EOF results in a
// tslex.CommentNotTerminated error attributed to the line where the comment
// started.
//
func Comment(tokLine, tokBlock, tokDoc token.Kind) tslex.StateFn {
	return func(s *tslex.State) tslex.StateFn {
		start := s.TokenPos()
		switch s.Next() {
		case '/':
			for r := s.Peek(); r != '\n' && r != tslex.EOF; r = s.Peek() {
				s.Next()
			}
			s.Emit(tokLine, token.Span{Start: start + 2, End: s.Offset()}, token.NoSpan)
			return nil
		case '*':
			return blockComment(tokBlock, tokDoc)
		}
		panic("not a comment")
	}
}

func blockComment(tokBlock, tokDoc token.Kind) tslex.StateFn {
	return func(s *tslex.State) tslex.StateFn {
		t, from := tokBlock, s.TokenPos()+2
		if s.Match('*') {
			if s.Match('/') {
				s.Emit(tokBlock, token.Span{Start: from, End: from}, token.NoSpan)
				return nil
			}
			t, from = tokDoc, from+1
		}
		for {
			switch s.Next() {
			case tslex.EOF:
				s.EmitError(tslex.CommentNotTerminated, s.TokenLine(), s.Column())
				return nil
			case '*':
				if s.Match('/') {
					s.Emit(t, token.Span{Start: from, End: s.Offset() - 2}, token.NoSpan)
					return nil
				}
			}
		}
	}
}
