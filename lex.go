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

package tslex

import (
	"iter"
	"unicode/utf8"

	"github.com/db47h/tslex/token"
)

// EOF is the return value from Next() and Peek() when EOF is reached.
//
const EOF rune = -1

// queue is a FIFO queue.
//
type queue struct {
	items []item
	head  int
	tail  int
	count int
}

type item struct {
	t   token.Token
	err error
}

func (q *queue) push(t token.Token, err error) {
	if q.head == q.tail && q.count > 0 {
		items := make([]item, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = item{t, err}
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0 beforehand.
//
func (q *queue) pop() (token.Token, error) {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	it := &q.items[i]
	return it.t, it.err
}

// Lexer wraps the public methods of a lexer. This interface is intended for
// parsers that call NewLexer(), then Lex() until EOF.
//
type Lexer state

// State holds the internal state of the lexer while processing a given input.
// It is the cursor over the source text. Note that the public methods should
// only be called from custom StateFn functions.
//
type State state

type state struct {
	queue         // Item queue
	f     *token.File
	src   []byte
	state StateFn   // current state
	init  StateFn   // current initial-state function.
	cur   int       // offset of the next rune to read
	r     rune      // last rune read
	p     token.Pos // offset of the last rune read
	line  int       // line of cur
	col   int       // runes read since the start of the current line
	ts    token.Pos // token start position
	tl    int       // token start line
	tc    int       // token start column
}

// A StateFn is a state function.
//
// If a StateFn returns nil, the lexer transitions back to its initial state
// function.
//
type StateFn func(s *State) StateFn

var bom = []byte{0xef, 0xbb, 0xbf}

// NewLexer creates a new lexer associated with the given source file. A new
// lexer must be created for every source file to be lexed.
//
// A byte order mark at the start of the source is silently skipped.
//
func NewLexer(f *token.File, init StateFn) *Lexer {
	s := &state{
		// initial q size must be an exponent of 2
		queue: queue{items: make([]item, 2)},
		f:     f,
		src:   f.Source(),
		init:  init,
		r:     utf8.RuneSelf,
		p:     token.NoPos,
		line:  1,
		tl:    1,
		tc:    1,
	}
	if len(s.src) >= len(bom) && string(s.src[:len(bom)]) == string(bom) {
		s.cur = len(bom)
	}
	return (*Lexer)(s)
}

// Init (re-)sets the initial state function for the lexer. It can be used by
// state functions to implement context switches. This function returns its
// argument.
//
func (s *State) Init(initState StateFn) StateFn {
	s.init = initState
	return initState
}

// Lex runs state functions until an item is available and returns it. Exactly
// one of the returned token and error is meaningful: if err is not nil, it is
// a *Error and the token is the zero Token.
//
// As a convention, once the end of file has been reached, Lex() must keep
// returning an EndOfFile token. Implementors of initial state functions must
// take care of this.
//
func (l *Lexer) Lex() (token.Token, error) {
	for l.count == 0 {
		st := (*State)(l)
		if l.state == nil {
			l.state = l.init(st)
		} else {
			l.state = l.state(st)
		}
	}
	return l.pop()
}

// Tokens returns a single-use lazy sequence of the tokens and errors produced
// by Lex. Items are only scanned when pulled. The sequence ends right before
// the EndOfFile token; errors do not end it.
//
func (l *Lexer) Tokens() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for {
			t, err := l.Lex()
			if err == nil && t.Kind == token.EndOfFile {
				return
			}
			if !yield(t, err) {
				return
			}
		}
	}
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *token.File {
	return l.f
}

// File returns the File used as input for the lexer.
//
func (s *State) File() *token.File {
	return s.f
}

// Emit emits a token of kind k spanning from the token start position to the
// current position, attributed to the line where the token started.
//
func (s *State) Emit(k token.Kind, lexeme, value token.Span) {
	s.push(token.Token{
		Kind:   k,
		Line:   s.tl,
		Start:  s.ts,
		End:    token.Pos(s.cur),
		Lexeme: lexeme,
		Value:  value,
	}, nil)
}

// EmitError emits an error of the given kind positioned at line:col.
//
func (s *State) EmitError(k ErrorKind, line, col int) {
	s.push(token.Token{}, &Error{Kind: k, Line: line, Column: col})
}

// Next consumes and returns the next rune in the input stream. If the end of
// the input has been reached it will return EOF and leave the state unchanged.
//
// Invalid UTF-8 bytes are consumed one at a time and returned as
// utf8.RuneError.
//
func (s *State) Next() rune {
	if s.cur >= len(s.src) {
		s.r, s.p = EOF, token.Pos(len(s.src))
		return EOF
	}
	s.p = token.Pos(s.cur)
	// Common case: ASCII
	r, w := rune(s.src[s.cur]), 1
	if r >= utf8.RuneSelf {
		r, w = utf8.DecodeRune(s.src[s.cur:])
	}
	s.cur += w
	s.r = r
	if r == '\n' {
		s.line++
		s.col = 0
		s.f.AddLine(token.Pos(s.cur), s.line)
	} else {
		s.col++
	}
	return r
}

// Peek returns the next rune in the input stream without consuming it. At
// EOF, it simply returns EOF.
//
func (s *State) Peek() rune {
	if s.cur >= len(s.src) {
		return EOF
	}
	if r := s.src[s.cur]; r < utf8.RuneSelf {
		return rune(r)
	}
	r, _ := utf8.DecodeRune(s.src[s.cur:])
	return r
}

// Match consumes the next rune only if it is r and reports whether it did.
//
func (s *State) Match(r rune) bool {
	if r == EOF || s.Peek() != r {
		return false
	}
	s.Next()
	return true
}

// IsTrivia returns true for the whitespace runes skipped by SkipTrivia:
// space, tab, carriage return and newline.
//
func IsTrivia(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// SkipTrivia consumes any whitespace and newlines in front of the cursor.
//
func (s *State) SkipTrivia() {
	for IsTrivia(s.Peek()) {
		s.Next()
	}
}

// Current returns the last rune returned by State.Next.
//
func (s *State) Current() rune {
	return s.r
}

// Pos returns the byte offset of the last rune returned by State.Next.
// Returns token.NoPos if no input has been read yet.
//
func (s *State) Pos() token.Pos {
	return s.p
}

// Offset returns the byte offset of the next rune to be read.
//
func (s *State) Offset() token.Pos {
	return token.Pos(s.cur)
}

// Line returns the 1-based line of the next rune to be read.
//
func (s *State) Line() int {
	return s.line
}

// Column returns the 1-based column of the next rune to be read. Columns
// count runes and restart at 1 on each new line.
//
func (s *State) Column() int {
	return s.col + 1
}

// StartToken marks the current position as the start of a new token. This is
// typically called by the initial state function right before reading the
// first rune of a token:
//
//	func stateInit(s *tslex.State) tslex.StateFn {
//		s.SkipTrivia()
//		s.StartToken()
//		switch r := s.Next(); {
//		case r == tslex.EOF:
//			s.Emit(token.EndOfFile, token.NoSpan, token.NoSpan)
//		case r >= '0' && r <= '9':
//			return stateNumber
//		default:
//			// ...
//		}
//		return nil
//	}
//
func (s *State) StartToken() {
	s.ts = token.Pos(s.cur)
	s.tl = s.line
	s.tc = s.col + 1
}

// TokenPos returns the position set by StartToken.
//
func (s *State) TokenPos() token.Pos {
	return s.ts
}

// TokenLine returns the line of the position set by StartToken.
//
func (s *State) TokenLine() int {
	return s.tl
}

// TokenColumn returns the column of the position set by StartToken.
//
func (s *State) TokenColumn() int {
	return s.tc
}

// TokenSpan returns the span from the token start position to the current
// position.
//
func (s *State) TokenSpan() token.Span {
	return token.Span{Start: s.ts, End: token.Pos(s.cur)}
}
