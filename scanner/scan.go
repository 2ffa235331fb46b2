// Package scanner implements a scanner for ECMAScript/TypeScript source text.
//
// The scanner skips whitespace and newlines, then lexes punctuation and
// operators (longest match first), comments and numeric literals. Identifier,
// keyword, string, template and regular expression literals are not
// supported: their first character is reported as an unexpected character.
//
package scanner

import (
	"errors"
	"iter"

	"github.com/db47h/tslex"
	"github.com/db47h/tslex/state"
	"github.com/db47h/tslex/token"
)

var (
	comment = state.Comment(token.SingleLineCommentTrivia, token.MultiLineCommentTrivia, token.JSDocCommentTrivia)
	number  = state.Number(token.NumericLiteral)
)

// A Scanner holds the scanner internal state while processing a given file.
// A Scanner must not be used concurrently.
//
type Scanner struct {
	l *tslex.Lexer
	o options
}

// New returns a new Scanner for the given file.
//
func New(f *token.File, opts ...Option) *Scanner {
	s := &Scanner{}
	for _, o := range opts {
		o(&s.o)
	}
	s.l = tslex.NewLexer(f, stateInit)
	return s
}

// File returns the file being scanned.
//
func (s *Scanner) File() *token.File {
	return s.l.File()
}

// Next skips trivia then scans and returns the next token or error. If err is
// not nil, it is a *tslex.Error. Once the end of the input has been reached,
// Next keeps returning EndOfFile tokens.
//
func (s *Scanner) Next() (token.Token, error) {
	for {
		t, err := s.l.Lex()
		if err != nil {
			s.handle(err)
			return t, err
		}
		if s.o.skipComments && t.Kind.IsComment() {
			continue
		}
		return t, nil
	}
}

// All returns a lazy sequence of the remaining tokens and errors in the file.
// The sequence ends before the EndOfFile token. It shares the scanner's
// position: it can only be consumed once and interleaving it with calls to
// Next is allowed.
//
func (s *Scanner) All() iter.Seq2[token.Token, error] {
	return func(yield func(token.Token, error) bool) {
		for t, err := range s.l.Tokens() {
			if err != nil {
				s.handle(err)
			} else if s.o.skipComments && t.Kind.IsComment() {
				continue
			}
			if !yield(t, err) {
				return
			}
		}
	}
}

func (s *Scanner) handle(err error) {
	var e *tslex.Error
	if s.o.errorHandler != nil && errors.As(err, &e) {
		s.o.errorHandler(e)
	}
}

// stateInit is the initial state: skip trivia, then scan one token.
//
func stateInit(s *tslex.State) tslex.StateFn {
	s.SkipTrivia()
	return stateToken(s)
}

// stateToken scans a single token starting at the current position.
//
func stateToken(s *tslex.State) tslex.StateFn {
	s.StartToken()
	r := s.Next()
	switch {
	case r == tslex.EOF:
		s.Emit(token.EndOfFile, token.NoSpan, token.NoSpan)
	case r == '/' && (s.Peek() == '/' || s.Peek() == '*'):
		return comment
	case r == '0':
		return number
	case r >= '1' && r <= '9':
		// decimal literals not starting with 0 are not supported
		s.EmitError(tslex.InvalidNumber, s.TokenLine(), s.TokenColumn())
	default:
		scanOperator(s, r)
	}
	return nil
}
