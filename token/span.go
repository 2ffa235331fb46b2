package token

import (
	"fmt"
	"strconv"
)

// Span is a half-open [Start, End) byte range into a File's source. Spans
// reference the source buffer instead of copying it.
//
type Span struct {
	Start Pos
	End   Pos
}

// NoSpan represents an absent optional span.
//
var NoSpan = Span{NoPos, NoPos}

// IsValid returns true if s references an actual range of the source.
//
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End >= s.Start
}

// Len returns the length of the span in bytes.
//
func (s Span) Len() int {
	if !s.IsValid() {
		return 0
	}
	return int(s.End - s.Start)
}

// Text returns the bytes of src covered by the span, or nil if the span is
// not valid.
//
func (s Span) Text(src []byte) []byte {
	if !s.IsValid() || int(s.End) > len(src) {
		return nil
	}
	return src[s.Start:s.End]
}

// Token is a classified, positioned unit of source text.
//
// Start and End give the full extent of the token. Lexeme and Value are
// optional (NoSpan if absent): Lexeme is the meaningful text of the token
// (for comments, without their delimiters) and Value is the span of the
// literal value for literal tokens.
//
type Token struct {
	Kind   Kind
	Line   int // 1-based line of the token start
	Start  Pos
	End    Pos
	Lexeme Span
	Value  Span
}

// Span returns the full extent of the token.
//
func (t Token) Span() Span {
	return Span{t.Start, t.End}
}

// Text returns the token's lexeme within src.
//
func (t Token) Text(src []byte) []byte {
	return t.Lexeme.Text(src)
}

// String returns a string representation of the token for debugging purposes.
// The output format is not guaranteed to be stable.
//
func (t Token) String() string {
	return fmt.Sprintf("%d:%d-%d: %s", t.Line, t.Start, t.End, t.Kind)
}

// Format returns a representation of the token of the form
// `line:col: Kind "lexeme"` where the column and lexeme are resolved in f.
//
func (t Token) Format(f *File) string {
	pos := f.Position(t.Start)
	if !t.Lexeme.IsValid() {
		return fmt.Sprintf("%d:%d: %s", pos.Line, pos.Column, t.Kind)
	}
	return fmt.Sprintf("%d:%d: %s %s", pos.Line, pos.Column, t.Kind, strconv.Quote(string(t.Text(f.Source()))))
}
