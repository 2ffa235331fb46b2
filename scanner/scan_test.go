package scanner_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/tslex"
	"github.com/db47h/tslex/scanner"
	"github.com/db47h/tslex/token"
)

func render(f *token.File, tok token.Token, err error) string {
	if err != nil {
		return err.Error()
	}
	return tok.Format(f)
}

// scanAll scans input up to and including the first EndOfFile token.
func scanAll(t *testing.T, input string, opts ...scanner.Option) []string {
	t.Helper()
	f := token.NewFile(t.Name(), []byte(input))
	s := scanner.New(f, opts...)
	var res []string
	for i := 0; i <= len(input)+1; i++ {
		tok, err := s.Next()
		res = append(res, render(f, tok, err))
		if err == nil && tok.Kind == token.EndOfFile {
			return res
		}
	}
	t.Fatalf("no EndOfFile token after %d items: %v", len(res), res)
	return nil
}

func TestScanner_Next(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{"1:1: EndOfFile"}},
		{"trivia", " \t\r\n \n", []string{"3:1: EndOfFile"}},
		{"punct", "{}()[];,~:@", []string{
			`1:1: LeftBraceToken "{"`, `1:2: RightBraceToken "}"`,
			`1:3: LeftParenToken "("`, `1:4: RightParenToken ")"`,
			`1:5: LeftBracketToken "["`, `1:6: RightBracketToken "]"`,
			`1:7: SemicolonToken ";"`, `1:8: CommaToken ","`,
			`1:9: TildeToken "~"`, `1:10: ColonToken ":"`, `1:11: AtToken "@"`,
			"1:12: EndOfFile",
		}},
		{"lines", "{\n  }\r\n\t;", []string{
			`1:1: LeftBraceToken "{"`, `2:3: RightBraceToken "}"`, `3:2: SemicolonToken ";"`, "3:3: EndOfFile",
		}},
		{"dots", ". ... .. ....", []string{
			`1:1: DotToken "."`, `1:3: DotDotDotToken "..."`,
			"[1:9] Unexpected Character",
			`1:10: DotDotDotToken "..."`, `1:13: DotToken "."`,
			"1:14: EndOfFile",
		}},
		{"dotdot", "..", []string{"[1:3] Unexpected Character", "1:3: EndOfFile"}},
		{"greedy", "+++ ===> **=* ?.? ??=? <<=< >>>>= &&=& ||=|", []string{
			`1:1: PlusPlusToken "++"`, `1:3: PlusToken "+"`,
			`1:5: EqualsEqualsEqualsToken "==="`, `1:8: GreaterThanToken ">"`,
			`1:10: AsteriskAsteriskEqualsToken "**="`, `1:13: AsteriskToken "*"`,
			`1:15: QuestionDotToken "?."`, `1:17: QuestionToken "?"`,
			`1:19: QuestionQuestionEqualsToken "??="`, `1:22: QuestionToken "?"`,
			`1:24: LessThanLessThanEqualsToken "<<="`, `1:27: LessThanToken "<"`,
			`1:29: GreaterThanGreaterThanGreaterThanToken ">>>"`, `1:32: GreaterThanEqualsToken ">="`,
			`1:35: AmpersandAmpersandEqualsToken "&&="`, `1:38: AmpersandToken "&"`,
			`1:40: BarBarEqualsToken "||="`, `1:43: BarToken "|"`,
			"1:44: EndOfFile",
		}},
		{"excluded", "</`#", []string{
			`1:1: LessThanToken "<"`, `1:2: SlashToken "/"`,
			"[1:3] Unexpected Character", "[1:4] Unexpected Character",
			"1:5: EndOfFile",
		}},
		{"slash", "/= / /", []string{
			`1:1: SlashEqualsToken "/="`, `1:4: SlashToken "/"`, `1:6: SlashToken "/"`, "1:7: EndOfFile",
		}},
		{"comments", "// c\n/** d */ /* e */;/**/", []string{
			`1:1: SingleLineCommentTrivia " c"`,
			`2:1: JSDocCommentTrivia " d "`,
			`2:10: MultiLineCommentTrivia " e "`,
			`2:17: SemicolonToken ";"`,
			`2:18: MultiLineCommentTrivia ""`,
			"2:22: EndOfFile",
		}},
		{"commentLines", "/* a\n\nb */ ;", []string{
			`1:1: MultiLineCommentTrivia " a\n\nb "`, `3:6: SemicolonToken ";"`, "3:7: EndOfFile",
		}},
		{"unterminated", "; /* x\n", []string{
			`1:1: SemicolonToken ";"`, "[1:1] Unterminated comment", "2:1: EndOfFile",
		}},
		{"numbers", "0x1f;0b2 7", []string{
			`1:1: NumericLiteral "0x1f"`, `1:5: SemicolonToken ";"`,
			"[1:8] Invalid number literal",
			"[1:10] Invalid number literal",
			"1:11: EndOfFile",
		}},
		{"numberParen", "(0x1)", []string{
			`1:1: LeftParenToken "("`, "[1:5] Invalid number literal", "1:6: EndOfFile",
		}},
		{"unknown", "x é", []string{
			"[1:1] Unexpected Character", "[1:3] Unexpected Character", "1:4: EndOfFile",
		}},
		{"invalidUTF8", "\xff;", []string{
			"[1:1] Unexpected Character", `1:2: SemicolonToken ";"`, "1:3: EndOfFile",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scanAll(t, tt.input))
		})
	}
}

func TestScanner_operators(t *testing.T) {
	excluded := map[token.Kind]bool{
		token.LessThanSlashToken: true,
		token.BacktickToken:      true,
		token.HashToken:          true,
	}
	for k := token.FirstPunctuation; k <= token.LastPunctuation; k++ {
		if excluded[k] {
			continue
		}
		t.Run(k.String(), func(t *testing.T) {
			src := []byte(k.Text())
			s := scanner.New(token.NewFile("", src))
			tok, err := s.Next()
			require.NoError(t, err)
			assert.Equal(t, k, tok.Kind)
			assert.Equal(t, 1, tok.Line)
			assert.Equal(t, token.Pos(0), tok.Start)
			assert.Equal(t, token.Pos(len(src)), tok.End)
			assert.Equal(t, k.Text(), string(tok.Text(src)))
			assert.False(t, tok.Value.IsValid())

			tok, err = s.Next()
			require.NoError(t, err)
			assert.Equal(t, token.EndOfFile, tok.Kind)
		})
	}
}

func TestScanner_spans(t *testing.T) {
	src := []byte("{ 0b101; /** doc */\n\t0o17 >>>= 0 // end\n}")
	s := scanner.New(token.NewFile("", src))
	var b bytes.Buffer
	prev := token.Pos(0)
	for tok, err := range s.All() {
		require.NoError(t, err)
		require.True(t, tok.Start >= prev)
		for _, r := range src[prev:tok.Start] {
			require.True(t, tslex.IsTrivia(rune(r)), "non trivia %q between tokens", r)
		}
		b.Write(src[prev:tok.Start])
		b.Write(tok.Span().Text(src))
		prev = tok.End
		if tok.Kind == token.NumericLiteral {
			assert.Equal(t, tok.Span(), tok.Value)
			assert.Equal(t, tok.Span(), tok.Lexeme)
		}
	}
	b.Write(src[prev:])
	assert.Equal(t, string(src), b.String())
}

func TestScanner_eof(t *testing.T) {
	src := []byte("; ")
	s := scanner.New(token.NewFile("", src))
	_, err := s.Next()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		tok, err := s.Next()
		require.NoError(t, err)
		assert.Equal(t, token.EndOfFile, tok.Kind)
		assert.Equal(t, token.Pos(len(src)), tok.Start)
		assert.Equal(t, token.Pos(len(src)), tok.End)
		assert.Equal(t, token.NoSpan, tok.Lexeme)
		assert.Equal(t, token.NoSpan, tok.Value)
	}
}

func TestScanner_All(t *testing.T) {
	f := token.NewFile("", []byte("( x ) // c"))
	var kinds []token.Kind
	var errs []error
	for tok, err := range scanner.New(f).All() {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []token.Kind{token.LeftParenToken, token.RightParenToken, token.SingleLineCommentTrivia}, kinds)
	require.Len(t, errs, 1)
	var e *tslex.Error
	require.True(t, errors.As(errs[0], &e))
	assert.Equal(t, tslex.Error{Kind: tslex.UnexpectedCharacter, Line: 1, Column: 3}, *e)
}

func TestOptions(t *testing.T) {
	t.Run("SkipComments", func(t *testing.T) {
		assert.Equal(t, []string{
			`1:1: SemicolonToken ";"`, `2:8: SemicolonToken ";"`, "2:18: EndOfFile",
		}, scanAll(t, "; // a\n/* b */; /** c */", scanner.SkipComments()))
	})
	t.Run("ErrorHandler", func(t *testing.T) {
		var got []tslex.Error
		h := scanner.ErrorHandler(func(err *tslex.Error) { got = append(got, *err) })
		f := token.NewFile("", []byte("x 0b2 /*"))
		n := 0
		for range scanner.New(f, h).All() {
			n++
		}
		assert.Equal(t, 3, n)
		assert.Equal(t, []tslex.Error{
			{Kind: tslex.UnexpectedCharacter, Line: 1, Column: 1},
			{Kind: tslex.InvalidNumber, Line: 1, Column: 5},
			{Kind: tslex.CommentNotTerminated, Line: 1, Column: 9},
		}, got)

		got = got[:0]
		s := scanner.New(token.NewFile("", []byte("`;")), h)
		_, err := s.Next()
		require.Error(t, err)
		_, err = s.Next()
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func BenchmarkScanner(b *testing.B) {
	src := bytes.Repeat([]byte("{ a ??= 0x1f >>> 0b1; } /* block */ // line\n"), 1024)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := scanner.New(token.NewFile("", src))
		for range s.All() {
		}
	}
}
