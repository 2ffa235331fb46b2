package state_test

import (
	"fmt"
	"strconv"

	"github.com/db47h/tslex"
	"github.com/db47h/tslex/state"
	"github.com/db47h/tslex/token"
)

var tokNames = map[token.Kind]string{
	token.EndOfFile:               "EOF      ",
	token.SemicolonToken:          "semicolon",
	token.NumericLiteral:          "number   ",
	token.SingleLineCommentTrivia: "comment  ",
	token.MultiLineCommentTrivia:  "comment  ",
	token.JSDocCommentTrivia:      "doc      ",
	token.Unknown:                 "raw char ",
}

// tinyInit returns the initial state function for a language made of numbers,
// comments and semicolons.
//
func tinyInit() tslex.StateFn {
	comment := state.Comment(token.SingleLineCommentTrivia, token.MultiLineCommentTrivia, token.JSDocCommentTrivia)
	number := state.Number(token.NumericLiteral)

	return func(s *tslex.State) tslex.StateFn {
		s.SkipTrivia()
		s.StartToken()
		switch r := s.Next(); r {
		case tslex.EOF:
			s.Emit(token.EndOfFile, token.NoSpan, token.NoSpan)
			return nil
		case ';':
			s.Emit(token.SemicolonToken, s.TokenSpan(), token.NoSpan)
			return nil
		case '0':
			return number
		case '/':
			if p := s.Peek(); p == '/' || p == '*' {
				// do not read the second character here
				return comment
			}
		}
		s.Emit(token.Unknown, s.TokenSpan(), token.NoSpan)
		return nil
	}
}

func Example_tiny() {
	input := `/** answer */
0x2a; // hex
0b2 ;`

	f := token.NewFile("example", []byte(input))
	l := tslex.NewLexer(f, tinyInit())

	for t, err := range l.Tokens() {
		if err != nil {
			fmt.Println("error:   ", err)
			continue
		}
		fmt.Println(tokNames[t.Kind], strconv.Quote(string(t.Text(f.Source()))))
	}

	// Output:
	// doc       " answer "
	// number    "0x2a"
	// semicolon ";"
	// comment   " hex"
	// error:    [3:3] Invalid number literal
	// semicolon ";"
}
