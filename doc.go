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

/*
Package tslex provides the core of a lexer for ECMAScript/TypeScript-like
source text, built as a Deterministic Finite State Automaton whose states and
associated actions are implemented as functions.

The package provides the cursor over an in-memory source buffer (State), the
state machine driver (Lexer) and the error taxonomy. The state sub-package
provides sub-scanners for comments and numeric literals, and the scanner
sub-package assembles them into a lexer for the full operator and punctuation
set of the language.

State functions

The implementation is similar to https://golang.org/src/text/template/parse/lex.go.
See also Rob Pike's talk about combining states and actions into state
functions: https://talks.golang.org/2011/lex.slide.

A StateFn is both state and action:

	type StateFn func(*State) StateFn

It takes the lexer state as argument (to allow it to read from the input and
emit tokens) and returns the next state function. The state transition loop
is then simply:

	state = state(s)

The initial state of the DFA is the state where we expect to read a new token.
It skips trivia, marks the token start with StartToken, reads the first rune
and transitions to other states until a token is successfully matched or an
error occurs. The state function that finds a match or error emits the
corresponding token or error and returns nil to transition back to the initial
state.

The "nil-return means initial state" convention enables building a library of
state functions for common things like comments or numbers where returning to
the initial state is as simple as a nil return. By convention, all functions
in the state package expect that the first character of the lexed entity has
already been read by State.Next.

EOF conditions must be handled manually. At the very least, the initial state
function should always check for EOF and emit an EndOfFile token every time it
is called at the end of the input. EOF is not a valid rune, as such
unicode.IsDigit() will return false, so will IsTrivia. A common exception is
tokens that need a terminator (like block comments) where EOF must be checked
explicitly in order to emit errors in the absence of a terminator.

Tokens and positions

Tokens do not copy source text. Their extent and their optional lexeme and
value are byte ranges (token.Span) into the source buffer held by token.File.
The cursor tracks the current line and a running column counter which counts
runes and restarts on every new line; both are 1-based in Line() and Column().

Implementation details

Unlike the Go text template package which uses Go channels as a means of
asynchronous token emission, this package uses a FIFO queue instead. There is
no need for the caller to take care of cancellation or draining the input: to
stop lexing, simply stop calling Lex or break out of the range loop over
Tokens.

Error handling

Errors are items of the token stream: Lex returns them as *Error values in
place of a token and lexing resumes after the offending input, so that a
single pass can collect all diagnostics. Every error carries the line and
column where it was detected and formats as

	[line:column] message

*/
package tslex
