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
	"fmt"
	"io"
	"strconv"
)

// ErrorKind identifies the reason of a lexing error.
//
type ErrorKind int

// Error kinds.
//
const (
	UnexpectedCharacter  ErrorKind = iota // input matches no known token shape
	StringNotTerminated                   // reserved for string literal scanners
	InvalidNumber                         // malformed numeric literal
	CommentNotTerminated                  // block comment without closing */
)

var messages = [...]string{
	UnexpectedCharacter:  "Unexpected Character",
	StringNotTerminated:  "Unterminated string literal",
	InvalidNumber:        "Invalid number literal",
	CommentNotTerminated: "Unterminated comment",
}

// String returns the diagnostic message for the error kind.
//
func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(messages) {
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
	return messages[k]
}

// Error is a lexing error. Errors are emitted in the token stream at the
// point where they are detected and lexing resumes right after them.
//
type Error struct {
	Kind   ErrorKind
	Line   int // 1-based
	Column int // 1-based
}

// Error returns the error formatted as "[line:column] message".
//
func (e *Error) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Kind)
}

// Report writes the error message followed by a newline to w. Write errors are
// ignored.
//
func (e *Error) Report(w io.Writer) {
	_, _ = io.WriteString(w, e.Error()+"\n")
}
