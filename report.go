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
	"bytes"
	"io"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/db47h/tslex/token"
)

// PrintExcerpt reports err to w like Error.Report, followed by the source
// line where the error occurred and a caret under the error column:
//
//	[1:11] Invalid number literal
//	|let x = 0b2;
//	|          ^
//
// If the line is not available from f, only the report line is written.
// Write errors are ignored.
//
func PrintExcerpt(w io.Writer, f *token.File, err *Error) {
	err.Report(w)
	l, lerr := f.Line(err.Line)
	if lerr != nil {
		return
	}
	var b bytes.Buffer
	b.WriteByte('|')
	b.Write(l)
	b.WriteString("\n|")
	b.Write(padding(l, err.Column-1))
	b.WriteString("^\n")
	_, _ = w.Write(b.Bytes())
}

// padding returns the blank prefix that aligns a caret under the rune
// following the first n runes of l, in text cells (supposing rendering with a
// UTF-8 locale and monospaced font). Tabs are preserved. Runes beyond the end
// of l count as one cell each so that carets can point right after the last
// rune.
//
func padding(l []byte, n int) []byte {
	var pad []byte
	for ; n > 0 && len(l) > 0; n-- {
		r, s := utf8.DecodeRune(l)
		l = l[s:]
		switch {
		case r == '\t':
			pad = append(pad, '\t')
		case !unicode.IsGraphic(r):
			// zero width
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianFullwidth, width.EastAsianWide:
				pad = append(pad, ' ', ' ')
			default:
				// EastAsianAmbiguous depends on user locale: 2 if locale is CJK, 1 otherwise.
				pad = append(pad, ' ')
			}
		}
	}
	for ; n > 0; n-- {
		pad = append(pad, ' ')
	}
	return pad
}
