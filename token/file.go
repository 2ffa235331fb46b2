package token

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Pos represents a byte offset within a File's source.
//
type Pos int

// NoPos is the invalid position.
//
const NoPos Pos = -1

// IsValid returns true if p is a valid position (i.e. p >= 0).
//
func (p Pos) IsValid() bool {
	return p >= 0
}

// ErrLine is returned when a line number is out of range.
var ErrLine = errors.New("invalid line number")

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Offset   int // byte offset in the file
	Line     int // 1-based line number
	Column   int // 1-based column number (rune index)
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File represents an input file. It holds the whole source text in memory
// and handles file offset to line/column conversion.
//
type File struct {
	name  string
	src   []byte
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File. The src buffer is referenced by every token
// scanned from the file and must not be modified afterwards.
//
func NewFile(name string, src []byte) *File {
	return &File{
		name:  name,
		src:   src,
		lines: []Pos{0}, // line 1 always starts at offset 0
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Source returns the source text.
//
func (f *File) Source() []byte {
	return f.src
}

// Size returns the size of the source in bytes.
//
func (f *File) Size() int {
	return len(f.src)
}

// LineCount returns the number of lines known so far.
//
func (f *File) LineCount() int {
	return len(f.lines)
}

// AddLine adds a new line at the given offset.
//
// line is the 1-based line index.
//
// The current implementation will only accept a new line if line == last line + 1
// and pos greater than the position of the previous line.
//
func (f *File) AddLine(pos Pos, line int) {
	l := len(f.lines)
	if f.lines[l-1] >= pos {
		// line already known
		return
	}
	if l+1 != line {
		panic(ErrLine)
	}
	f.lines = append(f.lines, pos)
}

// Position returns the 1-based line and column for a given pos. The column
// counts runes from the start of the line.
//
func (f *File) Position(pos Pos) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	if i == 0 {
		i = 1
	}
	ls := f.lines[i-1]
	if ls == 0 && len(f.src) >= 3 && f.src[0] == 0xef && f.src[1] == 0xbb && f.src[2] == 0xbf && pos >= 3 {
		// byte order mark
		ls = 3
	}
	end := pos
	if end > Pos(len(f.src)) {
		end = Pos(len(f.src))
	}
	col := 1
	if end > ls {
		col += utf8.RuneCount(f.src[ls:end])
	}
	return Position{f.name, int(pos), i, col}
}

// LinePos return the file offset of the given line.
//
func (f *File) LinePos(line int) Pos {
	if line < 1 || line > len(f.lines) {
		return NoPos
	}
	return f.lines[line-1]
}

// Line returns the text of the given 1-based line, without its line
// terminator. The returned slice references the source buffer.
//
func (f *File) Line(line int) ([]byte, error) {
	lp := f.LinePos(line)
	if !lp.IsValid() {
		return nil, ErrLine
	}
	end := len(f.src)
	if line < len(f.lines) {
		end = int(f.lines[line]) - 1 // strip '\n'
	} else {
		for i := int(lp); i < len(f.src); i++ {
			if f.src[i] == '\n' {
				end = i
				break
			}
		}
	}
	if end > int(lp) && f.src[end-1] == '\r' {
		end--
	}
	return f.src[lp:end], nil
}
