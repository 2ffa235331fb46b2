package scanner

import (
	"github.com/db47h/tslex"
	"github.com/db47h/tslex/token"
)

type nodeList map[rune]*node

// A node is a node in the operator search tree. The path from the root to a
// node spells a prefix of one or more operators; k is the operator spelled by
// that exact path, or token.Unknown if the prefix is not an operator by
// itself (e.g. "..").
//
type node struct {
	c nodeList // child nodes
	k token.Kind
}

// match returns the child node that matches the given rune.
//
func (n *node) match(r rune) *node {
	return n.c[r]
}

// operators is the search tree of all punctuation and operators, built from
// the token catalog.
//
var operators = newOperatorTree()

// excluded lists the punctuation kinds of the catalog that the scanner does
// not produce in its default context.
//
var excluded = map[token.Kind]bool{
	token.LessThanSlashToken: true, // JSX closing tags only
	token.BacktickToken:      true, // JSDoc scanner only
	token.HashToken:          true, // JSDoc scanner only
}

func newOperatorTree() *node {
	root := &node{c: make(nodeList)}
	for k := token.FirstPunctuation; k <= token.LastPunctuation; k++ {
		if excluded[k] {
			continue
		}
		n := root
		for _, r := range k.Text() {
			i, ok := n.c[r]
			if !ok {
				i = &node{c: make(nodeList)}
				n.c[r] = i
			}
			n = i
		}
		if n.k != token.Unknown {
			panic("token registered twice")
		}
		n.k = k
	}
	return root
}

// scanOperator lexes the longest operator starting with r, r having already
// been read. It only consumes more input as long as the consumed input is a
// prefix of a known operator.
//
func scanOperator(s *tslex.State, r rune) {
	n := operators.match(r)
	if n == nil {
		s.EmitError(tslex.UnexpectedCharacter, s.TokenLine(), s.TokenColumn())
		return
	}
	for c := n.match(s.Peek()); c != nil; c = n.match(s.Peek()) {
		s.Next()
		n = c
	}
	if n.k == token.Unknown {
		// dangling prefix like ".."
		s.EmitError(tslex.UnexpectedCharacter, s.Line(), s.Column())
		return
	}
	s.Emit(n.k, s.TokenSpan(), token.NoSpan)
}
