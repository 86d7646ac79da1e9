// Package ast defines tinyimp's parse-node sum type: a node is either a
// leaf wrapping a token or an internal node carrying a non-terminal kind
// and an ordered sequence of children. Trivia tokens never appear here —
// pkg/parser filters them before a leaf is ever shifted.
//
// This replaces the original C implementation's pointer-tagged union
// (struct node with an anonymous union of `token` and `{nt, children}`)
// with a single plain struct, per spec.md's own recommendation: "Replace
// the pointer-tagging union with a sum type; children as an owning
// ordered sequence." Go's garbage collector also removes the need for the
// original's freed-block-stashing child arena; a Node simply owns its
// Children slice.
package ast

import (
	"fmt"

	"github.com/conneroisu/tinyimp/internal/token"
	"github.com/conneroisu/tinyimp/pkg/grammar"
)

// Node is either a leaf (Tok != nil) or an internal node (Tok == nil,
// NT and Children populated). Zero value is never a valid Node.
type Node struct {
	Tok      *token.Token
	NT       grammar.NonTerminal
	Children []*Node
}

// Leaf builds a leaf node wrapping tok.
func Leaf(tok *token.Token) *Node {
	return &Node{Tok: tok}
}

// Internal builds an internal node of non-terminal kind nt with the given
// children, in order.
func Internal(nt grammar.NonTerminal, children []*Node) *Node {
	return &Node{NT: nt, Children: children}
}

// IsLeaf reports whether n wraps a token rather than carrying children.
func (n *Node) IsLeaf() bool {
	return n.Tok != nil
}

// String renders n the way pkg/parser's stack diagnostics do, each item
// followed by a trailing space: a non-terminal's name for internal nodes,
// "^"/"$" for the FBeg/FEnd sentinels, and the token's source text for any
// other leaf.
func (n *Node) String(input []byte) string {
	if !n.IsLeaf() {
		return n.NT.String() + " "
	}
	switch n.Tok.Kind {
	case token.FBeg:
		return "^ "
	case token.FEnd:
		return "$ "
	default:
		return fmt.Sprintf("%s ", n.Tok.Text(input))
	}
}

// Body returns the prefix of children that stops at the first leaf.
// Productions like Cond pack a Stmt+ span directly followed by a
// closing-brace leaf into one flat Children slice; callers pass the
// sub-slice starting at the first Stmt (e.g. cond.Children[3:]). This is
// the Go-native replacement for the original's
// `while (stmt->nchildren) stmt++` pointer walk, which relied on the
// same layout and stopped at the first leaf (the '}' token).
func Body(children []*Node) []*Node {
	for i, c := range children {
		if c.IsLeaf() {
			return children[:i]
		}
	}
	return children
}
