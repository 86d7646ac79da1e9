package parser

import (
	"fmt"
	"io"

	"github.com/conneroisu/tinyimp/internal/ast"
	"github.com/conneroisu/tinyimp/internal/token"
	"github.com/conneroisu/tinyimp/pkg/grammar"
)

// Result is the outcome of a Parse call.
type Result struct {
	Root   *ast.Node
	Status Status
}

// parser holds one Parse call's mutable state: the full token stream
// (trivia included), a cursor into it, the explicit reduction stack, and
// a remaining node budget.
type parser struct {
	tokens []token.Token
	idx    int
	stack  []*ast.Node
	budget int // remaining nodes; <0 means unbounded
	trace  io.Writer
	input  []byte
}

// Parse runs the shift-reduce driver over tokens (which must already be
// bracketed by FBeg/FEnd, as pkg/lexer.Lex produces) and writes a
// Shift/Reduce trace plus the final ACCEPT/REJECT line to trace, in
// parse.c's print() format. input is the original source buffer, needed
// to render leaf tokens' text. maxNodes caps the number of AST nodes
// Parse will allocate (via shift or reduce) before giving up with Status
// OOM; a value <= 0 means unbounded.
func Parse(tokens []token.Token, input []byte, trace io.Writer, maxNodes int) Result {
	budget := -1
	if maxNodes > 0 {
		budget = maxNodes
	}
	p := &parser{tokens: tokens, budget: budget, trace: trace, input: input}

	for p.idx < len(p.tokens) {
		if p.tokens[p.idx].Kind.IsTrivia() {
			p.idx++
			continue
		}

		if !p.shiftNext() {
			return Result{Status: OOM}
		}

		for {
			matched := false
			for _, rule := range grammar.Rules {
				at, size, ok := ruleMatch(rule.RHS, p.stack)
				if !ok {
					continue
				}

				doShift := p.shiftPre(rule)
				if !doShift {
					if !p.reduce(rule, at, size) {
						return Result{Status: OOM}
					}
				}

				if doShift || p.shiftPost(rule) {
					if !p.shiftNext() {
						return Result{Status: OOM}
					}
				}

				matched = true
				break
			}
			if !matched {
				break
			}
		}
	}

	accepted := len(p.stack) == 1 && !p.stack[0].IsLeaf() && p.stack[0].NT == grammar.Unit

	if accepted {
		fmt.Fprint(p.trace, "ACCEPT ")
	} else {
		fmt.Fprint(p.trace, "REJECT ")
	}
	p.printStack()

	if accepted {
		return Result{Root: p.stack[0], Status: OK}
	}
	return Result{Status: Reject}
}

// peek returns the next non-trivia token without advancing idx past it,
// but does skip (consume) any trivia tokens in between — matching
// shift_pre/shift_post's own SKIP_TOKEN loop, which mutates the shared
// token_idx as a side effect of peeking.
func (p *parser) peek() *token.Token {
	for p.idx < len(p.tokens) && p.tokens[p.idx].Kind.IsTrivia() {
		p.idx++
	}
	return &p.tokens[p.idx]
}

// shiftNext pushes the token at idx (which must already be non-trivia)
// as a new leaf node, logging the Shift step. It returns false if the
// node budget is exhausted.
func (p *parser) shiftNext() bool {
	if p.budget == 0 {
		return false
	}
	if p.budget > 0 {
		p.budget--
	}
	tok := p.tokens[p.idx]
	p.idx++
	p.stack = append(p.stack, ast.Leaf(&tok))
	fmt.Fprint(p.trace, "Shift: ")
	p.printStack()
	return true
}

// reduce collapses the size stack nodes starting at at into one internal
// node labeled rule.LHS, logging the Reduce step. It returns false if
// the node budget is exhausted.
func (p *parser) reduce(rule grammar.Rule, at, size int) bool {
	if p.budget == 0 {
		return false
	}
	if p.budget > 0 {
		p.budget--
	}
	children := make([]*ast.Node, size)
	copy(children, p.stack[at:at+size])
	node := ast.Internal(rule.LHS, children)
	p.stack = append(p.stack[:at], node)
	fmt.Fprint(p.trace, "Reduce: ")
	p.printStack()
	return true
}

func (p *parser) printStack() {
	for _, n := range p.stack {
		fmt.Fprint(p.trace, n.String(p.input))
	}
	fmt.Fprint(p.trace, "\n")
}

// shiftPre decides whether to shift the lookahead token instead of
// reducing the just-matched rule. It reproduces parse.c's three
// disambiguation cases verbatim: binary-operator precedence, keeping a
// NAME followed by '=' or '[' as a bare NAME leaf instead of reducing it
// to Atom, and keeping an Aexp followed by '=' instead of escalating it
// to Expr.
func (p *parser) shiftPre(rule grammar.Rule) bool {
	if rule.LHS == grammar.Unit {
		return false
	}
	ahead := p.peek()
	last := rule.RHS[len(rule.RHS)-1]

	switch {
	case rule.LHS == grammar.Bexp && ahead.Kind.IsBinaryOp():
		op := rule.RHS[len(rule.RHS)-2]
		p1 := grammar.Precedence[op.Kind]
		p2 := grammar.Precedence[ahead.Kind]
		if p2 < p1 {
			return true
		}
	case rule.LHS == grammar.Atom && last.IsToken && last.Kind == token.NAME:
		if ahead.Kind == token.ASSN || ahead.Kind == token.LBRA {
			return true
		}
	case rule.LHS == grammar.Expr && !last.IsToken && last.NT == grammar.Aexp:
		if ahead.Kind == token.ASSN {
			return true
		}
	}
	return false
}

// shiftPost decides whether to shift one further token after a Cond or
// Elif reduction, swallowing a following elif/else so the whole chain
// parses as one Ctrl.
func (p *parser) shiftPost(rule grammar.Rule) bool {
	if rule.LHS == grammar.Unit {
		return false
	}
	ahead := p.peek()
	if rule.LHS == grammar.Cond || rule.LHS == grammar.Elif {
		if ahead.Kind == token.ELIF || ahead.Kind == token.ELSE {
			return true
		}
	}
	return false
}

// termEqNode reports whether term matches node: a token term against a
// leaf of the same kind, or a non-terminal term against an internal node
// of the same kind.
func termEqNode(term grammar.Term, node *ast.Node) bool {
	if term.IsToken {
		return node.IsLeaf() && node.Tok.Kind == term.Kind
	}
	return !node.IsLeaf() && node.NT == term.NT
}

// ruleMatch tries to match rhs against the stack's top, scanning
// right-to-left. A Kleene-star (IsMulti) term first matches zero or more
// stack nodes greedily before the scan continues to the preceding term.
// It mirrors parse.c's rule_match do-while loop exactly, including the
// distinction between "ran off the front of rhs having matched
// everything" (success) and "hit a term that plainly doesn't match"
// (failure).
func ruleMatch(rhs []grammar.Term, stack []*ast.Node) (at, size int, ok bool) {
	term := len(rhs) - 1
	stIdx := len(stack) - 1
	var prevMulti *grammar.Term
	failed := false

	for {
		curr := rhs[term]
		node := stack[stIdx]

		switch {
		case termEqNode(curr, node):
			if curr.IsMulti {
				c := curr
				prevMulti = &c
			} else {
				prevMulti = nil
			}
			term--
			stIdx--
		case prevMulti != nil && termEqNode(*prevMulti, node):
			stIdx--
		case curr.IsMulti:
			prevMulti = nil
			term--
		default:
			failed = true
		}

		if failed || term < 0 || stIdx < 0 {
			break
		}
	}

	if failed || term >= 0 {
		return 0, 0, false
	}

	size = len(stack) - stIdx - 1
	if size == 0 {
		return 0, 0, false
	}
	return stIdx + 1, size, true
}
