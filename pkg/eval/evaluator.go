package eval

import (
	"fmt"
	"io"
	"strconv"

	"github.com/conneroisu/tinyimp/internal/ast"
	"github.com/conneroisu/tinyimp/internal/token"
	"github.com/conneroisu/tinyimp/internal/varstore"
	"github.com/conneroisu/tinyimp/pkg/grammar"
)

// Evaluator walks a parsed Unit and executes it, writing print output and
// runtime warnings to a single output stream. A fresh Evaluator owns a
// single varstore.Store for the lifetime of one Run call, exactly as
// run.c's file-scope varstore is reset at the start of run().
type Evaluator struct {
	vars  *varstore.Store
	input []byte
	out   io.Writer
}

// New returns an Evaluator with an empty variable store.
func New(input []byte, out io.Writer) *Evaluator {
	return &Evaluator{vars: varstore.New(), input: input, out: out}
}

// Run executes a parsed program. root must be a Unit node (FBeg, Stmt*,
// FEnd) as produced by pkg/parser.Parse on a successful parse; Run trims
// the FBeg/FEnd sentinel children before iterating statements, mirroring
// run()'s `stmt_idx = 1; stmt_idx < unit->nchildren - 1` loop bounds.
func Run(root *ast.Node, input []byte, out io.Writer) {
	e := New(input, out)
	for _, stmt := range root.Children[1 : len(root.Children)-1] {
		e.runStatement(stmt)
	}
}

func (e *Evaluator) warn(format string, args ...any) {
	fmt.Fprintf(e.out, "warn: "+format+"\n", args...)
}

// runStatement dispatches a Stmt node to its one child's handler.
func (e *Evaluator) runStatement(stmt *ast.Node) {
	switch stmt.Children[0].NT {
	case grammar.Assn:
		e.runAssign(stmt.Children[0])
	case grammar.Prnt:
		e.runPrint(stmt.Children[0])
	case grammar.Ctrl:
		e.runCtrl(stmt.Children[0])
	default:
		panic("eval: unreachable statement kind " + stmt.Children[0].NT.String())
	}
}

// runAssign executes `NAME = Expr;` or `Aexp = Expr;`. The target's array
// index is 0 for a scalar target, or the evaluated Aexp index expression
// for an array target.
func (e *Evaluator) runAssign(assn *ast.Node) {
	target := assn.Children[0]
	isAexp := !target.IsLeaf()

	var name []byte
	idx := 0
	if isAexp {
		name = target.Children[0].Tok.Text(e.input)
		idx = int(e.evalExpr(target.Children[2]))
	} else {
		name = target.Tok.Text(e.input)
	}

	if idx < 0 {
		e.warn("negative array offset")
		return
	}

	value := e.evalExpr(assn.Children[2])
	switch e.vars.Set(name, idx, value) {
	case varstore.Poisoned:
		e.warn("a previous reallocation has failed, assignment has no effect")
	case varstore.StoreFull:
		e.warn("varstore exhausted, assignment has no effect")
	}
}

// runPrint executes `print Expr;` or `print STRL Expr;`.
func (e *Evaluator) runPrint(prnt *ast.Node) {
	if len(prnt.Children) == 3 {
		fmt.Fprintf(e.out, "%d\n", e.evalExpr(prnt.Children[1]))
		return
	}

	strl := prnt.Children[1].Tok.Text(e.input)
	prefix := strl[1 : len(strl)-1] // trim surrounding quotes
	fmt.Fprintf(e.out, "%s%d\n", prefix, e.evalExpr(prnt.Children[2]))
}

// runCtrl dispatches a Ctrl node's single child to the matching
// control-flow handler.
func (e *Evaluator) runCtrl(ctrl *ast.Node) {
	switch ctrl.Children[0].NT {
	case grammar.Cond:
		e.runCond(ctrl)
	case grammar.Dowh:
		e.runDowh(ctrl.Children[0])
	case grammar.Whil:
		e.runWhil(ctrl.Children[0])
	default:
		panic("eval: unreachable control kind " + ctrl.Children[0].NT.String())
	}
}

// runBody executes every statement in body, which is the Stmt+ span of a
// Cond/Elif/Else/Dowh/Whil production as returned by ast.Body.
func (e *Evaluator) runBody(body []*ast.Node) {
	for _, stmt := range body {
		e.runStatement(stmt)
	}
}

// evalExpr dispatches an Expr node to its one child's evaluator.
func (e *Evaluator) evalExpr(expr *ast.Node) int32 {
	child := expr.Children[0]
	switch child.NT {
	case grammar.Atom:
		return e.evalAtom(child)
	case grammar.Pexp:
		return e.evalExpr(child.Children[1])
	case grammar.Bexp:
		return e.evalBexp(child)
	case grammar.Uexp:
		return e.evalUexp(child)
	case grammar.Texp:
		return e.evalTexp(child)
	case grammar.Aexp:
		return e.evalAexp(child)
	default:
		panic("eval: unreachable expr kind " + child.NT.String())
	}
}

// evalAtom evaluates a variable reference or an integer literal.
func (e *Evaluator) evalAtom(atom *ast.Node) int32 {
	leaf := atom.Children[0]
	switch leaf.Tok.Kind {
	case token.NAME:
		v, ok := e.vars.Get(leaf.Tok.Text(e.input))
		if !ok {
			e.warn("access to undefined variable")
			return 0
		}
		return v
	case token.NMBR:
		n, err := strconv.ParseInt(string(leaf.Tok.Text(e.input)), 10, 32)
		if err != nil {
			panic("eval: malformed NMBR token survived parsing: " + err.Error())
		}
		return int32(n)
	default:
		panic("eval: unreachable atom token " + leaf.Tok.Kind.String())
	}
}

// evalAexp evaluates an array-element read `NAME[Expr]`.
func (e *Evaluator) evalAexp(aexp *ast.Node) int32 {
	name := aexp.Children[0].Tok.Text(e.input)
	idx := int(e.evalExpr(aexp.Children[2]))

	if idx < 0 {
		e.warn("negative array offset")
		return 0
	}

	v, defined, inBounds := e.vars.GetIndex(name, idx)
	if !defined {
		e.warn("access to undefined array")
		return 0
	}
	if !inBounds {
		e.warn("out of bounds array access")
		return 0
	}
	return v
}
