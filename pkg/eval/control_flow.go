package eval

import (
	"github.com/conneroisu/tinyimp/internal/ast"
	"github.com/conneroisu/tinyimp/pkg/grammar"
)

// runCond executes an if/elif*/else? chain. ctrl.Children[0] is always the
// Cond node; any remaining children are Elif nodes, with an optional
// trailing Else node — exactly the shape the grammar's Ctrl productions
// pack it into. Exactly one branch's body runs: the first whose guard
// evaluates non-zero, or the trailing Else if none do.
func (e *Evaluator) runCond(ctrl *ast.Node) {
	cond := ctrl.Children[0]

	if e.evalExpr(cond.Children[1]) != 0 {
		e.runBody(ast.Body(cond.Children[3:]))
		return
	}

	for _, branch := range ctrl.Children[1:] {
		if branch.NT == grammar.Elif {
			if e.evalExpr(branch.Children[1]) != 0 {
				e.runBody(ast.Body(branch.Children[3:]))
				return
			}
			continue
		}
		// branch.NT == grammar.Else
		e.runBody(ast.Body(branch.Children[2:]))
		return
	}
}

// runDowh executes `do { Stmt+ } while Expr;`. The trailing condition
// sits two slots before the end regardless of how many statements the
// body holds, because the grammar's production is fixed-arity around a
// variable-length Stmt+ span.
func (e *Evaluator) runDowh(dowh *ast.Node) {
	body := ast.Body(dowh.Children[2:])
	cond := dowh.Children[len(dowh.Children)-2]

	for {
		e.runBody(body)
		if e.evalExpr(cond) == 0 {
			return
		}
	}
}

// runWhil executes `while Expr { Stmt+ }`.
func (e *Evaluator) runWhil(whil *ast.Node) {
	body := ast.Body(whil.Children[3:])
	for e.evalExpr(whil.Children[1]) != 0 {
		e.runBody(body)
	}
}
