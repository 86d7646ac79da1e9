package parser

import (
	"bytes"
	"testing"

	"github.com/conneroisu/tinyimp/internal/ast"
	"github.com/conneroisu/tinyimp/internal/token"
	"github.com/conneroisu/tinyimp/pkg/grammar"
	"github.com/conneroisu/tinyimp/pkg/lexer"
)

func parseSource(t *testing.T, src string) *ast.Node {
	t.Helper()
	input := []byte(src)
	lexed := lexer.Lex(input, 0)
	if lexed.Status != lexer.OK {
		t.Fatalf("lex status = %v", lexed.Status)
	}
	var trace bytes.Buffer
	res := Parse(lexed.Tokens, input, &trace, 0)
	if res.Status != OK {
		t.Fatalf("parse status = %v, trace:\n%s", res.Status, trace.String())
	}
	return res.Root
}

func parseSourceExpectReject(t *testing.T, src string) {
	t.Helper()
	input := []byte(src)
	lexed := lexer.Lex(input, 0)
	if lexed.Status != lexer.OK {
		t.Fatalf("lex status = %v", lexed.Status)
	}
	var trace bytes.Buffer
	res := Parse(lexed.Tokens, input, &trace, 0)
	if res.Status != Reject {
		t.Fatalf("parse status = %v, want Reject", res.Status)
	}
}

func TestParseRootIsUnitBracketedByStmts(t *testing.T) {
	root := parseSource(t, "x = 1;")
	if root.NT != grammar.Unit {
		t.Fatalf("root.NT = %v, want Unit", root.NT)
	}
	if len(root.Children) != 3 {
		t.Fatalf("root has %d children, want 3 (FBEG, Stmt, FEND)", len(root.Children))
	}
	if root.Children[0].Tok.Kind != token.FBeg {
		t.Fatalf("first child kind = %v, want FBeg", root.Children[0].Tok.Kind)
	}
	if root.Children[len(root.Children)-1].Tok.Kind != token.FEnd {
		t.Fatalf("last child kind = %v, want FEnd", root.Children[len(root.Children)-1].Tok.Kind)
	}
	if root.Children[1].NT != grammar.Stmt {
		t.Fatalf("middle child = %v, want Stmt", root.Children[1].NT)
	}
}

func TestParseMultiplicationBindsTighterThanAddition(t *testing.T) {
	root := parseSource(t, "x = 1 + 2 * 3;")
	assn := root.Children[1].Children[0]
	if assn.NT != grammar.Assn {
		t.Fatalf("got %v, want Assn", assn.NT)
	}
	expr := assn.Children[2]
	bexp := expr.Children[0]
	if bexp.NT != grammar.Bexp {
		t.Fatalf("top expr = %v, want Bexp", bexp.NT)
	}
	if bexp.Children[1].Tok.Kind != token.PLUS {
		t.Fatalf("top operator = %v, want PLUS", bexp.Children[1].Tok.Kind)
	}
	rhs := bexp.Children[2].Children[0]
	if rhs.NT != grammar.Bexp || rhs.Children[1].Tok.Kind != token.MULT {
		t.Fatalf("right operand is not a MULT Bexp: %v", rhs)
	}
}

func TestParseChainedAssignmentRejected(t *testing.T) {
	parseSourceExpectReject(t, "x = y = 1;")
}

func TestParseArrayAssignmentUsesAexp(t *testing.T) {
	root := parseSource(t, "a[i] = 1;")
	stmt := root.Children[1]
	assn := stmt.Children[0]
	if assn.NT != grammar.Assn {
		t.Fatalf("got %v, want Assn", assn.NT)
	}
	aexp := assn.Children[0]
	if aexp.NT != grammar.Aexp {
		t.Fatalf("assignment target = %v, want Aexp", aexp.NT)
	}
	if aexp.Children[0].Tok.Kind != token.NAME || aexp.Children[2].NT != grammar.Expr ||
		aexp.Children[2].Children[0].Children[0].Tok.Kind != token.NAME {
		t.Fatalf("unexpected Aexp children: %v", aexp.Children)
	}
}

func TestParseIfElifElseChainIsOneCtrl(t *testing.T) {
	root := parseSource(t, `
if x == 1 {
  print x;
} elif x == 2 {
  print x;
} else {
  print x;
}
`)
	stmt := root.Children[1]
	ctrl := stmt.Children[0]
	if ctrl.NT != grammar.Ctrl {
		t.Fatalf("got %v, want Ctrl", ctrl.NT)
	}
	if len(ctrl.Children) != 3 {
		t.Fatalf("Ctrl has %d children, want 3 (Cond, Elif, Else)", len(ctrl.Children))
	}
	if ctrl.Children[0].NT != grammar.Cond || ctrl.Children[1].NT != grammar.Elif || ctrl.Children[2].NT != grammar.Else {
		t.Fatalf("unexpected Ctrl shape: %v", ctrl.Children)
	}
}

func TestParseWhileLoop(t *testing.T) {
	root := parseSource(t, `
while x < 10 {
  x = x + 1;
}
`)
	stmt := root.Children[1]
	ctrl := stmt.Children[0]
	if ctrl.NT != grammar.Ctrl {
		t.Fatalf("got %v, want Ctrl", ctrl.NT)
	}
	whil := ctrl.Children[0]
	if whil.NT != grammar.Whil {
		t.Fatalf("got %v, want Whil", whil.NT)
	}
}

func TestParseDoWhileLoop(t *testing.T) {
	root := parseSource(t, `
do {
  x = x + 1;
} while x < 10;
`)
	stmt := root.Children[1]
	ctrl := stmt.Children[0]
	dowh := ctrl.Children[0]
	if dowh.NT != grammar.Dowh {
		t.Fatalf("got %v, want Dowh", dowh.NT)
	}
	if dowh.Children[0].Tok.Kind != token.DOWH {
		t.Fatalf("first child = %v, want DOWH keyword", dowh.Children[0].Tok.Kind)
	}
}

func TestParseTernary(t *testing.T) {
	root := parseSource(t, "x = y ? 1 : 2;")
	assn := root.Children[1].Children[0]
	expr := assn.Children[2]
	texp := expr.Children[0]
	if texp.NT != grammar.Texp {
		t.Fatalf("got %v, want Texp", texp.NT)
	}
}

func TestParsePrintWithStringPrefix(t *testing.T) {
	root := parseSource(t, `print "x is " x;`)
	stmt := root.Children[1]
	prnt := stmt.Children[0]
	if prnt.NT != grammar.Prnt {
		t.Fatalf("got %v, want Prnt", prnt.NT)
	}
	if len(prnt.Children) != 4 {
		t.Fatalf("Prnt has %d children, want 4 (print, STRL, Expr, ;)", len(prnt.Children))
	}
}

func TestParseParenthesizedExpression(t *testing.T) {
	root := parseSource(t, "x = (1 + 2) * 3;")
	assn := root.Children[1].Children[0]
	expr := assn.Children[2]
	bexp := expr.Children[0]
	if bexp.Children[1].Tok.Kind != token.MULT {
		t.Fatalf("top operator = %v, want MULT", bexp.Children[1].Tok.Kind)
	}
	lhs := bexp.Children[0].Children[0]
	if lhs.NT != grammar.Pexp {
		t.Fatalf("left operand = %v, want Pexp", lhs.NT)
	}
}

func TestParseUnaryNegation(t *testing.T) {
	root := parseSource(t, "x = -1;")
	assn := root.Children[1].Children[0]
	expr := assn.Children[2]
	uexp := expr.Children[0]
	if uexp.NT != grammar.Uexp {
		t.Fatalf("got %v, want Uexp", uexp.NT)
	}
	if uexp.Children[0].Tok.Kind != token.MINS {
		t.Fatalf("unary operator = %v, want MINS", uexp.Children[0].Tok.Kind)
	}
}

func TestParseOOMBudget(t *testing.T) {
	input := []byte("x = 1 + 2;")
	lexed := lexer.Lex(input, 0)
	var trace bytes.Buffer
	res := Parse(lexed.Tokens, input, &trace, 2)
	if res.Status != OOM {
		t.Fatalf("status = %v, want OOM", res.Status)
	}
}

func TestParseTrailingGarbageRejected(t *testing.T) {
	parseSourceExpectReject(t, "x = 1; )")
}
