// Package grammar is the static declarative description of tinyimp's
// productions, consumed by pkg/parser's shift-reduce driver. It owns the
// non-terminal vocabulary, the production table, and the binary-operator
// precedence table the parser's shift_pre gate consults.
//
// Declaration order in Rules is significant: the parser selects the first
// production (in this order) whose right-hand side matches the stack top,
// exactly as the original grammar[] table in
// _examples/original_source/Compiler/codes/parse.c does.
package grammar

import "github.com/conneroisu/tinyimp/internal/token"

// NonTerminal enumerates the grammar's left-hand sides.
type NonTerminal uint8

const (
	Unit NonTerminal = iota
	Stmt
	Assn
	Prnt
	Ctrl
	Cond
	Elif
	Else
	Dowh
	Whil
	Atom
	Expr
	Pexp
	Bexp
	Uexp
	Texp
	Aexp
	ntCount
)

var ntNames = [ntCount]string{
	Unit: "Unit", Stmt: "Stmt", Assn: "Assn", Prnt: "Prnt", Ctrl: "Ctrl",
	Cond: "Cond", Elif: "Elif", Else: "Else", Dowh: "Dowh", Whil: "Whil",
	Atom: "Atom", Expr: "Expr", Pexp: "Pexp", Bexp: "Bexp", Uexp: "Uexp",
	Texp: "Texp", Aexp: "Aexp",
}

// String implements fmt.Stringer; used verbatim in the parser's stack
// diagnostics (the report's "Parsing" section).
func (nt NonTerminal) String() string {
	return ntNames[nt]
}

// Term is one element of a production's right-hand side: either a
// terminal token kind or a non-terminal, with an IsMulti flag marking a
// term the matcher may consume greedily zero or more times.
type Term struct {
	Kind    token.Kind
	NT      NonTerminal
	IsToken bool
	IsMulti bool
}

// t builds a single-terminal term.
func t(k token.Kind) Term { return Term{Kind: k, IsToken: true} }

// n builds a single non-terminal term.
func n(nt NonTerminal) Term { return Term{NT: nt} }

// m builds a non-terminal term that may match zero or more times.
func m(nt NonTerminal) Term { return Term{NT: nt, IsMulti: true} }

// Rule is one production LHS -> RHS.
type Rule struct {
	LHS NonTerminal
	RHS []Term
}

// Rules is the production table, in the declaration order that rule
// selection depends on. It mirrors grammar[] in parse.c term for term.
var Rules = []Rule{
	{Unit, []Term{t(token.FBeg), m(Stmt), t(token.FEnd)}},

	{Stmt, []Term{n(Assn)}},
	{Stmt, []Term{n(Prnt)}},
	{Stmt, []Term{n(Ctrl)}},

	{Assn, []Term{t(token.NAME), t(token.ASSN), n(Expr), t(token.SCOL)}},
	{Assn, []Term{n(Aexp), t(token.ASSN), n(Expr), t(token.SCOL)}},

	{Prnt, []Term{t(token.PRNT), n(Expr), t(token.SCOL)}},
	{Prnt, []Term{t(token.PRNT), t(token.STRL), n(Expr), t(token.SCOL)}},

	{Ctrl, []Term{n(Cond), m(Elif)}},
	{Ctrl, []Term{n(Cond), m(Elif), n(Else)}},
	{Ctrl, []Term{n(Dowh)}},
	{Ctrl, []Term{n(Whil)}},

	{Cond, []Term{t(token.COND), n(Expr), t(token.LBRC), m(Stmt), t(token.RBRC)}},
	{Elif, []Term{t(token.ELIF), n(Expr), t(token.LBRC), m(Stmt), t(token.RBRC)}},
	{Else, []Term{t(token.ELSE), t(token.LBRC), m(Stmt), t(token.RBRC)}},

	{Dowh, []Term{t(token.DOWH), t(token.LBRC), m(Stmt), t(token.RBRC), t(token.WHIL), n(Expr), t(token.SCOL)}},
	{Whil, []Term{t(token.WHIL), n(Expr), t(token.LBRC), m(Stmt), t(token.RBRC)}},

	{Atom, []Term{t(token.NAME)}},
	{Atom, []Term{t(token.NMBR)}},

	{Expr, []Term{n(Atom)}},
	{Expr, []Term{n(Pexp)}},
	{Expr, []Term{n(Bexp)}},
	{Expr, []Term{n(Uexp)}},
	{Expr, []Term{n(Texp)}},
	{Expr, []Term{n(Aexp)}},

	{Pexp, []Term{t(token.LPAR), n(Expr), t(token.RPAR)}},

	{Bexp, []Term{n(Expr), t(token.EQUL), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.NEQL), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.LTHN), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.GTHN), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.LTEQ), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.GTEQ), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.CONJ), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.DISJ), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.PLUS), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.MINS), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.MULT), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.DIVI), n(Expr)}},
	{Bexp, []Term{n(Expr), t(token.MODU), n(Expr)}},

	{Uexp, []Term{t(token.PLUS), n(Expr)}},
	{Uexp, []Term{t(token.MINS), n(Expr)}},
	{Uexp, []Term{t(token.NEGA), n(Expr)}},

	{Texp, []Term{n(Expr), t(token.QUES), n(Expr), t(token.COLN), n(Expr)}},

	{Aexp, []Term{t(token.NAME), t(token.LBRA), n(Expr), t(token.RBRA)}},
}

// Precedence maps each binary operator kind to its numeric priority.
// Smaller values bind tighter; the shift_pre gate in pkg/parser suppresses
// a reduce in favor of shifting when the lookahead operator's precedence
// is strictly smaller than the just-matched operator's.
var Precedence = map[token.Kind]uint8{
	token.EQUL: 4, token.NEQL: 4,
	token.LTHN: 3, token.GTHN: 3, token.LTEQ: 3, token.GTEQ: 3,
	token.CONJ: 5, token.DISJ: 6,
	token.PLUS: 2, token.MINS: 2,
	token.MULT: 1, token.DIVI: 1, token.MODU: 1,
}
