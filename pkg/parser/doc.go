// Package parser implements tinyimp's shift-reduce parser: a single
// explicit stack of AST nodes, a static grammar table consulted
// right-to-left against the stack top, and two small lookahead gates
// (shiftPre, shiftPost) that resolve the handful of ambiguities the
// grammar alone can't.
//
// Algorithm:
//
// The driver shifts one non-trivia token onto the stack, then repeatedly
// scans pkg/grammar's Rules table in order for the first rule whose
// right-hand side matches the stack's current top (ruleMatch, working
// backward through both plain terms and Kleene-star non-terminal spans).
// Once a rule matches:
//
//   - shiftPre decides whether to shift the next token instead of
//     reducing now — this is what keeps `1 + 2 * 3` grouping as
//     `1 + (2 * 3)` by precedence, and what stops `x` or `a[i]` from
//     escalating to Expr when an assignment follows.
//   - Otherwise the rule reduces: the matched span collapses into one
//     internal node labeled by the rule's left-hand side.
//   - shiftPost additionally shifts one more token after an Cond/Elif
//     reduction when the next keyword is elif/else, so a whole
//     if/elif/else chain parses as one Ctrl before anything downstream
//     reduces.
//
// Matching restarts from the top of the rule table after every shift or
// reduce, exactly mirroring the goto in
// _examples/original_source/Compiler/codes/parse.c, until no rule
// matches; the driver then shifts the next token and repeats. Parsing
// ends when the token stream is exhausted; the parse accepts only if
// exactly one node remains on the stack and it is a Unit.
//
// Every Shift/Reduce step and the final ACCEPT/REJECT line are written
// to a trace writer in parse.c's print() format, forming the report's
// Parsing section.
package parser
