// Package lexer implements tinyimp's maximal-munch tokenizer: a fixed
// bank of small per-token-kind state machines (automata), advanced in
// lockstep over the input, one byte at a time.
//
// Each automaton reports one of three statuses on every byte:
//
//   - accept: the prefix ending at this byte would be a complete token
//     of that automaton's kind.
//   - hungry: not yet accepting, but not dead either; more input could
//     still complete a token.
//   - reject: this automaton is dead for the current prefix.
//
// The bank steps every live (non-reject) automaton on each byte. As long
// as at least one automaton stays non-reject, the scan advances. The
// moment every automaton rejects, the lexer falls back to whichever
// automaton was last seen accepting before the rejecting byte — see
// internal/token's package doc for why "last" (not "first") is the
// correct tie-break, and why it is what lets keyword kinds preempt NAME.
//
// Token Recognition:
//   - Keywords: if, elif, else, do, while, print
//   - Identifiers: [A-Za-z_][A-Za-z0-9_]*
//   - Literals: decimal integers, double-quoted strings (no escapes)
//   - Operators: + - * / % ! == != < > <= >= && ||
//   - Delimiters: ( ) [ ] { } ; ? :
//   - Trivia: whitespace, line comments (// to EOL), block comments (/* */)
//
// This design, and every automaton's state transitions, are grounded in
// _examples/original_source/Compiler Design/codes/lex.c.
package lexer
