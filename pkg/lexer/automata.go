package lexer

import "github.com/conneroisu/tinyimp/internal/token"

// status is one automaton's verdict on the byte just fed to it.
type status uint8

const (
	reject status = iota
	hungry
	accept
)

// step advances one automaton by one byte given its current internal
// state, returning the new status. state is mutated in place; callers
// reset it to 0 whenever an automaton is reset (after every emitted
// token).
type step func(c byte, state *int) status

func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }
func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }

// literalStep builds the automaton for a fixed literal (punctuation or a
// keyword): it accepts exactly once every byte of lit has matched in
// order, and rejects on any mismatch or once already exhausted. This is
// the direct equivalent of the TOKEN_DEFINE_N macros in lex.c, unified
// into one function regardless of the literal's length.
func literalStep(lit string) step {
	return func(c byte, state *int) status {
		if *state >= len(lit) || c != lit[*state] {
			return reject
		}
		*state++
		if *state == len(lit) {
			return accept
		}
		return hungry
	}
}

// nameStep recognizes [A-Za-z_][A-Za-z0-9_]*, accepting on every byte
// once the first has matched.
func nameStep(c byte, state *int) status {
	switch *state {
	case 0:
		if isAlpha(c) || c == '_' {
			*state = 1
			return accept
		}
		return reject
	default:
		if isAlnum(c) || c == '_' {
			return accept
		}
		return reject
	}
}

// nmbrStep recognizes one or more decimal digits; it carries no state
// since every digit, at any position, is itself an accept.
func nmbrStep(c byte, _ *int) status {
	if isDigit(c) {
		return accept
	}
	return reject
}

// strlStep recognizes a double-quoted string with no escape handling:
// opening quote, any run of non-quote bytes, closing quote.
func strlStep(c byte, state *int) status {
	switch *state {
	case 0:
		if c == '"' {
			*state = 1
			return hungry
		}
		return reject
	case 1:
		if c != '"' {
			return hungry
		}
		*state = 2
		return accept
	default:
		return reject
	}
}

// wspcStep recognizes one or more of the four ASCII whitespace bytes.
func wspcStep(c byte, state *int) status {
	switch *state {
	case 0:
		if isSpace(c) {
			*state = 1
			return accept
		}
		return reject
	case 1:
		if isSpace(c) {
			return accept
		}
		return reject
	default:
		return reject
	}
}

// lcomStep recognizes "//" followed by any bytes up to and including the
// first '\n' or '\r'.
func lcomStep(c byte, state *int) status {
	switch *state {
	case 0:
		if c == '/' {
			*state = 1
			return hungry
		}
		return reject
	case 1:
		if c == '/' {
			*state = 2
			return hungry
		}
		return reject
	case 2:
		if c == '\n' || c == '\r' {
			*state = 3
			return accept
		}
		return hungry
	default:
		return reject
	}
}

// bcomStep recognizes "/*" ... "*/"; a '*' not followed by '/' returns to
// the comment body rather than closing it.
func bcomStep(c byte, state *int) status {
	switch *state {
	case 0:
		if c == '/' {
			*state = 1
			return hungry
		}
		return reject
	case 1:
		if c == '*' {
			*state = 2
			return hungry
		}
		return reject
	case 2:
		if c != '*' {
			return hungry
		}
		*state = 3
		return hungry
	case 3:
		if c == '/' {
			*state = 4
			return accept
		}
		*state = 2
		return hungry
	default:
		return reject
	}
}

// bank holds one step function per token kind, indexed by token.Kind, in
// the declaration order fixed by internal/token.
var bank [token.Count]step

func init() {
	bank[token.NAME] = nameStep
	bank[token.NMBR] = nmbrStep
	bank[token.STRL] = strlStep
	bank[token.WSPC] = wspcStep
	bank[token.LCOM] = lcomStep
	bank[token.BCOM] = bcomStep

	for kind, lit := range token.Literal {
		bank[kind] = literalStep(lit)
	}
}
