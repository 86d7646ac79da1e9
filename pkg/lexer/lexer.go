package lexer

import "github.com/conneroisu/tinyimp/internal/token"

// Status reports how a Lex call ended.
type Status int

const (
	// OK: the entire input was consumed into a well-formed token stream
	// bracketed by FBeg/FEnd.
	OK Status = iota
	// UnknownToken: no automaton accepted a non-empty prefix starting at
	// some byte; Result.Tokens holds everything lexed before the failure
	// and the final token in it (kind token.Count) spans the unmatched
	// prefix through the offending byte, or through the end of input when
	// the input ends inside an unfinished token such as `"abc`.
	UnknownToken
	// OOM: the caller-supplied MaxTokens budget was reached before the
	// input was fully consumed. Models the original's realloc-failure
	// path (see SPEC_FULL.md §7) in a way Go's allocator can't fail into
	// naturally.
	OOM
)

// Result is the outcome of a Lex call.
type Result struct {
	Tokens []token.Token
	Status Status
}

// live is the mutable state of one automaton instance during a scan.
// alive tracks whether this automaton is still in contention for the
// token currently being matched; once it rejects a byte it stays dead
// until the next reset, regardless of curr's zero value also being
// reject.
type live struct {
	state int
	prev  status
	curr  status
	alive bool
}

// Lex tokenizes input, running every kind's automaton in lockstep and
// resolving ties by keeping the last (highest Kind value) automaton that
// was accepting just before the bank went fully dead — see
// internal/token's package doc for why "last" is correct. maxTokens caps
// the number of tokens (including the FBeg/FEnd sentinels) Lex will
// produce before giving up with Status OOM; a value <= 0 means no limit.
func Lex(input []byte, maxTokens int) Result {
	var out []token.Token
	push := func(tok token.Token) bool {
		if maxTokens > 0 && len(out) >= maxTokens {
			return false
		}
		out = append(out, tok)
		return true
	}

	if !push(token.Token{Kind: token.FBeg}) {
		return Result{Tokens: out, Status: OOM}
	}

	automata := make([]live, token.Count)
	reset := func() {
		for i := range automata {
			automata[i] = live{alive: true}
		}
	}
	reset()

	wasAlive := make([]bool, token.Count)

	prefixBegin := 0
	i := 0
	for i < len(input) {
		c := input[i]
		anyLive := false
		for kind := token.Kind(0); kind < token.Count; kind++ {
			a := &automata[kind]
			wasAlive[kind] = a.alive
			if !a.alive {
				continue
			}
			a.prev = a.curr
			a.curr = bank[kind](c, &a.state)
			if a.curr == reject {
				a.alive = false
			} else {
				anyLive = true
			}
		}

		if anyLive {
			i++
			continue
		}

		// Tie-break only among automata that were still in contention
		// entering this byte: a long-dead automaton's stale prev must
		// never resurface as a candidate.
		accepted := token.Count
		for kind := token.Kind(0); kind < token.Count; kind++ {
			if wasAlive[kind] && automata[kind].prev == accept {
				accepted = kind
			}
		}

		if accepted == token.Count {
			if !push(token.Token{Kind: token.Count, Begin: prefixBegin, End: i + 1}) {
				return Result{Tokens: out, Status: OOM}
			}
			return Result{Tokens: out, Status: UnknownToken}
		}

		if !push(token.Token{Kind: accepted, Begin: prefixBegin, End: i}) {
			return Result{Tokens: out, Status: OOM}
		}
		reset()
		prefixBegin = i
	}

	accepted := token.Count
	for kind := token.Kind(0); kind < token.Count; kind++ {
		if automata[kind].curr == accept {
			accepted = kind
		}
	}

	if accepted == token.Count {
		if prefixBegin == len(input) {
			if !push(token.Token{Kind: token.FEnd, Begin: len(input), End: len(input)}) {
				return Result{Tokens: out, Status: OOM}
			}
			return Result{Tokens: out, Status: OK}
		}
		if !push(token.Token{Kind: token.Count, Begin: prefixBegin, End: len(input)}) {
			return Result{Tokens: out, Status: OOM}
		}
		return Result{Tokens: out, Status: UnknownToken}
	}

	if !push(token.Token{Kind: accepted, Begin: prefixBegin, End: len(input)}) {
		return Result{Tokens: out, Status: OOM}
	}
	if !push(token.Token{Kind: token.FEnd, Begin: len(input), End: len(input)}) {
		return Result{Tokens: out, Status: OOM}
	}
	return Result{Tokens: out, Status: OK}
}

// WithoutTrivia filters whitespace and comment tokens out of toks,
// leaving the stream pkg/parser actually consumes.
func WithoutTrivia(toks []token.Token) []token.Token {
	filtered := make([]token.Token, 0, len(toks))
	for _, t := range toks {
		if t.Kind.IsTrivia() {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}
