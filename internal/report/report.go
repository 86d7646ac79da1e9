// Package report renders tinyimp's three-section run report — Lexing,
// Parsing, Running — in exactly the banner and token-reconstitution
// format main.c's own print() helper and fprintf banner calls produce.
// internal/driver is the only caller; pkg/parser and pkg/eval write
// their own trace/output lines directly into the same writer between
// banners, so this package only owns the banners and the Lexing
// section's token reprint.
package report

import (
	"fmt"
	"io"

	"github.com/conneroisu/tinyimp/internal/token"
	"github.com/conneroisu/tinyimp/pkg/lexer"
)

// WriteLexingBanner writes the section header that opens the report.
func WriteLexingBanner(w io.Writer) {
	fmt.Fprint(w, "\n---*** Lexing ***---\n\n")
}

// WriteParsingBanner writes the section header between Lexing and
// Parsing output. Only emitted when lexing succeeded outright (Status
// OK), matching main.c's `if (!lex_error)` gate.
func WriteParsingBanner(w io.Writer) {
	fmt.Fprint(w, "\n\n\n---*** Parsing ***---\n\n")
}

// WriteRunningBanner writes the section header between Parsing and
// Running output. Only emitted when parsing accepted the program.
func WriteRunningBanner(w io.Writer) {
	fmt.Fprint(w, "\n\n---*** Running ***---\n\n")
}

// WriteLexing reprints the lexed token stream's source text, skipping
// the FBeg/FEnd sentinels. When status is lexer.UnknownToken, the final
// token is suffixed with " < Unknown token", matching main.c's print().
// When status is lexer.OOM, the reprint is replaced by the allocator
// failure line.
func WriteLexing(w io.Writer, toks []token.Token, input []byte, status lexer.Status) {
	if status == lexer.OOM {
		fmt.Fprint(w, "The lexer could not allocate memory.\n")
		return
	}

	for i, tok := range toks {
		if tok.Kind == token.FBeg || tok.Kind == token.FEnd {
			continue
		}
		if i == len(toks)-1 && status == lexer.UnknownToken {
			fmt.Fprintf(w, "%s < Unknown token\n", tok.Text(input))
			continue
		}
		w.Write(tok.Text(input))
	}
}
