package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/conneroisu/tinyimp/pkg/lexer"
	"github.com/conneroisu/tinyimp/pkg/parser"
)

func run(t *testing.T, src string) string {
	t.Helper()
	input := []byte(src)
	lexed := lexer.Lex(input, 0)
	if lexed.Status != lexer.OK {
		t.Fatalf("lex status = %v", lexed.Status)
	}
	var trace bytes.Buffer
	parsed := parser.Parse(lexed.Tokens, input, &trace, 0)
	if parsed.Status != parser.OK {
		t.Fatalf("parse status = %v, trace:\n%s", parsed.Status, trace.String())
	}
	var out bytes.Buffer
	Run(parsed.Root, input, &out)
	return out.String()
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	got := run(t, "print 2 + 3 * 4;")
	if got != "14\n" {
		t.Fatalf("got %q, want %q", got, "14\n")
	}
}

func TestEvalVariableAssignmentAndPrint(t *testing.T) {
	got := run(t, "x = 5; print x;")
	if got != "5\n" {
		t.Fatalf("got %q, want %q", got, "5\n")
	}
}

func TestEvalArrayAssignmentAndRead(t *testing.T) {
	got := run(t, "a[0] = 10; a[1] = 20; print a[0] + a[1];")
	if got != "30\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEvalIfElifElse(t *testing.T) {
	src := `
x = 2;
if x == 1 {
  print 1;
} elif x == 2 {
  print 2;
} else {
  print 3;
}
`
	got := run(t, src)
	if got != "2\n" {
		t.Fatalf("got %q, want %q", got, "2\n")
	}
}

func TestEvalWhileLoop(t *testing.T) {
	src := `
x = 0;
while x < 5 {
  print x;
  x = x + 1;
}
`
	got := run(t, src)
	want := "0\n1\n2\n3\n4\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEvalDoWhileLoopRunsAtLeastOnce(t *testing.T) {
	src := `
x = 0;
do {
  print x;
  x = x + 1;
} while x < 0;
`
	got := run(t, src)
	if got != "0\n" {
		t.Fatalf("got %q, want %q", got, "0\n")
	}
}

func TestEvalDivideByZeroWarns(t *testing.T) {
	got := run(t, "print 1 / 0;")
	if !strings.Contains(got, "warn: prevented attempt to divide by zero") {
		t.Fatalf("got %q, want divide-by-zero warning", got)
	}
	if !strings.HasSuffix(got, "0\n") {
		t.Fatalf("got %q, want trailing 0", got)
	}
}

func TestEvalUndefinedVariableWarns(t *testing.T) {
	got := run(t, "print x;")
	if !strings.Contains(got, "warn: access to undefined variable") {
		t.Fatalf("got %q, want undefined-variable warning", got)
	}
}

func TestEvalOutOfBoundsArrayAccessWarns(t *testing.T) {
	got := run(t, "a[0] = 1; print a[5];")
	if !strings.Contains(got, "warn: out of bounds array access") {
		t.Fatalf("got %q, want out-of-bounds warning", got)
	}
}

func TestEvalNegativeArrayOffsetWarns(t *testing.T) {
	got := run(t, "x = 0; a[x - 1] = 1;")
	if !strings.Contains(got, "warn: negative array offset") {
		t.Fatalf("got %q, want negative-offset warning", got)
	}
}

func TestEvalTernary(t *testing.T) {
	got := run(t, "print 1 ? 10 : 20;")
	if got != "10\n" {
		t.Fatalf("got %q, want %q", got, "10\n")
	}
}

func TestEvalPrintWithStringPrefix(t *testing.T) {
	got := run(t, `print "x is " 42;`)
	if got != "x is 42\n" {
		t.Fatalf("got %q, want %q", got, "x is 42\n")
	}
}

func TestEvalUnaryOperators(t *testing.T) {
	got := run(t, "print -5; print !0; print !1;")
	want := "-5\n1\n0\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEvalNonShortCircuitLogic(t *testing.T) {
	got := run(t, "print 0 && 1; print 1 || 0;")
	want := "0\n1\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
