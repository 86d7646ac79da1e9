// Package driver wires tinyimp's lex/parse/eval pipeline together: read
// a source file, run it through pkg/lexer, pkg/parser, and pkg/eval in
// sequence, and write the three-section report internal/report
// describes to an output file — the Go-native equivalent of main.c's
// mapped-file, three-banner driver loop.
package driver

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/conneroisu/tinyimp/internal/report"
	"github.com/conneroisu/tinyimp/pkg/eval"
	"github.com/conneroisu/tinyimp/pkg/lexer"
	"github.com/conneroisu/tinyimp/pkg/parser"
)

// Options configures one Run call.
type Options struct {
	// OutDir is the directory report files are written into. Defaults
	// to "outputs", matching main.c's hardcoded CreateDirectory call.
	OutDir string
	// MaxTokens and MaxNodes bound the lexer's and parser's resource
	// budgets (see pkg/lexer.Lex and pkg/parser.Parse); zero means
	// unbounded.
	MaxTokens int
	MaxNodes  int
	Log       *logrus.Logger
}

// Result summarizes one Run call's outcome.
type Result struct {
	OutputPath string
	LexStatus  lexer.Status
	ParseRoot  bool // true if parsing accepted the program
}

// Run reads the source file at path, runs it through the full pipeline,
// and writes the report to <OutDir>/<basename>_output.txt, returning
// that path. A failure to read the source is returned at once; failures
// creating the output directory and creating the report file are both
// attempted and aggregated with go-multierror.
func Run(path string, opts Options) (Result, error) {
	log := opts.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return Result{}, err
	}

	outDir := opts.OutDir
	if outDir == "" {
		outDir = "outputs"
	}

	// Unlike the source read above, directory creation and output-file
	// creation both write to the same destination; attempt both and
	// report every failure together instead of stopping at the first,
	// since a caller fixing a MkdirAll permission error also wants to
	// know the create would have failed too.
	var errs *multierror.Error
	mkdirErr := os.MkdirAll(outDir, 0o755)
	if mkdirErr != nil {
		errs = multierror.Append(errs, mkdirErr)
	}

	outputPath := filepath.Join(outDir, outputBaseName(path)+"_output.txt")
	outFile, createErr := os.Create(outputPath)
	if createErr != nil {
		errs = multierror.Append(errs, createErr)
	}

	if err := errs.ErrorOrNil(); err != nil {
		return Result{}, err
	}
	defer outFile.Close()

	log.WithField("path", path).Debug("lexing source")
	report.WriteLexingBanner(outFile)
	lexed := lexer.Lex(source, opts.MaxTokens)
	report.WriteLexing(outFile, lexed.Tokens, source, lexed.Status)

	result := Result{OutputPath: outputPath, LexStatus: lexed.Status}

	if lexed.Status != lexer.OK {
		log.WithField("status", lexed.Status).Warn("lexing did not complete")
		return result, nil
	}

	log.Debug("parsing token stream")
	report.WriteParsingBanner(outFile)
	parsed := parser.Parse(lexed.Tokens, source, outFile, opts.MaxNodes)

	if parsed.Status != parser.OK {
		log.WithField("status", parsed.Status).Warn("parsing did not accept the program")
		return result, nil
	}
	result.ParseRoot = true

	log.Debug("running program")
	report.WriteRunningBanner(outFile)
	eval.Run(parsed.Root, source, outFile)

	return result, nil
}

// outputBaseName mirrors main.c's output-path construction: take the
// input file's base name and strip a trailing ".txt" extension if
// present, leaving any other extension untouched.
func outputBaseName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext == ".txt" {
		return strings.TrimSuffix(base, ext)
	}
	return base
}
