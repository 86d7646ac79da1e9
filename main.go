// Package main implements the tinyimp command-line interface.
//
// tinyimp lexes, parses, and runs a tiny imperative language: scalar and
// array int32 variables, arithmetic/comparison/logical expressions,
// if/elif/else, while, do-while, and print. Given a source file, it
// writes a three-section report (Lexing, Parsing, Running) to an output
// file, reproducing the original compiler's diagnostic trace verbatim.
//
// Example:
//
//	tinyimp program.txt
//	tinyimp program.txt --outdir build/reports -v
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/conneroisu/tinyimp/internal/driver"
)

var (
	outDir    string
	verbose   bool
	maxTokens int
	maxNodes  int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinyimp <file>",
	Short: "Lex, parse, and run a tinyimp source file",
	Long: `tinyimp reads a source file written in the tinyimp language, runs it
through the lexer, parser, and evaluator in sequence, and writes a
report (Lexing/Parsing/Running) to the output directory.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", "outputs", "directory to write the report into")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().IntVar(&maxTokens, "max-tokens", 0, "cap on tokens the lexer will emit (0 = unbounded)")
	rootCmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "cap on AST nodes the parser will allocate (0 = unbounded)")
}

func run(cmd *cobra.Command, args []string) error {
	log := logrus.StandardLogger()
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	res, err := driver.Run(args[0], driver.Options{
		OutDir:    outDir,
		MaxTokens: maxTokens,
		MaxNodes:  maxNodes,
		Log:       log,
	})
	if err != nil {
		return err
	}

	fmt.Printf("The output is saved to %s\n", res.OutputPath)
	if !res.ParseRoot {
		cmd.SilenceUsage = true
		return fmt.Errorf("%s was not accepted; see %s", args[0], res.OutputPath)
	}
	return nil
}
