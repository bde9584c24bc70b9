package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/megahomyak/lisp-parser/ast"
	"github.com/megahomyak/lisp-parser/parser"
)

var encodeOutput bool

var rootCmd = &cobra.Command{
	Use:   "lisp-parser",
	Short: "Parse s-expression programs",
	Long: `lisp-parser reads a program in a minimal s-expression syntax and
prints its syntax tree, or the first parse error with its source position.`,
	SilenceUsage: true,
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and print its syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Parse a program and report the first error, if any",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	parseCmd.Flags().BoolVar(&encodeOutput, "encode", false, "print the tree re-encoded as a single line instead of indented")

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(checkCmd)
}

func readProgram(args []string) (string, error) {
	if len(args) == 0 {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(in), nil
	}

	in, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(in), nil
}

func runParse(cmd *cobra.Command, args []string) error {
	program, err := readProgram(args)
	if err != nil {
		return err
	}

	nodes, err := parser.Parse(program)
	if err != nil {
		return err
	}

	if encodeOutput {
		fmt.Println(string(ast.EncodeAll(nodes)))
		return nil
	}
	for _, node := range nodes {
		ast.Print(node)
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	program, err := readProgram(args)
	if err != nil {
		return err
	}

	if _, err := parser.Parse(program); err != nil {
		var perr *parser.Error
		if errors.As(err, &perr) {
			return fmt.Errorf("%v: %v", perr.Pos, perr.Kind)
		}
		return err
	}

	fmt.Println("ok")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
