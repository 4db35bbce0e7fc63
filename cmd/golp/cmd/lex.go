package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/golp/internal/lexer"
	"github.com/spf13/cobra"
)

var (
	lexShowPos    bool
	lexShowType   bool
	lexOnlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize an LP file and print the resulting raw tokens",
	Long: `Tokenize (lex) an LP file and print the resulting raw token sequence.

This command is useful for debugging the lexer and understanding how LP
source text is broken into punctuation, comparisons, numbers, and
identifier-like strings, before the classifier assigns grammatical
meaning to any of it.

Examples:
  golp lex model.lp
  golp lex --show-type --show-pos model.lp
  golp lex --only-errors model.lp`,
	Args: cobra.ExactArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&lexShowPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&lexShowType, "show-type", false, "show token type names")
	lexCmd.Flags().BoolVar(&lexOnlyErrors, "only-errors", false, "show only the lex error, if any, and suppress normal token output")
}

func runLex(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", args[0], err)
	}
	defer f.Close()

	l := lexer.New(lexer.NewReaderSource(f))
	defer l.Close()

	for {
		tok, err := l.Next()
		if err != nil {
			// Unlike a stream of tokens with an embedded ILLEGAL marker, an
			// unrecognized byte aborts the lexer outright: this is the one
			// thing --only-errors has to show, and the one thing it never
			// suppresses.
			return err
		}
		if !lexOnlyErrors {
			printRawToken(tok)
		}
		if tok.Type == lexer.FILE_END {
			break
		}
	}
	return nil
}

func printRawToken(tok lexer.Token) {
	var parts []string
	if lexShowType {
		parts = append(parts, fmt.Sprintf("[%-14s]", tok.Type.String()))
	}
	switch tok.Type {
	case lexer.FILE_END:
		parts = append(parts, "FILE_END")
	case lexer.STRING:
		parts = append(parts, fmt.Sprintf("STRING %q", tok.Literal))
	case lexer.NUMBER:
		parts = append(parts, fmt.Sprintf("NUMBER %v", tok.Number))
	default:
		parts = append(parts, tok.Type.String())
	}
	if lexShowPos {
		parts = append(parts, fmt.Sprintf("@%d:%d", tok.Pos.Line, tok.Pos.Column))
	}
	fmt.Println(strings.Join(parts, " "))
}
