package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/kal/kal/parser"
)

var tokensPositions bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [quelltext|datei]",
	Short: "Quelltext tokenisieren",
	Long: `Zerlegt KAL-Quelltext in Tokens und gibt sie zeilenweise aus.

Beispiele:
  kal tokens "def foo(a b) a+b"
  kal tokens --positions programm.kal
  echo "1.45 * x" | kal tokens`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().BoolVarP(&tokensPositions, "positions", "p", false, "Positionen mit ausgeben")
}

func runTokens(cmd *cobra.Command, args []string) error {
	input, err := getInputText(args)
	if err != nil {
		return err
	}
	if input == "" {
		return fmt.Errorf("kein Quelltext zum Tokenisieren")
	}

	engine, err := newEngine()
	if err != nil {
		printError("Engine konnte nicht erstellt werden", err)
		return err
	}

	tokens, err := engine.Tokenize(input)
	printTokens(tokens)
	if err != nil {
		printError("Tokenisierung fehlgeschlagen", err)
		return err
	}
	return nil
}

func printTokens(tokens []parser.Token) {
	for _, tok := range tokens {
		if tokensPositions {
			fmt.Printf("%3d:%-3d %s\n", tok.Line, tok.Column, tok)
		} else {
			fmt.Println(tok)
		}
	}
}
