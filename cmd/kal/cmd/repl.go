package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/kal/internal/tui/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interaktive Eingabe",
	Long: `Startet die interaktive KAL-Eingabe.

Eingaben werden zeilenweise geparst und als kanonische Form oder
Syntaxbaum angezeigt.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		printError("Engine konnte nicht erstellt werden", err)
		return err
	}

	return repl.Run(engine)
}
