package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var parseCanonical bool

var parseCmd = &cobra.Command{
	Use:   "parse [quelltext|datei]",
	Short: "Quelltext parsen und Syntaxbaum anzeigen",
	Long: `Parst KAL-Quelltext und zeigt den Syntaxbaum an.

Beispiele:
  kal parse "def twice(x) x*2"
  kal parse programm.kal
  kal parse --canonical "a+b*c"
  echo "1+2" | kal parse`,
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseCanonical, "canonical", "c", false, "Kanonische Form statt Baum ausgeben")
}

func runParse(cmd *cobra.Command, args []string) error {
	input, err := getInputText(args)
	if err != nil {
		return err
	}
	if input == "" {
		return fmt.Errorf("kein Quelltext zum Parsen")
	}

	engine, err := newEngine()
	if err != nil {
		printError("Engine konnte nicht erstellt werden", err)
		return err
	}

	program, err := engine.Parse(input)
	if err != nil {
		printError("Parsen fehlgeschlagen", err)
		return err
	}

	if parseCanonical {
		fmt.Println(program.String())
		return nil
	}

	fmt.Print(engine.Dump(program))
	return nil
}
