package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	kalconfig "github.com/msto63/kal/core/config"
	kallog "github.com/msto63/kal/core/log"
	"github.com/msto63/kal/kal"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kal",
	Short: "KAL - Kaleido Arithmetic Language",
	Long: `KAL ist eine kleine Ausdruckssprache mit Funktionsdefinitionen,
extern-Deklarationen und Gleitkomma-Arithmetik.

Befehle:
  parse    - Quelltext parsen und Syntaxbaum anzeigen
  tokens   - Quelltext tokenisieren
  repl     - Interaktive Eingabe
  version  - Version anzeigen`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./kal.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// newEngine builds an engine from config file and flags
func newEngine() (*kal.Engine, error) {
	opts := kal.Options{}

	path := cfgFile
	if path == "" {
		if _, err := os.Stat("kal.toml"); err == nil {
			path = "kal.toml"
		} else if _, err := os.Stat("kal.yaml"); err == nil {
			path = "kal.yaml"
		}
	}

	logger := kallog.GetDefault()
	if verbose {
		logger = logger.WithLevel(kallog.LevelDebug)
	}

	if path != "" {
		cfg, err := kalconfig.LoadWithOptions(path, kalconfig.LoadOptions{
			EnvPrefix: "KAL",
		})
		if err != nil {
			return nil, err
		}
		opts = kal.OptionsFromConfig(cfg)

		if level, err := kallog.ParseLevel(cfg.GetString("log.level", "")); err == nil && !verbose {
			logger = logger.WithLevel(level)
		}
	}

	opts.Logger = logger
	return kal.NewEngine(opts)
}

// getInputText reads source from stdin, a file argument, or the arguments themselves
func getInputText(args []string) (string, error) {
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(args) > 0 {
		if _, err := os.Stat(args[0]); err == nil {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
		return strings.Join(args, " "), nil
	}

	return "", nil
}
