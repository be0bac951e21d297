package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skein-lang/skein/internal/config"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "skein",
	Short: "Front end for the Skein expression language",
	Long: `skein is the front end of the Skein expression language: a lexer
and a recursive-descent parser producing declaration trees.

Commands:
  parse    Parse a source file and print its declarations
  tokens   Dump the token stream of a source file`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "skein: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./skein.toml or ./skein.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose (debug) logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

// loadConfig resolves the effective configuration: the --config file if
// given, a discovered skein.toml/skein.yaml otherwise, defaults when
// neither exists.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		found, ok := config.Discover(".")
		if !ok {
			return config.Default(), nil
		}
		path = found
	}
	return config.Load(path)
}
