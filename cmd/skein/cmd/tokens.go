package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skein-lang/skein/internal/diag"
	"github.com/skein-lang/skein/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Dump the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		filename := args[0]
		src, err := os.ReadFile(filename)
		if err != nil {
			return err
		}

		lx := lexer.New(filename, string(src))
		for {
			if _, perr := lx.Advance(); perr != nil {
				formatter := diag.NewFormatter(
					diag.WithColor(cfg.Diagnostics.Color && !noColor),
					diag.WithContext(cfg.Diagnostics.Context),
				)
				formatter.AddSource(filename, string(src))
				formatter.Format(os.Stderr, perr)
				return fmt.Errorf("lexing failed")
			}
			tok, ok := lx.Peek()
			if !ok {
				return nil
			}
			fmt.Printf("%s\t%s\n", tok.Loc, tok.Lexeme)
		}
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
