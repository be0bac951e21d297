package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skein-lang/skein/internal/ast"
	"github.com/skein-lang/skein/internal/diag"
	"github.com/skein-lang/skein/internal/parser"
)

var dumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a source file and print its declarations",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		closeLogs, err := setupLogging(cfg)
		if err != nil {
			return err
		}
		defer closeLogs()

		filename := args[0]
		src, err := os.ReadFile(filename)
		if err != nil {
			return err
		}

		start := time.Now()
		decls, perr := parser.Parse(filename, string(src))
		slog.Debug("parse finished", "file", filename, "decls", len(decls), "elapsed", time.Since(start))

		if perr != nil {
			formatter := diag.NewFormatter(
				diag.WithColor(cfg.Diagnostics.Color && !noColor),
				diag.WithContext(cfg.Diagnostics.Context),
			)
			formatter.AddSource(filename, string(src))
			formatter.Format(os.Stderr, perr)
			return fmt.Errorf("parse failed")
		}

		if dumpAST {
			ast.Fprint(os.Stdout, decls)
			return nil
		}
		fmt.Printf("%s: %d declaration(s)\n", filename, len(decls))
		for _, d := range decls {
			fmt.Printf("  %s: %s\n", d.Location(), d.Id.Name)
		}
		return nil
	},
}

func init() {
	parseCmd.Flags().BoolVar(&dumpAST, "dump", false, "print the parsed declarations as trees")
	rootCmd.AddCommand(parseCmd)
}
