package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultMaxLines = 100000

var (
	maxLines int
	prompt   bool
	noColor  bool
)

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Arbitrary-precision RPN calculator",
	Long: `bigcalc reads one reverse-Polish-notation expression per line from stdin
and prints one result per line.

Operators: + - * / %% < <= > >= == != pow`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}
		cfg := config{
			maxLines: maxLines,
			prompt:   prompt && isTerminal(os.Stdin),
		}
		return run(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
	},
}

func init() {
	rootCmd.Flags().IntVar(&maxLines, "max-lines", defaultMaxLines, "maximum number of input lines to evaluate")
	rootCmd.Flags().BoolVar(&prompt, "prompt", true, "show a prompt when stdin is a terminal")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "disable coloured error output")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
