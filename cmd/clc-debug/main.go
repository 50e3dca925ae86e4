// clc-debug parses a small infix Boolean expression, runs the complex
// logical ops simplifier over it, and prints the per-node trace plus the
// result, the way ralph-cc's CLI dumps an intermediate representation after
// a single compiler pass.
package main

import (
	"fmt"
	"os"

	"github.com/logicring/clc/minilang"
	"github.com/logicring/clc/simplify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	maxLeaves int
	maxDepth  int
	quiet     bool
)

func main() {
	os.Exit(run())
}

func run() int {
	rootCmd := newRootCmd(os.Stdout, os.Stderr)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(out, errOut *os.File) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "clc-debug <expr>",
		Short:         "Run the complex logical ops combine simplifier over a Boolean expression",
		Long: `clc-debug parses an infix Boolean expression over identifiers
("a & b ^ (c | 0)", "&"=AND "|"=OR "^"=XOR "~"=NOT "0"/"1"=constants),
runs the same Boolean-ring simplifier used for host IR values, and prints
the simplified form, or reports that no reduction was found.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimplify(args[0], out, errOut)
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.Flags().IntVar(&maxLeaves, "clc-max-logic-leafs", simplify.DefaultMaxLeaves, "maximum number of distinct opaque leaves before aborting")
	rootCmd.Flags().IntVar(&maxDepth, "clc-max-depth", simplify.DefaultMaxDepth, "maximum expression-tree recursion depth before aborting")
	rootCmd.Flags().BoolVar(&quiet, "quiet", false, "suppress the per-node debug trace")

	return rootCmd
}

func runSimplify(expr string, out, errOut *os.File) error {
	root, host, err := minilang.Parse(expr)
	if err != nil {
		fmt.Fprintf(errOut, "clc-debug: %v\n", err)
		return err
	}

	opts := []simplify.Option{
		simplify.WithMaxLeaves(maxLeaves),
		simplify.WithMaxDepth(maxDepth),
	}
	if !quiet {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: true}).With().Timestamp().Logger()
		opts = append(opts, simplify.WithLogger(logger))
	}

	stats := &simplify.Stats{}
	result, changed := simplify.Simplify(host, root, stats, opts...)
	if !changed {
		fmt.Fprintf(out, "no simplification found for %q\n", expr)
		return nil
	}
	fmt.Fprintf(out, "%s --simplified--> %s\n", expr, result.Name())
	fmt.Fprintf(out, "NumComplexLogicalOpsSimplified: %d\n", stats.NumSimplified())
	return nil
}
