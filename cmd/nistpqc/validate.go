package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/nao1215/nistpqc/internal/catalog"
	"github.com/nao1215/nistpqc/internal/render"
)

// NewValidateCmd creates the validate command.
func NewValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [FILE]",
		Short: "Check a catalog file for integrity errors",
		Long: `Validate loads a catalog YAML file, or the embedded catalog when FILE is
omitted, and checks that every scheme refers to an existing problem
category and that no scheme name is repeated.

On success it prints a summary of the catalog. On failure it prints
the first integrity error and exits with a non-zero status.

Examples:
  # Check the embedded catalog
  nistpqc validate

  # Check a custom catalog and list how often each problem is used
  nistpqc validate mycatalog.yaml --problems`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidateCmd,
	}

	cmd.Flags().BoolP("problems", "p", false,
		"List the number of schemes per problem category")

	return cmd
}

// runValidateCmd executes the validate command.
func runValidateCmd(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}

	showProblems, err := cmd.Flags().GetBool("problems")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))

	c, err := catalog.Load(path)
	if err != nil {
		if path == "" {
			return fmt.Errorf("embedded catalog is invalid: %w", err)
		}
		return fmt.Errorf("catalog %s is invalid: %w", path, err)
	}
	logger.Debug("catalog validated", "path", path, "schemes", c.Len())

	source := path
	if source == "" {
		source = "embedded catalog"
	}

	out := cmd.OutOrStdout()
	enc, sig := render.Render(c)
	fmt.Fprintf(out, "%s: OK\n", source)
	fmt.Fprintf(out, "  schemes:    %d\n", c.Len())
	fmt.Fprintf(out, "  encryption: %d\n", enc.Len())
	fmt.Fprintf(out, "  signatures: %d\n", sig.Len())
	fmt.Fprintf(out, "  problems:   %d\n", len(c.Problems()))

	if showProblems {
		writeProblemUsage(out, c)
	}
	return nil
}

// writeProblemUsage lists every problem category with the number of schemes
// that refer to it, in category order.
func writeProblemUsage(out io.Writer, c *catalog.Catalog) {
	counts := make([]int, len(c.Problems()))
	for s := range c.All {
		counts[s.Problem]++
	}

	fmt.Fprintln(out)
	for i, label := range c.Problems() {
		fmt.Fprintf(out, "  %-16s %d\n", label, counts[i])
	}
}
