package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for nistpqc.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nistpqc",
		Short: "Render the NIST PQC round-1 proposals as tables",
		Long: `nistpqc renders the NIST post-quantum cryptography round-1 proposals
as two tables: encryption/key exchange schemes and signature schemes.
Each row names a scheme and the hard problem its security reduces to.

The catalog is embedded in the binary. Use --catalog to render a
different catalog file instead.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
