package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/nao1215/nistpqc/internal/render"
	"github.com/nao1215/nistpqc/internal/report"
)

// exportBaseName is the file name, without extension, of every exported file.
const exportBaseName = "nistpqc"

// NewExportCmd creates the export command.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export DIR",
		Short: "Write the tables in every output format",
		Long: `Export renders the catalog once and writes it into DIR in several formats:
nistpqc.txt, nistpqc.md, nistpqc.json and nistpqc.html.

The directory is created if it does not exist. Every format is first
written to a temporary file, and the files are only moved into place once
all of them were written. A failed export leaves existing files untouched.

Examples:
  # Write all formats into ./public
  nistpqc export public

  # Write only Markdown and HTML
  nistpqc export public --formats markdown,html`,
		Args: cobra.ExactArgs(1),
		RunE: runExportCmd,
	}

	addCatalogFlags(cmd)
	addStyleFlags(cmd)

	cmd.Flags().StringSlice("formats", nil,
		"Formats to write (default: all of text, markdown, json, html)")

	return cmd
}

// runExportCmd executes the export command.
func runExportCmd(cmd *cobra.Command, args []string) error {
	dir := args[0]

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	formats, err := exportFormats(cmd)
	if err != nil {
		return err
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)

	c, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	doc := render.NewDocument(c)

	paths := make([]string, len(formats))
	temps := make([]string, len(formats))
	for i, f := range formats {
		paths[i] = filepath.Join(dir, exportBaseName+f.Extension())
		temps[i] = exportTempPath(paths[i])
	}

	// Writers only read doc, so they can share it.
	written := make([]bool, len(formats))
	g, ctx := errgroup.WithContext(cmd.Context())
	for i, f := range formats {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			n, err := writeDocumentFile(cfg, f, temps[i], doc)
			if err != nil {
				return err
			}
			written[i] = true
			logger.Debug("document exported", "path", temps[i], "format", f, "bytes", n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		removeExportTemps(temps, written, logger)
		return fmt.Errorf("export failed: %w", err)
	}

	for i := range temps {
		if err := os.Rename(temps[i], paths[i]); err != nil {
			removeExportTemps(temps[i:], written[i:], logger)
			return fmt.Errorf("export failed: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	for _, p := range paths {
		fmt.Fprintf(out, "Wrote %s\n", p)
	}
	return nil
}

// exportTempPath returns the hidden file that path is written to before it
// is moved into place.
func exportTempPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+".tmp")
}

// removeExportTemps deletes the temporary files that were written.
func removeExportTemps(temps []string, written []bool, logger *slog.Logger) {
	for i, p := range temps {
		if !written[i] {
			continue
		}
		if err := os.Remove(p); err != nil {
			logger.Warn("failed to remove temporary file", "path", p, "error", err)
		}
	}
}

// exportFormats returns the formats selected by --formats, in the order
// given and without duplicates. It returns every format when the flag is unset.
func exportFormats(cmd *cobra.Command) ([]report.Format, error) {
	names, err := cmd.Flags().GetStringSlice("formats")
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return report.Formats(), nil
	}

	var formats []report.Format
	seen := make(map[report.Format]bool, len(names))
	for _, name := range names {
		if strings.TrimSpace(name) == "" {
			continue
		}
		f, err := report.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("invalid --formats value: %w", err)
		}
		if seen[f] {
			continue
		}
		seen[f] = true
		formats = append(formats, f)
	}
	if len(formats) == 0 {
		return report.Formats(), nil
	}
	return formats, nil
}
