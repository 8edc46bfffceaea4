package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/nistpqc/internal/catalog"
	"github.com/nao1215/nistpqc/internal/config"
	"github.com/nao1215/nistpqc/internal/model"
	"github.com/nao1215/nistpqc/internal/render"
	"github.com/nao1215/nistpqc/internal/report"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the catalog as encryption and signature tables",
		Long: `Render prints two tables: "Encryption/Key Exchange:" and "Signatures:".
Each row holds a scheme name and the problem its security reduces to.
Rows appear in catalog order.

The catalog is checked before anything is written. A scheme that refers
to a problem category that does not exist aborts the command with an
error naming the scheme, and no output is produced.

Examples:
  # Print aligned text tables
  nistpqc render

  # Write an HTML page
  nistpqc render --format html -o public/index.html

  # Render a custom catalog as Markdown
  nistpqc render --catalog mycatalog.yaml --format markdown`,
		Args: cobra.NoArgs,
		RunE: runRenderCmd,
	}

	addCatalogFlags(cmd)
	addStyleFlags(cmd)

	cmd.Flags().StringP("format", "f", string(config.DefaultFormat),
		"Output format: text, markdown, json, or html")
	cmd.Flags().StringP("output", "o", "",
		"Write output to specified file path (creates directories if needed)")
	cmd.Flags().Bool("tee", false,
		"Also print to stdout when --output is set")

	return cmd
}

// addCatalogFlags adds the flags that select the configuration and catalog files.
func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .nistpqc in current or home directory)")
	cmd.Flags().String("catalog", "",
		"Catalog YAML file to render instead of the embedded catalog")
}

// addStyleFlags adds the flags that tune writer output.
func addStyleFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", config.DefaultTitle,
		"Page title for HTML output")
	cmd.Flags().String("stylesheet", "",
		"Stylesheet href for HTML output")
	cmd.Flags().BoolP("count", "n", false,
		"Show row counts in text and Markdown output")
}

// runRenderCmd executes the render command.
func runRenderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	c, err := loadCatalog(cfg, logger)
	if err != nil {
		return err
	}

	doc := render.NewDocument(c)
	logger.Debug("catalog rendered",
		"sections", len(doc.Sections),
		"rows", doc.TotalRows(),
	)

	tee, err := cmd.Flags().GetBool("tee")
	if err != nil {
		return err
	}

	return writeDocument(cmd, cfg, doc, tee, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the configuration file and command flags.
// Flags the user set explicitly override values from the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = stringFlag(cmd, "config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.Apply(cf); err != nil {
			return nil, fmt.Errorf("config file %s: %w", configPath, err)
		}
	} else if explicitConfigPath {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if changed(cmd, "format") {
		name, err := cmd.Flags().GetString("format")
		if err != nil {
			return nil, err
		}
		format, err := report.ParseFormat(name)
		if err != nil {
			return nil, fmt.Errorf("configuration error: %w", config.ErrInvalidFormat)
		}
		cfg.Format = format
	}

	overrides := []struct {
		name string
		dst  *string
	}{
		{"output", &cfg.OutputFile},
		{"catalog", &cfg.CatalogFile},
		{"title", &cfg.Title},
		{"stylesheet", &cfg.Stylesheet},
	}
	for _, o := range overrides {
		if !changed(cmd, o.name) {
			continue
		}
		if *o.dst, err = cmd.Flags().GetString(o.name); err != nil {
			return nil, err
		}
	}

	if changed(cmd, "count") {
		if cfg.ShowCount, err = cmd.Flags().GetBool("count"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// changed reports whether the command defines the flag and the user set it.
func changed(cmd *cobra.Command, name string) bool {
	return cmd.Flags().Lookup(name) != nil && cmd.Flags().Changed(name)
}

// stringFlag returns the value of a string flag, or "" if the command does
// not define it.
func stringFlag(cmd *cobra.Command, name string) (string, error) {
	if cmd.Flags().Lookup(name) == nil {
		return "", nil
	}
	return cmd.Flags().GetString(name)
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(w, opts)
	return slog.New(handler)
}

// loadCatalog loads the configured catalog, or the embedded one.
// Integrity errors are returned as-is so callers can match them with errors.Is.
func loadCatalog(cfg *config.Config, logger *slog.Logger) (*catalog.Catalog, error) {
	c, err := catalog.Load(cfg.CatalogFile)
	if err != nil {
		if cfg.CatalogFile == "" {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.CatalogFile, err)
	}

	source := cfg.CatalogFile
	if source == "" {
		source = "embedded"
	}
	logger.Debug("catalog loaded",
		"source", source,
		"schemes", c.Len(),
		"signatures", c.CountSignatures(),
		"problems", len(c.Problems()),
	)

	return c, nil
}

// newDocumentWriter creates the writer for format with the options in cfg.
func newDocumentWriter(cfg *config.Config, format report.Format, output io.Writer) (report.Writer, error) {
	switch format {
	case report.FormatText:
		return report.NewSimpleWriter(output, report.WithShowCount(cfg.ShowCount)), nil
	case report.FormatMarkdown:
		return report.NewMarkdownWriter(output, report.WithSummary(cfg.ShowCount)), nil
	case report.FormatHTML:
		opts := []report.HTMLWriterOption{report.WithTitle(cfg.Title)}
		if cfg.Stylesheet != "" {
			opts = append(opts, report.WithStylesheet(cfg.Stylesheet))
		}
		return report.NewHTMLWriter(output, opts...), nil
	default:
		return report.NewWriter(format, output, getVersion())
	}
}

// writeDocument writes doc in the configured format to the configured destination.
// With tee set, a document written to a file is also written to stdout.
func writeDocument(cmd *cobra.Command, cfg *config.Config, doc *model.Document, tee bool, logger *slog.Logger) error {
	stdout, err := newDocumentWriter(cfg, cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	if cfg.OutputFile == "" {
		_, err = stdout.Write(doc)
		return err
	}

	var extra []report.Writer
	if tee {
		extra = append(extra, stdout)
	}

	n, err := writeDocumentFile(cfg, cfg.Format, cfg.OutputFile, doc, extra...)
	if err != nil {
		return err
	}
	logger.Info("document written", "path", cfg.OutputFile, "format", cfg.Format, "bytes", n)
	return nil
}

// writeDocumentFile writes doc to path, creating or truncating the file.
// The document is then written to each of extra, in order.
func writeDocumentFile(cfg *config.Config, format report.Format, path string, doc *model.Document, extra ...report.Writer) (int, error) {
	if err := ensureParentDir(path); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return 0, fmt.Errorf("failed to create output file: %w", err)
	}

	fw, err := newDocumentWriter(cfg, format, f)
	if err != nil {
		_ = f.Close()
		return 0, err
	}

	w := report.Writer(fw)
	if len(extra) > 0 {
		w = report.NewMultiWriter(append([]report.Writer{fw}, extra...)...)
	}

	n, err := w.Write(doc)
	if err != nil {
		_ = f.Close()
		return n, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return n, f.Close()
}
