package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolcatalog/internal/config"
	"toolcatalog/internal/doc"
	"toolcatalog/internal/logging"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the supported formats document",
		Long: `Write the supported formats document.

The target file is created or truncated. Its parent directory must exist.`,
		Example: `  toolcatalog generate
  toolcatalog generate -o docs/SUPPORTED-FORMATS.md
  toolcatalog generate -c catalog.toml --no-builtin`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}
	addGenerateFlags(cmd)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output file (default from config: "+doc.DefaultOutputPath+")")
	addCatalogFlags(cmd)
}

func addCatalogFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceP("catalog", "c", nil, "Catalog file (TOML or YAML), may be repeated")
	cmd.Flags().Bool("no-builtin", false, "Do not load the built-in catalog next to --catalog files")
}

// applyCatalogFlags overrides the catalog settings with --catalog and
// --no-builtin. Files given on the command line are loaded after the
// built-in catalog unless --no-builtin is set.
func applyCatalogFlags(cmd *cobra.Command, cfg *config.CatalogConfig) {
	if catalogs, _ := cmd.Flags().GetStringSlice("catalog"); len(catalogs) > 0 {
		cfg.Paths = catalogs
		cfg.Builtin = true
	}
	if noBuiltin, _ := cmd.Flags().GetBool("no-builtin"); noBuiltin {
		cfg.Builtin = false
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.Output.Path = output
	}
	applyCatalogFlags(cmd, &cfg.Catalog)

	dispatcher, errorLogger, err := logging.NewDispatcherFromConfig(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = dispatcher.Close() }()

	logger := dispatcher.ComponentLogger("generate", errorLogger).
		WithRunID().
		With("generator", cfg.Output.Generator).
		With("output", cfg.Output.Path)

	registry, err := loadRegistry(cfg.Catalog)
	if err != nil {
		logger.Errorf("failed to load catalog: %v", err)
		return err
	}

	result, err := doc.GenerateFrom(registry, cfg.Output.Path, doc.Options{
		Generator: cfg.Output.Generator,
		Logger:    logger,
	})
	if err != nil {
		logger.Errorf("%v", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Generated %s (%d tools, %d rows)\n",
		color("\033[32m", "✓"), result.Path, result.Tools, result.Rows)
	return nil
}
