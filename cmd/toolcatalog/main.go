package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"toolcatalog/internal/catalog"
	"toolcatalog/internal/config"
	"toolcatalog/internal/tools"
	"toolcatalog/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toolcatalog",
		Short: "Generate the supported report formats document",
		Long: `toolcatalog - render the catalog of static analysis tools as a Markdown document

Every run regenerates the document from scratch: tools are sorted by their
label name, each tool becomes a table row with its id, pipeline symbol,
icon, linked name and default file pattern, followed by a help row when
the tool has help text.

Without a subcommand, toolcatalog runs "generate".`,
		Example: `  toolcatalog                               # Write ../SUPPORTED-FORMATS.md
  toolcatalog -o SUPPORTED-FORMATS.md      # Write to a different file
  toolcatalog -c tools.toml -c extra.yaml  # Use custom catalogs
  toolcatalog list                          # Show the tools as a table
  toolcatalog verify SUPPORTED-FORMATS.md   # Check a generated document`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: user config merged with ./"+config.LocalConfigName+")")
	rootCmd.SetVersionTemplate(fmt.Sprintf("toolcatalog v%s\n", version.String()))

	addGenerateFlags(rootCmd)
	rootCmd.RunE = runGenerate

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newMatchCmd())
	rootCmd.AddCommand(newVerifyCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfig reads the file named by --config, or the user configuration
// merged with the project file of the working directory.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return config.LoadFrom(path)
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, _, err := config.Load(wd)
	return cfg, err
}

// loadRegistry builds the descriptor registry selected by the catalog
// settings. No paths means the built-in catalog only.
func loadRegistry(cfg config.CatalogConfig) (*tools.Registry, error) {
	registry := tools.NewRegistry()
	loader := catalog.NewLoader(registry)

	if len(cfg.Paths) == 0 || cfg.Builtin {
		if err := loader.LoadBuiltin(); err != nil {
			return nil, err
		}
	}
	for _, path := range cfg.Paths {
		if err := loader.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
