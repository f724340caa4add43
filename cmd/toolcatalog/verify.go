package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"toolcatalog/internal/doc"
	"toolcatalog/internal/inspect"
)

func newVerifyCmd() *cobra.Command {
	var compareCatalog bool

	cmd := &cobra.Command{
		Use:   "verify [path]",
		Short: "Check a generated document against the column contract",
		Long: `Parse a generated document and check its table header against the
fixed column labels. With --catalog the tool ids must also appear in the
order the current catalog would produce.`,
		Example: `  toolcatalog verify
  toolcatalog verify ../SUPPORTED-FORMATS.md --catalog`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			path := cfg.Output.Path
			if len(args) == 1 {
				path = args[0]
			}

			table, err := inspect.ParseFile(path)
			if err != nil {
				return err
			}
			if err := table.Verify(); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s: %d tools, %d help rows\n",
				color("\033[32m", "✓"), path, len(table.Entries), table.HelpRows())

			if !compareCatalog {
				return nil
			}

			registry, err := loadRegistry(cfg.Catalog)
			if err != nil {
				return err
			}
			want := make([]string, 0, registry.Len())
			for _, d := range doc.Sort(registry.All()) {
				want = append(want, d.ID())
			}
			if got := table.IDs(); !slices.Equal(got, want) {
				return fmt.Errorf("%s is out of date: ids %q, catalog %q", path, got, want)
			}
			fmt.Fprintf(out, "%s matches the catalog\n", color("\033[32m", "✓"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&compareCatalog, "catalog", false, "Compare tool ids with the catalog order")

	return cmd
}
