package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"toolcatalog/internal/doc"
	"toolcatalog/internal/tools"
)

func newMatchCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "match <file>...",
		Short: "Show which tools' default patterns match report files",
		Example: `  toolcatalog match target/checkstyle-result.xml
  toolcatalog match --strict build/reports/*.xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			applyCatalogFlags(cmd, &cfg.Catalog)

			registry, err := loadRegistry(cfg.Catalog)
			if err != nil {
				return err
			}

			sorted := doc.Sort(registry.All())
			out := cmd.OutOrStdout()

			var unmatched []string
			for _, file := range args {
				matches, err := tools.Matching(sorted, file)
				if err != nil {
					return err
				}
				if len(matches) == 0 {
					unmatched = append(unmatched, file)
					fmt.Fprintf(out, "%s %s: no matching tool\n", color("\033[33m", "○"), file)
					continue
				}

				ids := make([]string, len(matches))
				for i, d := range matches {
					ids[i] = d.ID()
				}
				fmt.Fprintf(out, "%s %s: %s\n", color("\033[32m", "✓"), file, strings.Join(ids, ", "))
			}

			if strict && len(unmatched) > 0 {
				return fmt.Errorf("no tool matches %s", strings.Join(unmatched, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when a file matches no tool")
	addCatalogFlags(cmd)

	return cmd
}
