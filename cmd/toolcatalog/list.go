package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"toolcatalog/internal/doc"
	"toolcatalog/internal/tools"
)

// isTTY reports whether stdout is connected to a terminal.
var isTTY = sync.OnceValue(func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
})

// color wraps text in ANSI color codes when stdout is a TTY.
// Returns plain text otherwise.
func color(code, text string) string {
	if !isTTY() {
		return text
	}
	return code + text + "\033[0m"
}

// ToolInfo represents a tool for JSON output.
type ToolInfo struct {
	ID      string `json:"id"`
	Symbol  string `json:"symbol"`
	Name    string `json:"name"`
	Label   string `json:"label"`
	URL     string `json:"url,omitempty"`
	Pattern string `json:"pattern,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Help    string `json:"help,omitempty"`
}

func newToolInfo(d tools.Descriptor) ToolInfo {
	info := ToolInfo{
		ID:     d.ID(),
		Symbol: doc.Symbol(d),
		Name:   d.Name(),
		Label:  d.LabelProvider().Name(),
		URL:    d.URL(),
		Help:   d.Help(),
	}
	if pattern, ok := tools.PatternOf(d); ok {
		info.Pattern = pattern
	}
	if icon, ok := doc.IconURL(d.LabelProvider().LargeIconURL()); ok {
		info.Icon = icon
	}
	return info
}

func newListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog tools in document order",
		Example: `  toolcatalog list
  toolcatalog list --json
  toolcatalog list -c catalog.yaml`,
		Args: cobra.NoArgs,
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
			infos := make([]ToolInfo, 0, len(sorted))
			for _, d := range sorted {
				infos = append(infos, newToolInfo(d))
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(infos)
			}

			if len(infos) == 0 {
				fmt.Fprintln(out, "No tools found.")
				return nil
			}

			table := tablewriter.NewWriter(out)
			table.Header("ID", "SYMBOL", "NAME", "PATTERN", "ICON")
			for _, info := range infos {
				pattern := info.Pattern
				if pattern == "" {
					pattern = doc.Placeholder
				}
				icon := info.Icon
				if icon == "" {
					icon = doc.Placeholder
				}
				_ = table.Append(info.ID, info.Symbol, info.Label, pattern, icon)
			}
			return table.Render()
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	addCatalogFlags(cmd)

	return cmd
}
