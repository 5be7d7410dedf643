package cli

import (
	"encoding/json"
	"fmt"

	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters"
)

// ListCommand prints the registered filters grouped by provider.
func ListCommand(cfg *config.Config) *Command {
	return &Command{
		Name:        "list",
		Usage:       "schedfilter list",
		Description: "List registered filters",
		Run: func(c *Command, args []string) error {
			if globalFlags.JSON {
				type FilterJSON struct {
					Name     string `json:"name"`
					Provider string `json:"provider"`
					Doc      string `json:"doc,omitempty"`
				}
				type Output struct {
					Filters []FilterJSON `json:"filters"`
					Count   int          `json:"count"`
				}

				var out Output
				for _, provider := range filters.Providers() {
					fs, _ := filters.ProviderFilters(provider)
					for _, f := range fs {
						out.Filters = append(out.Filters, FilterJSON{
							Name:     f.Name,
							Provider: provider,
							Doc:      f.Doc,
						})
					}
				}
				out.Count = len(out.Filters)

				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal JSON: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			for _, provider := range filters.Providers() {
				fs, _ := filters.ProviderFilters(provider)
				if !globalFlags.Quiet {
					fmt.Printf("%s (%d):\n", provider, len(fs))
				}
				for _, f := range fs {
					fmt.Printf("  %-20s %s\n", f.Name, f.Doc)
				}
			}
			return nil
		},
	}
}
