package cli

import (
	"encoding/json"
	"flag"
	"fmt"

	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/dbv-rl/ansible-plugin-filters/internal/inventory"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters/schedule"
	"github.com/fatih/color"
)

// ValidateCommand resolves every inventory item date and reports
// per-item outcomes, so broken inventories surface before a pipeline
// run instead of in the middle of one.
func ValidateCommand(cfg *config.Config) *Command {
	cmd := &Command{
		Name:        "validate",
		Usage:       "schedfilter validate <inventory>",
		Description: "Check that every inventory item date resolves",
		Flags:       flag.NewFlagSet("validate", flag.ExitOnError),
	}

	cmd.Run = func(c *Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("usage: %s", c.Usage)
		}

		items, err := inventory.LoadPath(args[0])
		if err != nil {
			return err
		}

		if globalFlags.NoColor || color.NoColor {
			color.NoColor = true
		}
		okColor := color.New(color.FgGreen)
		badColor := color.New(color.FgRed, color.Bold)

		type issue struct {
			Name  string `json:"name"`
			Date  string `json:"date"`
			Error string `json:"error"`
		}
		var issues []issue

		m := schedule.New()
		for _, it := range items {
			r, err := m.Resolve(it.Date)
			if err != nil {
				issues = append(issues, issue{Name: it.Name, Date: it.Date, Error: err.Error()})
				if !globalFlags.JSON && !globalFlags.Quiet {
					fmt.Printf("  %s %-28s %v\n", badColor.Sprint("✗"), it.Name, err)
				}
				continue
			}
			if !globalFlags.JSON && !globalFlags.Quiet {
				fmt.Printf("  %s %-28s [%s] %s\n", okColor.Sprint("✓"), it.Name, it.Date, r.Precision)
			}
		}

		if globalFlags.JSON {
			out := struct {
				Checked int     `json:"checked"`
				Invalid int     `json:"invalid"`
				Issues  []issue `json:"issues,omitempty"`
			}{Checked: len(items), Invalid: len(issues), Issues: issues}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
		} else if !globalFlags.Quiet {
			fmt.Printf("\nChecked %d item(s), %d invalid\n", len(items), len(issues))
		}

		if len(issues) > 0 {
			return fmt.Errorf("%d invalid date(s)", len(issues))
		}
		return nil
	}

	return cmd
}
