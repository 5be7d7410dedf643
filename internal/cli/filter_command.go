package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/dbv-rl/ansible-plugin-filters/internal/inventory"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters/schedule"
	"github.com/fatih/color"
)

// FilterCommand selects inventory items whose date satisfies a filter.
func FilterCommand(cfg *config.Config) *Command {
	var (
		op        string
		tag       string
		datesOnly bool
	)

	cmd := &Command{
		Name:        "filter",
		Usage:       "schedfilter filter <filter> <inventory> [options]",
		Description: "Select inventory items whose date satisfies a filter",
		Flags:       flag.NewFlagSet("filter", flag.ExitOnError),
	}

	cmd.Flags.StringVar(&op, "op", "", "Comparison operator for is_due (==, !=, >, >=, <, <=)")
	cmd.Flags.StringVar(&tag, "tag", "", "Only consider items carrying this tag")
	cmd.Flags.BoolVar(&datesOnly, "dates-only", false, "Print item dates instead of names")

	cmd.Run = func(c *Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("usage: %s", c.Usage)
		}

		name := args[0]
		pred, err := lookupPredicate(name, operatorArgs(cfg, name, op))
		if err != nil {
			return err
		}

		items, err := inventory.LoadPath(args[1])
		if err != nil {
			return err
		}
		if tag != "" {
			items = inventory.FilterByTag(items, tag)
		}

		matched, err := inventory.Select(items, pred)
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			out := struct {
				Items []inventory.Item `json:"items"`
				Count int              `json:"count"`
			}{Items: matched, Count: len(matched)}
			data, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			if len(matched) == 0 {
				return ErrResultFalse
			}
			return nil
		}

		if datesOnly {
			for _, it := range matched {
				fmt.Println(it.Date)
			}
			if len(matched) == 0 {
				return ErrResultFalse
			}
			return nil
		}

		if globalFlags.NoColor || color.NoColor {
			color.NoColor = true
		}
		pastColor := color.New(color.FgRed, color.Bold)

		if !globalFlags.Quiet {
			fmt.Printf("Items (%d):\n\n", len(matched))
		}

		m := schedule.New()
		for _, it := range matched {
			dateStr := fmt.Sprintf("[%s]", it.Date)
			// Dates already resolved during selection, so only the
			// comparison outcome matters here.
			if past, _ := m.IsPast(it.Date); past {
				dateStr = pastColor.Sprint(dateStr)
			}

			tagStr := ""
			if len(it.Tags) > 0 {
				tagStr = "#" + strings.Join(it.Tags, " #")
			}

			fmt.Printf("  %-28s %s %s\n", it.Name, dateStr, tagStr)
		}

		if len(matched) == 0 {
			return ErrResultFalse
		}
		return nil
	}

	return cmd
}
