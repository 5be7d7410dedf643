package cli

import (
	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/dbv-rl/ansible-plugin-filters/internal/tui"
)

// ExploreCommand launches the interactive filter explorer.
func ExploreCommand(cfg *config.Config) *Command {
	return &Command{
		Name:        "explore",
		Usage:       "schedfilter explore [datestring]",
		Description: "Interactively explore filters against a date string",
		Run: func(c *Command, args []string) error {
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			return tui.Run(initial)
		},
	}
}
