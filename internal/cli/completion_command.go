package cli

import (
	"flag"
	"fmt"

	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters/schedule"
)

// CompletionCommand returns the completion command
func CompletionCommand(cfg *config.Config) *Command {
	cmd := &Command{
		Name:        "completion",
		Usage:       "completion <type>",
		Description: "Output completion data for shell scripts",
		Flags:       flag.NewFlagSet("completion", flag.ContinueOnError),
		Run: func(c *Command, args []string) error {
			if len(args) == 0 {
				return fmt.Errorf("completion type required: filters, operators, commands")
			}

			switch args[0] {
			case "filters":
				return outputFilterNames()
			case "operators":
				return outputOperators()
			case "commands":
				return outputCommandNames(cfg)
			default:
				return fmt.Errorf("unknown completion type: %s", args[0])
			}
		},
	}

	return cmd
}

func outputFilterNames() error {
	for _, name := range filters.Names() {
		fmt.Println(name)
	}
	return nil
}

func outputOperators() error {
	for _, op := range schedule.Operators() {
		fmt.Println(op)
	}
	return nil
}

func outputCommandNames(cfg *config.Config) error {
	for _, c := range Commands(cfg) {
		fmt.Println(c.Name)
	}
	return nil
}
