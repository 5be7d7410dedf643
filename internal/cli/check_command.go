package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/fatih/color"
)

// CheckCommand evaluates a single filter against a date string. The
// exit status reports the outcome: 0 true, 1 false, 2 error.
func CheckCommand(cfg *config.Config) *Command {
	var op string

	cmd := &Command{
		Name:        "check",
		Usage:       "schedfilter check <filter> <datestring> [--op <operator>]",
		Description: "Evaluate a schedule filter against a date string",
		Flags:       flag.NewFlagSet("check", flag.ExitOnError),
	}

	cmd.Flags.StringVar(&op, "op", "", "Comparison operator for is_due (==, !=, >, >=, <, <=)")

	cmd.Run = func(c *Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("usage: %s", c.Usage)
		}

		name := args[0]
		datestring := args[1]

		opArgs := operatorArgs(cfg, name, op)
		pred, err := lookupPredicate(name, opArgs)
		if err != nil {
			return err
		}

		result, err := pred(datestring)
		if err != nil {
			return err
		}

		if globalFlags.JSON {
			out := struct {
				Filter   string `json:"filter"`
				Input    string `json:"input"`
				Operator string `json:"operator,omitempty"`
				Result   bool   `json:"result"`
			}{
				Filter:   NormalizeFilterName(name),
				Input:    datestring,
				Operator: strings.Join(opArgs, ""),
				Result:   result,
			}
			data, _ := json.MarshalIndent(out, "", "  ")
			fmt.Println(string(data))
		} else if !globalFlags.Quiet {
			if globalFlags.NoColor || color.NoColor {
				color.NoColor = true
			}
			trueColor := color.New(color.FgGreen)
			falseColor := color.New(color.FgRed, color.Bold)

			if result {
				fmt.Println(trueColor.Sprint("true"))
			} else {
				fmt.Println(falseColor.Sprint("false"))
			}
		}

		if !result {
			return ErrResultFalse
		}
		return nil
	}

	return cmd
}
