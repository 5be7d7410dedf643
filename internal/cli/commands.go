// Package cli implements the schedfilter command set on a small
// flag-based command tree.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters"
)

// Command represents a CLI command with optional subcommands
type Command struct {
	Name        string
	Usage       string
	Description string
	Flags       *flag.FlagSet
	Subcommands []*Command
	Run         func(c *Command, args []string) error
}

// GlobalFlags holds flags that apply to all commands
type GlobalFlags struct {
	JSON    bool
	Quiet   bool
	NoColor bool
	Config  string
}

var globalFlags GlobalFlags

// SetGlobalFlags stores the parsed global flags for command handlers.
func SetGlobalFlags(f GlobalFlags) {
	globalFlags = f
}

// ErrResultFalse signals a clean false evaluation so main can exit 1
// without printing an error, grep-style.
var ErrResultFalse = errors.New("result is false")

// Commands returns the top-level command set.
func Commands(cfg *config.Config) []*Command {
	return []*Command{
		CheckCommand(cfg),
		FilterCommand(cfg),
		ValidateCommand(cfg),
		RenderCommand(cfg),
		ListCommand(cfg),
		CompletionCommand(cfg),
		ExploreCommand(cfg),
	}
}

// Find locates a command by name.
func Find(commands []*Command, name string) *Command {
	for _, c := range commands {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Execute parses the command's flags, descends into a matching
// subcommand if one exists, and otherwise calls Run.
func Execute(cmd *Command, args []string) error {
	if cmd.Flags != nil {
		if err := cmd.Flags.Parse(args); err != nil {
			return err
		}
		args = cmd.Flags.Args()
	}

	if len(args) > 0 && len(cmd.Subcommands) > 0 {
		if sub := Find(cmd.Subcommands, args[0]); sub != nil {
			return Execute(sub, args[1:])
		}
	}

	if cmd.Run == nil {
		return fmt.Errorf("usage: %s", cmd.Usage)
	}
	return cmd.Run(cmd, args)
}

// NormalizeFilterName maps dashed spellings onto the registered
// snake_case names, so is-due and is_due both resolve.
func NormalizeFilterName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// lookupPredicate resolves a filter name to a single-argument callable
// with any operator arguments already bound.
func lookupPredicate(name string, opArgs []string) (func(string) (bool, error), error) {
	f, ok := filters.Lookup(NormalizeFilterName(name))
	if !ok {
		return nil, fmt.Errorf("unknown filter: %s (run 'schedfilter list')", name)
	}

	switch fn := f.Func.(type) {
	case func(string) (bool, error):
		if len(opArgs) > 0 {
			return nil, fmt.Errorf("filter %s does not take an operator", f.Name)
		}
		return fn, nil
	case func(string, ...string) (bool, error):
		return func(date string) (bool, error) {
			return fn(date, opArgs...)
		}, nil
	}
	return nil, fmt.Errorf("filter %s is not a date predicate", f.Name)
}

// operatorArgs decides which operator to bind for a filter: an explicit
// --op wins, then the configured default for is_due, then none.
func operatorArgs(cfg *config.Config, name, op string) []string {
	if op != "" {
		return []string{op}
	}
	if NormalizeFilterName(name) == "is_due" && cfg.Filter.Operator != "" {
		return []string{cfg.Filter.Operator}
	}
	return nil
}
