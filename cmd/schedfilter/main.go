package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dbv-rl/ansible-plugin-filters/internal/cli"
	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
)

func main() {
	var gf cli.GlobalFlags

	fs := flag.NewFlagSet("schedfilter", flag.ExitOnError)
	fs.BoolVar(&gf.JSON, "json", false, "Output as JSON")
	fs.BoolVar(&gf.Quiet, "quiet", false, "Suppress non-essential output")
	fs.BoolVar(&gf.Quiet, "q", false, "Suppress non-essential output (short)")
	fs.BoolVar(&gf.NoColor, "no-color", false, "Disable colored output")
	fs.StringVar(&gf.Config, "config", "", "Path to config file")

	fs.Usage = func() {
		printUsage(fs)
	}
	fs.Parse(os.Args[1:])

	configPath := gf.Config
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Config supplies defaults; explicit flags only ever turn things on.
	gf.JSON = gf.JSON || cfg.Output.JSON
	gf.Quiet = gf.Quiet || cfg.Output.Quiet
	gf.NoColor = gf.NoColor || cfg.Output.NoColor
	cli.SetGlobalFlags(gf)

	commands := cli.Commands(cfg)

	args := fs.Args()
	if len(args) == 0 {
		printUsage(fs)
		os.Exit(2)
	}

	cmd := cli.Find(commands, args[0])
	if cmd == nil {
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage(fs)
		os.Exit(2)
	}

	if err := cli.Execute(cmd, args[1:]); err != nil {
		if errors.Is(err, cli.ErrResultFalse) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

func printUsage(fs *flag.FlagSet) {
	fmt.Fprintf(os.Stderr, "schedfilter evaluates date predicates for templates and inventories\n\n")
	fmt.Fprintf(os.Stderr, "Usage: schedfilter [global options] <command> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, c := range cli.Commands(config.Default()) {
		fmt.Fprintf(os.Stderr, "  %-12s %s\n", c.Name, c.Description)
	}
	fmt.Fprintf(os.Stderr, "\nGlobal options:\n")
	fs.PrintDefaults()
}
