package cli

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/dbv-rl/ansible-plugin-filters/internal/config"
	"github.com/dbv-rl/ansible-plugin-filters/pkg/filters"
	"gopkg.in/yaml.v3"
)

// RenderCommand executes a text/template with every registered filter
// mounted. Template data comes from an optional frontmatter block in
// the template itself plus an optional --vars YAML file; --vars wins
// on conflicts.
func RenderCommand(cfg *config.Config) *Command {
	var (
		varsFile string
		outFile  string
	)

	cmd := &Command{
		Name:        "render",
		Usage:       "schedfilter render <template> [--vars vars.yaml] [--out file]",
		Description: "Render a template with the schedule filters mounted",
		Flags:       flag.NewFlagSet("render", flag.ExitOnError),
	}

	cmd.Flags.StringVar(&varsFile, "vars", "", "YAML file with template variables")
	cmd.Flags.StringVar(&outFile, "out", "", "Write output to a file instead of stdout")

	cmd.Run = func(c *Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("usage: %s", c.Usage)
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read template: %v", err)
		}

		vars, body, err := splitFrontmatter(raw)
		if err != nil {
			return err
		}
		if vars == nil {
			vars = map[string]interface{}{}
		}

		if varsFile != "" {
			data, err := os.ReadFile(varsFile)
			if err != nil {
				return fmt.Errorf("failed to read vars file: %v", err)
			}
			fileVars := map[string]interface{}{}
			if err := yaml.Unmarshal(data, &fileVars); err != nil {
				return fmt.Errorf("failed to parse vars file: %v", err)
			}
			for k, v := range fileVars {
				vars[k] = v
			}
		}

		tmpl, err := template.New(filepath.Base(args[0])).
			Funcs(filters.FuncMap()).
			Option("missingkey=error").
			Parse(body)
		if err != nil {
			return fmt.Errorf("failed to parse template: %v", err)
		}

		// Render in memory; the output file is only written on success.
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, vars); err != nil {
			return fmt.Errorf("failed to render template: %v", err)
		}

		if outFile != "" {
			if err := os.WriteFile(outFile, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %v", err)
			}
			if !globalFlags.Quiet {
				fmt.Printf("Rendered %s\n", outFile)
			}
			return nil
		}

		fmt.Print(buf.String())
		return nil
	}

	return cmd
}
