package cli

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter separates an optional leading "---" delimited YAML
// variable block from the template body.
func splitFrontmatter(data []byte) (map[string]interface{}, string, error) {
	content := string(data)
	if !strings.HasPrefix(content, "---") {
		return nil, content, nil
	}

	rest := content[3:]
	idx := strings.Index(rest, "---")
	if idx == -1 {
		return nil, "", fmt.Errorf("unterminated frontmatter")
	}

	vars := map[string]interface{}{}
	if err := yaml.Unmarshal([]byte(rest[:idx]), &vars); err != nil {
		return nil, "", fmt.Errorf("failed to parse template frontmatter: %w", err)
	}

	body := strings.TrimLeft(rest[idx+3:], "\n")
	return vars, body, nil
}
