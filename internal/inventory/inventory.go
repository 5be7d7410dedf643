// Package inventory loads YAML files of dated items so schedule
// filters can select from them in batch.
package inventory

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Item is a single dated entry in an inventory file.
type Item struct {
	Name  string   `yaml:"name" json:"name"`
	Date  string   `yaml:"date" json:"date"`
	Tags  []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Notes string   `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// HasTag checks if the item carries a specific tag
func (it *Item) HasTag(tag string) bool {
	for _, t := range it.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Decode parses an inventory document from a reader. The document
// shape is a single `items:` list; every item needs a name and a date.
func Decode(r io.Reader) ([]Item, error) {
	var doc struct {
		Items []Item `yaml:"items"`
	}

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	for i, it := range doc.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("item %d: name is required", i)
		}
		if it.Date == "" {
			return nil, fmt.Errorf("item %q: date is required", it.Name)
		}
	}

	return doc.Items, nil
}

// Load reads a single inventory file.
func Load(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open inventory: %w", err)
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse inventory %s: %w", path, err)
	}
	return items, nil
}

// LoadPath loads items from an inventory file or, for a directory,
// from every YAML file beneath it.
func LoadPath(path string) ([]Item, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory: %w", err)
	}
	if info.IsDir() {
		return NewScanner(path).LoadAll()
	}
	return Load(path)
}

// Select returns the items whose date satisfies the predicate. A
// resolution error on any item aborts the selection with the item
// named in the error.
func Select(items []Item, pred func(string) (bool, error)) ([]Item, error) {
	var matched []Item
	for _, it := range items {
		ok, err := pred(it.Date)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Name, err)
		}
		if ok {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

// FilterByTag returns the items carrying the tag.
func FilterByTag(items []Item, tag string) []Item {
	var filtered []Item
	for _, it := range items {
		if it.HasTag(tag) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
