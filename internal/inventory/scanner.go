package inventory

import (
	"io/fs"
	"path/filepath"
	"sort"
)

// Scanner finds and loads inventory files under a base directory.
type Scanner struct {
	BaseDir string
}

// NewScanner creates a new scanner for the given directory
func NewScanner(dir string) *Scanner {
	return &Scanner{BaseDir: dir}
}

// FindFiles returns every .yaml/.yml file under BaseDir, sorted by path.
func (s *Scanner) FindFiles() ([]string, error) {
	var paths []string

	err := filepath.WalkDir(s.BaseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// LoadAll loads every inventory file under BaseDir and merges their
// items in path order.
func (s *Scanner) LoadAll() ([]Item, error) {
	paths, err := s.FindFiles()
	if err != nil {
		return nil, err
	}

	var items []Item
	for _, path := range paths {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		items = append(items, loaded...)
	}
	return items, nil
}
