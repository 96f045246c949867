package models

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed dungeons/zuul.yaml
var defaultDungeon []byte

// ParseDungeon decodes and validates a dungeon definition.
func ParseDungeon(data []byte) (*Dungeon, error) {
	var d Dungeon
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse dungeon YAML: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dungeon %q: %w", d.Title, err)
	}
	return &d, nil
}

// DefaultDungeon returns the built-in fifteen room dungeon.
func DefaultDungeon() (*Dungeon, error) {
	return ParseDungeon(defaultDungeon)
}

// LoadDungeon reads a dungeon file from disk. An empty path yields the default dungeon.
func LoadDungeon(path string) (*Dungeon, error) {
	if path == "" {
		return DefaultDungeon()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDungeon(data)
}

// ListDungeons returns the names of the dungeon files found in dir, without extension.
func ListDungeons(dir string) ([]string, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return []string{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, strings.TrimSuffix(entry.Name(), ext))
		}
	}
	return names, nil
}
