package demo

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Item is a catalog entry.
type Item struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Price       float64  `yaml:"price"`
	Tags        []string `yaml:"tags"`
}

type catalogFile struct {
	Items []Item `yaml:"items"`
}

// ErrInvalidItem reports a catalog entry without an id or name.
var ErrInvalidItem = errors.New("demo: catalog item needs an id and a name")

// LoadCatalog reads items from the YAML file at path. An empty path loads
// the built-in catalog.
func LoadCatalog(path string) ([]Item, error) {
	data := defaultCatalog
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog document.
func ParseCatalog(data []byte) ([]Item, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	seen := make(map[string]bool, len(file.Items))
	for i, item := range file.Items {
		if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
			return nil, fmt.Errorf("item %d: %w", i, ErrInvalidItem)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("item %d: duplicate id %q", i, item.ID)
		}
		seen[item.ID] = true
	}
	return file.Items, nil
}
