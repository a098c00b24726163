package schema

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed seeds.yaml
var seedsYAML []byte

// Category is one education_categories reference row.
type Category struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon"`
	SortOrder   int    `yaml:"sort_order"`
}

type seedFile struct {
	Categories []Category `yaml:"education_categories"`
}

// Categories returns the built-in seed categories.
func Categories() ([]Category, error) {
	return ParseCategories(seedsYAML)
}

// ParseCategories decodes a seed file. Names are NFC-normalized so that the
// unique key matches however the accents were typed.
func ParseCategories(data []byte) ([]Category, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f seedFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seen := make(map[string]bool, len(f.Categories))
	for i := range f.Categories {
		c := &f.Categories[i]
		c.Name = norm.NFC.String(strings.TrimSpace(c.Name))
		c.Description = norm.NFC.String(strings.TrimSpace(c.Description))
		if c.Name == "" {
			return nil, fmt.Errorf("seed category %d: name is empty", i+1)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("seed category %q listed twice", c.Name)
		}
		seen[c.Name] = true
	}
	return f.Categories, nil
}
