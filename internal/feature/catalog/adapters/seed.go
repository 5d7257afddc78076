package adapters

import (
	"bytes"
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"trading_backend/internal/feature/catalog/domain"
	"trading_backend/internal/feature/catalog/domain/entity"
)

//go:embed catalog.yaml
var seedYAML []byte

// Document is the catalog as stored in catalog.yaml.
type Document struct {
	Strategies []entity.Strategy `yaml:"strategies"`
	Models     []entity.AIModel  `yaml:"models"`
}

// LoadSeed parses the embedded catalog document.
func LoadSeed() (*Document, error) {
	return ParseSeed(seedYAML)
}

// ParseSeed decodes and validates a catalog document. SortKey is assigned
// from the position in each list.
func ParseSeed(b []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidSeed, err)
	}

	seen := make(map[string]struct{})
	check := func(kind, name, tier string) error {
		if name == "" {
			return fmt.Errorf("%w: %s without name", domain.ErrInvalidSeed, kind)
		}
		if !slices.Contains(entity.Tiers, tier) {
			return fmt.Errorf("%w: %s %q has tier %q", domain.ErrInvalidSeed, kind, name, tier)
		}
		key := kind + "/" + name
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate %s %q", domain.ErrInvalidSeed, kind, name)
		}
		seen[key] = struct{}{}
		return nil
	}

	for i := range doc.Strategies {
		s := &doc.Strategies[i]
		if err := check("strategy", s.Name, s.Tier); err != nil {
			return nil, err
		}
		s.SortKey = i + 1
	}
	for i := range doc.Models {
		m := &doc.Models[i]
		if err := check("model", m.Name, m.Tier); err != nil {
			return nil, err
		}
		m.SortKey = i + 1
	}
	return &doc, nil
}
