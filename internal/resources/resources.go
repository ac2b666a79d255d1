// Package resources provides the static growth-mindset reading material
// served alongside the journal.
package resources

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed resources.yaml
var embedded []byte

// ErrInvalidLibrary is returned when resource content is missing required fields.
var ErrInvalidLibrary = errors.New("invalid resource library")

// Concept is a key idea with its supporting points.
type Concept struct {
	Title  string   `yaml:"title" json:"title"`
	Points []string `yaml:"points" json:"points"`
}

// Book is a recommended reading entry.
type Book struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author" json:"author"`
}

// Library is the full set of resources.
type Library struct {
	Concepts []Concept `yaml:"concepts" json:"concepts"`
	Reading  []Book    `yaml:"reading" json:"reading"`
	Tips     []string  `yaml:"tips" json:"tips"`
}

// Load parses the embedded resource library.
func Load() (*Library, error) {
	return Parse(embedded)
}

// Parse decodes a resource library from YAML and validates it.
func Parse(data []byte) (*Library, error) {
	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse resources: %w", err)
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return &lib, nil
}

// Validate checks that every entry has its required text.
func (l *Library) Validate() error {
	for i, c := range l.Concepts {
		if strings.TrimSpace(c.Title) == "" {
			return fmt.Errorf("%w: concept %d has no title", ErrInvalidLibrary, i)
		}
	}
	for i, b := range l.Reading {
		if strings.TrimSpace(b.Title) == "" {
			return fmt.Errorf("%w: reading entry %d has no title", ErrInvalidLibrary, i)
		}
	}
	for i, tip := range l.Tips {
		if strings.TrimSpace(tip) == "" {
			return fmt.Errorf("%w: tip %d is empty", ErrInvalidLibrary, i)
		}
	}
	return nil
}
