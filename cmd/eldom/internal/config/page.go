package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Page describes a document to build: the custom tags to define and the
// element tree to construct under the document root.
type Page struct {
	Title    string   `yaml:"title,omitempty"`
	Elements []string `yaml:"elements,omitempty"`
	Body     []Node   `yaml:"body"`
}

// Node describes one element in a page body.
type Node struct {
	Tag      string            `yaml:"tag"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Children []Node            `yaml:"children,omitempty"`
}

// LoadPage reads and validates a page manifest.
func LoadPage(path string) (*Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page manifest: %w", err)
	}

	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to parse page manifest: %w", err)
	}

	for i := range page.Body {
		if err := validateNode(&page.Body[i]); err != nil {
			return nil, err
		}
	}
	return &page, nil
}

func validateNode(n *Node) error {
	if n.Tag == "" {
		return fmt.Errorf("page manifest: node with empty tag")
	}
	for i := range n.Children {
		if err := validateNode(&n.Children[i]); err != nil {
			return err
		}
	}
	return nil
}
