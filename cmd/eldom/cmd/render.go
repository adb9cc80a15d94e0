package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/eldom/cmd/eldom/internal/config"
	"github.com/go-drift/eldom/pkg/dom"
	"github.com/go-drift/eldom/pkg/element"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Build a page manifest and trace its lifecycle",
		Long: `Build the document described by a page manifest.

Each tag listed under "elements:" is defined as a custom element with a
tracing initializer, the body tree is constructed and attached node by node,
and the resulting tree is printed together with the lifecycle trace
(init/connect events in the order the host fired them).`,
		Usage: "eldom render <page.yaml>",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("page manifest is required\n\nUsage: eldom render <page.yaml>")
	}

	page, err := config.LoadPage(args[0])
	if err != nil {
		return err
	}

	registry := dom.NewRegistry()
	element.SetHost(registry)
	doc := dom.NewDocument(registry)

	var trace []string
	makes := make(map[string]element.Make, len(page.Elements))
	for _, tag := range page.Elements {
		mk, err := element.Define(tag, func(el *dom.Element, params any) *element.Handle {
			trace = append(trace, "init       "+el.Tag())
			return &element.Handle{
				Connect:    func() { trace = append(trace, "connect    "+el.Tag()) },
				Disconnect: func() { trace = append(trace, "disconnect "+el.Tag()) },
			}
		})
		if err != nil {
			return err
		}
		makes[tag] = mk
	}

	for i := range page.Body {
		if err := buildNode(doc.Root(), &page.Body[i], registry, makes); err != nil {
			return err
		}
	}

	if page.Title != "" {
		fmt.Printf("Page: %s\n\n", page.Title)
	}
	fmt.Println("Tree:")
	for _, child := range doc.Root().Children() {
		printTree(child, 1)
	}
	fmt.Println()
	fmt.Println("Lifecycle:")
	for _, line := range trace {
		fmt.Printf("  %s\n", line)
	}

	return nil
}

// buildNode constructs the element for node, attaches it under parent (firing
// connect callbacks, since parent is already connected), then builds children.
func buildNode(parent *dom.Element, node *config.Node, registry *dom.Registry, makes map[string]element.Make) error {
	var el *dom.Element
	var err error
	if mk, ok := makes[node.Tag]; ok {
		el, err = mk(node.Attrs)
	} else {
		el, err = registry.NewElement(node.Tag)
	}
	if err != nil {
		return fmt.Errorf("building <%s>: %w", node.Tag, err)
	}

	for name, value := range node.Attrs {
		el.SetAttribute(name, value)
	}

	if err := parent.AppendChild(el); err != nil {
		return fmt.Errorf("attaching <%s>: %w", node.Tag, err)
	}

	for i := range node.Children {
		if err := buildNode(el, &node.Children[i], registry, makes); err != nil {
			return err
		}
	}
	return nil
}

func printTree(el *dom.Element, depth int) {
	var attrs strings.Builder
	for _, name := range el.AttributeNames() {
		value, _ := el.Attribute(name)
		fmt.Fprintf(&attrs, " %s=%q", name, value)
	}
	fmt.Printf("%s<%s%s>\n", strings.Repeat("  ", depth), el.Tag(), attrs.String())
	for _, child := range el.Children() {
		printTree(child, depth+1)
	}
}
