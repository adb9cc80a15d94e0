package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/eldom/cmd/eldom/internal/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "status",
		Short: "Show project status",
		Long: `Show the current status of the eldom project.

Displays the module path and Go version from go.mod, the resolved app name
from eldom.yaml, and a summary of the page manifest if one is present.`,
		Usage: "eldom status",
		Run:   runStatus,
	})
}

func runStatus(args []string) error {
	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}

	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	fmt.Printf("Project: %s\n", cfg.AppName)
	fmt.Printf("Module:  %s\n", cfg.ModulePath)
	if cfg.GoVersion != "" {
		fmt.Printf("Go:      %s\n", cfg.GoVersion)
	}

	pagePath := filepath.Join(root, cfg.PagePath)
	if _, err := os.Stat(pagePath); err != nil {
		fmt.Printf("Page:    none (%s not found)\n", cfg.PagePath)
		return nil
	}

	page, err := config.LoadPage(pagePath)
	if err != nil {
		return err
	}

	fmt.Printf("Page:    %s\n", cfg.PagePath)
	fmt.Printf("  elements: %d defined tag(s)\n", len(page.Elements))
	fmt.Printf("  body:     %d top-level node(s)\n", len(page.Body))
	return nil
}
