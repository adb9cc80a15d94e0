package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module github.com/example/widgets\n\ngo 1.24.0\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.ModulePath != "github.com/example/widgets" {
		t.Errorf("ModulePath = %q", cfg.ModulePath)
	}
	if cfg.GoVersion != "1.24.0" {
		t.Errorf("GoVersion = %q", cfg.GoVersion)
	}
	if cfg.AppName != "widgets" {
		t.Errorf("AppName = %q, want module basename", cfg.AppName)
	}
	if cfg.PagePath != "page.yaml" {
		t.Errorf("PagePath = %q, want default page.yaml", cfg.PagePath)
	}
}

func TestResolveWithEldomYaml(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/app\n\ngo 1.24.0\n")
	writeFile(t, dir, "eldom.yaml", "app:\n  name: Fancy App\n  page: pages/home.yaml\n")

	cfg, err := Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if cfg.AppName != "Fancy App" {
		t.Errorf("AppName = %q", cfg.AppName)
	}
	if cfg.PagePath != "pages/home.yaml" {
		t.Errorf("PagePath = %q", cfg.PagePath)
	}
}

func TestResolveMissingGoMod(t *testing.T) {
	if _, err := Resolve(t.TempDir()); err == nil {
		t.Error("expected error for missing go.mod")
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional failed: %v", err)
	}
	if cfg.App.Name != "" {
		t.Errorf("expected empty config, got %+v", cfg)
	}
}

func TestLoadPage(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.yaml", `title: demo
elements:
  - x-counter
  - x-blink
body:
  - tag: section
    children:
      - tag: x-counter
        attrs:
          label: hits
`)

	page, err := LoadPage(filepath.Join(dir, "page.yaml"))
	if err != nil {
		t.Fatalf("LoadPage failed: %v", err)
	}
	if page.Title != "demo" {
		t.Errorf("Title = %q", page.Title)
	}
	if len(page.Elements) != 2 {
		t.Errorf("Elements = %v, want 2 entries", page.Elements)
	}
	if len(page.Body) != 1 || len(page.Body[0].Children) != 1 {
		t.Fatalf("unexpected body shape: %+v", page.Body)
	}
	child := page.Body[0].Children[0]
	if child.Tag != "x-counter" || child.Attrs["label"] != "hits" {
		t.Errorf("unexpected child node: %+v", child)
	}
}

func TestLoadPageEmptyTag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.yaml", "body:\n  - attrs:\n      label: oops\n")

	if _, err := LoadPage(filepath.Join(dir, "page.yaml")); err == nil {
		t.Error("expected error for node with empty tag")
	}
}
