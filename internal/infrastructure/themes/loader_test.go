package themes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/theme"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ocean.yaml")
	content := `medium_width_query: "(max-width: 70)"
accent: "#00ffff"
left_width: 20
left_icon: "@"
markdown_style: ascii
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got.Name != "ocean" {
		t.Errorf("Name = %q, want name from file", got.Name)
	}
	if !got.Narrow(70) || got.Narrow(71) {
		t.Errorf("breakpoint not applied: %s", got.MediumWidthQuery)
	}
	if got.Accent != lipgloss.Color("#00ffff") {
		t.Errorf("Accent = %q", got.Accent)
	}
	if got.LeftWidth != 20 || got.RightWidth != theme.Joy.RightWidth {
		t.Errorf("widths = %d/%d", got.LeftWidth, got.RightWidth)
	}
	if got.LeftIcon != "@" || got.RightIcon != theme.Joy.RightIcon {
		t.Errorf("icons = %q/%q", got.LeftIcon, got.RightIcon)
	}
	if got.MarkdownStyle != "ascii" {
		t.Errorf("MarkdownStyle = %q", got.MarkdownStyle)
	}
}

func TestLoadFile_InvalidQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(`medium_width_query: "wide"`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for invalid media query")
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"a.yaml":     "name: Alpha\n",
		"b.yml":      "name: Beta\n",
		"c.txt":      "name: Ignored\n",
		"broken.yml": "name: [",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0600); err != nil {
			t.Fatal(err)
		}
	}

	got, errs := LoadDir(dir)
	if len(got) != 2 {
		t.Fatalf("loaded %d themes, want 2", len(got))
	}
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}

	c := theme.NewCatalog(got...)
	if _, ok := c.Get("alpha"); !ok {
		t.Error("alpha theme missing from catalog")
	}
}

func TestLoadDir_Missing(t *testing.T) {
	got, errs := LoadDir(filepath.Join(t.TempDir(), "nope"))
	if len(got) != 0 || len(errs) != 0 {
		t.Fatalf("missing dir should be empty, got %v %v", got, errs)
	}
}
