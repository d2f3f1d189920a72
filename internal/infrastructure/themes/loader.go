// Package themes loads user-defined layout themes from YAML files.
package themes

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/flank/internal/domain/theme"
	"gopkg.in/yaml.v3"
)

// yamlTheme is the YAML representation of a theme. Empty fields inherit
// from the default theme.
type yamlTheme struct {
	Name             string `yaml:"name"`
	MediumWidthQuery string `yaml:"medium_width_query"`

	Text         string `yaml:"text"`
	Muted        string `yaml:"muted"`
	Title        string `yaml:"title"`
	Accent       string `yaml:"accent"`
	Border       string `yaml:"border"`
	BorderActive string `yaml:"border_active"`

	LeftWidth  int `yaml:"left_width"`
	RightWidth int `yaml:"right_width"`
	RailWidth  int `yaml:"rail_width"`

	LeftIcon  string `yaml:"left_icon"`
	RightIcon string `yaml:"right_icon"`

	MarkdownStyle string `yaml:"markdown_style"`
}

// LoadFile loads a theme from a YAML file.
func LoadFile(path string) (theme.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return theme.Theme{}, fmt.Errorf("reading theme file: %w", err)
	}

	var yt yamlTheme
	if err := yaml.Unmarshal(data, &yt); err != nil {
		return theme.Theme{}, fmt.Errorf("parsing theme YAML: %w", err)
	}

	if yt.Name == "" {
		base := filepath.Base(path)
		yt.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	t := theme.Joy
	t.Name = yt.Name
	if yt.MediumWidthQuery != "" {
		q, err := theme.ParseQuery(yt.MediumWidthQuery)
		if err != nil {
			return theme.Theme{}, fmt.Errorf("theme %s: %w", yt.Name, err)
		}
		t.MediumWidthQuery = q
	}

	setColor(&t.Text, yt.Text)
	setColor(&t.Muted, yt.Muted)
	setColor(&t.Title, yt.Title)
	setColor(&t.Accent, yt.Accent)
	setColor(&t.Border, yt.Border)
	setColor(&t.BorderActive, yt.BorderActive)
	setInt(&t.LeftWidth, yt.LeftWidth)
	setInt(&t.RightWidth, yt.RightWidth)
	setInt(&t.RailWidth, yt.RailWidth)
	if yt.LeftIcon != "" {
		t.LeftIcon = yt.LeftIcon
	}
	if yt.RightIcon != "" {
		t.RightIcon = yt.RightIcon
	}
	if yt.MarkdownStyle != "" {
		t.MarkdownStyle = yt.MarkdownStyle
	}
	return t, nil
}

// LoadDir loads every .yaml/.yml theme in dir. Unreadable or invalid files
// are skipped and reported in the returned error list.
func LoadDir(dir string) ([]theme.Theme, []error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []error{fmt.Errorf("reading themes dir: %w", err)}
	}

	var out []theme.Theme
	var errs []error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		t, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out = append(out, t)
	}
	return out, errs
}

func setColor(dst *lipgloss.Color, v string) {
	if v != "" {
		*dst = lipgloss.Color(v)
	}
}

func setInt(dst *int, v int) {
	if v > 0 {
		*dst = v
	}
}
