// Package config handles configuration loading and saving.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/flank/internal/application/settings"
	"gopkg.in/yaml.v3"
)

// Store manages persisted application settings.
type Store struct {
	Settings settings.Settings
	path     string
}

// DefaultPath returns ~/.config/flank/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "flank", "config.yaml"), nil
}

// Load reads settings from path, or from DefaultPath when path is empty.
// Missing keys take their kong defaults. A missing file is created with
// the defaults.
func Load(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil

	cfg, err := parse(path, exists)
	if err != nil {
		return nil, err
	}
	normalize(&cfg, path)

	store := &Store{Settings: cfg, path: path}
	if !exists {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}
	return store, nil
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.path
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s.Settings)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(s.path, data, 0600)
}

func parse(path string, exists bool) (settings.Settings, error) {
	var cfg settings.Settings
	var options []kong.Option
	if exists {
		options = append(options, kong.Configuration(yamlResolver, path))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return cfg, fmt.Errorf("building config parser: %w", err)
	}
	if _, err := parser.Parse(nil); err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}
	return cfg, nil
}

func normalize(cfg *settings.Settings, path string) {
	cfg.Source = strings.TrimSpace(cfg.Source)
	cfg.ThemesDir = expandHome(cfg.ThemesDir)
	cfg.StateFile = expandHome(cfg.StateFile)
	if cfg.StateFile == "" {
		cfg.StateFile = filepath.Join(dataHome(), "flank", "state.db")
	}
	if cfg.ThemesDir == "" {
		cfg.ThemesDir = filepath.Join(filepath.Dir(path), "themes")
	}
}

func dataHome() string {
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

func expandHome(path string) string {
	path = strings.TrimSpace(path)
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// yamlResolver resolves kong flags from a YAML document. Nested maps are
// addressed with dotted keys, so layout.left_title serves the
// layout.left-title flag.
func yamlResolver(r io.Reader) (kong.Resolver, error) {
	var doc map[string]any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}

	values := map[string]any{}
	flatten("", doc, values)

	var f kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		if v, ok := values[flag.Name]; ok {
			return v, nil
		}
		if v, ok := values[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
			return v, nil
		}
		return nil, nil
	}
	return f, nil
}

func flatten(prefix string, in map[string]any, out map[string]any) {
	for k, v := range in {
		key := prefix + k
		if nested, ok := v.(map[string]any); ok {
			flatten(key+".", nested, out)
			continue
		}
		out[key] = v
	}
}
