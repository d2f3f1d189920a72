// Command flank browses a feed or a directory of notes in a three-pane
// terminal layout with collapsible sidebars.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/flank/internal/application/usecase"
	"github.com/tesso57/flank/internal/domain/theme"
	"github.com/tesso57/flank/internal/infrastructure/config"
	"github.com/tesso57/flank/internal/infrastructure/content"
	"github.com/tesso57/flank/internal/infrastructure/session"
	"github.com/tesso57/flank/internal/infrastructure/themes"
	"github.com/tesso57/flank/internal/presentation/tui"
	"golang.org/x/term"
)

// CLI holds command line flags. Non-empty flags override the config file.
type CLI struct {
	Config     string `help:"Config file path." type:"path"`
	Theme      string `help:"Theme name."`
	Source     string `help:"Feed URL, feed file or directory to display."`
	DebugLog   string `help:"Write a debug log to this file." env:"FLANK_DEBUG" type:"path"`
	ListThemes bool   `help:"Print the available theme names and exit."`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("flank"),
		kong.Description("A terminal reader with collapsible sidebars."),
		kong.UsageOnError(),
	)
	if err := run(cli); err != nil {
		fmt.Fprintf(os.Stderr, "flank: %v\n", err)
		os.Exit(1)
	}
}

func run(cli CLI) error {
	if cli.DebugLog != "" {
		f, err := tea.LogToFile(cli.DebugLog, "flank")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer func() { _ = f.Close() }()
	} else {
		log.SetOutput(io.Discard)
	}

	store, err := config.Load(cli.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := store.Settings
	if cli.Theme != "" {
		cfg.Theme = cli.Theme
	}
	if cli.Source != "" {
		cfg.Source = strings.TrimSpace(cli.Source)
	}

	custom, errs := themes.LoadDir(cfg.ThemesDir)
	for _, err := range errs {
		log.Printf("themes: %v", err)
	}
	catalog := theme.NewCatalog(custom...)
	if cli.ListThemes {
		for _, name := range catalog.Names() {
			fmt.Println(name)
		}
		return nil
	}

	var panels usecase.PanelService
	if cfg.RememberPanels {
		db, err := session.Open(cfg.StateFile)
		if err != nil {
			return fmt.Errorf("opening state store: %w", err)
		}
		defer func() { _ = db.Close() }()
		panels = usecase.NewPanelService(db, cfg.Profile, true)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	svc := tui.Services{
		Panels:  panels,
		Content: usecase.NewContentService(content.Load, cfg.Source, timeout),
	}
	if cfg.Watch {
		w, err := content.Watch(cfg.Source, content.DefaultDebounce)
		if err != nil {
			log.Printf("watch: %v", err)
		} else if w != nil {
			defer func() { _ = w.Close() }()
			svc.Changes = w.Changes()
		}
	}

	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width, height = 0, 0
	}
	window := tui.NewWindowSource(width, height)

	log.Printf("starting: theme=%s source=%q size=%dx%d", cfg.Theme, cfg.Source, width, height)
	m := tui.NewModel(cfg, window, catalog, svc)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}
	return nil
}
